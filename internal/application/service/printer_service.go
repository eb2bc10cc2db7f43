package service

import (
	"fmt"
	"log"
	"time"

	"github.com/bakehouse/counter-api/internal/domain/entity"
	"github.com/bakehouse/counter-api/pkg/printer"
)

// ReceiptOptions controls receipt layout and which sections are printed.
type ReceiptOptions struct {
	Header       entity.ReceiptHeader
	CharWidth    int // 32 for 58mm paper, 48 for 80mm
	ShowHeader   bool
	ShowFooter   bool
	ShowGST      bool
	ShowDatetime bool
}

// PrinterService formats finalized-order snapshots as ESC/POS receipts and
// sends them to the configured thermal printer. The domain never depends on
// print success; a failed print is reported to the caller and nothing else.
type PrinterService struct {
	printer     printer.Printer
	printerType string
	opts        ReceiptOptions
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, printerType string, opts ReceiptOptions) *PrinterService {
	if opts.CharWidth <= 0 {
		opts.CharWidth = 32
	}
	return &PrinterService{printer: p, printerType: printerType, opts: opts}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// Status returns printer connection status.
func (s *PrinterService) Status() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer. The composed receipt is
// returned so the handler can render it as JSON when printing is disabled.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header:    s.opts.Header,
		TableName: "PRINTER TEST",
		Date:      time.Now().Format("02/01/2006 15:04:05"),
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		Total: 20.00,
	}
	if err := s.printer.Print(s.FormatReceipt(receipt)); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}
	return receipt, nil
}

// PrintSnapshot composes and prints the receipt for a finalized order.
func (s *PrinterService) PrintSnapshot(snap entity.OrderSnapshot) (*entity.Receipt, error) {
	receipt := entity.ReceiptFromSnapshot(s.opts.Header, snap)
	if err := s.printer.Print(s.FormatReceipt(receipt)); err != nil {
		log.Printf("printer: error printing receipt for %s: %v", snap.TableName, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}
	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes using the configured
// layout.
func (s *PrinterService) FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.opts.CharWidth)

	if s.opts.ShowHeader {
		doc.SetAlign(printer.AlignCenter).
			SetBold(true).
			SetFontSize(printer.FontDouble).
			Text(r.Header.StoreName).
			SetFontSize(printer.FontNormal).
			SetBold(false)

		if r.Header.Address != "" {
			doc.Text(r.Header.Address)
		}
		if r.Header.Phone != "" {
			doc.TextF("Ph: %s", r.Header.Phone)
		}
		if s.opts.ShowGST && r.Header.GSTNumber != "" {
			doc.TextF("GST: %s", r.Header.GSTNumber)
		}
		doc.LineFeed()
	}

	doc.SetAlign(printer.AlignLeft)

	if s.opts.ShowDatetime {
		doc.KeyValue("Date:", r.Date)
	}
	if r.TableName != "" {
		doc.KeyValue("Table:", r.TableName)
	}

	doc.Separator('-')
	doc.TextF("%-*s%4s%6s", s.opts.CharWidth-10, "Item", "Qty", "Amt")
	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemColumns(item.Name, item.Quantity, fmt.Sprintf("%.0f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	doc.Separator('-')
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)
	doc.Separator('=')

	if s.opts.ShowFooter {
		doc.SetAlign(printer.AlignCenter).
			LineFeed().
			Text("Thank You!").
			Text("Visit Again!").
			SetAlign(printer.AlignLeft)
	}

	doc.FeedLines(3).PartialCut()
	return doc.Bytes()
}
