package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/bakehouse/counter-api/internal/domain/entity"
	"github.com/bakehouse/counter-api/pkg/printer"
)

func newTestPrinterService() *PrinterService {
	return NewPrinterService(printer.NewNullPrinter(), "none", ReceiptOptions{
		Header: entity.ReceiptHeader{
			StoreName: "Corner Bakehouse",
			Address:   "12 Mill Lane",
			Phone:     "555-0101",
			GSTNumber: "GST-42",
		},
		CharWidth:    32,
		ShowHeader:   true,
		ShowFooter:   true,
		ShowGST:      true,
		ShowDatetime: true,
	})
}

func finalizedSnapshot(t *testing.T) entity.OrderSnapshot {
	t.Helper()
	table := entity.NewTable(3)
	if err := table.AddItem("Coffee", 3.50, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := table.AddItem("Sandwich", 8.00, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := table.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	return table.Snapshot()
}

func TestFormatReceiptContents(t *testing.T) {
	svc := newTestPrinterService()
	receipt := entity.ReceiptFromSnapshot(entity.ReceiptHeader{StoreName: "Corner Bakehouse"}, finalizedSnapshot(t))

	data := svc.FormatReceipt(receipt)

	for _, want := range []string{
		"Corner Bakehouse",
		"Table 3",
		"Item",
		"Coffee",
		"@ 3.50 each",
		"Sandwich",
		"TOTAL:",
		"15.00",
		"Thank You!",
		"Visit Again!",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Fatalf("receipt missing %q:\n%s", want, data)
		}
	}
	// Single-quantity lines carry no unit price note.
	if bytes.Contains(data, []byte("@ 8.00 each")) {
		t.Fatalf("unit price note must only appear for quantities above one")
	}
}

func TestFormatReceiptHonorsSectionToggles(t *testing.T) {
	svc := NewPrinterService(printer.NewNullPrinter(), "none", ReceiptOptions{
		Header:       entity.ReceiptHeader{StoreName: "Corner Bakehouse", GSTNumber: "GST-42"},
		CharWidth:    32,
		ShowHeader:   false,
		ShowFooter:   false,
		ShowGST:      false,
		ShowDatetime: false,
	})
	receipt := entity.ReceiptFromSnapshot(entity.ReceiptHeader{StoreName: "Corner Bakehouse", GSTNumber: "GST-42"}, finalizedSnapshot(t))

	data := svc.FormatReceipt(receipt)
	for _, banned := range []string{"Corner Bakehouse", "GST-42", "Thank You!", "Date:"} {
		if bytes.Contains(data, []byte(banned)) {
			t.Fatalf("disabled section leaked %q into the receipt", banned)
		}
	}
	if !bytes.Contains(data, []byte("TOTAL:")) {
		t.Fatalf("the body must always be printed")
	}
}

func TestPrintSnapshotOnNullPrinter(t *testing.T) {
	svc := newTestPrinterService()

	receipt, err := svc.PrintSnapshot(finalizedSnapshot(t))
	if err != nil {
		t.Fatalf("print on the null printer must succeed: %v", err)
	}
	if receipt.Total != 15.00 {
		t.Fatalf("expected receipt total 15.00, got %v", receipt.Total)
	}
	if len(receipt.Items) != 2 {
		t.Fatalf("expected 2 receipt lines, got %d", len(receipt.Items))
	}
}

func TestStatusReflectsConfiguration(t *testing.T) {
	disabled := NewPrinterService(printer.NewNullPrinter(), "none", ReceiptOptions{CharWidth: 32})
	status := disabled.Status()
	if status.Configured || status.Connected {
		t.Fatalf("null printer must report unconfigured and disconnected: %+v", status)
	}

	spool := NewPrinterService(printer.NewSpoolPrinter(t.TempDir()), "spool", ReceiptOptions{CharWidth: 32})
	status = spool.Status()
	if !status.Configured || !status.Connected || status.Type != "spool" {
		t.Fatalf("spool printer must report configured and connected: %+v", status)
	}
}

func TestTestPrintComposesReceipt(t *testing.T) {
	svc := newTestPrinterService()
	receipt, err := svc.TestPrint()
	if err != nil {
		t.Fatalf("test print failed: %v", err)
	}
	if receipt.Total != 20.00 {
		t.Fatalf("expected test total 20.00, got %v", receipt.Total)
	}
	if _, err := time.Parse("02/01/2006 15:04:05", receipt.Date); err != nil {
		t.Fatalf("unexpected date format %q: %v", receipt.Date, err)
	}
}
