package entity

import "testing"

func TestDecodeMenuBareArray(t *testing.T) {
	data := []byte(`[{"name":"Coffee","amount":3.5},{"name":"Tea","price":2.5}]`)
	items, err := DecodeMenu(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[1].Amount != 2.5 {
		t.Fatalf("price key should map to amount, got %v", items[1].Amount)
	}
}

func TestDecodeMenuWrapperKeys(t *testing.T) {
	for _, doc := range []string{
		`{"items":[{"title":"Burger","cost":12}]}`,
		`{"products":[{"title":"Burger","cost":12}]}`,
		`{"menu":[{"title":"Burger","cost":12}]}`,
		`{"menu_items":[{"title":"Burger","cost":12}]}`,
	} {
		items, err := DecodeMenu([]byte(doc))
		if err != nil {
			t.Fatalf("decode of %s failed: %v", doc, err)
		}
		if len(items) != 1 || items[0].Name != "Burger" || items[0].Amount != 12 {
			t.Fatalf("unexpected items from %s: %+v", doc, items)
		}
	}
}

func TestDecodeMenuDropsUnusableRecords(t *testing.T) {
	data := []byte(`[{"name":"Coffee","amount":3.5},{"amount":9},{"name":"Bad","amount":-1}]`)
	items, err := DecodeMenu(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Coffee" {
		t.Fatalf("expected only Coffee to survive, got %+v", items)
	}
}

func TestDecodeMenuRejectsNonCatalogDocuments(t *testing.T) {
	if _, err := DecodeMenu([]byte(`not json`)); err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
	if _, err := DecodeMenu([]byte(`{"settings":{"theme":"dark"}}`)); err == nil {
		t.Fatalf("expected error for a document without a product list")
	}
}
