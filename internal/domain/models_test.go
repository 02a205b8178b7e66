package domain

import (
	"encoding/json"
	"testing"
)

func TestTableNames(t *testing.T) {
	if got := (Painting{}).TableName(); got != "paintings" {
		t.Fatalf("Painting table = %q", got)
	}
	if got := (PaintingImage{}).TableName(); got != "painting_images" {
		t.Fatalf("PaintingImage table = %q", got)
	}
}

func TestTranslation_Empty(t *testing.T) {
	if !(Translation{}).Empty() {
		t.Fatal("zero Translation should be empty")
	}
	if (Translation{CS: "Kráva"}).Empty() {
		t.Fatal("CS-only Translation should not be empty")
	}
	if (Translation{EN: "Cow"}).Empty() {
		t.Fatal("EN-only Translation should not be empty")
	}
}

func TestPainting_SoldFlag(t *testing.T) {
	var p Painting
	if p.Sold() {
		t.Fatal("fresh painting must not be sold")
	}
	p.SetSold(true)
	if !p.Sold() {
		t.Fatal("SetSold(true) not reflected")
	}
	p.SetSold(false)
	if p.Sold() {
		t.Fatal("SetSold(false) not reflected")
	}
}

func TestPainting_JSONShape(t *testing.T) {
	p := Painting{
		ID:    "id-1",
		Price: 120000,
		Title: Translation{CS: "Louka", EN: "Meadow"},
	}
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := m["deleted_at"]; ok {
		t.Fatal("soft-delete marker must not serialize")
	}
	title, ok := m["title"].(map[string]any)
	if !ok || title["en"] != "Meadow" || title["cs"] != "Louka" {
		t.Fatalf("title shape: %v", m["title"])
	}
}
