package catalog

import "testing"

const testSeed = `
items:
  - id: "1"
    name: Fresh Salad Bowl
    price: 0
    free: true
    category: Healthy
  - id: "2"
    name: Margherita Pizza
    price: 299
    category: Italian
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(testSeed))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	items := c.List()
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	salad := items[0]
	if salad.ID != "1" || !salad.IsFree || salad.Category != "Healthy" {
		t.Errorf("salad = %+v", salad)
	}
	pizza, ok := c.Get("2")
	if !ok || pizza.Price != 299 || pizza.IsFree {
		t.Errorf("pizza = %+v, ok = %v", pizza, ok)
	}
}

func TestParseRejectsBadItems(t *testing.T) {
	tests := []struct {
		name string
		seed string
	}{
		{"missing name", "items:\n  - id: \"1\"\n    price: 10\n"},
		{"negative price", "items:\n  - name: Broken\n    price: -5\n"},
		{"not yaml", "items: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.seed)); err == nil {
				t.Error("parse succeeded, want error")
			}
		})
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("load embedded menu: %v", err)
	}
	if len(c.List()) < 3 {
		t.Fatalf("embedded menu has %d items, want at least 3", len(c.List()))
	}
	pizza, ok := c.Get("2")
	if !ok || pizza.Name != "Margherita Pizza" || pizza.Price != 299 {
		t.Errorf("item 2 = %+v, ok = %v", pizza, ok)
	}
}

func TestAddGeneratesNextID(t *testing.T) {
	c, err := Parse([]byte(testSeed))
	if err != nil {
		t.Fatal(err)
	}
	item, err := c.Add("Masala Dosa", "Indian", 120, "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item.ID != "3" {
		t.Errorf("generated ID = %s, want 3", item.ID)
	}
	if _, ok := c.Get("3"); !ok {
		t.Error("added item not listed")
	}

	if _, err := c.Add("", "Indian", 10, ""); err == nil {
		t.Error("empty name accepted")
	}
	if _, err := c.Add("Broken", "Indian", -1, ""); err == nil {
		t.Error("negative price accepted")
	}
}

func TestToggleFree(t *testing.T) {
	c, err := Parse([]byte(testSeed))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.ToggleFree("2"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	pizza, _ := c.Get("2")
	if !pizza.IsFree {
		t.Error("pizza still paid after toggle")
	}
	if err := c.ToggleFree("2"); err != nil {
		t.Fatal(err)
	}
	pizza, _ = c.Get("2")
	if pizza.IsFree {
		t.Error("pizza still free after second toggle")
	}
	if err := c.ToggleFree("99"); err == nil {
		t.Error("toggling unknown item succeeded")
	}
}

func TestDelete(t *testing.T) {
	c, err := Parse([]byte(testSeed))
	if err != nil {
		t.Fatal(err)
	}
	c.Delete("1")
	if _, ok := c.Get("1"); ok {
		t.Error("item 1 still listed after delete")
	}
	c.Delete("99") // unknown: no-op
	if len(c.List()) != 1 {
		t.Errorf("len = %d, want 1", len(c.List()))
	}
}

func TestListByCategory(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	italian := c.ListByCategory("Italian")
	if len(italian) != 2 {
		t.Fatalf("Italian items = %d, want 2", len(italian))
	}
	for _, it := range italian {
		if it.Category != "Italian" {
			t.Errorf("stray category %s in result", it.Category)
		}
	}
	if got := c.ListByCategory("Nope"); len(got) != 0 {
		t.Errorf("unknown category returned %+v", got)
	}
}
