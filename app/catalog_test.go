package app

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bemycrust/bemycrust/model"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestAddInventoryItem(t *testing.T) {
	a := newTestApp(t, "2025-08-29")

	item, err := a.AddInventoryItem("Mozzarella", 1000, 0, "g", model.FrequencyDaily)
	if err != nil {
		t.Fatalf("AddInventoryItem: %v", err)
	}
	if item.ID == "" {
		t.Error("expected a fresh id")
	}
	if item.LastUpdated != "2025-08-29" {
		t.Errorf("lastUpdated = %q, want app date", item.LastUpdated)
	}
	if len(a.Inventory()) != 1 {
		t.Fatalf("inventory size = %d, want 1", len(a.Inventory()))
	}

	// Duplicate names are permitted.
	if _, err := a.AddInventoryItem("Mozzarella", 500, 0, "g", model.FrequencyDaily); err != nil {
		t.Fatalf("duplicate name rejected: %v", err)
	}
	if len(a.Inventory()) != 2 {
		t.Errorf("inventory size = %d, want 2", len(a.Inventory()))
	}
}

func TestAddInventoryItem_Validation(t *testing.T) {
	a := newTestApp(t, "2025-08-29")

	tests := []struct {
		name      string
		itemName  string
		frequency string
		wantErr   error
	}{
		{"empty_name", "", model.FrequencyDaily, ErrNameRequired},
		{"blank_name", "   ", model.FrequencyDaily, ErrNameRequired},
		{"bad_frequency", "Flour", "hourly", ErrInvalidFrequency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := a.AddInventoryItem(tt.itemName, 0, 0, "g", tt.frequency); err != tt.wantErr {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
	if len(a.Inventory()) != 0 {
		t.Errorf("rejected adds must leave state unchanged, got %d items", len(a.Inventory()))
	}
}

func TestUpdateInventoryItem_AlwaysTouchesLastUpdated(t *testing.T) {
	a := newTestApp(t, "2025-08-28")
	item, _ := a.AddInventoryItem("Mozzarella", 1000, 0, "g", model.FrequencyDaily)

	// Same state, next day: whichever field changes, the date moves.
	a.today = "2025-08-29"

	tests := []struct {
		name string
		upd  model.InventoryUpdate
	}{
		{"ending_weight", model.InventoryUpdate{EndingWeight: f64Ptr(700)}},
		{"unit_only", model.InventoryUpdate{Unit: strPtr("kg")}},
		{"name_only", model.InventoryUpdate{Name: strPtr("Mozzarella Shredded")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a.st.Inventory[0].LastUpdated = "2025-08-28"
			if err := a.UpdateInventoryItem(item.ID, tt.upd); err != nil {
				t.Fatalf("UpdateInventoryItem: %v", err)
			}
			if got := a.Inventory()[0].LastUpdated; got != "2025-08-29" {
				t.Errorf("lastUpdated = %q, want 2025-08-29", got)
			}
		})
	}
}

func TestUpdateInventoryItem_PartialMerge(t *testing.T) {
	a := newTestApp(t, "2025-08-29")
	item, _ := a.AddInventoryItem("Mozzarella", 1000, 0, "g", model.FrequencyDaily)

	if err := a.UpdateEndingWeight(item.ID, 700); err != nil {
		t.Fatalf("UpdateEndingWeight: %v", err)
	}

	got := a.Inventory()[0]
	if got.EndingWeight != 700 {
		t.Errorf("endingWeight = %v, want 700", got.EndingWeight)
	}
	if got.StartingWeight != 1000 {
		t.Errorf("startingWeight = %v, want 1000 (untouched)", got.StartingWeight)
	}
	if got.Name != "Mozzarella" {
		t.Errorf("name = %q, want untouched", got.Name)
	}
}

func TestUpdateInventoryItem_UnknownIDIsNoOp(t *testing.T) {
	a := newTestApp(t, "2025-08-29")
	a.AddInventoryItem("Mozzarella", 1000, 0, "g", model.FrequencyDaily)

	if err := a.UpdateStartingWeight("no-such-id", 1); err != nil {
		t.Fatalf("unknown id should be silent, got %v", err)
	}
	if got := a.Inventory()[0].StartingWeight; got != 1000 {
		t.Errorf("startingWeight = %v, want 1000", got)
	}
}

func TestAddMenuItem_RoutesByVariant(t *testing.T) {
	a := newTestApp(t, "2025-08-29")

	pizza, err := a.AddMenuItem(model.MenuItem{
		Name: "Margherita", Type: model.TypePizza, Size: "Medium", CrustType: "Classic",
		Price: decimal.NewFromInt(250),
	})
	if err != nil {
		t.Fatalf("add pizza: %v", err)
	}
	if _, err := a.AddMenuItem(model.MenuItem{
		Name: "Masala Fries", Type: model.TypeFries, Variant: "Masala",
	}); err != nil {
		t.Fatalf("add fries: %v", err)
	}
	if _, err := a.AddMenuItem(model.MenuItem{
		Name: "Cola", Type: model.TypeDrink, Size: "Regular",
		PackagingIDs: []string{"pkg-cup", "pkg-lid", "pkg-straw"},
	}); err != nil {
		t.Fatalf("add drink: %v", err)
	}

	if len(a.MenuItems()) != 1 {
		t.Errorf("menuItems = %d, want 1 (pizzas only)", len(a.MenuItems()))
	}
	if len(a.ExtraItems()) != 2 {
		t.Errorf("extraItems = %d, want 2 (fries and drinks)", len(a.ExtraItems()))
	}
	if pizza.ID == "" {
		t.Error("expected a fresh id")
	}

	if _, err := a.AddMenuItem(model.MenuItem{Name: "Mystery", Type: "Dessert"}); err != ErrInvalidItemType {
		t.Errorf("err = %v, want ErrInvalidItemType", err)
	}
}

func TestAddPackagingItem(t *testing.T) {
	a := newTestApp(t, "2025-08-29")
	seeded := len(a.Packaging())

	if _, err := a.AddPackagingItem("XL Pizza Box", "Extra-Large", decimal.NewFromInt(30)); err != nil {
		t.Fatalf("AddPackagingItem: %v", err)
	}
	if len(a.Packaging()) != seeded+1 {
		t.Errorf("packaging = %d, want %d", len(a.Packaging()), seeded+1)
	}

	if _, err := a.AddPackagingItem("Bad", "S", decimal.NewFromInt(-1)); err != ErrNegativeCost {
		t.Errorf("err = %v, want ErrNegativeCost", err)
	}
}

func TestDefaultPackagingSeededOnFirstRun(t *testing.T) {
	a := newTestApp(t, "2025-08-29")
	if len(a.Packaging()) != 7 {
		t.Errorf("seeded packaging = %d, want 7", len(a.Packaging()))
	}
}

func TestSearchMenuItems(t *testing.T) {
	a := newTestApp(t, "2025-08-29")
	a.AddMenuItem(model.MenuItem{Name: "Margherita", Type: model.TypePizza, Size: "Medium", CrustType: "Thin"})
	a.AddMenuItem(model.MenuItem{Name: "Farmhouse", Type: model.TypePizza, Size: "Large", CrustType: "Classic"})
	a.AddMenuItem(model.MenuItem{Name: "Masala Fries", Type: model.TypeFries, Variant: "Masala"})

	tests := []struct {
		query string
		want  int
	}{
		{"marg", 1},
		{"thin", 1},
		{"masala", 1},
		{"large", 1},
		{"nothing-matches", 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := len(a.SearchMenuItems(tt.query)); got != tt.want {
				t.Errorf("SearchMenuItems(%q) = %d matches, want %d", tt.query, got, tt.want)
			}
		})
	}
}

func TestItemsDueForUpdate(t *testing.T) {
	a := newTestApp(t, "2025-08-29")
	a.AddInventoryItem("Mozzarella", 1000, 0, "g", model.FrequencyDaily)
	flour, _ := a.AddInventoryItem("Flour", 5000, 0, "g", model.FrequencyWeekly)

	// Weekly item updated today: not due.
	if got := len(a.ItemsDueForUpdate()); got != 1 {
		t.Fatalf("due = %d, want 1 (daily only)", got)
	}

	// A week later it comes due.
	for i := range a.st.Inventory {
		if a.st.Inventory[i].ID == flour.ID {
			a.st.Inventory[i].LastUpdated = "2025-08-22"
		}
	}
	if got := len(a.ItemsDueForUpdate()); got != 2 {
		t.Errorf("due = %d, want 2", got)
	}
}
