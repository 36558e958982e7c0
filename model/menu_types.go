package model

import "github.com/shopspring/decimal"

// Menu item variants. Go has no sum types; the tag plus exhaustive switches
// (see PackagingRefs) is the closest faithful rendition.
const (
	TypePizza = "Pizza"
	TypeFries = "Fries"
	TypeDrink = "Drink"
)

func ValidItemType(t string) bool {
	switch t {
	case TypePizza, TypeFries, TypeDrink:
		return true
	}
	return false
}

// Ingredient is one recipe line: how much of an inventory item a single
// unit of sale consumes, in the inventory item's own unit.
type Ingredient struct {
	ItemID string  `json:"itemId"`
	Amount float64 `json:"amount"`
}

// PackagingItem is a consumable the kitchen hands out per sale: boxes,
// cups, lids, straws. Referenced by id from menu items.
type PackagingItem struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Size string          `json:"size"`
	Cost decimal.Decimal `json:"cost"`
}

// MenuItem is a sellable catalog entry. The populated variant fields depend
// on Type: pizzas use Size/CrustType/PackagingID, fries use
// Variant/PackagingID, drinks use Variant/Size/PackagingIDs and by
// convention carry no ingredients.
type MenuItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Ingredients  []Ingredient    `json:"ingredients"`
	Size         string          `json:"size,omitempty"`
	CrustType    string          `json:"crustType,omitempty"`
	Variant      string          `json:"variant,omitempty"`
	PackagingID  string          `json:"packagingId,omitempty"`
	PackagingIDs []string        `json:"packagingIds,omitempty"`
	Price        decimal.Decimal `json:"price"`
}

// PackagingRefs returns the packaging ids one unit of sale consumes.
// Pizzas and fries ship in a single box; drinks consume every id in their
// set (cup, lid, straw). Unknown tags yield nothing.
func (m MenuItem) PackagingRefs() []string {
	switch m.Type {
	case TypePizza, TypeFries:
		if m.PackagingID == "" {
			return nil
		}
		return []string{m.PackagingID}
	case TypeDrink:
		return m.PackagingIDs
	default:
		return nil
	}
}

// IngredientAmount reports how much of the given inventory item one unit
// of this menu item consumes.
func (m MenuItem) IngredientAmount(itemID string) (float64, bool) {
	for _, ing := range m.Ingredients {
		if ing.ItemID == itemID {
			return ing.Amount, true
		}
	}
	return 0, false
}
