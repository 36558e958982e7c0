package model

import "github.com/shopspring/decimal"

// SaleDetails is a display snapshot captured at sale time so history views
// never have to re-join the catalog.
type SaleDetails struct {
	Size      string `json:"size,omitempty"`
	Variant   string `json:"variant,omitempty"`
	CrustType string `json:"crustType,omitempty"`
}

// SaleRecord is one immutable line of the sales log. Price is the total for
// the line, captured at sale time; later catalog price changes never touch
// recorded history.
type SaleRecord struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"itemId"`
	ItemName  string          `json:"itemName"`
	ItemType  string          `json:"itemType"`
	Quantity  int             `json:"quantity"`
	Date      string          `json:"date"`
	StaffName string          `json:"staffName"`
	Price     decimal.Decimal `json:"price"`
	Details   *SaleDetails    `json:"details,omitempty"`
}

// MiscSaleRecord is an ad hoc charge with no catalog item behind it: no
// inventory draw, no packaging.
type MiscSaleRecord struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	StaffName string          `json:"staffName"`
}
