package model

import "github.com/shopspring/decimal"

// UsageLine reconciles one inventory item: Used is the measured depletion,
// Expected is derived from sales x recipes, Difference = Used - Expected.
// Positive difference means more was consumed than sales justify.
type UsageLine struct {
	ItemID     string  `json:"itemId"`
	ItemName   string  `json:"itemName"`
	Used       float64 `json:"used"`
	Expected   float64 `json:"expected"`
	Difference float64 `json:"difference"`
}

// PackagingUsage is one packaging line of a report. Cost is unit cost times
// count.
type PackagingUsage struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Count int             `json:"count"`
	Cost  decimal.Decimal `json:"cost"`
}

// Report is either a persisted daily report (Date is a single calendar day)
// or an ephemeral timeframe report (Date is a "start - end" range label,
// never persisted). SkippedRefs counts sale or packaging references that
// could not be resolved while aggregating; those lines are under-counted
// rather than failed.
type Report struct {
	Date           string           `json:"date"`
	InventoryUsage []UsageLine      `json:"inventoryUsage"`
	Sales          []SaleRecord     `json:"sales"`
	MiscSales      []MiscSaleRecord `json:"miscSales"`
	PackagingUsed  []PackagingUsage `json:"packagingUsed"`
	StaffName      string           `json:"staffName"`
	SkippedRefs    int              `json:"skippedRefs"`
}

// PackagingTotal sums the cost column of PackagingUsed.
func (r Report) PackagingTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range r.PackagingUsed {
		total = total.Add(p.Cost)
	}
	return total
}
