// Package report derives reconciliation reports from the recorded
// collections. It only ever reads; persistence of the result is the
// caller's concern.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/bemycrust/bemycrust/dates"
	"github.com/bemycrust/bemycrust/model"
)

// Snapshot is a read-only view of the collections a report derivation
// needs. Menu holds every catalog entry regardless of variant.
type Snapshot struct {
	Inventory []model.InventoryItem
	Menu      []model.MenuItem
	Packaging []model.PackagingItem
	Sales     []model.SaleRecord
	MiscSales []model.MiscSaleRecord
}

// BuildDaily computes the persisted-style report for a single calendar day.
//
// Actual usage is the point-in-time depletion of each inventory item
// (starting minus ending weight). Expected usage is derived from recipes:
// for every menu item referencing the inventory item, its per-unit amount
// times the quantity sold that day, summed across menu items sharing the
// ingredient.
func BuildDaily(s Snapshot, date, staffName string) model.Report {
	rep := model.Report{
		Date:      date,
		StaffName: staffName,
	}

	soldQty := quantitiesByMenuItem(s.Sales, date, date)

	rep.InventoryUsage = make([]model.UsageLine, 0, len(s.Inventory))
	for _, item := range s.Inventory {
		used := item.StartingWeight - item.EndingWeight

		expected := 0.0
		for _, m := range s.Menu {
			amount, ok := m.IngredientAmount(item.ID)
			if !ok {
				continue
			}
			expected += amount * float64(soldQty[m.ID])
		}

		rep.InventoryUsage = append(rep.InventoryUsage, model.UsageLine{
			ItemID:     item.ID,
			ItemName:   item.Name,
			Used:       used,
			Expected:   expected,
			Difference: used - expected,
		})
	}

	rep.Sales = salesInRange(s.Sales, date, date)
	rep.MiscSales = miscSalesInRange(s.MiscSales, date, date)
	rep.PackagingUsed, rep.SkippedRefs = packagingUsage(s, rep.Sales)
	return rep
}

// BuildTimeframe computes an ephemeral weekly/monthly report for the
// inclusive range [start, end].
//
// Inventory usage is not recomputed from weights; it is the sum of the
// already-persisted daily reports whose date falls in range. A day without
// a generated daily report contributes nothing, by policy. Sales, misc
// sales and packaging are taken directly from the raw logs.
func BuildTimeframe(dailies []model.Report, s Snapshot, start, end, staffName string) model.Report {
	rep := model.Report{
		Date:      dates.RangeLabel(start, end),
		StaffName: staffName,
	}

	totals := make(map[string]*model.UsageLine)
	var order []string
	for _, d := range dailies {
		if !dates.InRange(d.Date, start, end) {
			continue
		}
		for _, line := range d.InventoryUsage {
			agg, ok := totals[line.ItemID]
			if !ok {
				agg = &model.UsageLine{ItemID: line.ItemID, ItemName: line.ItemName}
				totals[line.ItemID] = agg
				order = append(order, line.ItemID)
			}
			agg.Used += line.Used
			agg.Expected += line.Expected
			agg.Difference += line.Difference
		}
	}
	rep.InventoryUsage = make([]model.UsageLine, 0, len(order))
	for _, id := range order {
		rep.InventoryUsage = append(rep.InventoryUsage, *totals[id])
	}

	rep.Sales = salesInRange(s.Sales, start, end)
	rep.MiscSales = miscSalesInRange(s.MiscSales, start, end)
	rep.PackagingUsed, rep.SkippedRefs = packagingUsage(s, rep.Sales)
	return rep
}

func salesInRange(sales []model.SaleRecord, start, end string) []model.SaleRecord {
	scoped := []model.SaleRecord{}
	for _, sale := range sales {
		if dates.InRange(sale.Date, start, end) {
			scoped = append(scoped, sale)
		}
	}
	return scoped
}

func miscSalesInRange(misc []model.MiscSaleRecord, start, end string) []model.MiscSaleRecord {
	scoped := []model.MiscSaleRecord{}
	for _, m := range misc {
		if dates.InRange(m.Date, start, end) {
			scoped = append(scoped, m)
		}
	}
	return scoped
}

func quantitiesByMenuItem(sales []model.SaleRecord, start, end string) map[string]int {
	qty := make(map[string]int)
	for _, sale := range sales {
		if dates.InRange(sale.Date, start, end) {
			qty[sale.ItemID] += sale.Quantity
		}
	}
	return qty
}

// packagingUsage aggregates packaging consumption for the given in-scope
// sales. A sale whose menu item cannot be resolved, or a menu item
// referencing an unknown packaging id, is skipped and counted; the
// aggregate is best-effort rather than failing hard.
func packagingUsage(s Snapshot, scoped []model.SaleRecord) ([]model.PackagingUsage, int) {
	menuByID := make(map[string]model.MenuItem, len(s.Menu))
	for _, m := range s.Menu {
		menuByID[m.ID] = m
	}
	packByID := make(map[string]model.PackagingItem, len(s.Packaging))
	for _, p := range s.Packaging {
		packByID[p.ID] = p
	}

	counts := make(map[string]int)
	var order []string
	skipped := 0

	for _, sale := range scoped {
		m, ok := menuByID[sale.ItemID]
		if !ok {
			skipped++
			continue
		}
		for _, pkgID := range m.PackagingRefs() {
			if _, ok := packByID[pkgID]; !ok {
				skipped++
				continue
			}
			if counts[pkgID] == 0 {
				order = append(order, pkgID)
			}
			counts[pkgID] += sale.Quantity
		}
	}

	usage := make([]model.PackagingUsage, 0, len(order))
	for _, id := range order {
		p := packByID[id]
		count := counts[id]
		usage = append(usage, model.PackagingUsage{
			ID:    id,
			Name:  p.Name,
			Count: count,
			Cost:  p.Cost.Mul(decimal.NewFromInt(int64(count))),
		})
	}
	return usage, skipped
}
