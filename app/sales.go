package app

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bemycrust/bemycrust/database"
	"github.com/bemycrust/bemycrust/dates"
	"github.com/bemycrust/bemycrust/model"
)

// AddSale appends one immutable line to the sales log, stamped with a fresh
// id and the app date. Price and details are snapshots supplied by the
// caller, not recomputed from the catalog, so history stays stable when
// catalog prices change later. The item reference is not validated.
func (a *App) AddSale(itemID, itemName, itemType string, quantity int, staffName string, price decimal.Decimal, details *model.SaleDetails) (model.SaleRecord, error) {
	if itemID == "" {
		return model.SaleRecord{}, ErrItemRequired
	}
	if strings.TrimSpace(staffName) == "" {
		return model.SaleRecord{}, ErrStaffNameRequired
	}
	if quantity < 1 {
		return model.SaleRecord{}, ErrInvalidQuantity
	}
	if !model.ValidItemType(itemType) {
		return model.SaleRecord{}, ErrInvalidItemType
	}

	sale := model.SaleRecord{
		ID:        newID(),
		ItemID:    itemID,
		ItemName:  itemName,
		ItemType:  itemType,
		Quantity:  quantity,
		Date:      a.today,
		StaffName: staffName,
		Price:     price,
		Details:   details,
	}
	a.st.Sales = append(a.st.Sales, sale)
	a.sweep()
	a.log.Info().Str("id", sale.ID).Str("item", itemName).Int("quantity", quantity).Msg("sale recorded")
	return sale, a.persist(database.KeySales, a.st.Sales)
}

// AddMiscSale appends an ad hoc charge to the misc log. An empty date
// defaults to the app date.
func (a *App) AddMiscSale(name string, amount decimal.Decimal, staffName, date string) (model.MiscSaleRecord, error) {
	if strings.TrimSpace(name) == "" {
		return model.MiscSaleRecord{}, ErrNameRequired
	}
	if strings.TrimSpace(staffName) == "" {
		return model.MiscSaleRecord{}, ErrStaffNameRequired
	}
	if !amount.IsPositive() {
		return model.MiscSaleRecord{}, ErrInvalidAmount
	}
	if date == "" {
		date = a.today
	} else if !dates.Valid(date) {
		return model.MiscSaleRecord{}, ErrInvalidDate
	}

	misc := model.MiscSaleRecord{
		ID:        newID(),
		Name:      name,
		Amount:    amount,
		Date:      date,
		StaffName: staffName,
	}
	a.st.MiscSales = append(a.st.MiscSales, misc)
	a.sweep()
	a.log.Info().Str("id", misc.ID).Str("name", name).Msg("misc sale recorded")
	return misc, a.persist(database.KeyMiscSales, a.st.MiscSales)
}
