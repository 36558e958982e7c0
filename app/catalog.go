package app

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bemycrust/bemycrust/database"
	"github.com/bemycrust/bemycrust/dates"
	"github.com/bemycrust/bemycrust/model"
)

// AddInventoryItem creates a raw-material record with a fresh id and
// LastUpdated set to the app date. Duplicate names are permitted; keeping
// them apart is the caller's job.
func (a *App) AddInventoryItem(name string, startingWeight, endingWeight float64, unit, frequency string) (model.InventoryItem, error) {
	if strings.TrimSpace(name) == "" {
		return model.InventoryItem{}, ErrNameRequired
	}
	if !model.ValidFrequency(frequency) {
		return model.InventoryItem{}, ErrInvalidFrequency
	}

	item := model.InventoryItem{
		ID:              newID(),
		Name:            name,
		StartingWeight:  startingWeight,
		EndingWeight:    endingWeight,
		Unit:            unit,
		LastUpdated:     a.today,
		UpdateFrequency: frequency,
	}
	a.st.Inventory = append(a.st.Inventory, item)
	a.log.Info().Str("id", item.ID).Str("name", name).Msg("inventory item added")
	return item, a.persist(database.KeyInventory, a.st.Inventory)
}

// UpdateInventoryItem merges the set fields of upd into the item and
// touches it. An unknown id is a silent no-op.
func (a *App) UpdateInventoryItem(id string, upd model.InventoryUpdate) error {
	for i := range a.st.Inventory {
		item := &a.st.Inventory[i]
		if item.ID != id {
			continue
		}
		if upd.Name != nil {
			item.Name = *upd.Name
		}
		if upd.StartingWeight != nil {
			item.StartingWeight = *upd.StartingWeight
		}
		if upd.EndingWeight != nil {
			item.EndingWeight = *upd.EndingWeight
		}
		if upd.Unit != nil {
			item.Unit = *upd.Unit
		}
		if upd.UpdateFrequency != nil {
			item.UpdateFrequency = *upd.UpdateFrequency
		}
		a.touch(item)
		return a.persist(database.KeyInventory, a.st.Inventory)
	}
	return nil
}

// touch is the single place LastUpdated gets reset. Every update goes
// through it, whichever field actually changed; that is the documented
// contract.
func (a *App) touch(item *model.InventoryItem) {
	item.LastUpdated = a.today
}

// UpdateStartingWeight records a new starting weight, opening the next
// measurement period. The passphrase gate in front of this is the caller's
// responsibility; the app only records.
func (a *App) UpdateStartingWeight(id string, weight float64) error {
	return a.UpdateInventoryItem(id, model.InventoryUpdate{StartingWeight: &weight})
}

// UpdateEndingWeight records the measured period-end weight. Not gated.
func (a *App) UpdateEndingWeight(id string, weight float64) error {
	return a.UpdateInventoryItem(id, model.InventoryUpdate{EndingWeight: &weight})
}

// AddMenuItem creates a catalog entry with a fresh id, routed to the pizza
// or extras collection by its type tag. Ingredient and packaging references
// are not validated; dangling ids are tolerated downstream.
func (a *App) AddMenuItem(item model.MenuItem) (model.MenuItem, error) {
	if strings.TrimSpace(item.Name) == "" {
		return model.MenuItem{}, ErrNameRequired
	}
	if !model.ValidItemType(item.Type) {
		return model.MenuItem{}, ErrInvalidItemType
	}

	item.ID = newID()
	switch item.Type {
	case model.TypePizza:
		a.st.MenuItems = append(a.st.MenuItems, item)
		if err := a.persist(database.KeyMenuItems, a.st.MenuItems); err != nil {
			return model.MenuItem{}, err
		}
	case model.TypeFries, model.TypeDrink:
		a.st.ExtraItems = append(a.st.ExtraItems, item)
		if err := a.persist(database.KeyExtraItems, a.st.ExtraItems); err != nil {
			return model.MenuItem{}, err
		}
	}
	a.log.Info().Str("id", item.ID).Str("type", item.Type).Str("name", item.Name).Msg("menu item added")
	return item, nil
}

// AddPackagingItem creates a packaging catalog entry with a fresh id.
func (a *App) AddPackagingItem(name, size string, cost decimal.Decimal) (model.PackagingItem, error) {
	if strings.TrimSpace(name) == "" {
		return model.PackagingItem{}, ErrNameRequired
	}
	if cost.IsNegative() {
		return model.PackagingItem{}, ErrNegativeCost
	}

	item := model.PackagingItem{ID: newID(), Name: name, Size: size, Cost: cost}
	a.st.Packaging = append(a.st.Packaging, item)
	a.log.Info().Str("id", item.ID).Str("name", name).Msg("packaging item added")
	return item, a.persist(database.KeyPackaging, a.st.Packaging)
}

// SearchMenuItems matches the query against name, size, crust and variant
// across both catalog collections, case-insensitively.
func (a *App) SearchMenuItems(query string) []model.MenuItem {
	q := strings.ToLower(query)
	var matches []model.MenuItem
	for _, col := range [][]model.MenuItem{a.st.MenuItems, a.st.ExtraItems} {
		for _, m := range col {
			if strings.Contains(strings.ToLower(m.Name), q) ||
				strings.Contains(strings.ToLower(m.Size), q) ||
				strings.Contains(strings.ToLower(m.CrustType), q) ||
				strings.Contains(strings.ToLower(m.Variant), q) {
				matches = append(matches, m)
			}
		}
	}
	return matches
}

// ItemsDueForUpdate lists the inventory items the staff should weigh today:
// daily items always, weekly items once 7 or more days have passed since
// their last update.
func (a *App) ItemsDueForUpdate() []model.InventoryItem {
	var due []model.InventoryItem
	for _, item := range a.st.Inventory {
		switch item.UpdateFrequency {
		case model.FrequencyDaily:
			due = append(due, item)
		case model.FrequencyWeekly:
			if dates.DaysBetween(item.LastUpdated, a.today) >= 7 {
				due = append(due, item)
			}
		}
	}
	return due
}
