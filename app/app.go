// Package app owns the process-wide application state: every collection,
// the mutation entry points over them, and the write-through persistence
// discipline. Components that only read (the report engine, renderers)
// receive snapshots instead of the state itself.
package app

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/bemycrust/bemycrust/database"
	"github.com/bemycrust/bemycrust/dates"
	"github.com/bemycrust/bemycrust/model"
	"github.com/bemycrust/bemycrust/report"
)

// Persister is the durable key/value store the app writes through to.
// Satisfied by *database.Store.
type Persister interface {
	LoadDoc(key string, v any) (bool, error)
	SaveDoc(key string, v any) error
}

// state holds every collection. Pizzas live in MenuItems, fries and drinks
// in ExtraItems, matching the persisted key layout.
type state struct {
	Inventory  []model.InventoryItem
	MenuItems  []model.MenuItem
	ExtraItems []model.MenuItem
	Packaging  []model.PackagingItem
	Sales      []model.SaleRecord
	MiscSales  []model.MiscSaleRecord
	Reports    []model.Report
}

type App struct {
	store           Persister
	st              state
	today           string
	retentionMonths int
	log             zerolog.Logger
}

// Options tweak construction. Today is injectable for tests; when empty the
// system clock's local day is read once and reused for the whole process
// lifetime.
type Options struct {
	Today           string
	RetentionMonths int
	Logger          zerolog.Logger
}

// New loads every collection from the store, seeds the default packaging
// catalog on first run, and sweeps expired records once (the original did
// its cleanup on mount).
func New(store Persister, opts Options) (*App, error) {
	if opts.Today == "" {
		opts.Today = dates.Today()
	}
	if opts.RetentionMonths == 0 {
		opts.RetentionMonths = 1
	}

	a := &App{
		store:           store,
		today:           opts.Today,
		retentionMonths: opts.RetentionMonths,
		log:             opts.Logger,
	}

	load := func(key string, v any) (bool, error) {
		found, err := store.LoadDoc(key, v)
		if err != nil {
			return false, fmt.Errorf("loading %s: %w", key, err)
		}
		return found, nil
	}

	if _, err := load(database.KeyInventory, &a.st.Inventory); err != nil {
		return nil, err
	}
	if _, err := load(database.KeyMenuItems, &a.st.MenuItems); err != nil {
		return nil, err
	}
	if _, err := load(database.KeyExtraItems, &a.st.ExtraItems); err != nil {
		return nil, err
	}
	found, err := load(database.KeyPackaging, &a.st.Packaging)
	if err != nil {
		return nil, err
	}
	if !found {
		a.st.Packaging = DefaultPackaging()
		if err := store.SaveDoc(database.KeyPackaging, a.st.Packaging); err != nil {
			return nil, fmt.Errorf("seeding packaging: %w", err)
		}
		a.log.Info().Int("items", len(a.st.Packaging)).Msg("seeded default packaging catalog")
	}
	if _, err := load(database.KeySales, &a.st.Sales); err != nil {
		return nil, err
	}
	if _, err := load(database.KeyMiscSales, &a.st.MiscSales); err != nil {
		return nil, err
	}
	if _, err := load(database.KeyReports, &a.st.Reports); err != nil {
		return nil, err
	}

	a.sweep()
	a.log.Info().
		Str("date", a.today).
		Int("inventory", len(a.st.Inventory)).
		Int("menuItems", len(a.st.MenuItems)+len(a.st.ExtraItems)).
		Int("sales", len(a.st.Sales)).
		Int("reports", len(a.st.Reports)).
		Msg("application state loaded")
	return a, nil
}

// Today is the calendar day the app was started on. It is not re-read; a
// process kept open across midnight keeps stamping this day until restart.
func (a *App) Today() string {
	return a.today
}

// DefaultPackaging is the catalog seeded on first run.
func DefaultPackaging() []model.PackagingItem {
	return []model.PackagingItem{
		{ID: "pkg-box-s", Name: "Pizza Box", Size: "Small", Cost: decimal.NewFromInt(12)},
		{ID: "pkg-box-m", Name: "Pizza Box", Size: "Medium", Cost: decimal.NewFromInt(16)},
		{ID: "pkg-box-l", Name: "Pizza Box", Size: "Large", Cost: decimal.NewFromInt(22)},
		{ID: "pkg-fries-box", Name: "Fries Box", Size: "Regular", Cost: decimal.NewFromInt(8)},
		{ID: "pkg-cup", Name: "Drink Cup", Size: "Regular", Cost: decimal.NewFromInt(5)},
		{ID: "pkg-lid", Name: "Cup Lid", Size: "Regular", Cost: decimal.NewFromInt(2)},
		{ID: "pkg-straw", Name: "Straw", Size: "Regular", Cost: decimal.NewFromInt(1)},
	}
}

// Snapshot hands the report engine a read-only view of the collections.
func (a *App) Snapshot() report.Snapshot {
	menu := make([]model.MenuItem, 0, len(a.st.MenuItems)+len(a.st.ExtraItems))
	menu = append(menu, a.st.MenuItems...)
	menu = append(menu, a.st.ExtraItems...)
	return report.Snapshot{
		Inventory: a.st.Inventory,
		Menu:      menu,
		Packaging: a.st.Packaging,
		Sales:     a.st.Sales,
		MiscSales: a.st.MiscSales,
	}
}

// Accessors for the UI layer. Callers must not mutate the returned slices.

func (a *App) Inventory() []model.InventoryItem  { return a.st.Inventory }
func (a *App) MenuItems() []model.MenuItem       { return a.st.MenuItems }
func (a *App) ExtraItems() []model.MenuItem      { return a.st.ExtraItems }
func (a *App) Packaging() []model.PackagingItem  { return a.st.Packaging }
func (a *App) Sales() []model.SaleRecord         { return a.st.Sales }
func (a *App) MiscSales() []model.MiscSaleRecord { return a.st.MiscSales }
func (a *App) Reports() []model.Report           { return a.st.Reports }

// persist writes one collection through to the store. Failures are logged
// and surfaced; there is no retry and no rollback of the in-memory change.
func (a *App) persist(key string, v any) error {
	if err := a.store.SaveDoc(key, v); err != nil {
		a.log.Error().Err(err).Str("key", key).Msg("persist failed")
		return err
	}
	return nil
}

// SaveAll re-writes every collection: the manual "save all data"
// checkpoint.
func (a *App) SaveAll() error {
	cols := []struct {
		key string
		v   any
	}{
		{database.KeyInventory, a.st.Inventory},
		{database.KeyMenuItems, a.st.MenuItems},
		{database.KeyExtraItems, a.st.ExtraItems},
		{database.KeyPackaging, a.st.Packaging},
		{database.KeySales, a.st.Sales},
		{database.KeyMiscSales, a.st.MiscSales},
		{database.KeyReports, a.st.Reports},
	}
	for _, c := range cols {
		if err := a.persist(c.key, c.v); err != nil {
			return err
		}
	}
	a.log.Info().Msg("all data saved")
	return nil
}
