package app

import (
	"github.com/bemycrust/bemycrust/database"
	"github.com/bemycrust/bemycrust/dates"
	"github.com/bemycrust/bemycrust/model"
)

// sweep drops sales, misc sales and reports older than the retention
// window. The cutoff is an exact calendar-month subtraction, not 30 days;
// records dated exactly on the cutoff survive. Runs after every mutation of
// the swept collections and once at startup.
func (a *App) sweep() {
	cutoff := dates.MonthsBefore(a.today, a.retentionMonths)

	sales := a.st.Sales[:0]
	for _, s := range a.st.Sales {
		if s.Date >= cutoff {
			sales = append(sales, s)
		}
	}
	droppedSales := len(a.st.Sales) - len(sales)
	a.st.Sales = sales

	misc := a.st.MiscSales[:0]
	for _, m := range a.st.MiscSales {
		if m.Date >= cutoff {
			misc = append(misc, m)
		}
	}
	droppedMisc := len(a.st.MiscSales) - len(misc)
	a.st.MiscSales = misc

	reports := a.st.Reports[:0]
	for _, r := range a.st.Reports {
		if reportEndDate(r) >= cutoff {
			reports = append(reports, r)
		}
	}
	droppedReports := len(a.st.Reports) - len(reports)
	a.st.Reports = reports

	if droppedSales == 0 && droppedMisc == 0 && droppedReports == 0 {
		return
	}
	a.log.Debug().
		Str("cutoff", cutoff).
		Int("sales", droppedSales).
		Int("miscSales", droppedMisc).
		Int("reports", droppedReports).
		Msg("swept expired records")
	if droppedSales > 0 {
		a.persist(database.KeySales, a.st.Sales)
	}
	if droppedMisc > 0 {
		a.persist(database.KeyMiscSales, a.st.MiscSales)
	}
	if droppedReports > 0 {
		a.persist(database.KeyReports, a.st.Reports)
	}
}

// reportEndDate is the date a report is aged by: its day, or for a
// range-labeled report the end of the range. Range reports are never
// persisted today, but a future extension that stores them ages correctly.
func reportEndDate(r model.Report) string {
	if _, end, ok := dates.SplitRange(r.Date); ok {
		return end
	}
	return r.Date
}
