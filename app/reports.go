package app

import (
	"github.com/bemycrust/bemycrust/database"
	"github.com/bemycrust/bemycrust/dates"
	"github.com/bemycrust/bemycrust/model"
	"github.com/bemycrust/bemycrust/report"
)

// GenerateDailyReport derives today's reconciliation report and appends it
// to the persisted history. Generation is refused until every inventory
// item has an ending weight recorded for the period. Calling it twice on
// the same day appends two entries; no dedup is performed.
func (a *App) GenerateDailyReport(staffName string) (model.Report, error) {
	for _, item := range a.st.Inventory {
		if item.EndingWeight <= 0 {
			return model.Report{}, ErrWeightsPending
		}
	}

	rep := report.BuildDaily(a.Snapshot(), a.today, staffName)
	a.st.Reports = append(a.st.Reports, rep)
	a.sweep()
	a.log.Info().
		Str("date", rep.Date).
		Int("usageLines", len(rep.InventoryUsage)).
		Int("skippedRefs", rep.SkippedRefs).
		Msg("daily report generated")
	return rep, a.persist(database.KeyReports, a.st.Reports)
}

// TimeframeReport computes an ephemeral weekly/monthly report over the
// inclusive range [start, end]. The result is returned, never stored.
func (a *App) TimeframeReport(start, end, staffName string) (model.Report, error) {
	if !dates.Valid(start) || !dates.Valid(end) {
		return model.Report{}, ErrInvalidDate
	}
	if start > end {
		return model.Report{}, ErrInvalidRange
	}
	return report.BuildTimeframe(a.st.Reports, a.Snapshot(), start, end, staffName), nil
}

// WeeklyReport covers the 7 days ending on the app date.
func (a *App) WeeklyReport(staffName string) (model.Report, error) {
	return a.TimeframeReport(dates.DaysBefore(a.today, 6), a.today, staffName)
}

// MonthlyReport covers the calendar month ending on the app date.
func (a *App) MonthlyReport(staffName string) (model.Report, error) {
	return a.TimeframeReport(dates.MonthsBefore(a.today, 1), a.today, staffName)
}

// ReportFor returns the first persisted daily report for the given day, for
// the history calendar. ok is false when none was generated.
func (a *App) ReportFor(date string) (model.Report, bool) {
	for _, rep := range a.st.Reports {
		if rep.Date == date {
			return rep, true
		}
	}
	return model.Report{}, false
}
