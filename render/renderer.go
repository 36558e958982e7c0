// Package render turns reports into plain text for the shell and for
// anything that wants a printable summary without the UI layer.
package render

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bemycrust/bemycrust/model"
)

var printer = message.NewPrinter(language.English)

// Report writes a readable rendering of rep to w: the reconciliation table,
// the packaging table and the sales totals. Differences carry an explicit
// sign so overages stand out.
func Report(w io.Writer, rep model.Report) {
	fmt.Fprintf(w, "Report %s", rep.Date)
	if rep.StaffName != "" {
		fmt.Fprintf(w, " (by %s)", rep.StaffName)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Inventory usage:")
	if len(rep.InventoryUsage) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, line := range rep.InventoryUsage {
		fmt.Fprintf(w, "  %-24s used %s  expected %s  difference %s\n",
			line.ItemName,
			printer.Sprintf("%.1f", line.Used),
			printer.Sprintf("%.1f", line.Expected),
			signed(line.Difference))
	}

	fmt.Fprintln(w, "Packaging used:")
	if len(rep.PackagingUsed) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, p := range rep.PackagingUsed {
		fmt.Fprintf(w, "  %-24s x%s  cost %s\n",
			p.Name, printer.Sprintf("%d", p.Count), p.Cost.StringFixed(2))
	}
	fmt.Fprintf(w, "Packaging total: %s\n", rep.PackagingTotal().StringFixed(2))

	fmt.Fprintf(w, "Sales: %s lines", printer.Sprintf("%d", len(rep.Sales)))
	if len(rep.MiscSales) > 0 {
		fmt.Fprintf(w, ", misc: %d", len(rep.MiscSales))
	}
	fmt.Fprintln(w)
	if rep.SkippedRefs > 0 {
		fmt.Fprintf(w, "Warning: %d unresolved references skipped\n", rep.SkippedRefs)
	}
}

func signed(v float64) string {
	s := printer.Sprintf("%.1f", v)
	if v > 0 && !strings.HasPrefix(s, "+") {
		return "+" + s
	}
	return s
}
