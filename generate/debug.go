package generate

import (
	"animseq/utilities"
	"animseq/utils/debug"
)

// dumpUtilities returns readable tree of utilities for debug report.
func dumpUtilities(u *utilities.Utilities) string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "Utilities (%d entries)", u.Len())
	for sel, d := range u.All() {
		tw.Line(1, "%s", sel)
		for _, p := range d {
			tw.TextBlock(2, p.Name, p.Value)
		}
	}
	return tw.String()
}
