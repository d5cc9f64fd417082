// Package datefmt is the display filter for show start times. The
// presentation layer picks a named format; everything else in the service
// passes timestamps around as time.Time.
package datefmt

import "time"

const (
	FormatFull   = "full"
	FormatMedium = "medium"

	fullLayout   = "Monday January, 2, 2006 at 3:04pm"
	mediumLayout = "Mon 01, 02, 2006 3:04pm"
)

// Format renders t in the named format. Unknown or empty names fall back
// to "medium".
func Format(t time.Time, name string) string {
	switch name {
	case FormatFull:
		return t.Format(fullLayout)
	default:
		return t.Format(mediumLayout)
	}
}
