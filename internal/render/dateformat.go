package render

import (
	"strings"
	"time"
)

// dateTokens translates the settings-facing date pattern tokens to Go
// reference-layout fragments. Order matters: longer tokens first so MMMM
// is not consumed as two MMs.
var dateTokens = []struct{ from, to string }{
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"yyyy", "2006"},
	{"dd", "02"},
	{"d", "2"},
}

const defaultDateLayout = "01/02/2006"

// FormatDate renders t using the pattern stored in settings
// (e.g. "dd MMM yyyy"). An empty or unrecognized-token pattern is passed
// through verbatim after translation, and the empty pattern uses the
// MM/dd/yyyy default.
func FormatDate(t time.Time, pattern string) string {
	if pattern == "" {
		return t.Format(defaultDateLayout)
	}
	layout := pattern
	for _, tok := range dateTokens {
		layout = strings.ReplaceAll(layout, tok.from, tok.to)
	}
	return t.Format(layout)
}
