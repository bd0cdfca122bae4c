package registry

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	camelBoundary  = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	nameSeparators = regexp.MustCompile(`[\s_]+`)
	dashRuns       = regexp.MustCompile(`-{2,}`)

	titleCaser = cases.Title(language.English)
)

// CanonicalName normalizes an entity directory name to its manifest key:
// lowercase with dash separators. "DatePicker", "date_picker" and
// "date-picker" all map to "date-picker".
func CanonicalName(dir string) string {
	name := camelBoundary.ReplaceAllString(dir, "$1-$2")
	name = nameSeparators.ReplaceAllString(name, "-")
	name = dashRuns.ReplaceAllString(name, "-")
	name = strings.ToLower(name)
	return strings.Trim(name, "-")
}

// DisplayTitle renders a canonical name as a human-readable title by
// splitting on dashes and underscores and capitalizing each word.
func DisplayTitle(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
	return titleCaser.String(strings.Join(words, " "))
}
