package slug

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)
	umlauts     = strings.NewReplacer("ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss")
)

// Make turns free text into a lowercase token of [a-z0-9] runs joined by
// underscores. German umlauts and sharp s become ASCII digraphs; every other
// non-ASCII letter collapses into the separator. The result may be empty.
func Make(input string) string {
	s := norm.NFC.String(input)
	s = strings.TrimSpace(cases.Lower(language.Und).String(s))
	s = umlauts.Replace(s)
	s = nonAlphaNum.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
