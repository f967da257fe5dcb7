// Package extract holds the heuristics that mine contact signals out of
// free-form chat messages. They are best-effort regexes, not validated
// parsers: a capitalized two-word sentence can be misread as a name, and
// that is accepted.
package extract

import (
	"regexp"
	"strings"

	"github.com/elliotchance/pie/v2"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	introducedNameRe = regexp.MustCompile(`(?:(?i:my name is|i am|i'm|call me|this is))\s+([A-Z][a-z]+(?: [A-Z][a-z]+)?)\b`)
	bareNameRe       = regexp.MustCompile(`^[A-Z][a-z]+(?: [A-Z][a-z]+)?$`)
)

// message fragments that signal business interest
var interestKeywords = []string{"project", "interested", "help with", "looking for"}

// Email returns the first substring shaped like local@domain.tld, or "".
// It does not check deliverability.
func Email(text string) string {
	return emailRe.FindString(text)
}

// Name tries an introduction phrase first ("my name is X", "I'm X",
// "call me X", "this is X"), then falls back to the whole message if it is
// itself just one or two capitalized words. First match wins.
func Name(text string) string {
	if m := introducedNameRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	trimmed := strings.TrimSpace(text)
	if bareNameRe.MatchString(trimmed) {
		return trimmed
	}

	return ""
}

// InterestSignal reports whether the message carries one of the fixed
// interest keywords.
func InterestSignal(text string) bool {
	lower := strings.ToLower(text)

	return pie.Any(interestKeywords, func(kw string) bool {
		return strings.Contains(lower, kw)
	})
}

// JustEmail reports whether the message is nothing but an email address.
func JustEmail(text string) bool {
	return emailRe.FindString(strings.TrimSpace(text)) == strings.TrimSpace(text)
}
