// Package lang builds the language suggestions offered by the form.
package lang

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DefaultCodes is used when no languages are configured.
var DefaultCodes = []string{"en", "fr", "es", "de", "it", "pt", "nl", "ru", "zh", "ja", "ar", "hi"}

// Option is one selectable language.
type Option struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Options maps codes to options named in their own language. Codes that do
// not parse as BCP 47 tags are kept with the raw code as name; submitted
// codes are never validated against this list.
func Options(codes []string) []Option {
	opts := make([]Option, 0, len(codes))
	seen := make(map[string]bool, len(codes))
	for _, raw := range codes {
		code := strings.TrimSpace(raw)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true

		name := code
		if tag, err := language.Parse(code); err == nil {
			if n := display.Self.Name(tag); n != "" {
				name = n
			}
		}
		opts = append(opts, Option{Code: code, Name: name})
	}
	return opts
}
