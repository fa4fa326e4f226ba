// Package opendata derives canonical open-data dataset URLs from published
// item names. The open data portal addresses every dataset by the
// kebab-cased form of its published name.
package opendata

import (
	"strings"
	"unicode"
)

// BaseURL is the open data portal's dataset root.
const BaseURL = "https://opendata.gis.utah.gov/datasets"

// DatasetURL returns the portal URL for a published item name, or the empty
// string if the name contains nothing usable.
func DatasetURL(publishedName string) string {
	slug := KebabCase(publishedName)
	if slug == "" {
		return ""
	}
	return BaseURL + "/" + slug
}

// KebabCase lowercases a name and joins its alphanumeric words with
// hyphens: "Utah Parks & Recreation" becomes "utah-parks-recreation".
func KebabCase(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(words, "-")
}
