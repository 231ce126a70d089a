package services

import (
	"strings"

	"github.com/gosimple/slug"
	"golang.org/x/text/unicode/norm"
)

// Slugify derives a URL-safe company code from a name using gosimple/slug:
// non-ASCII letters are transliterated ("Zürich" -> "zurich"), "&" and "@"
// are spelled out ("AT&T" -> "atandt"), apostrophes and quotes are dropped
// ("O'Reilly Media" -> "oreilly-media") and every other run of punctuation
// or space becomes a single "-". Underscores are kept. The result is stable,
// Slugify(Slugify(s)) == Slugify(s), and may be empty.
func Slugify(s string) string {
	return slug.Make(s)
}

// IsSlug reports whether s is a non-empty code that Slugify would produce.
func IsSlug(s string) bool {
	return slug.IsSlug(s) && Slugify(s) == s
}

// NormalizeName trims a company name and puts it in Unicode NFC, so a
// composed and a decomposed "Café" are stored and compared as one name.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
