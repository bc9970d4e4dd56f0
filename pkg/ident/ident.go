// Package ident turns free text such as layer names and column aliases
// into safe PostgreSQL and SQLite identifiers.
package ident

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLen is the longest identifier PostgreSQL keeps without truncation
// (NAMEDATALEN - 1).
const MaxLen = 63

// Normalize folds s to lower case ASCII, removes diacritics and replaces
// every run of characters other than letters and digits with a single
// underscore. Leading and trailing underscores are dropped. An identifier
// that would start with a digit gets a "t_" prefix. The result is at most
// MaxLen bytes long and is empty if s has no letters or digits.
func Normalize(s string) string {
	folded := fold(s)

	var sb strings.Builder
	sep := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if sep && sb.Len() > 0 {
				sb.WriteByte('_')
			}
			sep = false
			sb.WriteRune(r)
		default:
			sep = true
		}
	}

	res := sb.String()
	if res == "" {
		return ""
	}
	if res[0] >= '0' && res[0] <= '9' {
		res = "t_" + res
	}
	if len(res) > MaxLen {
		res = strings.TrimRight(res[:MaxLen], "_")
	}
	return res
}

// Unique normalizes every name and resolves collisions by adding a numeric
// suffix, so "Nb", "nb" become "nb", "nb_2". Names without letters or
// digits become "field_<n>" where n is the 1-based position.
func Unique(names []string) []string {
	res := make([]string, len(names))
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		base := Normalize(name)
		if base == "" {
			base = "field_" + strconv.Itoa(i+1)
		}
		candidate := base
		for n := 2; ; n++ {
			if _, ok := seen[candidate]; !ok {
				break
			}
			candidate = base + "_" + strconv.Itoa(n)
		}
		seen[candidate] = struct{}{}
		res[i] = candidate
	}
	return res
}

func fold(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	res, _, err := transform.String(t, s)
	if err != nil {
		res = s
	}
	res = strings.NewReplacer("œ", "oe", "Œ", "oe", "æ", "ae", "Æ", "ae", "ß", "ss").
		Replace(res)
	return strings.ToLower(res)
}
