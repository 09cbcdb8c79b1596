package domain

import "strings"

// NormalizeName returns the trimmed, lower-cased form of a name used for
// uniqueness comparison. Special characters (hyphen, apostrophe, period)
// compare as opaque codepoints; there is no locale folding beyond case.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NameSupplier returns the current set of existing names, pre-normalized to
// lower case. It is evaluated at check time so the checker always sees the
// latest in-memory snapshot.
type NameSupplier func() []string

// IsDuplicateName reports whether candidate collides with a member of
// names under trimmed, case-insensitive comparison.
//
// A raw empty candidate never counts as a duplicate: the required-field
// rule owns that case. A whitespace-only candidate, however, normalizes to
// the empty string and does match an empty-string entry in names.
//
// When exclude is non-empty and normalizes equal to the candidate (the
// record's own current name during an edit), the result is false
// regardless of list contents.
func IsDuplicateName(candidate string, names []string, exclude string) bool {
	if candidate == "" {
		return false
	}
	value := NormalizeName(candidate)
	if exclude != "" && value == NormalizeName(exclude) {
		return false
	}
	for _, name := range names {
		if name == value {
			return true
		}
	}
	return false
}

// CheckDuplicate runs IsDuplicateName against the supplier's current list.
func CheckDuplicate(supplier NameSupplier, candidate, exclude string) bool {
	if supplier == nil {
		return false
	}
	return IsDuplicateName(candidate, supplier(), exclude)
}
