package catalog

import "strings"

// ReferenceMarker prefixes string values that must be looked up in a locale table
const ReferenceMarker = "$"

// IsReference reports whether value is a localization reference
func IsReference(value string) bool {
	return strings.HasPrefix(value, ReferenceMarker)
}

// Resolve returns the localized text for value.
// Values without the marker are returned unchanged. A reference whose key is
// absent from table yields a *LocalizationMissingError; the key itself is never
// used as a fallback.
func Resolve(value string, table LocaleTable) (string, error) {
	if !IsReference(value) {
		return value, nil
	}

	if localized, ok := table[value[len(ReferenceMarker):]]; ok {
		return localized, nil
	}

	return "", &LocalizationMissingError{Reference: value}
}
