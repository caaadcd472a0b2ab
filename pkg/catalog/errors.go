package catalog

import (
	"errors"
	"fmt"
)

// Error kinds reported by the catalog pipeline. Match them with errors.Is.
var (
	ErrDataLoad                = errors.New("data load failure")
	ErrUnknownAbilityReference = errors.New("unknown ability reference")
	ErrLocalizationMissing     = errors.New("localization missing")
	ErrUnknownLocale           = errors.New("unknown locale")
)

// DataLoadError reports a reference file that is missing, unreadable or malformed.
// Field is empty when the whole file is at fault.
type DataLoadError struct {
	File  string
	Field string
	Err   error
}

func (e *DataLoadError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("can't deserialize file %s: field %s: %v", e.File, e.Field, e.Err)
	}
	return fmt.Sprintf("can't deserialize file %s: %v", e.File, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

func (e *DataLoadError) Is(target error) bool { return target == ErrDataLoad }

// UnknownAbilityError reports a creature that references an undefined ability id
type UnknownAbilityError struct {
	AbilityID string
	Creature  string
}

func (e *UnknownAbilityError) Error() string {
	return fmt.Sprintf("creature %q references unknown ability %q", e.Creature, e.AbilityID)
}

func (e *UnknownAbilityError) Is(target error) bool { return target == ErrUnknownAbilityReference }

// LocalizationMissingError reports a localization reference absent from a locale table.
// Reference includes the leading marker.
type LocalizationMissingError struct {
	Reference string
	Locale    string
}

func (e *LocalizationMissingError) Error() string {
	if e.Locale != "" {
		return fmt.Sprintf("can't resolve localization for value: %s (locale %s)", e.Reference, e.Locale)
	}
	return fmt.Sprintf("can't resolve localization for value: %s", e.Reference)
}

func (e *LocalizationMissingError) Is(target error) bool { return target == ErrLocalizationMissing }

// UnknownLocaleError reports a query for a locale that was not discovered at load time
type UnknownLocaleError struct {
	Locale string
}

func (e *UnknownLocaleError) Error() string {
	return fmt.Sprintf("locale %q is not available", e.Locale)
}

func (e *UnknownLocaleError) Is(target error) bool { return target == ErrUnknownLocale }
