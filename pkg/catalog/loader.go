package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// File layout of a data directory
const (
	CreaturesFile = "creatures.yml"
	AbilitiesFile = "abilities.yml"
	LocaleDir     = "locale"
)

var localeExtensions = map[string]bool{
	"yml":  true,
	"yaml": true,
}

// localeFile is a discovered locale table on disk
type localeFile struct {
	code string
	tag  language.Tag
	file string
}

// readDataFile reads name from fsys and parses it, reporting every failure
// as a *DataLoadError that names the file and, when known, the field.
func readDataFile[T any](fsys fs.FS, name string, parse func([]byte) (T, error)) (T, error) {
	var zero T

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return zero, &DataLoadError{File: name, Err: err}
	}

	result, err := parse(data)
	if err != nil {
		var fe *fieldError
		if errors.As(err, &fe) {
			return zero, &DataLoadError{File: name, Field: fe.Field, Err: fe.Err}
		}
		return zero, &DataLoadError{File: name, Err: err}
	}

	return result, nil
}

func loadCreatures(fsys fs.FS) ([]CreatureDefinition, error) {
	return readDataFile(fsys, CreaturesFile, ParseCreatures)
}

func loadAbilities(fsys fs.FS) (map[string]AbilityDefinition, error) {
	return readDataFile(fsys, AbilitiesFile, ParseAbilities)
}

func loadLocaleTable(fsys fs.FS, file string) (LocaleTable, error) {
	return readDataFile(fsys, file, ParseLocaleTable)
}

// discoverLocales lists the locale tables under LocaleDir, sorted by code.
// Entries that are not locale files are skipped.
func discoverLocales(fsys fs.FS) ([]localeFile, error) {
	entries, err := fs.ReadDir(fsys, LocaleDir)
	if err != nil {
		return nil, &DataLoadError{File: LocaleDir, Err: fmt.Errorf("failed to list locales: %w", err)}
	}

	locales := make([]localeFile, 0, len(entries))
	seen := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		code, ext, found := strings.Cut(name, ".")
		if !found || !localeExtensions[strings.ToLower(ext)] {
			slog.Debug("Skipping non-locale file", "file", name)
			continue
		}

		tag, err := language.Parse(code)
		if err != nil {
			slog.Warn("Skipping locale file with invalid code", "file", name, "error", err)
			continue
		}

		if previous, dup := seen[code]; dup {
			slog.Warn("Skipping duplicate locale file", "file", name, "locale", code, "kept", previous)
			continue
		}
		seen[code] = name

		locales = append(locales, localeFile{
			code: code,
			tag:  tag,
			file: path.Join(LocaleDir, name),
		})
	}

	sort.Slice(locales, func(i, j int) bool { return locales[i].code < locales[j].code })
	return locales, nil
}
