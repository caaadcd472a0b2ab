package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

const defaultLoadConcurrency = 4

// Store provides in-memory access to the resolved creature catalogs.
// All reference files are loaded and every locale is built on the first
// call to EnsureInitialized or GetCreatures; the result, success or failure,
// is kept for the lifetime of the Store.
type Store struct {
	fsys        fs.FS
	concurrency int
	tracer      trace.Tracer

	state  atomic.Uint32
	loadMu sync.Mutex // Only used during initial loading
	err    error

	catalogs map[string][]Creature
	aliases  map[string]string // canonical BCP 47 form -> locale code
	locales  []string
}

// Option configures a Store
type Option func(*Store)

// WithLoadConcurrency bounds how many locales are loaded and built at once
func WithLoadConcurrency(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithTracer overrides the tracer used for load spans
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Store) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// NewStore creates a store reading reference data from fsys
func NewStore(fsys fs.FS, opts ...Option) *Store {
	s := &Store{
		fsys:        fsys,
		concurrency: defaultLoadConcurrency,
		tracer:      otel.Tracer("oldenera-wiki/catalog"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure Store implements Provider
var _ Provider = (*Store)(nil)

// State reports the initialization progress
func (s *Store) State() State {
	return State(s.state.Load())
}

// EnsureInitialized loads the catalogs if not already loaded.
// Concurrent callers wait for the single in-flight load and share its outcome.
// A failed load is not retried.
func (s *Store) EnsureInitialized(ctx context.Context) error {
	// Fast path: outcome already known, no locking needed
	switch s.State() {
	case StateReady:
		return nil
	case StateFailed:
		return s.err
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	// Double-check after acquiring lock (another goroutine might have loaded it)
	switch s.State() {
	case StateReady:
		return nil
	case StateFailed:
		return s.err
	}

	s.state.Store(uint32(StateInitializing))

	result, err := s.load(ctx)
	if err != nil {
		s.err = fmt.Errorf("failed to initialize creature catalog: %w", err)
		s.state.Store(uint32(StateFailed))
		slog.ErrorContext(ctx, "Creature catalog initialization failed", "error", err)
		return s.err
	}

	s.catalogs = result.catalogs
	s.aliases = result.aliases
	s.locales = result.locales
	s.state.Store(uint32(StateReady))

	return nil
}

// GetCreatures returns the resolved catalog for locale
func (s *Store) GetCreatures(ctx context.Context, locale string) ([]Creature, error) {
	if err := s.EnsureInitialized(ctx); err != nil {
		return nil, err
	}

	if creatures, ok := s.catalogs[locale]; ok {
		return creatures, nil
	}

	// Accept a differently spelled tag for the same locale, e.g. "EN" or "pt_BR"
	if tag, err := language.Parse(locale); err == nil {
		if code, ok := s.aliases[tag.String()]; ok {
			return s.catalogs[code], nil
		}
	}

	return nil, &UnknownLocaleError{Locale: locale}
}

// Locales returns the discovered locale codes in sorted order
func (s *Store) Locales(ctx context.Context) ([]string, error) {
	if err := s.EnsureInitialized(ctx); err != nil {
		return nil, err
	}

	locales := make([]string, len(s.locales))
	copy(locales, s.locales)
	return locales, nil
}

type loadResult struct {
	catalogs map[string][]Creature
	aliases  map[string]string
	locales  []string
}

// load reads every reference file and builds one catalog per discovered locale.
// Nothing is returned unless every locale builds.
func (s *Store) load(ctx context.Context) (*loadResult, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.load")
	defer span.End()

	start := time.Now()

	locales, err := discoverLocales(s.fsys)
	if err != nil {
		return nil, recordError(span, err)
	}

	abilities, err := loadAbilities(s.fsys)
	if err != nil {
		return nil, recordError(span, err)
	}

	defs, err := loadCreatures(s.fsys)
	if err != nil {
		return nil, recordError(span, err)
	}

	span.SetAttributes(
		attribute.Int("catalog.locales", len(locales)),
		attribute.Int("catalog.creatures", len(defs)),
		attribute.Int("catalog.abilities", len(abilities)),
	)

	built := make([][]Creature, len(locales))
	errs := make([]error, len(locales))

	// Workers never return an error so that every locale completes and the
	// reported failure does not depend on scheduling.
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, lf := range locales {
		g.Go(func() error {
			built[i], errs[i] = buildLocale(s.fsys, lf, defs, abilities)
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, recordError(span, err)
		}
	}

	result := &loadResult{
		catalogs: make(map[string][]Creature, len(locales)),
		aliases:  make(map[string]string, len(locales)),
		locales:  make([]string, 0, len(locales)),
	}
	for i, lf := range locales {
		result.catalogs[lf.code] = built[i]
		result.locales = append(result.locales, lf.code)
		if _, taken := result.aliases[lf.tag.String()]; !taken {
			result.aliases[lf.tag.String()] = lf.code
		}
	}

	if len(locales) == 0 {
		slog.WarnContext(ctx, "No locale files found, every catalog query will fail", "dir", LocaleDir)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	slog.InfoContext(ctx, "Creature catalog loaded successfully",
		"locales", result.locales,
		"creatures_count", len(defs),
		"abilities_count", len(abilities),
		"duration", time.Since(start).String(),
		"heap_size", formatBytes(m.HeapAlloc),
	)

	return result, nil
}

func buildLocale(fsys fs.FS, lf localeFile, defs []CreatureDefinition, abilities map[string]AbilityDefinition) ([]Creature, error) {
	table, err := loadLocaleTable(fsys, lf.file)
	if err != nil {
		return nil, err
	}

	creatures, err := Build(defs, abilities, table)
	if err != nil {
		var missing *LocalizationMissingError
		if errors.As(err, &missing) {
			missing.Locale = lf.code
		}
		return nil, fmt.Errorf("failed to build catalog for locale %s: %w", lf.code, err)
	}

	return creatures, nil
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// formatBytes converts bytes to human readable format
func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
