package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/JonMunkholm/geoanla/internal/catalog"
)

// ValidateTimeout is the maximum duration of one validation request.
var ValidateTimeout = 5 * time.Minute

// ErrNoDatabase is returned by query validation when no database is configured.
var ErrNoDatabase = errors.New("no database configured")

// Service is the entry point the HTTP layer and the CLI share: it looks up
// schemas and domains, runs validations bounded by a BatchLimiter and keeps
// the most recent results for later retrieval.
type Service struct {
	engine  *Engine
	limiter *BatchLimiter
	db      DBTX
	logger  *slog.Logger

	mu         sync.RWMutex
	results    map[string]*storedResult
	order      []string // Result ids, oldest first
	maxResults int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLimiter bounds concurrent validations.
func WithLimiter(l *BatchLimiter) ServiceOption {
	return func(s *Service) { s.limiter = l }
}

// WithDB enables validation of query results.
func WithDB(db DBTX) ServiceOption {
	return func(s *Service) { s.db = db }
}

// WithServiceLogger sets the service's logger.
func WithServiceLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = l }
}

// WithResultCapacity sets how many results are kept for retrieval.
func WithResultCapacity(n int) ServiceOption {
	return func(s *Service) { s.maxResults = n }
}

// NewService creates a Service around engine.
func NewService(engine *Engine, opts ...ServiceOption) *Service {
	s := &Service{
		engine:     engine,
		limiter:    NewBatchLimiter(DefaultMaxConcurrentBatches, DefaultMaxWaitTime),
		logger:     slog.Default(),
		results:    make(map[string]*storedResult),
		maxResults: DefaultResultCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadRegistry builds the domain registry from the reference files: the
// subdivision table (required) and an optional YAML file of external
// dictionaries.
func LoadRegistry(subdivisionsPath, dictionariesPath string) (*DomainRegistry, error) {
	subs, err := catalog.LoadSubdivisionsFile(subdivisionsPath)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Default(subs)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	var opts []RegistryOption
	if dictionariesPath != "" {
		dicts, err := catalog.LoadDictionariesFile(dictionariesPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithDictionaries(dicts))
	}
	return NewDomainRegistry(cat, opts...)
}

// Engine returns the underlying engine.
func (s *Service) Engine() *Engine { return s.engine }

// Limiter returns the limiter bounding validations.
func (s *Service) Limiter() *BatchLimiter { return s.limiter }

// ListSchemas returns information about all registered record types.
func (s *Service) ListSchemas() []SchemaInfo {
	all := All()
	infos := make([]SchemaInfo, len(all))
	for i, sc := range all {
		infos[i] = sc.Info
	}
	return infos
}

// ListSchemasByGroup returns record types organized by model group.
func (s *Service) ListSchemasByGroup() map[string][]SchemaInfo {
	result := make(map[string][]SchemaInfo)
	for _, group := range Groups() {
		for _, sc := range ByGroup(group) {
			result[group] = append(result[group], sc.Info)
		}
	}
	return result
}

// Schema returns the record type registered under key.
func (s *Service) Schema(key string) (Schema, error) {
	return Lookup(key)
}

// DomainNames lists the catalog's domains, sorted.
func (s *Service) DomainNames() []string {
	return s.engine.Registry().Catalog().Names()
}

// Domain returns a catalog domain by name.
func (s *Service) Domain(name string) (*catalog.Domain, error) {
	d, ok := s.engine.Registry().Catalog().Domain(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDomainNotFound, name)
	}
	return d, nil
}

// Resolve resolves value against the named domain. ok is false when the
// value is absent or matches no member.
func (s *Service) Resolve(domain, value string) (m catalog.Member, ok bool, err error) {
	d, err := s.Domain(domain)
	if err != nil {
		return catalog.Member{}, false, err
	}
	code, ok := d.Resolve(value)
	if !ok {
		return catalog.Member{}, false, nil
	}
	m, _ = d.Member(code)
	return m, true, nil
}

// Extract runs the column diagnostic of src against a record type without
// validating any row.
func (s *Service) Extract(ctx context.Context, key string, src RowReader) (*Batch, error) {
	return s.engine.Extract(ctx, src, key)
}

// Validate validates src against the record type key. It waits for a
// limiter slot and stores the result for retrieval by batch id.
func (s *Service) Validate(ctx context.Context, key string, src RowReader, offset int) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, ValidateTimeout)
	defer cancel()

	var res *Result
	err := s.limiter.Do(ctx, func() error {
		var err error
		res, err = s.engine.Run(ctx, src, key, offset)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.remember(res)
	return res, nil
}

// ValidateCSV validates delimited text.
func (s *Service) ValidateCSV(ctx context.Context, key string, r io.Reader, opts CSVOptions, offset int) (*Result, error) {
	counter := NewCountingReader(r, 0)
	src, err := NewCSVReader(counter, opts)
	if err != nil {
		return nil, err
	}
	res, err := s.Validate(ctx, key, src, offset)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("csv validated", "batch_id", res.BatchID, "bytes", counter.BytesRead)
	return res, nil
}

// ValidateGeoJSON validates the features of a GeoJSON FeatureCollection.
func (s *Service) ValidateGeoJSON(ctx context.Context, key string, r io.Reader, offset int) (*Result, error) {
	src, err := NewGeoJSONReader(r)
	if err != nil {
		return nil, err
	}
	return s.Validate(ctx, key, src, offset)
}

// ValidateQuery validates the rows returned by a SQL query. Geometries must
// be selected as WKT (ST_AsText).
func (s *Service) ValidateQuery(ctx context.Context, key, sql string, offset int, args ...any) (*Result, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	src, err := NewQueryReader(ctx, s.db, sql, args...)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return s.Validate(ctx, key, src, offset)
}

// Stream validates src chunk by chunk without storing results.
func (s *Service) Stream(ctx context.Context, key string, src RowReader, chunkSize int, emit func(*Result) error) (*StreamSummary, error) {
	var summary *StreamSummary
	err := s.limiter.Do(ctx, func() error {
		var err error
		summary, err = s.engine.Stream(ctx, src, key, chunkSize, emit)
		return err
	})
	return summary, err
}
