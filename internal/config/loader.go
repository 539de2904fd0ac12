package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeFor[time.Duration]()

// Load reads the configuration from the environment, applies the default
// tags and validates the result. Every unreadable variable is reported.
func Load() (*Config, error) {
	cfg := &Config{}

	var p problems
	loadStruct(reflect.ValueOf(cfg).Elem(), &p)
	if err := p.err("config load"); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// envTag holds the env, envAlt, default and required tags of one field.
type envTag struct {
	name     string
	alt      string
	fallback string
	required bool
}

func tagOf(f reflect.StructField) envTag {
	return envTag{
		name:     f.Tag.Get("env"),
		alt:      f.Tag.Get("envAlt"),
		fallback: f.Tag.Get("default"),
		required: f.Tag.Get("required") == "true",
	}
}

// lookup returns the variable's value, its alternate's, or the default.
func (t envTag) lookup() string {
	if v := os.Getenv(t.name); v != "" {
		return v
	}
	if t.alt != "" {
		if v := os.Getenv(t.alt); v != "" {
			return v
		}
	}
	return ""
}

// loadStruct fills the tagged fields of v, descending into the section
// structs.
func loadStruct(v reflect.Value, p *problems) {
	t := v.Type()
	for i := range t.NumField() {
		field, fv := t.Field(i), v.Field(i)
		if !fv.CanSet() {
			continue
		}
		if field.Type.Kind() == reflect.Struct {
			loadStruct(fv, p)
			continue
		}

		tag := tagOf(field)
		if tag.name == "" {
			continue
		}
		raw := tag.lookup()
		if raw == "" && tag.required {
			p.add("required environment variable %s is not set", tag.name)
			continue
		}
		if raw == "" {
			raw = tag.fallback
		}
		if raw == "" {
			continue
		}
		if err := parseInto(fv, raw); err != nil {
			p.add("invalid value for %s=%q: %v", tag.name, raw, err)
		}
	}
}

// parseInto sets fv from raw. Durations use time.ParseDuration and string
// slices are comma-separated.
func parseInto(fv reflect.Value, raw string) error {
	switch {
	case fv.Type() == durationType:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		fv.SetInt(int64(d))
	case fv.Kind() == reflect.String:
		fv.SetString(raw)
	case fv.Kind() == reflect.Int || fv.Kind() == reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case fv.Kind() == reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case fv.Kind() == reflect.Slice && fv.Type().Elem().Kind() == reflect.String:
		fv.Set(reflect.ValueOf(splitList(raw)))
	default:
		return fmt.Errorf("unsupported field type %s", fv.Type())
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// problems collects configuration errors so one run reports all of them.
type problems []string

func (p *problems) add(format string, args ...any) {
	*p = append(*p, fmt.Sprintf(format, args...))
}

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		p.add(format, args...)
	}
}

func (p problems) err(prefix string) error {
	if len(p) == 0 {
		return nil
	}
	return fmt.Errorf("%s:\n  - %s", prefix, strings.Join(p, "\n  - "))
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var p problems

	s := c.Server
	p.check(s.Port > 0 && s.Port <= 65535, "SERVER_PORT (%d) must be 1-65535", s.Port)
	p.check(s.ReadTimeout >= 0, "SERVER_READ_TIMEOUT must be non-negative")
	p.check(s.ShutdownTimeout > 0, "SERVER_SHUTDOWN_TIMEOUT must be positive")

	if db := c.Database; db.Enabled() {
		p.check(db.MaxConns >= db.MinConns, "DB_MAX_CONNS (%d) must be >= DB_MIN_CONNS (%d)", db.MaxConns, db.MinConns)
		p.check(db.MaxConns > 0, "DB_MAX_CONNS must be positive")
		p.check(db.MinConns >= 0, "DB_MIN_CONNS must be non-negative")
	}

	p.check(c.Catalog.SubdivisionsPath != "", "CATALOG_SUBDIVISIONS_PATH is required")

	v := c.Validation
	p.check(v.MaxConcurrent > 0, "VALIDATION_MAX_CONCURRENT must be positive")
	p.check(v.MaxWaitTime > 0, "VALIDATION_MAX_WAIT_TIME must be positive")
	p.check(v.MaxBodySize > 0, "VALIDATION_MAX_BODY_SIZE must be positive")
	p.check(v.Timeout > 0, "VALIDATION_TIMEOUT must be positive")
	p.check(v.ChunkSize > 0, "VALIDATION_CHUNK_SIZE must be positive")

	r := c.Results
	p.check(r.Capacity >= 0, "RESULTS_CAPACITY must be non-negative")
	p.check(r.MaxAge > 0, "RESULTS_MAX_AGE must be positive")
	p.check(r.CheckInterval > 0, "RESULTS_CHECK_INTERVAL must be positive")

	e := c.Elevation
	p.check(e.BatchSize > 0, "ELEVATION_BATCH_SIZE must be positive")
	p.check(e.Delay >= 0, "ELEVATION_DELAY must be non-negative")
	p.check(e.SourceCRS >= 0, "ELEVATION_SOURCE_CRS (%d) must be an EPSG code", e.SourceCRS)

	p.check(!c.Security.RequireAPIKey || len(c.Security.APIKeys) > 0,
		"REQUIRE_API_KEY is true but API_KEYS is empty; configure at least one API key or disable auth")

	p.check(oneOf(c.Logging.Level, logLevels), "LOG_LEVEL (%q) must be one of: %s", c.Logging.Level, strings.Join(logLevels, ", "))
	p.check(oneOf(c.Logging.Format, logFormats), "LOG_FORMAT (%q) must be one of: %s", c.Logging.Format, strings.Join(logFormats, ", "))

	return p.err("validation failed")
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return true
		}
	}
	return false
}

// String renders the configuration for logs with the database URL and API
// keys masked.
func (c *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Config{Server: {Host: %q, Port: %d}, ", c.Server.Host, c.Server.Port)
	if c.Database.Enabled() {
		fmt.Fprintf(&b, "Database: {URL: [MASKED], MaxConns: %d}, ", c.Database.MaxConns)
	} else {
		b.WriteString("Database: {disabled}, ")
	}
	fmt.Fprintf(&b, "Catalog: {Subdivisions: %q, Dictionaries: %q}, ",
		c.Catalog.SubdivisionsPath, c.Catalog.DictionariesPath)
	fmt.Fprintf(&b, "Validation: {MaxConcurrent: %d, MaxBodySize: %d, ChunkSize: %d}, ",
		c.Validation.MaxConcurrent, c.Validation.MaxBodySize, c.Validation.ChunkSize)
	fmt.Fprintf(&b, "Elevation: {URL: %q, BatchSize: %d, SourceCRS: EPSG:%d}, ",
		c.Elevation.URL, c.Elevation.BatchSize, c.Elevation.SourceCRS)
	fmt.Fprintf(&b, "Security: {RequireAPIKey: %v, APIKeys: %d}, ",
		c.Security.RequireAPIKey, len(c.Security.APIKeys))
	fmt.Fprintf(&b, "Logging: {Level: %q, Format: %q}}", c.Logging.Level, c.Logging.Format)
	return b.String()
}
