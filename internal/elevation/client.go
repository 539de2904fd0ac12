// Package elevation looks up terrain elevation for sampling points from an
// Open-Elevation compatible service.
//
// Points are sent in fixed-size batches, one request at a time, with a pause
// between requests. A batch that fails for any reason (transport error,
// non-200 status, malformed body) yields no elevation for its points and
// the lookup moves on; only context cancellation stops it.
package elevation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/paulmach/orb"

	"github.com/JonMunkholm/geoanla/internal/metrics"
)

const (
	DefaultURL       = "https://api.open-elevation.com/api/v1/lookup"
	DefaultBatchSize = 50
	DefaultDelay     = 500 * time.Millisecond
	DefaultTimeout   = 30 * time.Second
)

// Config holds the elevation service settings. Zero values fall back to the
// defaults.
type Config struct {
	URL       string
	BatchSize int
	Delay     time.Duration // Pause between two requests
	Timeout   time.Duration // Per-request timeout
}

func (c Config) withDefaults() Config {
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.Delay < 0 {
		c.Delay = 0
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// Projector converts a point to WGS84 longitude/latitude.
type Projector func(orb.Point) (orb.Point, error)

// Client queries the elevation service.
type Client struct {
	cfg     Config
	http    *http.Client
	logger  *slog.Logger
	metrics *metrics.Metrics
	project Projector
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the client's logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithMetrics records batch outcomes in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithProjector converts every point before it is sent. Without one, points
// must already be longitude/latitude.
func WithProjector(p Projector) Option {
	return func(c *Client) { c.project = p }
}

// New creates a client.
func New(cfg Config, opts ...Option) *Client {
	cfg = cfg.withDefaults()
	c := &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type lookupRequest struct {
	Locations []location `json:"locations"`
}

type lookupResponse struct {
	Results []struct {
		Latitude  float64  `json:"latitude"`
		Longitude float64  `json:"longitude"`
		Elevation *float64 `json:"elevation"`
	} `json:"results"`
}

// Lookup returns one elevation per point, in order. Entries are nil for
// points whose batch failed or that could not be projected.
func (c *Client) Lookup(ctx context.Context, points []orb.Point) ([]*float64, error) {
	out := make([]*float64, len(points))

	for start := 0; start < len(points); start += c.cfg.BatchSize {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		end := min(start+c.cfg.BatchSize, len(points))

		c.logger.Debug("elevation batch", "from", start, "to", end, "total", len(points))
		elevations, err := c.lookupBatch(ctx, points[start:end])
		if err != nil {
			if ctx.Err() != nil {
				return out, ctx.Err()
			}
			c.logger.Warn("elevation batch failed", "from", start, "to", end, "error", err)
			c.metrics.IncrementElevation("failed")
		} else {
			copy(out[start:end], elevations)
			c.metrics.IncrementElevation("ok")
		}

		if end < len(points) && c.cfg.Delay > 0 {
			select {
			case <-ctx.Done():
				return out, ctx.Err()
			case <-time.After(c.cfg.Delay):
			}
		}
	}
	return out, nil
}

func (c *Client) lookupBatch(ctx context.Context, points []orb.Point) ([]*float64, error) {
	req := lookupRequest{Locations: make([]location, 0, len(points))}
	// Unprojectable points are left out of the request and get no elevation.
	sent := make([]int, 0, len(points))
	for i, p := range points {
		if c.project != nil {
			q, err := c.project(p)
			if err != nil {
				c.logger.Debug("point not projected", "point", p, "error", err)
				continue
			}
			p = q
		}
		req.Locations = append(req.Locations, location{Latitude: p.Lat(), Longitude: p.Lon()})
		sent = append(sent, i)
	}

	out := make([]*float64, len(points))
	if len(sent) == 0 {
		return out, nil
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("elevation service returned status %d", resp.StatusCode)
	}

	var decoded lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Results) != len(sent) {
		return nil, fmt.Errorf("elevation service returned %d results for %d locations", len(decoded.Results), len(sent))
	}

	for i, r := range decoded.Results {
		out[sent[i]] = r.Elevation
	}
	return out, nil
}
