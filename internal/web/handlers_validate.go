package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/geoanla/internal/core"
	"github.com/JonMunkholm/geoanla/internal/elevation"
	"github.com/JonMunkholm/geoanla/internal/logging"
)

// sourceFormat is the wire format of a submitted batch.
type sourceFormat int

const (
	formatCSV sourceFormat = iota
	formatGeoJSON
)

// upload is the body of a validation request.
type upload struct {
	body   io.ReadCloser
	format sourceFormat
	name   string
}

// openUpload returns the submitted data: the "file" part of a multipart
// form, or the raw body. The format follows the file extension or the
// Content-Type; an explicit ?format= wins over both.
func (s *Server) openUpload(w http.ResponseWriter, r *http.Request) (*upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Validation.MaxBodySize)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var up *upload
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return nil, fmt.Errorf("%w: invalid form: %v", errBadRequest, err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("%w: no file provided", errBadRequest)
		}
		format, err := formatOfName(header.Filename)
		if err != nil {
			file.Close()
			return nil, err
		}
		up = &upload{body: file, format: format, name: header.Filename}
	} else {
		format, err := formatOfMediaType(mediaType)
		if err != nil {
			return nil, err
		}
		up = &upload{body: r.Body, format: format}
	}

	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "":
	case "csv":
		up.format = formatCSV
	case "geojson", "json":
		up.format = formatGeoJSON
	default:
		up.body.Close()
		return nil, fmt.Errorf("%w: format %q", core.ErrUnsupportedSource, r.URL.Query().Get("format"))
	}
	return up, nil
}

func formatOfName(name string) (sourceFormat, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt", ".tsv":
		return formatCSV, nil
	case ".geojson", ".json":
		return formatGeoJSON, nil
	default:
		return 0, fmt.Errorf("%w: file %q", core.ErrUnsupportedSource, name)
	}
}

func formatOfMediaType(mediaType string) (sourceFormat, error) {
	switch mediaType {
	case "", "text/csv", "text/plain", "application/csv", "application/octet-stream", "text/tab-separated-values":
		return formatCSV, nil
	case "application/geo+json", "application/json":
		return formatGeoJSON, nil
	default:
		return 0, fmt.Errorf("%w: content type %q", core.ErrUnsupportedSource, mediaType)
	}
}

// csvOptions reads ?encoding= and ?delimiter=. The delimiter is a single
// character or one of "tab", "comma", "semicolon", "pipe".
func csvOptions(r *http.Request) (core.CSVOptions, error) {
	opts := core.CSVOptions{Encoding: r.URL.Query().Get("encoding")}

	switch d := r.URL.Query().Get("delimiter"); strings.ToLower(d) {
	case "":
	case "tab", `\t`:
		opts.Comma = '\t'
	case "comma":
		opts.Comma = ','
	case "semicolon":
		opts.Comma = ';'
	case "pipe":
		opts.Comma = '|'
	default:
		if utf8.RuneCountInString(d) != 1 {
			return opts, fmt.Errorf("%w: delimiter must be a single character", errBadRequest)
		}
		opts.Comma, _ = utf8.DecodeRuneInString(d)
	}
	return opts, nil
}

// openReader builds the row reader of an upload.
func openReader(up *upload, r *http.Request) (core.RowReader, error) {
	if up.format == formatGeoJSON {
		return core.NewGeoJSONReader(up.body)
	}
	opts, err := csvOptions(r)
	if err != nil {
		return nil, err
	}
	return core.NewCSVReader(up.body, opts)
}

// handleExtract returns the column diagnostic of a batch without validating
// its rows.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	up, err := s.openUpload(w, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	defer up.body.Close()

	src, err := openReader(up, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	batch, err := s.service.Extract(r.Context(), key, src)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, batch)
}

// handleValidate validates a CSV or GeoJSON batch against a record type.
//
// Query parameters:
//   - offset: added to row ordinals in error reports (default 0)
//   - encoding, delimiter: CSV decoding (default UTF-8, sniffed delimiter)
//   - format: csv or geojson, overriding the Content-Type
//   - elevation: fill COTA of point records from the elevation service
//   - accepted: include accepted records in the response (default true)
//   - stream: write one NDJSON line per chunk instead of a single result
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	ctx := r.Context()

	offset, err := intParam(r, "offset", 0)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	stream, err := boolParam(r, "stream")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	withElevation, err := boolParam(r, "elevation")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	includeAccepted := true
	if r.URL.Query().Get("accepted") != "" {
		if includeAccepted, err = boolParam(r, "accepted"); err != nil {
			s.respondError(w, r, err)
			return
		}
	}

	sc, err := s.service.Schema(key)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	up, err := s.openUpload(w, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	defer up.body.Close()

	src, err := openReader(up, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	if withElevation {
		if src, err = s.augmentElevation(r, sc, src); err != nil {
			s.respondError(w, r, err)
			return
		}
	}

	if stream {
		s.streamResults(w, r, key, src)
		return
	}

	res, err := s.service.Validate(ctx, key, src, offset)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	logging.WithFields(ctx, "batch_id", res.BatchID, "schema", key).Info("batch validated",
		"file", up.name,
		"rows", res.Total,
		"rejected", res.Rejected(),
	)

	if !includeAccepted {
		trimmed := *res
		trimmed.Accepted = nil
		res = &trimmed
	}
	writeJSON(w, http.StatusOK, res)
}

// augmentElevation fills elevation.DefaultTarget from the point geometry of
// the record type.
func (s *Server) augmentElevation(r *http.Request, sc core.Schema, src core.RowReader) (core.RowReader, error) {
	if s.elevation == nil {
		return nil, errElevationDisabled
	}
	out, _, err := s.elevation.AugmentSource(r.Context(), sc, src)
	if errors.Is(err, elevation.ErrNoGeometry) {
		return nil, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return out, err
}

// streamLine is one NDJSON line of a streamed validation.
type streamLine struct {
	Chunk   *core.Result        `json:"chunk,omitempty"`
	Summary *core.StreamSummary `json:"summary,omitempty"`
	Error   *ErrorResponse      `json:"error,omitempty"`
}

// streamResults validates src in chunks of cfg.Validation.ChunkSize rows and
// writes every chunk as it completes. Errors after the first line are
// reported in-band since the status is already sent.
func (s *Server) streamResults(w http.ResponseWriter, r *http.Request, key string, src core.RowReader) {
	w.Header().Set("Content-Type", "application/x-ndjson")
	flusher, _ := w.(http.Flusher)
	enc := json.NewEncoder(w)
	started := false

	emit := func(res *core.Result) error {
		started = true
		if err := enc.Encode(streamLine{Chunk: res}); err != nil {
			return err
		}
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	}

	summary, err := s.service.Stream(r.Context(), key, src, s.cfg.Validation.ChunkSize, emit)
	if err != nil {
		if !started {
			s.respondError(w, r, err)
			return
		}
		msg := core.MapError(err)
		logging.FromContext(r.Context()).Error("stream failed", "schema", key, "error", err)
		_ = enc.Encode(streamLine{Error: &ErrorResponse{Error: msg.Message, Message: msg.Message, Action: msg.Action, Code: msg.Code}})
		return
	}
	_ = enc.Encode(streamLine{Summary: summary})
}
