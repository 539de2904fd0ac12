package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/geoanla/internal/catalog"
	"github.com/JonMunkholm/geoanla/internal/core"
)

// maxListLimit caps the limit parameter of list endpoints.
const maxListLimit = 1000

// handleHealth reports liveness and the batch limiter state.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"schemas": core.SchemaCount(),
		"domains": len(s.service.DomainNames()),
	})
}

// handleStatus returns the batch limiter state.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Limiter().Status())
}

// handleListSchemas returns all record types organized by group, or the
// record types of one group with ?group=.
func (s *Server) handleListSchemas(w http.ResponseWriter, r *http.Request) {
	if group := r.URL.Query().Get("group"); group != "" {
		infos := []core.SchemaInfo{}
		for _, sc := range core.ByGroup(group) {
			infos = append(infos, sc.Info)
		}
		writeJSON(w, http.StatusOK, infos)
		return
	}
	writeJSON(w, http.StatusOK, s.service.ListSchemasByGroup())
}

// FieldView describes one declared field.
type FieldView struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases,omitempty"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	MaxLen      int      `json:"maxLength,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Domain      string   `json:"domain,omitempty"`
	Description string   `json:"description,omitempty"`
}

// SchemaView is the public description of a record type.
type SchemaView struct {
	core.SchemaInfo
	Fields      []FieldView `json:"fields"`
	Rules       []string    `json:"rules"`
	Identifiers []string    `json:"identifiers,omitempty"`
}

func schemaView(sc core.Schema) SchemaView {
	v := SchemaView{
		SchemaInfo:  sc.Info,
		Fields:      make([]FieldView, len(sc.Fields)),
		Rules:       make([]string, len(sc.Rules)),
		Identifiers: sc.Identifiers,
	}
	for i, f := range sc.Fields {
		v.Fields[i] = FieldView{
			Name:        f.Name,
			Aliases:     f.Aliases,
			Type:        f.Type.String(),
			Required:    f.Required,
			MaxLen:      f.MaxLen,
			Min:         f.Min,
			Max:         f.Max,
			Domain:      f.Domain,
			Description: f.Description,
		}
	}
	for i, rule := range sc.Rules {
		v.Rules[i] = rule.Name
	}
	return v
}

// handleGetSchema returns the fields and rules of one record type.
func (s *Server) handleGetSchema(w http.ResponseWriter, r *http.Request) {
	sc, err := s.service.Schema(chi.URLParam(r, "key"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schemaView(sc))
}

// DomainView is the public description of a catalog domain.
type DomainView struct {
	Name    string           `json:"name"`
	Kind    string           `json:"kind"`
	Width   int              `json:"width,omitempty"`
	Members []catalog.Member `json:"members"`
}

// handleListDomains returns the domain names of the catalog.
func (s *Server) handleListDomains(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.DomainNames())
}

// handleGetDomain returns every member of one domain.
func (s *Server) handleGetDomain(w http.ResponseWriter, r *http.Request) {
	d, err := s.service.Domain(chi.URLParam(r, "name"))
	if err != nil {
		s.respondErrorStatus(w, r, err, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, DomainView{
		Name:    d.Name(),
		Kind:    d.Kind().String(),
		Width:   d.Width(),
		Members: d.Members(),
	})
}

// ResolveResponse is the outcome of resolving a value against a domain.
type ResolveResponse struct {
	Domain string          `json:"domain"`
	Value  string          `json:"value"`
	Found  bool            `json:"found"`
	Member *catalog.Member `json:"member,omitempty"`
}

// handleResolve resolves ?value= against a domain by code, description or
// name.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	value := r.URL.Query().Get("value")

	m, ok, err := s.service.Resolve(name, value)
	if err != nil {
		s.respondErrorStatus(w, r, err, http.StatusNotFound)
		return
	}

	resp := ResolveResponse{Domain: name, Value: value, Found: ok}
	if ok {
		resp.Member = &m
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleListResults returns the most recent stored results, newest first.
func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", 20)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	writeJSON(w, http.StatusOK, s.service.RecentResults(limit))
}

// handleGetResult returns a stored result by batch id.
func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	res, err := s.service.Result(chi.URLParam(r, "batchID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// intParam reads a non-negative integer query parameter.
func intParam(r *http.Request, name string, defaultVal int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", errBadRequest, name)
	}
	return n, nil
}

// boolParam reads a boolean query parameter.
func boolParam(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be true or false", errBadRequest, name)
	}
	return b, nil
}
