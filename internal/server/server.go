package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/shoji1021/classroom/internal/calendar"
	"github.com/shoji1021/classroom/internal/change"
	"github.com/shoji1021/classroom/internal/filter"
	"github.com/shoji1021/classroom/internal/form"
	"github.com/shoji1021/classroom/internal/parser"
)

// Source produces the announcement document for one run
type Source interface {
	Fetch() (*form.Document, error)
}

// SnapshotStore serves the previous run's snapshot
type SnapshotStore interface {
	LoadLatest() (*change.Snapshot, error)
}

// Server handles HTTP requests for change records
type Server struct {
	source   Source
	pipeline *parser.Pipeline
	store    SnapshotStore
	log      zerolog.Logger
}

// New creates a Server
func New(source Source, pipeline *parser.Pipeline, store SnapshotStore, log zerolog.Logger) *Server {
	return &Server{
		source:   source,
		pipeline: pipeline,
		store:    store,
		log:      log,
	}
}

// Router builds the HTTP routes
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "HEAD", "POST", "OPTIONS"},
		MaxAge:         86400,
	}))
	r.Use(s.accessLog)

	r.Get("/healthz", s.handleHealth)
	r.Get("/changes", s.handleChanges)
	r.Get("/changes/latest", s.handleLatest)
	r.Get("/changes.ics", s.handleICS)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleChanges scrapes the form and returns the extracted records
func (s *Server) handleChanges(w http.ResponseWriter, r *http.Request) {
	records, ok := s.currentRecords(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, records)
}

// handleLatest serves the previous run's snapshot without refetching
func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.store.LoadLatest()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snapshot)
}

// handleICS renders the current records as an iCalendar feed
func (s *Server) handleICS(w http.ResponseWriter, r *http.Request) {
	records, ok := s.currentRecords(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	fmt.Fprint(w, calendar.GenerateICS(records))
}

// currentRecords runs the pipeline and applies any query filters. On failure
// it writes the error response and reports false.
func (s *Server) currentRecords(w http.ResponseWriter, r *http.Request) ([]*change.Record, bool) {
	f, err := filterFromQuery(r, s.pipeline.ReferenceYear)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return nil, false
	}

	doc, err := s.source.Fetch()
	if err != nil {
		s.log.Error().Err(err).Msg("fetching form failed")
		s.writeError(w, http.StatusBadGateway, err)
		return nil, false
	}

	records := f.Apply(s.pipeline.Run(doc.Announcements))
	if records == nil {
		records = make([]*change.Record, 0)
	}
	return records, true
}

// filterFromQuery maps query parameters onto a record filter:
// class (comma-separated), period (comma-separated), subject, and date
// (a range expression like 2月18日 or 2月1日-15日)
func filterFromQuery(r *http.Request, referenceYear int) (*filter.Filter, error) {
	f := filter.New()
	q := r.URL.Query()

	if v := q.Get("class"); v != "" {
		f.Classes = strings.Split(v, ",")
	}
	if v := q.Get("subject"); v != "" {
		f.Subjects = []string{v}
	}
	if v := q.Get("period"); v != "" {
		for _, part := range strings.Split(v, ",") {
			p, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("invalid period: %q", part)
			}
			f.Periods = append(f.Periods, p)
		}
	}
	if v := q.Get("date"); v != "" {
		from, to, err := filter.ParseDateRange(parser.NormalizeText(v), referenceYear)
		if err != nil {
			return nil, err
		}
		f.DateFrom, f.DateTo = from, to
	}

	return f, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("encoding response failed")
	}
}

// writeError returns a JSON error object; the boundary always emits valid JSON
func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
