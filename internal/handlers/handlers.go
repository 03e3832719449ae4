package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/pep299/ilive-digest/internal/render"
	"github.com/pep299/ilive-digest/internal/response"
)

const (
	defaultLimit = 40
	maxLimit     = 200
	maxHours     = 72
)

var contentTypes = map[string]string{
	"json":     "application/json; charset=utf-8",
	"markdown": "text/markdown; charset=utf-8",
	"csv":      "text/csv; charset=utf-8",
}

// digestHandler serves GET /digest
func (s *Server) digestHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	format := query.Get("format")
	if format == "" {
		format = "json"
	}
	contentType, ok := contentTypes[format]
	if !ok {
		response.WriteBadRequest(w, fmt.Sprintf("unsupported format %q (valid: json, markdown, csv)", format))
		return
	}

	hours, err := intParam(query.Get("hours"), 0, 1, maxHours)
	if err != nil {
		response.WriteBadRequest(w, fmt.Sprintf("invalid hours: %v", err))
		return
	}

	limit, err := intParam(query.Get("limit"), defaultLimit, 1, maxLimit)
	if err != nil {
		response.WriteBadRequest(w, fmt.Sprintf("invalid limit: %v", err))
		return
	}

	feedURL := query.Get("url")
	if feedURL == "" {
		feedURL = s.config.FeedURL
	}

	items, err := s.Digest(ctx, feedURL, hours, limit)
	if err != nil {
		response.WriteInternalError(w, fmt.Sprintf("building digest: %v", err))
		return
	}

	var body string
	switch format {
	case "markdown":
		body = render.Markdown(items)
	case "csv":
		body = render.CSV(items)
	default:
		body = render.JSON(items)
	}

	w.Header().Set("Content-Type", contentType)
	// Broad CORS for server-to-server consumers like automation agents
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Write([]byte(body))
}

// healthHandler serves GET /health
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, response.Response{Status: "ok"})
}

// intParam parses an optional integer query parameter, enforcing bounds.
// An empty raw value yields def.
func intParam(raw string, def, min, max int) (int, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", raw)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%d is out of range [%d, %d]", v, min, max)
	}
	return v, nil
}
