package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/hH-13/tilde/internal/application/usecase"
	"github.com/hH-13/tilde/internal/domain/entity"
	"github.com/hH-13/tilde/internal/logging"
)

// handleQuery resolves ?q= and sends the browser on. Without a query it
// shows the start page.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromContext(ctx)

	text := r.URL.Query().Get("q")
	if strings.TrimSpace(text) == "" {
		s.renderStartPage(w, r)
		return
	}

	q, err := s.omnibox.Load().Resolve(ctx, text)
	if errors.Is(err, usecase.ErrNothingToOpen) {
		http.Error(w, "nothing to open for "+q.Raw, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve query")
		http.Error(w, "failed to resolve query", http.StatusInternalServerError)
		return
	}

	redirects := q.Redirects()
	if len(redirects) == 1 {
		http.Redirect(w, r, redirects[0], http.StatusFound)
		return
	}
	s.renderFanOut(w, q)
}

type suggestResponse struct {
	Query       *entity.ParsedQuery `json:"query"`
	Suggestions []string            `json:"suggestions"`
}

// handleSuggest returns suggestions for ?q=. With format=opensearch the body
// follows the OpenSearch suggestions format browsers understand.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	omnibox := s.omnibox.Load()
	text := r.URL.Query().Get("q")
	q := omnibox.Parse(text)
	items := omnibox.Suggester().Lookup(ctx, q)
	if items == nil {
		items = []string{}
	}

	if r.URL.Query().Get("format") == "opensearch" {
		writeJSON(ctx, w, "application/x-suggestions+json", []any{text, items})
		return
	}
	writeJSON(ctx, w, "application/json", suggestResponse{Query: q, Suggestions: items})
}

// handleCommands lists the named commands in configuration order.
func (s *Server) handleCommands(w http.ResponseWriter, r *http.Request) {
	commands := s.omnibox.Load().Commands()
	if commands == nil {
		commands = []entity.Command{}
	}
	writeJSON(r.Context(), w, "application/json", commands)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, contentType string, v any) {
	w.Header().Set("Content-Type", contentType)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to write response")
	}
}
