package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/internal/config"
	"github.com/npillmayer/itn/tagged"
	"github.com/rs/cors"
)

// normalizer is the part of normalize.Normalizer the handlers use.
type normalizer interface {
	Normalize(ctx context.Context, text string) (string, error)
	Classify(sentence string) ([]tagged.Token, error)
	Verbalize(tokens []tagged.Token) (string, error)
}

// ---- JSON types ---------------------------------------------------------

type textRequest struct {
	Text string `json:"text"`
}

type verbalizeRequest struct {
	Tokens []tagged.Token `json:"tokens"`
	Tagged string         `json:"tagged"`
}

type normalizeResponse struct {
	Text   string   `json:"text"`
	Errors []string `json:"errors,omitempty"`
}

type classifyResponse struct {
	Tokens []tagged.Token `json:"tokens"`
	Tagged string         `json:"tagged"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- router -------------------------------------------------------------

func newRouter(n normalizer, cfg *config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.WriteTimeout))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         cfg.CORS.MaxAge,
	}).Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Use(limitBody(cfg.Server.MaxBodyBytes))
		r.Post("/normalize", handleNormalize(n))
		r.Post("/classify", handleClassify(n))
		r.Post("/verbalize", handleVerbalize(n))
	})
	return r
}

func limitBody(max int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, max)
			next.ServeHTTP(w, r)
		})
	}
}

// decode reads a JSON body into v, reporting failures to the client.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
	} else {
		writeError(w, http.StatusBadRequest, "body must be valid JSON")
	}
	return false
}

// ---- handlers -----------------------------------------------------------

func handleNormalize(n normalizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body textRequest
		if !decode(w, r, &body) {
			return
		}
		if strings.TrimSpace(body.Text) == "" {
			writeError(w, http.StatusBadRequest, "body must have a non-empty 'text' field")
			return
		}
		start := time.Now()
		out, err := n.Normalize(r.Context(), body.Text)
		if err != nil && r.Context().Err() != nil {
			writeError(w, http.StatusServiceUnavailable, "request canceled")
			return
		}
		resp := normalizeResponse{Text: out}
		for _, e := range sentenceErrors(err) {
			resp.Errors = append(resp.Errors, e.Error())
		}
		log.Printf("normalized %d bytes in %v", len(body.Text), time.Since(start))
		writeJSON(w, http.StatusOK, resp)
	}
}

// sentenceErrors unpacks the joined error of a text normalization.
func sentenceErrors(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func handleClassify(n normalizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body textRequest
		if !decode(w, r, &body) {
			return
		}
		if strings.TrimSpace(body.Text) == "" {
			writeError(w, http.StatusBadRequest, "body must have a non-empty 'text' field")
			return
		}
		tokens, err := n.Classify(body.Text)
		if err != nil {
			transductionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, classifyResponse{Tokens: tokens, Tagged: tagged.Format(tokens)})
	}
}

func handleVerbalize(n normalizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body verbalizeRequest
		if !decode(w, r, &body) {
			return
		}
		tokens := body.Tokens
		if body.Tagged != "" {
			if len(tokens) > 0 {
				writeError(w, http.StatusBadRequest, "use either 'tokens' or 'tagged', not both")
				return
			}
			var err error
			if tokens, err = tagged.Parse(body.Tagged); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		}
		if len(tokens) == 0 {
			writeError(w, http.StatusBadRequest, "body must have 'tokens' or 'tagged'")
			return
		}
		out, err := n.Verbalize(tokens)
		if err != nil {
			transductionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, normalizeResponse{Text: out})
	}
}

// transductionError reports input the grammars reject as unprocessable,
// anything else as an internal error.
func transductionError(w http.ResponseWriter, err error) {
	if errors.Is(err, itn.ErrNoAcceptingPath) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	log.Printf("transduction error: %v", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
