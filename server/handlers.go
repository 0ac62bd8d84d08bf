package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/poiesic/strand/core"
	"github.com/poiesic/strand/filter"
	"github.com/poiesic/strand/storage"
)

func (s *Server) createString(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, "request body must be a JSON object")
		return
	}

	raw, ok := body["value"]
	if !ok {
		respondError(w, http.StatusBadRequest, codeValidation, "field 'value' is required")
		return
	}

	// The analyzer owns the type check; the handler only routes its
	// verdict.
	if _, err := core.AnalyzeValue(raw); err != nil {
		respondError(w, http.StatusUnprocessableEntity, codeTypeMismatch, "field 'value' must be a string")
		return
	}
	value := raw.(string)

	record, err := s.records.AddRecord(r.Context(), value)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			respondErrorWithDetails(w, http.StatusConflict, codeConflict,
				"string already exists", map[string]any{"identifier": core.Hash(value)})
			return
		}
		s.internalError(w, "add record", err)
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

func (s *Server) getString(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "identifier")

	record, err := s.records.GetRecord(r.Context(), identifier)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, codeNotFound, "string not found")
			return
		}
		s.internalError(w, "get record", err)
		return
	}

	respondJSON(w, http.StatusOK, record)
}

func (s *Server) deleteString(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "identifier")

	deleted, err := s.records.DeleteRecord(r.Context(), identifier)
	if err != nil {
		s.internalError(w, "delete record", err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, codeNotFound, "string not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listStrings(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromParams(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error())
		return
	}

	s.findAndRespond(w, r, q, nil)
}

func (s *Server) naturalLanguageFilter(w http.ResponseWriter, r *http.Request) {
	sentence := r.URL.Query().Get("query")
	if sentence == "" {
		respondError(w, http.StatusBadRequest, codeValidation, "parameter 'query' is required")
		return
	}

	spec, err := filter.Compile(sentence)
	if err != nil {
		respondErrorWithDetails(w, http.StatusBadRequest, codeUnparseable,
			"unable to parse natural language query", map[string]any{"query": sentence})
		return
	}

	limit, err := limitFromParams(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error())
		return
	}
	q := storage.Query{Spec: spec, Limit: limit}

	s.findAndRespond(w, r, q, map[string]any{
		"query":              sentence,
		"interpreted_filter": specJSON(spec),
	})
}

// findAndRespond runs the query and writes the shared list response
// shape, optionally annotated with extra fields (the interpreted
// natural-language filter).
func (s *Server) findAndRespond(w http.ResponseWriter, r *http.Request, q storage.Query, extra map[string]any) {
	records, err := s.records.FindRecords(r.Context(), q)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidQuery) {
			respondError(w, http.StatusBadRequest, codeValidation, err.Error())
			return
		}
		s.internalError(w, "find records", err)
		return
	}
	if records == nil {
		records = []*core.AnalyzedRecord{}
	}

	data := map[string]any{
		"count":   len(records),
		"records": records,
	}
	for k, v := range extra {
		data[k] = v
	}
	respondJSON(w, http.StatusOK, data)
}

func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.logger.Error("request failed", "op", op, "err", err)
	respondError(w, http.StatusInternalServerError, codeInternal, "internal error")
}

// queryFromParams builds an explicit filter from request parameters.
// Absent parameters contribute no constraint; an all-absent parameter
// set means no filtering at all.
func queryFromParams(params url.Values) (storage.Query, error) {
	var q storage.Query

	if v := params.Get("is_palindrome"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return q, fmt.Errorf("parameter 'is_palindrome' must be a boolean, got %q", v)
		}
		q.Spec = q.Spec.WithPalindrome(b)
	}
	if v := params.Get("min_length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, fmt.Errorf("parameter 'min_length' must be an integer, got %q", v)
		}
		q.Spec = q.Spec.WithMinLength(n)
	}
	if v := params.Get("max_length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, fmt.Errorf("parameter 'max_length' must be an integer, got %q", v)
		}
		q.Spec = q.Spec.WithMaxLength(n)
	}
	if v := params.Get("word_count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, fmt.Errorf("parameter 'word_count' must be an integer, got %q", v)
		}
		q.Spec = q.Spec.WithWordCount(n)
	}
	if v := params.Get("contains_character"); v != "" {
		if utf8.RuneCountInString(v) != 1 {
			return q, fmt.Errorf("parameter 'contains_character' must be a single character, got %q", v)
		}
		r, _ := utf8.DecodeRuneInString(v)
		q.Spec = q.Spec.WithContainsCharacter(r)
	}

	limit, err := limitFromParams(params)
	if err != nil {
		return q, err
	}
	q.Limit = limit

	return q, nil
}

func limitFromParams(params url.Values) (int, error) {
	v := params.Get("limit")
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("parameter 'limit' must be a non-negative integer, got %q", v)
	}
	return n, nil
}

// specJSON renders the set fields of a filter for the response body.
func specJSON(spec filter.Spec) map[string]any {
	out := make(map[string]any)
	if spec.IsPalindrome != nil {
		out["is_palindrome"] = *spec.IsPalindrome
	}
	if spec.MinLength != nil {
		out["min_length"] = *spec.MinLength
	}
	if spec.MaxLength != nil {
		out["max_length"] = *spec.MaxLength
	}
	if spec.WordCount != nil {
		out["word_count"] = *spec.WordCount
	}
	if spec.ContainsCharacter != nil {
		out["contains_character"] = string(*spec.ContainsCharacter)
	}
	return out
}
