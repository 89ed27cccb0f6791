package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rogerio-castellano/product-catalog/internal/catalog"
	"go.uber.org/zap"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

// writeError maps catalog errors to status codes. Anything unknown is a 500
// whose details only reach the log.
func (h *ProductHandlers) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		notFound   *catalog.NotFoundError
		invalid    *catalog.ValidationError
		zeroPrice  *catalog.ZeroPriceError
		status     int
		errPayload ErrorResponse
	)

	switch {
	case errors.As(err, &notFound):
		status, errPayload = http.StatusNotFound, ErrorResponse{Error: notFound.Error()}
	case errors.As(err, &invalid):
		status, errPayload = http.StatusBadRequest, ErrorResponse{Error: "invalid product", Fields: invalid.Fields}
	case errors.As(err, &zeroPrice):
		status, errPayload = http.StatusUnprocessableEntity, ErrorResponse{Error: zeroPrice.Error()}
	default:
		h.log.Error(fallback, zap.String("path", r.URL.Path), zap.Error(err))
		status, errPayload = http.StatusInternalServerError, ErrorResponse{Error: fallback}
	}

	h.respond(w, status, errPayload)
}

func (h *ProductHandlers) respond(w http.ResponseWriter, status int, data any, headers ...http.Header) {
	if err := writeJSON(w, status, data, headers...); err != nil {
		h.log.Error("failed to write JSON response", zap.Error(err))
	}
}
