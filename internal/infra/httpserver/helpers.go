package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// _maxBodyBytes bounds request bodies. A full schema sync of a large type
// stays far below it.
const _maxBodyBytes = 1 << 20

var ErrEmptyBody = errors.New("request body is empty")

type ErrorResponse struct {
	Message string `json:"message,omitempty"`
}

func ReplyWithError(w http.ResponseWriter, statusCode int, errMsg string) {
	ReplyJSONResponse(w, statusCode, &ErrorResponse{Message: errMsg})
}

func ReplyJSONResponse(w http.ResponseWriter, statusCode int, output any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(output); err != nil {
		slog.Error("encoding json response", slog.String("error", err.Error()))
	}
}

// DecodeJSONBody reads one JSON document from the request body into
// placeholder.
func DecodeJSONBody(r *http.Request, placeholder any) error {
	reqBody, err := io.ReadAll(io.LimitReader(r.Body, _maxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}

	if len(reqBody) == 0 {
		return ErrEmptyBody
	}
	if len(reqBody) > _maxBodyBytes {
		return fmt.Errorf("request body exceeds %d bytes", _maxBodyBytes)
	}

	if err := json.Unmarshal(reqBody, placeholder); err != nil {
		return fmt.Errorf("unmarshaling json: %w", err)
	}

	return nil
}

func GetQueryParam(r *http.Request, name string) string {
	return r.URL.Query().Get(name)
}
