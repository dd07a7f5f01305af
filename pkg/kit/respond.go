package kit

import (
	"encoding/json"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// fallbackBody is sent when a response value cannot be encoded.
var fallbackBody = []byte(`{"error":"server error"}` + "\n")

// WriteJSON encodes v before touching the response, so an unencodable value
// becomes a 500 instead of a truncated success.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		zap.L().Error("encode response failed", zap.Error(err), zap.Int("status", status))
		status, body = http.StatusInternalServerError, fallbackBody
	} else {
		body = append(body, '\n')
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// WriteError writes the common error envelope, stamped with the chi request id
// when one is present.
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string, details any) {
	WriteJSON(w, status, ErrorResponse{
		Error:     msg,
		Details:   details,
		RequestID: chimw.GetReqID(r.Context()),
	})
}
