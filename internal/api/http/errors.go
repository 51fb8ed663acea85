package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	gerr "github.com/jekabolt/grbpwr-analytics/internal/errors"
	"google.golang.org/grpc/codes"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("can't write response", slog.String("err", err.Error()))
	}
}

// writeError maps err to an HTTP status. Details of server side failures
// are logged and not returned to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := gerr.Code(err)
	status := runtime.HTTPStatusFromCode(code)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		slog.Default().ErrorContext(r.Context(), "request failed",
			slog.String("err", err.Error()),
			slog.String("path", r.URL.Path),
		)
		msg = http.StatusText(status)
	}
	if code == codes.OK {
		code = codes.Unknown
	}
	writeJSON(w, status, errorResponse{Code: code.String(), Message: msg})
}
