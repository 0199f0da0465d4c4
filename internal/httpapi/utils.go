package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	sharederrors "github.com/kickoffqi/demo-app-platform/internal/errors"
)

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, sharederrors.New(status, message, middleware.GetReqID(r.Context())))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
