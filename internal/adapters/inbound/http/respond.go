package http

import (
	"encoding/json"
	"net/http"
)

// status maps an error code to its HTTP status.
func (c ErrorCode) status() int {
	switch c {
	case BADREQUEST:
		return http.StatusBadRequest
	case NOTFOUND:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	respondJSON(w, err.Error.Code.status(), err)
}
