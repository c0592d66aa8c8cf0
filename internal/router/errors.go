package router

import (
	"encoding/json"
	"net/http"

	"go-vehicle-api/internal/model"
)

func writeRouteError(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Error:   &model.APIError{Code: code, Message: message},
	})
}
