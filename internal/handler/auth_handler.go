package handler

import (
	"net/http"

	"go-vehicle-api/internal/middleware"
	"go-vehicle-api/internal/model"
	"go-vehicle-api/internal/service"
)

type AuthHandler struct {
	service   *service.AuthService
	validator requestValidator
}

func NewAuthHandler(service *service.AuthService, validator requestValidator) *AuthHandler {
	return &AuthHandler{service: service, validator: validator}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload model.LoginRequest
	if err := decodeBody(r, w, h.validator, &payload); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, result, nil)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	account, err := h.service.Me(r.Context(), claims)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, account, nil)
}
