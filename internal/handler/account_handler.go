package handler

import (
	"net/http"

	"go-vehicle-api/internal/model"
	"go-vehicle-api/internal/service"
)

type AccountHandler struct {
	service   *service.AccountService
	validator requestValidator
}

func NewAccountHandler(service *service.AccountService, validator requestValidator) *AccountHandler {
	return &AccountHandler{service: service, validator: validator}
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r)

	accounts, total, err := h.service.List(r.Context(), page)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, model.AccountList{Accounts: accounts}, model.NewMeta(page, total))
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	account, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, account, nil)
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.AccountRequest
	if err := decodeBody(r, w, h.validator, &payload); err != nil {
		writeError(w, err)
		return
	}

	account, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/accounts/"+itoa(account.ID))
	writeSuccess(w, http.StatusCreated, account, nil)
}

func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.AccountUpdateRequest
	if err := decodeBody(r, w, h.validator, &payload); err != nil {
		writeError(w, err)
		return
	}

	account, err := h.service.Update(r.Context(), id, model.AccountRequest(payload))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, account, nil)
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
