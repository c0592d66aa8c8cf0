package handler

import (
	"net/http"
	"strconv"

	"go-vehicle-api/internal/model"
	"go-vehicle-api/internal/service"
)

type VehicleHandler struct {
	service   *service.VehicleService
	validator requestValidator
}

func NewVehicleHandler(service *service.VehicleService, validator requestValidator) *VehicleHandler {
	return &VehicleHandler{service: service, validator: validator}
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r)
	filter := model.VehicleFilter{
		Name:  r.URL.Query().Get("name"),
		Brand: r.URL.Query().Get("brand"),
	}

	vehicles, total, err := h.service.List(r.Context(), filter, page)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, model.VehicleList{Vehicles: vehicles}, model.NewMeta(page, total))
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	vehicle, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, vehicle, nil)
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.VehicleRequest
	if err := decodeBody(r, w, h.validator, &payload); err != nil {
		writeError(w, err)
		return
	}

	vehicle, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/vehicles/"+itoa(vehicle.ID))
	writeSuccess(w, http.StatusCreated, vehicle, nil)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.VehicleRequest
	if err := decodeBody(r, w, h.validator, &payload); err != nil {
		writeError(w, err)
		return
	}

	vehicle, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, vehicle, nil)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
