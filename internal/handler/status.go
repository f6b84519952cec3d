package handler

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/MKhiriev/go-mod-manager/models"
	"github.com/go-chi/chi/v5"
)

type pipelineStatus struct {
	State models.InstallState `json:"state"`
	Busy  bool                `json:"busy"`
}

type statusResponse struct {
	Install pipelineStatus `json:"install"`
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	install := h.services.Install
	writeJSON(w, r, http.StatusOK, statusResponse{
		Install: pipelineStatus{State: install.State(), Busy: install.Busy()},
	})
}

func (h *Handler) listInstalled(w http.ResponseWriter, r *http.Request) {
	installed := h.services.Metadata.ListInstalled()
	if installed == nil {
		installed = []models.ContentMetadata{}
	}
	writeJSON(w, r, http.StatusOK, installed)
}

func (h *Handler) getInstalled(w http.ResponseWriter, r *http.Request) {
	itemName := chi.URLParam(r, "itemName")
	for _, record := range h.services.Metadata.ListInstalled() {
		if record.ItemName == itemName {
			writeJSON(w, r, http.StatusOK, record)
			return
		}
	}
	http.Error(w, ErrItemNotInstalled.Error(), http.StatusNotFound)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.FromContext(r.Context()).Err(err).Str("func", "handler.writeJSON").Msg("failed to encode response")
	}
}
