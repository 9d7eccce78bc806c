package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"saccoflow/internal/service"
)

// RegistryHandler exposes the platform admin's sacco registry.
type RegistryHandler struct {
	server *Server
}

func NewRegistryHandler(server *Server) *RegistryHandler {
	return &RegistryHandler{server: server}
}

// registry returns the dashboard or replies 403 when the caller is not
// the platform admin.
func (h *RegistryHandler) registry(w http.ResponseWriter) *service.RegistryService {
	reg := h.server.registryState()
	if reg == nil {
		writeJSON(w, http.StatusForbidden, errorResponse{Message: "platform admin role required"})
	}
	return reg
}

func (h *RegistryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	reg := h.registry(w)
	if reg == nil {
		return
	}
	writeJSON(w, http.StatusOK, reg.Saccos())
}

func (h *RegistryHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	reg := h.registry(w)
	if reg == nil {
		return
	}
	writeJSON(w, http.StatusOK, reg.Metrics())
}

func (h *RegistryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	reg := h.registry(w)
	if reg == nil {
		return
	}
	var form service.SaccoForm
	if err := decodeBody(r, &form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	created, err := reg.Create(r.Context(), form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *RegistryHandler) HandleToggleStatus(w http.ResponseWriter, r *http.Request) {
	reg := h.registry(w)
	if reg == nil {
		return
	}
	updated, err := reg.ToggleStatus(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *RegistryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	reg := h.registry(w)
	if reg == nil {
		return
	}
	if err := reg.Delete(r.Context(), mux.Vars(r)["id"], confirmed(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
