package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"saccoflow/internal/service"
)

// TenantHandler exposes the tenant admin's feature slices.
type TenantHandler struct {
	server *Server
}

func NewTenantHandler(server *Server) *TenantHandler {
	return &TenantHandler{server: server}
}

func (h *TenantHandler) tenant(w http.ResponseWriter) *service.TenantDashboard {
	dash := h.server.tenantState()
	if dash == nil {
		writeJSON(w, http.StatusForbidden, errorResponse{Message: "sacco admin role required"})
	}
	return dash
}

func (h *TenantHandler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	dash := h.tenant(w)
	if dash == nil {
		return
	}
	writeJSON(w, http.StatusOK, dash.Overview())
}

func (h *TenantHandler) HandleMembers(w http.ResponseWriter, r *http.Request) {
	dash := h.tenant(w)
	if dash == nil {
		return
	}
	writeJSON(w, http.StatusOK, dash.Members.Search(r.URL.Query().Get("q")))
}

func (h *TenantHandler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	dash := h.tenant(w)
	if dash == nil {
		return
	}
	var form service.MemberForm
	if err := decodeBody(r, &form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	created, err := dash.Members.Add(r.Context(), form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *TenantHandler) HandleUpdateMember(w http.ResponseWriter, r *http.Request) {
	dash := h.tenant(w)
	if dash == nil {
		return
	}
	var form service.MemberForm
	if err := decodeBody(r, &form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	updated, err := dash.Members.Update(r.Context(), mux.Vars(r)["id"], form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *TenantHandler) HandleDeleteMember(w http.ResponseWriter, r *http.Request) {
	dash := h.tenant(w)
	if dash == nil {
		return
	}
	if err := dash.Members.Delete(r.Context(), mux.Vars(r)["id"], confirmed(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *TenantHandler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	dash := h.tenant(w)
	if dash == nil {
		return
	}
	q := r.URL.Query()
	rows := dash.Transactions.Filtered(q.Get("from"), q.Get("to"), dash.Members.Members())
	writeJSON(w, http.StatusOK, rows)
}

func (h *TenantHandler) HandleRecordTransaction(w http.ResponseWriter, r *http.Request) {
	dash := h.tenant(w)
	if dash == nil {
		return
	}
	var form service.TransactionForm
	if err := decodeBody(r, &form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	created, err := dash.Transactions.Record(r.Context(), form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *TenantHandler) HandleLoans(w http.ResponseWriter, r *http.Request) {
	dash := h.tenant(w)
	if dash == nil {
		return
	}
	writeJSON(w, http.StatusOK, dash.Loans.List(dash.Members.Members()))
}

func (h *TenantHandler) HandleApproveLoan(w http.ResponseWriter, r *http.Request) {
	h.decideLoan(w, r, true)
}

func (h *TenantHandler) HandleRejectLoan(w http.ResponseWriter, r *http.Request) {
	h.decideLoan(w, r, false)
}

func (h *TenantHandler) decideLoan(w http.ResponseWriter, r *http.Request, approve bool) {
	dash := h.tenant(w)
	if dash == nil {
		return
	}
	id := mux.Vars(r)["id"]
	var err error
	var updated any
	if approve {
		updated, err = dash.Loans.Approve(r.Context(), id)
	} else {
		updated, err = dash.Loans.Reject(r.Context(), id)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *TenantHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	dash := h.tenant(w)
	if dash == nil {
		return
	}
	q := r.URL.Query()
	report, err := dash.Reports.Build(service.ReportType(mux.Vars(r)["type"]), q.Get("from"), q.Get("to"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *TenantHandler) HandleAudit(w http.ResponseWriter, r *http.Request) {
	dash := h.tenant(w)
	if dash == nil {
		return
	}
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, dash.Audit.Filter(q.Get("q"), q.Get("from"), q.Get("to")))
}

func (h *TenantHandler) HandleNotifications(w http.ResponseWriter, r *http.Request) {
	dash := h.tenant(w)
	if dash == nil {
		return
	}
	writeJSON(w, http.StatusOK, dash.Broadcasts.Notifications())
}

func (h *TenantHandler) HandleSendNotification(w http.ResponseWriter, r *http.Request) {
	dash := h.tenant(w)
	if dash == nil {
		return
	}
	var form service.NotificationForm
	if err := decodeBody(r, &form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	created, err := dash.Broadcasts.Send(r.Context(), form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
