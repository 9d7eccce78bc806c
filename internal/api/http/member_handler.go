package http

import (
	"net/http"

	"saccoflow/internal/service"
)

// MemberHandler exposes the member's home dashboard.
type MemberHandler struct {
	server *Server
}

func NewMemberHandler(server *Server) *MemberHandler {
	return &MemberHandler{server: server}
}

func (h *MemberHandler) home(w http.ResponseWriter) *service.MemberHome {
	home := h.server.homeState()
	if home == nil {
		writeJSON(w, http.StatusForbidden, errorResponse{Message: "member role required"})
	}
	return home
}

type memberSummary struct {
	NetSavings      int64  `json:"net_savings"`
	OutstandingLoan int64  `json:"outstanding_loan"`
	NextDeadline    string `json:"next_deadline,omitempty"`
}

func (h *MemberHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	home := h.home(w)
	if home == nil {
		return
	}
	writeJSON(w, http.StatusOK, memberSummary{
		NetSavings:      home.NetSavings(),
		OutstandingLoan: home.OutstandingLoan(),
		NextDeadline:    home.NextDeadline(),
	})
}

func (h *MemberHandler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	home := h.home(w)
	if home == nil {
		return
	}
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, home.Transactions(q.Get("from"), q.Get("to")))
}

func (h *MemberHandler) HandleLoans(w http.ResponseWriter, r *http.Request) {
	home := h.home(w)
	if home == nil {
		return
	}
	writeJSON(w, http.StatusOK, home.Loans())
}

func (h *MemberHandler) HandleApplyLoan(w http.ResponseWriter, r *http.Request) {
	home := h.home(w)
	if home == nil {
		return
	}
	var form service.LoanApplicationForm
	if err := decodeBody(r, &form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	loan, err := home.Apply(form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, loan)
}

func (h *MemberHandler) HandleReminders(w http.ResponseWriter, r *http.Request) {
	home := h.home(w)
	if home == nil {
		return
	}
	writeJSON(w, http.StatusOK, home.Reminders())
}
