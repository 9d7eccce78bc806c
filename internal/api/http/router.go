package http

import (
	"github.com/gorilla/mux"
)

// NewRouter registers every dashboard and credential route on a mux router.
func NewRouter(server *Server) *mux.Router {
	router := mux.NewRouter()

	authHandler := NewAuthHandler(server)
	registryHandler := NewRegistryHandler(server)
	tenantHandler := NewTenantHandler(server)
	memberHandler := NewMemberHandler(server)

	router.HandleFunc("/api/v1/auth/login", authHandler.HandleLogin).Methods("POST")
	router.HandleFunc("/api/v1/auth/logout", authHandler.HandleLogout).Methods("POST")
	router.HandleFunc("/api/v1/auth/recover", authHandler.HandleRecover).Methods("POST")
	router.HandleFunc("/api/v1/auth/reset-password", authHandler.HandleResetPassword).Methods("POST")
	router.HandleFunc("/api/v1/session", authHandler.HandleSession).Methods("GET")

	router.HandleFunc("/api/v1/admin/saccos", registryHandler.HandleList).Methods("GET")
	router.HandleFunc("/api/v1/admin/saccos", registryHandler.HandleCreate).Methods("POST")
	router.HandleFunc("/api/v1/admin/saccos/{id}/toggle", registryHandler.HandleToggleStatus).Methods("POST")
	router.HandleFunc("/api/v1/admin/saccos/{id}", registryHandler.HandleDelete).Methods("DELETE")
	router.HandleFunc("/api/v1/admin/metrics", registryHandler.HandleMetrics).Methods("GET")

	router.HandleFunc("/api/v1/sacco/overview", tenantHandler.HandleOverview).Methods("GET")
	router.HandleFunc("/api/v1/sacco/members", tenantHandler.HandleMembers).Methods("GET")
	router.HandleFunc("/api/v1/sacco/members", tenantHandler.HandleAddMember).Methods("POST")
	router.HandleFunc("/api/v1/sacco/members/{id}", tenantHandler.HandleUpdateMember).Methods("PUT")
	router.HandleFunc("/api/v1/sacco/members/{id}", tenantHandler.HandleDeleteMember).Methods("DELETE")
	router.HandleFunc("/api/v1/sacco/transactions", tenantHandler.HandleTransactions).Methods("GET")
	router.HandleFunc("/api/v1/sacco/transactions", tenantHandler.HandleRecordTransaction).Methods("POST")
	router.HandleFunc("/api/v1/sacco/loans", tenantHandler.HandleLoans).Methods("GET")
	router.HandleFunc("/api/v1/sacco/loans/{id}/approve", tenantHandler.HandleApproveLoan).Methods("POST")
	router.HandleFunc("/api/v1/sacco/loans/{id}/reject", tenantHandler.HandleRejectLoan).Methods("POST")
	router.HandleFunc("/api/v1/sacco/reports/{type}", tenantHandler.HandleReport).Methods("GET")
	router.HandleFunc("/api/v1/sacco/audit", tenantHandler.HandleAudit).Methods("GET")
	router.HandleFunc("/api/v1/sacco/notifications", tenantHandler.HandleNotifications).Methods("GET")
	router.HandleFunc("/api/v1/sacco/notifications", tenantHandler.HandleSendNotification).Methods("POST")

	router.HandleFunc("/api/v1/me/summary", memberHandler.HandleSummary).Methods("GET")
	router.HandleFunc("/api/v1/me/transactions", memberHandler.HandleTransactions).Methods("GET")
	router.HandleFunc("/api/v1/me/loans", memberHandler.HandleLoans).Methods("GET")
	router.HandleFunc("/api/v1/me/loans", memberHandler.HandleApplyLoan).Methods("POST")
	router.HandleFunc("/api/v1/me/reminders", memberHandler.HandleReminders).Methods("GET")

	return router
}
