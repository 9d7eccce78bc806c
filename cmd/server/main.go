package main

import (
	"flag"
	"log"
	"net/http"

	httpapi "saccoflow/internal/api/http"
	"saccoflow/internal/auth"
	"saccoflow/internal/config"
	"saccoflow/internal/logger"
	"saccoflow/internal/repository/rest"
	"saccoflow/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting SaccoFlow...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	if cfg.DataService.IsPlaceholder() {
		logger.Error("Data service is not configured; all views will be empty",
			"hint", "set DATA_SERVICE_ENDPOINT and DATA_SERVICE_PUBLIC_KEY")
	} else {
		logger.Info("Data service configuration", "endpoint", cfg.DataService.Endpoint,
			"admin_interface", cfg.DataService.HasServiceKey())
	}

	// Initialize the auth client with the persisted session
	sessionStore := auth.NewSessionStore(cfg.Session.StorePath)
	authClient := auth.NewClient(cfg.DataService.Endpoint, cfg.DataService.PublicKey, sessionStore)
	adminClient := auth.NewAdminClient(cfg.DataService.Endpoint, cfg.DataService.ServiceKey)

	// Initialize the table client and repositories
	restClient := rest.NewClient(cfg.DataService.Endpoint, cfg.DataService.PublicKey, authClient.AccessToken)
	store := rest.NewStore(restClient)

	// Initialize Services
	resolver := service.NewResolver(authClient, store.ProfileRepository)
	creds := service.NewCredentialService(authClient, resolver)

	// Start the background session refresher
	refresher := auth.NewRefresher(authClient)
	if err := refresher.Start(cfg.Session.RefreshSchedule); err != nil {
		logger.Error("Failed to start session refresher", "error", err)
		log.Fatalf("Failed to start session refresher: %v", err)
	}
	defer refresher.Stop()

	// Set up HTTP server
	server := httpapi.NewServer(creds, resolver, authClient, adminClient, store)
	defer server.Close()
	router := httpapi.NewRouter(server)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
