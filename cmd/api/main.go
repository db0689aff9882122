package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/espressobank/extrato/internal/config"
	extratoHttp "github.com/espressobank/extrato/internal/http"
	statementHandler "github.com/espressobank/extrato/internal/http/statement"
	"github.com/espressobank/extrato/internal/statement"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	statementsH := statementHandler.NewHandler(statement.Fallback())
	router := extratoHttp.New(statementsH, cfg.Auth.Secret)

	if cfg.Auth.Secret != "" {
		token, err := extratoHttp.NewToken(cfg.Auth.Secret, "extrato-dev", 24*time.Hour)
		if err != nil {
			slog.Error("failed to mint dev token", "error", err)
			os.Exit(1)
		}

		slog.Info("statements endpoint requires auth", "token", token)
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting statement server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
