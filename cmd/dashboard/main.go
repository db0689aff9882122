package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/espressobank/extrato/cmd/dashboard/internal/view"
	"github.com/espressobank/extrato/internal/config"
	"github.com/espressobank/extrato/internal/statement/client"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	fetcher := client.NewCached(client.New(cfg.API.BaseURL, cfg.API.Token, cfg.API.Timeout))
	model := view.NewStatementModel(fetcher, cfg.Statement.PageSize, cfg.Statement.ChartLimit)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run dashboard", "error", err)
		os.Exit(1)
	}
}
