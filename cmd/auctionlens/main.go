package main

import (
	"context"
	"os"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/auctionlens/auctionlens/internal/api"
	"github.com/auctionlens/auctionlens/internal/config"
	"github.com/auctionlens/auctionlens/internal/logger"
	"github.com/auctionlens/auctionlens/internal/state"
	"github.com/auctionlens/auctionlens/internal/tui"
)

const (
	logoText1 = "▄▀█ █ █ █▀▀ ▀█▀ █ █▀█ █▄ █ █   █▀▀ █▄ █ █▀"
	logoText2 = "█▀█ █▄█ █▄▄  █  █ █▄█ █ ▀█ █▄▄ ██▄ █ ▀█ ▄█"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "auctionlens",
	Short: "IPL auction price predictor for the terminal",
	RunE:  runApp,
}

var rootFlags struct {
	apiURL string
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("#cba6f7"))
	return strings.Join([]string{
		style.Render(logoText1),
		style.Render(logoText2),
	}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

auctionlens is a terminal client for the IPL auction price prediction
service. Enter a player's career statistics, or load demo data or a CSV
row, and get a predicted auction price with a confidence estimate.`

	rootCmd.Flags().StringVar(&rootFlags.apiURL, "api-url", "", "Prediction service base URL (overrides config)")

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(doctorCmd)
}

func runApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return err
	}
	if rootFlags.apiURL != "" {
		cfg.APIURL = rootFlags.apiURL
	}

	logger.Info("starting auctionlens, service at %s", cfg.APIURL)

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = state.DefaultDir()
	}

	client := api.New(cfg.APIURL, time.Duration(cfg.Timeout)*time.Second)
	return tui.Run(cmd.Context(), client, dataDir)
}
