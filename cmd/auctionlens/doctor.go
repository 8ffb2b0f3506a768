package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/auctionlens/auctionlens/internal/api"
	"github.com/auctionlens/auctionlens/internal/config"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check connectivity to the prediction service",
	Long: `Probe the configured prediction service's health endpoint and report
whether it is reachable and has its model loaded.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if rootFlags.apiURL != "" {
		cfg.APIURL = rootFlags.apiURL
	}

	client := api.New(cfg.APIURL, time.Duration(cfg.Timeout)*time.Second)

	fmt.Printf("Checking %s ...\n", cfg.APIURL)
	health, err := client.Health(cmd.Context())
	if err != nil {
		return fmt.Errorf("service unreachable: %w", err)
	}

	fmt.Printf("Status:       %s\n", health.Status)
	if health.ModelLoaded {
		fmt.Println("Model:        loaded")
	} else {
		fmt.Println("Model:        NOT loaded - predictions will fail")
	}

	return nil
}
