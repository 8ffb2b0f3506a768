// Package state persists the in-progress form between runs, so quitting the
// app halfway through entering a player does not lose the work.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/auctionlens/auctionlens/internal/logger"
)

// Draft is the saved form snapshot plus UI preferences that carry across
// sessions.
type Draft struct {
	ActiveSection int               `json:"active_section"`
	Values        map[string]string `json:"values"`
}

// DefaultDraft returns an empty draft.
func DefaultDraft() *Draft {
	return &Draft{Values: map[string]string{}}
}

// DefaultDir returns the XDG data directory for auctionlens.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "auctionlens")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "auctionlens")
}

// Load reads the draft from dataDir/draft.json.
// Returns an empty draft if the file doesn't exist or on error.
func Load(dataDir string) *Draft {
	path := filepath.Join(dataDir, "draft.json")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultDraft()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Failed to read draft file: %v", err)
		return DefaultDraft()
	}

	var draft Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		logger.Warn("Failed to parse draft JSON: %v", err)
		return DefaultDraft()
	}
	if draft.Values == nil {
		draft.Values = map[string]string{}
	}

	return &draft
}

// Save writes the draft to dataDir/draft.json.
// Creates the data directory if it doesn't exist.
func Save(dataDir string, draft *Draft) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	path := filepath.Join(dataDir, "draft.json")

	data, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling draft: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing draft file: %w", err)
	}

	logger.Debug("Draft saved to %s", path)
	return nil
}

// Clear removes any saved draft. Used after a form reset so a stale draft
// does not resurrect on the next start.
func Clear(dataDir string) error {
	path := filepath.Join(dataDir, "draft.json")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing draft file: %w", err)
	}
	return nil
}
