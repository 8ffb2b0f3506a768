package tui

import (
	"context"
	"io"

	"github.com/auctionlens/auctionlens/internal/api"
)

// Service is the slice of the prediction service the app consumes. It is an
// interface so tests can substitute a recording stub for the HTTP client.
type Service interface {
	DatasetStats(ctx context.Context) (*api.Stats, error)
	Predict(ctx context.Context, payload map[string]string) (*api.Prediction, error)
	GenerateDemoData(ctx context.Context) (map[string]string, error)
	UploadCSV(ctx context.Context, filename string, file io.Reader) (map[string]string, int, error)
}

var _ Service = (*api.Client)(nil)
