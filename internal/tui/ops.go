package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/auctionlens/auctionlens/internal/api"
)

// opState is the lifecycle of one async operation. Each operation kind
// carries its own instance; there is no cross-operation mutual exclusion.
type opState int

const (
	opIdle opState = iota
	opInFlight
	opSucceeded
	opFailed
)

// resultRevealDelay separates a successful prediction from the result panel
// appearing, giving the layout a beat to settle. A nicety, not a correctness
// requirement.
const resultRevealDelay = 100 * time.Millisecond

// transportFailureText is shown when the service did not answer at all. A
// structured error payload is surfaced verbatim instead.
const transportFailureText = "no response from prediction service"

// statsFetchedMsg reports the dataset statistics fetch.
type statsFetchedMsg struct {
	seq   int
	stats *api.Stats
	err   error
}

// predictDoneMsg reports a prediction request.
type predictDoneMsg struct {
	seq        int
	prediction *api.Prediction
	err        error
}

// demoDoneMsg reports a demo-data generation request.
type demoDoneMsg struct {
	seq    int
	record map[string]string
	err    error
}

// importDoneMsg reports a CSV import attempt.
type importDoneMsg struct {
	seq       int
	record    map[string]string
	totalRows int
	err       error
}

// revealResultMsg fires after resultRevealDelay to show the result panel.
type revealResultMsg struct{}

func fetchStatsCmd(ctx context.Context, svc Service, seq int) tea.Cmd {
	return func() tea.Msg {
		stats, err := svc.DatasetStats(ctx)
		return statsFetchedMsg{seq: seq, stats: stats, err: err}
	}
}

func predictCmd(ctx context.Context, svc Service, seq int, payload map[string]string) tea.Cmd {
	return func() tea.Msg {
		prediction, err := svc.Predict(ctx, payload)
		return predictDoneMsg{seq: seq, prediction: prediction, err: err}
	}
}

func generateDemoCmd(ctx context.Context, svc Service, seq int) tea.Cmd {
	return func() tea.Msg {
		record, err := svc.GenerateDemoData(ctx)
		return demoDoneMsg{seq: seq, record: record, err: err}
	}
}

func importCSVCmd(ctx context.Context, svc Service, seq int, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importDoneMsg{seq: seq, err: err}
		}
		defer func() { _ = f.Close() }()

		record, totalRows, err := svc.UploadCSV(ctx, filepath.Base(path), f)
		return importDoneMsg{seq: seq, record: record, totalRows: totalRows, err: err}
	}
}

func revealResultCmd() tea.Cmd {
	return tea.Tick(resultRevealDelay, func(time.Time) tea.Msg {
		return revealResultMsg{}
	})
}

// errorText maps a failure to its user-facing message: the service's own
// message when it sent one, a generic line otherwise.
func errorText(err error) string {
	var svcErr *api.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Error()
	}
	if errors.Is(err, os.ErrNotExist) {
		return "file not found"
	}
	return transportFailureText
}
