package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// NoticeKind selects the success or error lane of the notice board.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Default lifetimes for operation notices.
const (
	NoticeTTLShort = 3 * time.Second
	NoticeTTLLong  = 5 * time.Second
)

// NoticeExpireMsg is sent when a notice's lifetime elapses. Seq identifies
// the notice the timer was armed for.
type NoticeExpireMsg struct {
	Kind NoticeKind
	Seq  int
}

// notice is one live message on the board.
type notice struct {
	text string
	seq  int
}

// Notices holds at most one success and one error message at a time, each
// auto-expiring. Showing a new message replaces the lane immediately; the
// replaced message's pending expiry timer keeps running, so every notice
// carries a sequence number and an expiry only clears the lane while its
// sequence is still current. A stale timer firing is a no-op and can never
// blank a newer message.
type Notices struct {
	success *notice
	err     *notice
	nextSeq int
}

// NewNotices creates an empty notice board.
func NewNotices() *Notices {
	return &Notices{}
}

// Show replaces the lane for kind with text and returns the command that
// will expire it after ttl.
func (n *Notices) Show(kind NoticeKind, text string, ttl time.Duration) tea.Cmd {
	n.nextSeq++
	current := &notice{text: text, seq: n.nextSeq}
	switch kind {
	case NoticeSuccess:
		n.success = current
	case NoticeError:
		n.err = current
	}

	seq := current.seq
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return NoticeExpireMsg{Kind: kind, Seq: seq}
	})
}

// Clear empties both lanes immediately. Pending timers become stale no-ops.
func (n *Notices) Clear() {
	n.success = nil
	n.err = nil
}

// Update handles expiry messages, clearing a lane only when the expiring
// sequence is still the one on display.
func (n *Notices) Update(msg tea.Msg) {
	expire, ok := msg.(NoticeExpireMsg)
	if !ok {
		return
	}
	switch expire.Kind {
	case NoticeSuccess:
		if n.success != nil && n.success.seq == expire.Seq {
			n.success = nil
		}
	case NoticeError:
		if n.err != nil && n.err.seq == expire.Seq {
			n.err = nil
		}
	}
}

// Success returns the live success message, or "".
func (n *Notices) Success() string {
	if n.success == nil {
		return ""
	}
	return n.success.text
}

// Error returns the live error message, or "".
func (n *Notices) Error() string {
	if n.err == nil {
		return ""
	}
	return n.err.text
}

// View renders the visible notices, one per line.
func (n *Notices) View() string {
	var out string
	if n.success != nil {
		out += styleNoticeSuccess.Render("✓ "+n.success.text) + "\n"
	}
	if n.err != nil {
		out += styleNoticeError.Render("✗ "+n.err.text) + "\n"
	}
	return out
}
