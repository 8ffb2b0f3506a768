package tui

import (
	"strings"
	"testing"
	"time"
)

func TestNotices_ShowDisplaysMessage(t *testing.T) {
	n := NewNotices()

	cmd := n.Show(NoticeSuccess, "demo data generated", NoticeTTLShort)

	if n.Success() != "demo data generated" {
		t.Errorf("expected success message, got %q", n.Success())
	}
	if cmd == nil {
		t.Error("expected Show() to return an expiry command")
	}
}

func TestNotices_LanesAreIndependent(t *testing.T) {
	n := NewNotices()

	n.Show(NoticeSuccess, "loaded", NoticeTTLLong)
	n.Show(NoticeError, "upload failed", NoticeTTLLong)

	if n.Success() != "loaded" {
		t.Errorf("success lane: got %q", n.Success())
	}
	if n.Error() != "upload failed" {
		t.Errorf("error lane: got %q", n.Error())
	}
}

func TestNotices_NewerMessageReplacesOlder(t *testing.T) {
	n := NewNotices()

	n.Show(NoticeSuccess, "first", NoticeTTLShort)
	n.Show(NoticeSuccess, "second", NoticeTTLShort)

	if n.Success() != "second" {
		t.Errorf("expected newer message to replace older, got %q", n.Success())
	}
}

func TestNotices_ExpiryClearsCurrentMessage(t *testing.T) {
	n := NewNotices()

	cmd := n.Show(NoticeError, "not a csv", time.Millisecond)
	msg := cmd()
	expire, ok := msg.(NoticeExpireMsg)
	if !ok {
		t.Fatalf("expected NoticeExpireMsg, got %T", msg)
	}

	n.Update(expire)

	if n.Error() != "" {
		t.Errorf("expected error lane cleared, got %q", n.Error())
	}
}

func TestNotices_StaleExpiryDoesNotBlankNewerMessage(t *testing.T) {
	n := NewNotices()

	// First notice's timer keeps running after a second notice replaces it.
	firstCmd := n.Show(NoticeSuccess, "first", time.Millisecond)
	firstExpire := firstCmd().(NoticeExpireMsg)

	secondCmd := n.Show(NoticeSuccess, "second", time.Millisecond)

	// The stale timer fires: must be a no-op.
	n.Update(firstExpire)
	if n.Success() != "second" {
		t.Errorf("stale expiry blanked the newer message, got %q", n.Success())
	}

	// The live timer fires: now the lane clears.
	secondExpire := secondCmd().(NoticeExpireMsg)
	n.Update(secondExpire)
	if n.Success() != "" {
		t.Errorf("expected lane cleared after its own expiry, got %q", n.Success())
	}
}

func TestNotices_ExpiryForWrongLaneIgnored(t *testing.T) {
	n := NewNotices()

	cmd := n.Show(NoticeSuccess, "kept", time.Millisecond)
	expire := cmd().(NoticeExpireMsg)

	n.Update(NoticeExpireMsg{Kind: NoticeError, Seq: expire.Seq})

	if n.Success() != "kept" {
		t.Errorf("expiry for the other lane must not clear this one, got %q", n.Success())
	}
}

func TestNotices_ClearEmptiesBothLanes(t *testing.T) {
	n := NewNotices()
	n.Show(NoticeSuccess, "a", NoticeTTLShort)
	n.Show(NoticeError, "b", NoticeTTLShort)

	n.Clear()

	if n.Success() != "" || n.Error() != "" {
		t.Error("expected both lanes empty after Clear")
	}
}

func TestNotices_ClearThenStaleExpiryHarmless(t *testing.T) {
	n := NewNotices()
	cmd := n.Show(NoticeError, "gone", time.Millisecond)
	expire := cmd().(NoticeExpireMsg)

	n.Clear()
	n.Update(expire)

	if n.Error() != "" {
		t.Errorf("expected empty lane, got %q", n.Error())
	}
}

func TestNotices_ExpiryCommandCarriesTTL(t *testing.T) {
	n := NewNotices()

	start := time.Now()
	cmd := n.Show(NoticeSuccess, "timed", 1*time.Millisecond)
	msg := cmd() // tea.Tick waits out the interval when executed directly
	if elapsed := time.Since(start); elapsed < 1*time.Millisecond {
		t.Errorf("expiry fired before ttl elapsed: %v", elapsed)
	}
	if _, ok := msg.(NoticeExpireMsg); !ok {
		t.Errorf("expected NoticeExpireMsg, got %T", msg)
	}
}

func TestNotices_View(t *testing.T) {
	n := NewNotices()
	if n.View() != "" {
		t.Error("expected empty view with no notices")
	}

	n.Show(NoticeSuccess, "demo data generated successfully", NoticeTTLShort)
	n.Show(NoticeError, "please select a CSV file", NoticeTTLLong)

	view := n.View()
	if !strings.Contains(view, "demo data generated successfully") {
		t.Errorf("expected success text in view, got %q", view)
	}
	if !strings.Contains(view, "please select a CSV file") {
		t.Errorf("expected error text in view, got %q", view)
	}
}
