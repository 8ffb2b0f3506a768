package tui

import (
	"testing"

	"github.com/auctionlens/auctionlens/internal/form"
)

func TestNavigator_StartsOnBatting(t *testing.T) {
	n := NewNavigator()
	if n.Active() != form.SectionBatting {
		t.Errorf("initial section = %v, want batting", n.Active())
	}
}

func TestNavigator_NextRotates(t *testing.T) {
	n := NewNavigator()

	want := []form.Section{
		form.SectionBowling,
		form.SectionFielding,
		form.SectionBatting, // wraps
	}
	for _, expected := range want {
		n.Next()
		if n.Active() != expected {
			t.Fatalf("after Next: got %v, want %v", n.Active(), expected)
		}
	}
}

func TestNavigator_SetIgnoresNonStatSections(t *testing.T) {
	n := NewNavigator()
	n.Set(form.SectionFielding)
	n.Set(form.SectionBasic)

	if n.Active() != form.SectionFielding {
		t.Errorf("basic section must not become the active tab, got %v", n.Active())
	}
}

func TestNavigator_Index(t *testing.T) {
	n := NewNavigator()
	if n.Index() != 0 {
		t.Errorf("Index() = %d, want 0", n.Index())
	}
	n.Set(form.SectionFielding)
	if n.Index() != 2 {
		t.Errorf("Index() = %d, want 2", n.Index())
	}
}
