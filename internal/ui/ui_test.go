package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/idilsaglam/packlist/internal/notify"
)

func TestProgressBar(t *testing.T) {
	cases := []struct {
		pct, width int
		want       string
	}{
		{0, 10, "░░░░░░░░░░   0%"},
		{50, 10, "█████░░░░░  50%"},
		{100, 10, "██████████ 100%"},
		{150, 5, "█████ 100%"},
	}
	for _, tc := range cases {
		if got := ProgressBar(tc.pct, tc.width); got != tc.want {
			t.Fatalf("ProgressBar(%d,%d) = %q, want %q", tc.pct, tc.width, got, tc.want)
		}
	}
}

func TestPanel_MonoTheme(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	var buf bytes.Buffer
	Panel(&buf, []string{"Ski Trip", "ab"})
	want := "+----------+\n| Ski Trip |\n| ab       |\n+----------+\n"
	if buf.String() != want {
		t.Fatalf("panel:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestConsoleSink(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	var out, errOut bytes.Buffer
	s := ConsoleSink{Out: &out, Err: &errOut}
	s.Notify(notify.Notification{Kind: notify.Success, Title: "Item deleted", Description: "Gloves has been deleted",
		Action: &notify.Action{Label: "Undo", Run: func() {}}})
	s.Notify(notify.Notification{Kind: notify.Error, Title: "Invalid date", Description: "Trip date cannot be in the past"})

	if !strings.Contains(out.String(), "x Item deleted: Gloves has been deleted") {
		t.Fatalf("unexpected stdout %q", out.String())
	}
	if !strings.Contains(out.String(), "Undo is available") {
		t.Fatalf("expected undo hint, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "✖ Invalid date: Trip date cannot be in the past") {
		t.Fatalf("unexpected stderr %q", errOut.String())
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Presentation materials", 10); got != "Present..." {
		t.Fatalf("got %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
}
