package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/packlist/internal/notify"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/store"
)

func newModel(t *testing.T) (Model, *packing.Store) {
	t.Helper()
	toasts := NewToasts()
	s := packing.New(store.NewMemory(), packing.WithSink(toasts))
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return New(context.Background(), s, toasts), s
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

func selected(t *testing.T, m Model) row {
	t.Helper()
	r, ok := m.list.SelectedItem().(row)
	if !ok {
		t.Fatalf("nothing selected")
	}
	return r
}

func TestRowsFollowCurrentTrip(t *testing.T) {
	m, _ := newModel(t)
	items := m.list.Items()
	if len(items) != 12 { // 3 headers + 9 items
		t.Fatalf("rows=%d, want 12", len(items))
	}
	if r := items[0].(row); !r.header || r.cat.Name != "Clothing" {
		t.Errorf("first row = %+v", r)
	}
	if !strings.Contains(m.list.Title, "Summer Vacation") {
		t.Errorf("title = %q", m.list.Title)
	}
}

func TestSpaceTogglesItem(t *testing.T) {
	m, s := newModel(t)
	m.list.Select(1)
	m = press(t, m, " ")

	cur, _ := s.Current()
	if !cur.Categories[0].Items[0].Packed {
		t.Fatalf("T-shirts not packed")
	}
	if got := s.CurrentProgress(); got != 11 {
		t.Errorf("progress=%d, want 11", got)
	}
	if r := selected(t, m); !r.item.Packed || r.item.Name != "T-shirts" {
		t.Errorf("selected row not refreshed: %+v", r)
	}
}

func TestDeleteThenUndo(t *testing.T) {
	m, s := newModel(t)
	m.list.Select(2) // Shorts
	m = press(t, m, "d")
	if m.toast == nil || m.toast.Title != "Item deleted" || m.toast.Action == nil {
		t.Fatalf("toast = %+v", m.toast)
	}
	if len(m.list.Items()) != 11 {
		t.Fatalf("rows=%d after delete", len(m.list.Items()))
	}

	m = press(t, m, "u")
	if m.toast == nil || m.toast.Title != "Item restored" {
		t.Fatalf("toast = %+v", m.toast)
	}
	cur, _ := s.Current()
	if got := cur.Categories[0].Items[1].Name; got != "Shorts" {
		t.Errorf("restored item = %q", got)
	}

	m = press(t, m, "u")
	if m.toast.Title != "Nothing to undo" {
		t.Errorf("second undo toast = %q", m.toast.Title)
	}
}

func TestDeleteHeaderRemovesCategory(t *testing.T) {
	m, s := newModel(t)
	m.list.Select(0)
	m = press(t, m, "d")
	cur, _ := s.Current()
	if len(cur.Categories) != 2 || cur.Categories[0].Name != "Toiletries" {
		t.Errorf("categories = %+v", cur.Categories)
	}
	if m.toast.Title != "Category deleted" {
		t.Errorf("toast = %q", m.toast.Title)
	}
}

func TestAddCategoryAndItem(t *testing.T) {
	m, s := newModel(t)
	m = press(t, m, "c", "Gear", "enter")
	if m.mode != browsing || m.toast.Title != "Category added" {
		t.Fatalf("mode=%v toast=%+v", m.mode, m.toast)
	}

	m.list.Select(len(m.list.Items()) - 1) // the new Gear header
	m = press(t, m, "a", "Goggles", "enter")
	if m.toast.Title != "Item added" {
		t.Fatalf("toast=%+v", m.toast)
	}
	cur, _ := s.Current()
	gear := cur.Categories[len(cur.Categories)-1]
	if gear.Name != "Gear" || len(gear.Items) != 1 || gear.Items[0].Name != "Goggles" {
		t.Errorf("gear = %+v", gear)
	}
}

func TestInvalidInputKeepsPromptOpen(t *testing.T) {
	m, _ := newModel(t)
	m = press(t, m, "c", "clothing", "enter")
	if m.mode != addingCategory {
		t.Fatalf("mode=%v, want input still open", m.mode)
	}
	if m.toast.Kind != notify.Error || m.toast.Description != "A category with this name already exists" {
		t.Errorf("toast = %+v", m.toast)
	}
	m = press(t, m, "esc")
	if m.mode != browsing {
		t.Errorf("esc did not close input")
	}
}

func TestNewTripFlow(t *testing.T) {
	m, s := newModel(t)
	m = press(t, m, "n", "Ski Trip", "enter")
	if m.mode != tripDate {
		t.Fatalf("mode=%v, want date step", m.mode)
	}
	m = press(t, m, "enter")
	cur, _ := s.Current()
	if cur.Name != "Ski Trip" || m.mode != browsing {
		t.Fatalf("current=%q mode=%v", cur.Name, m.mode)
	}
	if len(m.list.Items()) != 0 {
		t.Errorf("new trip shows %d rows", len(m.list.Items()))
	}

	m = press(t, m, "a")
	if m.mode != browsing || m.toast.Title != "No category" {
		t.Errorf("add item without category: mode=%v toast=%+v", m.mode, m.toast)
	}
}

func TestEmptyTripNameReturnsToNameStep(t *testing.T) {
	m, _ := newModel(t)
	m = press(t, m, "n", "enter", "enter")
	if m.mode != tripName {
		t.Fatalf("mode=%v, want name step", m.mode)
	}
	if m.toast.Description != "Trip name is required" {
		t.Errorf("toast = %+v", m.toast)
	}
}

func TestEditTripKeepsDate(t *testing.T) {
	m, s := newModel(t)
	m = press(t, m, "e")
	m.input.SetValue("Beach Week")
	m = press(t, m, "enter", "enter")
	cur, _ := s.Current()
	if cur.Name != "Beach Week" || cur.Date != "2025-07-15" {
		t.Errorf("current = %q %q", cur.Name, cur.Date)
	}
}

func TestTabCyclesTrips(t *testing.T) {
	m, s := newModel(t)
	m = press(t, m, "tab")
	if cur, _ := s.Current(); cur.Name != "Business Trip" {
		t.Fatalf("current=%q", cur.Name)
	}
	if !strings.Contains(m.list.Title, "Business Trip") {
		t.Errorf("title = %q", m.list.Title)
	}
	press(t, m, "tab")
	if cur, _ := s.Current(); cur.Name != "Summer Vacation" {
		t.Errorf("wrap-around current=%q", cur.Name)
	}
}

func TestDeleteTripAndUndo(t *testing.T) {
	m, s := newModel(t)
	m = press(t, m, "x")
	if cur, _ := s.Current(); cur.Name != "Business Trip" {
		t.Fatalf("current=%q", cur.Name)
	}
	press(t, m, "u")
	trips := s.Trips()
	if len(trips) != 2 || trips[1].Name != "Summer Vacation" {
		t.Errorf("trips after undo = %d, last %q", len(trips), trips[len(trips)-1].Name)
	}
	if cur, _ := s.Current(); cur.Name != "Summer Vacation" {
		t.Errorf("restored trip not current: %q", cur.Name)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q did not quit")
	}
}

func TestViewShowsToastAndInput(t *testing.T) {
	m, _ := newModel(t)
	m.list.Select(1)
	m = press(t, m, "d")
	if v := m.View(); !strings.Contains(v, "Item deleted") || !strings.Contains(v, "u to undo") {
		t.Errorf("view missing toast:\n%s", v)
	}
	m = press(t, m, "c")
	if v := m.View(); !strings.Contains(v, "Add category") {
		t.Errorf("view missing input box:\n%s", v)
	}
}
