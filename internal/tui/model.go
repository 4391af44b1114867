// Package tui is the interactive packing-list view: the current trip's
// categories and items in a Bubble Tea list, with inline inputs and toasts.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/notify"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/ui"
)

// row is one line of the list: a category header or an item under it.
type row struct {
	cat    model.Category
	item   model.Item
	header bool
}

func (r row) FilterValue() string {
	if r.header {
		return r.cat.Name
	}
	return r.item.Name
}

type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, _ := item.(row)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	if r.header {
		packed := 0
		for _, it := range r.cat.Items {
			if it.Packed {
				packed++
			}
		}
		fmt.Fprintln(w, prefix+accentStyle.Render(r.cat.Name)+" "+mutedStyle.Render(fmt.Sprintf("(%d/%d)", packed, len(r.cat.Items))))
		return
	}
	box, text := mutedStyle.Render(boxUnchecked), r.item.Name
	if r.item.Packed {
		box, text = successStyle.Render(boxChecked), doneStyle.Render(text)
	}
	fmt.Fprintln(w, prefix+"  "+box+" "+text)
}

type mode int

const (
	browsing mode = iota
	addingItem
	addingCategory
	tripName
	tripDate
)

// Model is the Bubble Tea model. Every change goes through the packing store;
// the list is rebuilt from the current trip afterwards.
type Model struct {
	ctx    context.Context
	store  *packing.Store
	toasts *Toasts

	list  list.Model
	input textinput.Model
	mode  mode

	editingTrip bool   // tripName/tripDate edit the current trip instead of creating one
	pendingName string // trip name entered before the date step
	targetCat   string // category receiving a new item

	toast  *notify.Notification
	width  int
	height int
}

var (
	toggleKey = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pack"))
	addKey    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item"))
	catKey    = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "add category"))
	delKey    = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	undoKey   = key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
	newKey    = key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new trip"))
	editKey   = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit trip"))
	dropKey   = key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete trip"))
	nextKey   = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next trip"))
	prevKey   = key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev trip"))
	quitKey   = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))
)

// New builds the model over an already loaded store. toasts must be the sink
// the store was created with.
func New(ctx context.Context, s *packing.Store, toasts *Toasts) Model {
	l := list.New(nil, rowDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("entry", "entries")
	l.KeyMap.Quit.SetEnabled(false)
	short := []key.Binding{toggleKey, addKey, catKey, delKey, undoKey}
	full := []key.Binding{toggleKey, addKey, catKey, delKey, undoKey, newKey, editKey, dropKey, nextKey, prevKey, quitKey}
	l.AdditionalShortHelpKeys = func() []key.Binding { return short }
	l.AdditionalFullHelpKeys = func() []key.Binding { return full }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{ctx: ctx, store: s, toasts: toasts, list: l, input: ti, width: 80, height: 24}
	m.list.SetSize(m.width-4, m.height-6)
	m.pickToast()
	m.refresh()
	return m
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(ctx context.Context, s *packing.Store, toasts *Toasts) error {
	p := tea.NewProgram(New(ctx, s, toasts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.list.SetSize(m.width-4, m.listHeight())
		return m, nil
	}
	if m.mode != browsing {
		return m.updateInput(msg)
	}
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, quitKey):
			return m, tea.Quit
		case key.Matches(k, toggleKey):
			m.toggle()
			return m, nil
		case key.Matches(k, addKey):
			return m.startAddItem()
		case key.Matches(k, catKey):
			return m.startInput(addingCategory, "", "New category name...")
		case key.Matches(k, delKey):
			m.deleteSelected()
			return m, nil
		case key.Matches(k, undoKey):
			m.undo()
			return m, nil
		case key.Matches(k, newKey):
			m.editingTrip = false
			return m.startInput(tripName, "", "Trip name...")
		case key.Matches(k, editKey):
			t, ok := m.store.Current()
			if !ok {
				return m, nil
			}
			m.editingTrip = true
			return m.startInput(tripName, t.Name, "Trip name...")
		case key.Matches(k, dropKey):
			if t, ok := m.store.Current(); ok {
				_, _ = m.store.DeleteTrip(m.ctx, t.ID)
				m.after()
			}
			return m, nil
		case key.Matches(k, nextKey):
			m.cycle(1)
			return m, nil
		case key.Matches(k, prevKey):
			m.cycle(-1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			m.closeInput()
			return m, nil
		case "enter":
			m.submit(m.input.Value())
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit hands the input to the store. On failure the input stays open so
// the user can correct it; the error is shown as a toast.
func (m *Model) submit(value string) {
	var err error
	switch m.mode {
	case addingItem:
		t, _ := m.store.Current()
		_, err = m.store.AddItem(m.ctx, t.ID, m.targetCat, value)
	case addingCategory:
		t, _ := m.store.Current()
		_, err = m.store.AddCategory(m.ctx, t.ID, value)
	case tripName:
		m.pendingName = value
		date := ""
		if t, ok := m.store.Current(); ok && m.editingTrip {
			date = t.Date
		}
		m.mode = tripDate
		m.input.Placeholder = "Date (YYYY-MM-DD), empty for none"
		m.input.SetValue(date)
		m.input.CursorEnd()
		return
	case tripDate:
		if t, ok := m.store.Current(); ok && m.editingTrip {
			_, err = m.store.EditTrip(m.ctx, t.ID, m.pendingName, value)
		} else {
			_, err = m.store.AddTrip(m.ctx, m.pendingName, value)
		}
		var verr *packing.ValidationError
		if errors.As(err, &verr) && verr.Field == "name" {
			m.mode = tripName
			m.input.Placeholder = "Trip name..."
			m.input.SetValue(m.pendingName)
			m.input.CursorEnd()
			m.after()
			return
		}
	}
	m.after()
	var perr *packing.PersistenceError
	if err == nil || errors.As(err, &perr) {
		m.closeInput()
	}
}

func (m Model) startAddItem() (tea.Model, tea.Cmd) {
	r, ok := m.list.SelectedItem().(row)
	if !ok {
		m.toast = &notify.Notification{Kind: notify.Error, Title: "No category", Description: "Add a category first (c)"}
		return m, nil
	}
	m.targetCat = r.cat.ID
	return m.startInput(addingItem, "", "New item in "+r.cat.Name+"...")
}

func (m Model) startInput(md mode, value, placeholder string) (tea.Model, tea.Cmd) {
	if md != tripName && !m.hasTrip() {
		m.toast = &notify.Notification{Kind: notify.Error, Title: "No trip", Description: "Create a trip first (n)"}
		return m, nil
	}
	m.mode = md
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Placeholder = placeholder
	m.list.SetSize(m.width-4, m.listHeight())
	cmd := m.input.Focus()
	return m, cmd
}

func (m *Model) closeInput() {
	m.mode = browsing
	m.pendingName, m.targetCat = "", ""
	m.input.SetValue("")
	m.input.Blur()
	m.list.SetSize(m.width-4, m.listHeight())
}

func (m Model) hasTrip() bool {
	_, ok := m.store.Current()
	return ok
}

func (m *Model) toggle() {
	r, ok := m.list.SelectedItem().(row)
	if !ok || r.header {
		return
	}
	t, _ := m.store.Current()
	_, _ = m.store.ToggleItem(m.ctx, t.ID, r.cat.ID, r.item.ID)
	m.after()
}

func (m *Model) deleteSelected() {
	r, ok := m.list.SelectedItem().(row)
	if !ok {
		return
	}
	t, _ := m.store.Current()
	if r.header {
		_, _ = m.store.DeleteCategory(m.ctx, t.ID, r.cat.ID)
	} else {
		_, _ = m.store.DeleteItem(m.ctx, t.ID, r.cat.ID, r.item.ID)
	}
	m.after()
}

// undo runs the action of the toast on screen, once.
func (m *Model) undo() {
	if m.toast == nil || m.toast.Action == nil {
		m.toast = &notify.Notification{Kind: notify.Error, Title: "Nothing to undo"}
		return
	}
	act := m.toast.Action
	m.toast.Action = nil
	act.Run()
	m.after()
}

func (m *Model) cycle(step int) {
	trips := m.store.Trips()
	if len(trips) < 2 {
		return
	}
	cur, _ := m.store.Current()
	i := 0
	for j, t := range trips {
		if t.ID == cur.ID {
			i = j
			break
		}
	}
	i = (i + step + len(trips)) % len(trips)
	_ = m.store.SelectTrip(trips[i].ID)
	m.list.ResetFilter()
	m.after()
	m.list.Select(0)
}

// after picks up the toast of the last store call and redraws the list.
func (m *Model) after() {
	m.pickToast()
	m.refresh()
}

func (m *Model) pickToast() {
	if n, ok := m.toasts.Take(); ok {
		m.toast = &n
	}
}

func (m *Model) refresh() {
	t, ok := m.store.Current()
	if !ok {
		m.list.Title = titleStyle.Render("No trips yet") + "  " + mutedStyle.Render("press n to create one")
		m.list.SetItems(nil)
		return
	}

	var rows []list.Item
	for _, c := range t.Categories {
		rows = append(rows, row{cat: c, header: true})
		for _, it := range c.Items {
			rows = append(rows, row{cat: c, item: it})
		}
	}
	idx := m.list.Index()
	m.list.SetItems(rows)
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}

	packed, total := t.Counts()
	date := t.Date
	if date == "" {
		date = "no date"
	}
	m.list.Title = fmt.Sprintf("%s  %s   %s %d  %s %d   %s",
		titleStyle.Render(t.Name), mutedStyle.Render(date),
		successStyle.Render("✔"), packed,
		pendingStyle.Render("•"), total-packed,
		ui.ProgressBar(m.store.CurrentProgress(), 20))
}

func (m Model) listHeight() int {
	h := m.height - 6
	if m.mode != browsing {
		h -= 3
	}
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) View() string {
	content := m.list.View()
	if m.mode != browsing {
		title := map[mode]string{
			addingItem:     "Add item",
			addingCategory: "Add category",
			tripName:       "Trip name",
			tripDate:       "Trip date",
		}[m.mode]
		if m.mode == tripName && !m.editingTrip {
			title = "New trip"
		}
		content += "\n" + panelString(title+"\n"+m.input.View())
	}
	if m.toast != nil {
		content += "\n" + m.toastLine()
	}
	return panelString(content)
}

func (m Model) toastLine() string {
	msg := m.toast.Title
	if m.toast.Description != "" {
		msg += ": " + m.toast.Description
	}
	if m.toast.Kind == notify.Error {
		return errorStyle.Render("✖ " + msg)
	}
	line := successStyle.Render("✔ " + msg)
	if m.toast.Action != nil {
		line += "  " + helpStyle.Render("(u to "+strings.ToLower(m.toast.Action.Label)+")")
	}
	return line
}
