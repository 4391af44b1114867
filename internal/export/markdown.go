// Package export renders trips for sharing: a Markdown checklist or the raw
// JSON wire format.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
)

// Markdown renders one trip as a GitHub-style task list.
func Markdown(t model.Trip) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# " + strings.TrimSpace(t.Name))
	writeLn("")
	packed, total := t.Counts()
	meta := fmt.Sprintf("%d/%d items packed (%d%%)", packed, total, packing.Progress(t))
	if t.Date != "" {
		meta = t.Date + " · " + meta
	}
	writeLn(meta)

	for _, c := range t.Categories {
		writeLn("")
		writeLn("## " + strings.TrimSpace(c.Name))
		writeLn("")
		if len(c.Items) == 0 {
			writeLn("_No items yet._")
			continue
		}
		for _, it := range c.Items {
			box := "[ ]"
			if it.Packed {
				box = "[x]"
			}
			writeLn("- " + box + " " + strings.TrimSpace(it.Name))
		}
	}
	return buf.String()
}

// JSON renders trips in the same shape the store persists.
func JSON(trips []model.Trip, pretty bool) ([]byte, error) {
	if trips == nil {
		trips = []model.Trip{}
	}
	if pretty {
		return json.MarshalIndent(trips, "", "  ")
	}
	return json.Marshal(trips)
}

// RenderTerminal styles markdown for a terminal. It falls back to the raw
// markdown if the renderer can't be built.
func RenderTerminal(md string, width int, style string) string {
	if width <= 0 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}
	// Avoid WithAutoStyle(): it can block waiting on terminal queries in some setups.
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
