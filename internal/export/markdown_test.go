package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/idilsaglam/packlist/internal/model"
)

func TestMarkdown(t *testing.T) {
	trip := model.Trip{
		Name: "Ski Trip",
		Date: "2099-02-01",
		Categories: []model.Category{
			{Name: "Gear", Items: []model.Item{{Name: "Goggles", Packed: true}, {Name: "Gloves"}}},
			{Name: "Food"},
		},
	}
	got := Markdown(trip)
	want := strings.Join([]string{
		"# Ski Trip",
		"",
		"2099-02-01 · 1/2 items packed (50%)",
		"",
		"## Gear",
		"",
		"- [x] Goggles",
		"- [ ] Gloves",
		"",
		"## Food",
		"",
		"_No items yet._",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("markdown mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestJSON_NilIsEmptyArray(t *testing.T) {
	b, err := JSON(nil, false)
	if err != nil || string(b) != "[]" {
		t.Fatalf("got %q err=%v", b, err)
	}
	b, err = JSON(model.DefaultTrips(), true)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var back []model.Trip
	if err := json.Unmarshal(b, &back); err != nil || len(back) != 2 {
		t.Fatalf("unexpected decode: %v %d", err, len(back))
	}
}

func TestRenderTerminal_ContainsItems(t *testing.T) {
	out := RenderTerminal("# Trip\n\n- [x] Goggles\n", 40, "notty")
	if !strings.Contains(out, "Goggles") {
		t.Fatalf("rendered output lost content: %q", out)
	}
}
