package list

import (
	"strings"
	"testing"

	"github.com/indaco/kopen/internal/printer"
	"github.com/tidwall/gjson"
)

func init() {
	printer.SetNoColor(true)
}

func sampleResult() *Result {
	return NewResult("/work", []string{
		"/work/psu/psu.kicad_pro",
		"/work/amp/amp.kicad_pro",
	})
}

func TestFormatter_FormatResult_Text(t *testing.T) {
	output := NewFormatter(FormatText).FormatResult(sampleResult())

	checks := []string{
		"KiCad Projects",
		"/work",
		"amp/amp.kicad_pro",
		"psu/psu.kicad_pro",
		"Found: 2 projects",
	}
	for _, check := range checks {
		if !strings.Contains(output, check) {
			t.Errorf("output missing expected text %q", check)
		}
	}

	if strings.Index(output, "amp/") > strings.Index(output, "psu/") {
		t.Error("projects should be listed in sorted order")
	}
}

func TestFormatter_FormatResult_Text_Empty(t *testing.T) {
	output := NewFormatter(FormatText).FormatResult(NewResult("/work", nil))
	if !strings.Contains(output, "No KiCad projects found") {
		t.Errorf("output = %q, want the empty summary", output)
	}
}

func TestFormatter_FormatResult_Table(t *testing.T) {
	output := NewFormatter(FormatTable).FormatResult(sampleResult())

	for _, check := range []string{"NAME", "PATH", "amp", "psu/psu.kicad_pro"} {
		if !strings.Contains(output, check) {
			t.Errorf("output missing expected text %q", check)
		}
	}
}

func TestFormatter_FormatResult_JSON(t *testing.T) {
	output := NewFormatter(FormatJSON).FormatResult(sampleResult())

	if !gjson.Valid(output) {
		t.Fatalf("output is not valid JSON: %s", output)
	}

	doc := gjson.Parse(output)
	if got := doc.Get("root").String(); got != "/work" {
		t.Errorf("root = %q, want /work", got)
	}
	if got := doc.Get("count").Int(); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
	if got := doc.Get("projects.#").Int(); got != 2 {
		t.Fatalf("projects length = %d, want 2", got)
	}
	if got := doc.Get("projects.0.name").String(); got != "amp" {
		t.Errorf("projects.0.name = %q, want amp", got)
	}
	if got := doc.Get("projects.1.path").String(); got != "/work/psu/psu.kicad_pro" {
		t.Errorf("projects.1.path = %q", got)
	}
	if got := doc.Get("projects.1.dir").String(); got != "/work/psu" {
		t.Errorf("projects.1.dir = %q", got)
	}
}

func TestFormatter_FormatResult_JSON_Empty(t *testing.T) {
	output := NewFormatter(FormatJSON).FormatResult(NewResult("/work", nil))

	doc := gjson.Parse(output)
	if !doc.Get("projects").IsArray() {
		t.Errorf("projects should be an empty array, got %s", output)
	}
	if doc.Get("count").Int() != 0 {
		t.Errorf("count = %d, want 0", doc.Get("count").Int())
	}
}
