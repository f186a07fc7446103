package scaffold

import (
	"strings"
	"testing"

	"github.com/skillref/cli/internal/skill"
)

func TestRenderFillsName(t *testing.T) {
	out := Render("my-skill")
	if strings.Contains(out, "{{name}}") {
		t.Error("template placeholder left unfilled")
	}
	if !strings.Contains(out, "name: my-skill") {
		t.Errorf("rendered template missing name line:\n%s", out)
	}
}

func TestRenderedTemplateValidates(t *testing.T) {
	mapping, _, err := skill.ParseFrontmatter(Render("my-skill"))
	if err != nil {
		t.Fatalf("ParseFrontmatter error = %v", err)
	}
	if errs := skill.ValidateMapping(mapping, ""); len(errs) != 0 {
		t.Errorf("scaffolded skill should be valid, got %v", errs)
	}
}
