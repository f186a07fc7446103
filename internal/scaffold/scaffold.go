// Package scaffold holds the embedded SKILL.md template used by
// `skillref init`. The template is embedded at compile time so the binary
// can scaffold skills without any external files.
package scaffold

import (
	_ "embed"
	"strings"
)

//go:embed template/SKILL.md
var templateContent string

// Render fills the embedded SKILL.md template with the skill name.
func Render(name string) string {
	return strings.ReplaceAll(templateContent, "{{name}}", name)
}
