package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/skillref/cli/internal/skill"
)

// isSkillFile reports whether path points directly at a SKILL.md or
// skill.md file rather than a skill directory.
func isSkillFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return strings.EqualFold(filepath.Base(path), skill.SkillFileName)
}

// resolveSkillPath maps a SKILL.md file path to its parent skill
// directory, so every command accepts either form.
func resolveSkillPath(path string) string {
	if isSkillFile(path) {
		return filepath.Dir(path)
	}
	return path
}
