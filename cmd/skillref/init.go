package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillref/cli/internal/scaffold"
	"github.com/skillref/cli/internal/skill"
	"github.com/skillref/cli/internal/ui"
)

var initParentDir string

// initCmd scaffolds a new skill directory from the embedded template.
var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Scaffold a new skill directory",
	Long: `Scaffold a new skill directory containing a SKILL.md template.

The name must satisfy the Agent Skills naming rules (lowercase letters,
digits, and hyphens; at most 64 characters). The skill directory is
created under the parent directory and named after the skill, so the
name/directory match rule holds from the start.

EXAMPLES:
  skillref init my-skill               # Create ./my-skill/SKILL.md
  skillref init pdf-reader -d ~/skills # Create under another parent`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initParentDir, "dir", "d", ".", "Parent directory for the new skill")
}

func runInit(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])

	if violations := skill.ValidateName(name); len(violations) > 0 {
		ui.PrintError("Invalid skill name %q:", name)
		for _, violation := range violations {
			ui.PrintItem("%s", violation)
		}
		return fmt.Errorf("invalid skill name")
	}

	skillDir := filepath.Join(initParentDir, name)
	skillPath := filepath.Join(skillDir, skill.SkillFileName)

	if _, err := os.Stat(skillPath); err == nil {
		return fmt.Errorf("%s already exists", skillPath)
	}

	if err := os.MkdirAll(skillDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", skillDir, err)
	}
	if err := os.WriteFile(skillPath, []byte(scaffold.Render(name)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", skillPath, err)
	}

	ui.PrintSuccess("Created %s", skillPath)
	ui.PrintDim("  Edit the description, then run: skillref validate %s", skillDir)
	return nil
}
