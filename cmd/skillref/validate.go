package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/skillref/cli/internal/skill"
	"github.com/skillref/cli/internal/ui"
	"github.com/skillref/cli/internal/watch"
)

var validateWatch bool

// validateCmd checks a skill directory against the Agent Skills rules.
var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a skill directory",
	Long: `Validate a skill directory against the Agent Skills rules.

Checks that the directory contains a SKILL.md with well-formed YAML
frontmatter, the required name and description fields, correct naming
conventions, and length limits.

The path may point at the skill directory itself or directly at its
SKILL.md file.

EXAMPLES:
  skillref validate ./my-skill             # Validate once
  skillref validate ./my-skill/SKILL.md    # Same, via the descriptor
  skillref validate ./my-skill --watch     # Re-validate on changes`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateWatch, "watch", false, "Re-validate whenever the skill directory changes")
}

// runValidate validates a skill directory, printing each violation on its
// own line and failing when any are found.
func runValidate(cmd *cobra.Command, args []string) error {
	skillDir := resolveSkillPath(args[0])

	if validateWatch {
		return runValidateWatch(skillDir)
	}

	if !reportValidation(skillDir) {
		return fmt.Errorf("validation failed")
	}
	return nil
}

// reportValidation runs one validation pass and prints the outcome.
// Returns true when the skill is valid.
func reportValidation(skillDir string) bool {
	violations := skill.Validate(skillDir)
	if len(violations) == 0 {
		ui.PrintSuccess("Valid skill: %s", skillDir)
		return true
	}

	ui.PrintError("Validation failed for %s:", skillDir)
	for _, violation := range violations {
		ui.PrintItem("%s", violation)
	}
	return false
}

// runValidateWatch validates once, then re-validates on every change to
// the skill directory until interrupted. The exit status reflects the
// watch loop, not the last validation pass.
func runValidateWatch(skillDir string) error {
	reportValidation(skillDir)
	ui.PrintDim("Watching %s for changes (Ctrl+C to stop)...", skillDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watch.Run(ctx, skillDir, 0, func() {
		ui.Println()
		reportValidation(skillDir)
	})
}
