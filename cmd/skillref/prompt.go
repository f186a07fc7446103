package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillref/cli/internal/skill"
)

// toPromptCmd renders the <available_skills> block for agent prompts.
var toPromptCmd = &cobra.Command{
	Use:   "to-prompt <path>...",
	Short: "Render the <available_skills> block for agent prompts",
	Long: `Render the <available_skills> XML block describing one or more
skills, suitable for direct inclusion in an agent system prompt.

Skills appear in argument order. If any skill fails to read, the whole
render fails; no partial output is produced.

EXAMPLES:
  skillref to-prompt ./my-skill
  skillref to-prompt ./skills/*/ > prompt.xml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runToPrompt,
}

func runToPrompt(cmd *cobra.Command, args []string) error {
	skillDirs := make([]string, 0, len(args))
	for _, arg := range args {
		skillDirs = append(skillDirs, resolveSkillPath(arg))
	}

	out, err := skill.ToPrompt(skillDirs)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
