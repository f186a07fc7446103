package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillref/cli/internal/skill"
)

// readPropertiesCmd prints skill properties as JSON.
var readPropertiesCmd = &cobra.Command{
	Use:   "read-properties <path>",
	Short: "Read skill properties and print them as JSON",
	Long: `Read the YAML frontmatter from a skill's SKILL.md and print the
properties as JSON. Absent optional fields are omitted from the output.

Only presence and shape of the required fields are enforced here; use
"skillref validate" for the full rule set.

EXAMPLES:
  skillref read-properties ./my-skill
  skillref read-properties ./my-skill/SKILL.md
  skillref read-properties ./my-skill | jq .name`,
	Args: cobra.ExactArgs(1),
	RunE: runReadProperties,
}

func runReadProperties(cmd *cobra.Command, args []string) error {
	skillDir := resolveSkillPath(args[0])

	props, err := skill.ReadProperties(skillDir)
	if err != nil {
		return err
	}

	out, err := propertiesJSON(props)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// propertiesJSON renders properties as indented JSON.
func propertiesJSON(props *skill.Properties) (string, error) {
	out, err := json.MarshalIndent(props, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode properties: %w", err)
	}
	return string(out), nil
}
