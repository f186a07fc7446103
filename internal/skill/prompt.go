package skill

import (
	"path/filepath"
	"strings"
)

// entityReplacer escapes the five XML special characters with named
// entities. strings.Replacer substitutes in a single pass, so ampersands
// introduced by earlier replacements are never double-escaped.
var entityReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

func escapeEntities(s string) string {
	return entityReplacer.Replace(s)
}

// ToPrompt renders the <available_skills> block for the given skill
// directories, in input order, for inclusion in an agent system prompt.
// Each entry carries the skill's escaped name and description plus the
// location of its SKILL.md when it can still be found. The first directory
// that fails to read aborts the render; no partial output is produced.
//
// Example output:
//
//	<available_skills>
//	<skill>
//	<name>pdf-reader</name>
//	<description>Read and extract text from PDF files</description>
//	<location>/path/to/pdf-reader/SKILL.md</location>
//	</skill>
//	</available_skills>
func ToPrompt(skillDirs []string) (string, error) {
	return toPrompt(defaultFS, skillDirs)
}

func toPrompt(fsys FS, skillDirs []string) (string, error) {
	if len(skillDirs) == 0 {
		return "<available_skills>\n</available_skills>", nil
	}

	lines := []string{"<available_skills>"}

	for _, dir := range skillDirs {
		resolved := canonicalDir(dir)

		props, err := readProperties(fsys, resolved)
		if err != nil {
			return "", err
		}

		lines = append(lines,
			"<skill>",
			"<name>",
			escapeEntities(props.Name),
			"</name>",
			"<description>",
			escapeEntities(props.Description),
			"</description>",
		)

		if path, ok := findSkillFile(fsys, resolved); ok {
			lines = append(lines,
				"<location>",
				path,
				"</location>",
			)
		}

		lines = append(lines, "</skill>")
	}

	lines = append(lines, "</available_skills>")

	return strings.Join(lines, "\n"), nil
}

// canonicalDir resolves dir to an absolute path with symlinks evaluated,
// falling back to the original path when resolution fails (for example
// when the path does not exist).
func canonicalDir(dir string) string {
	abs, err := filepath.Abs(dir)
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			return resolved
		}
	}
	return dir
}
