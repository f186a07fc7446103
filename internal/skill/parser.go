package skill

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontmatterDelimiter marks the start and end of the YAML header block.
const frontmatterDelimiter = "---"

// FindSkillFile returns the path to the descriptor file inside skillDir,
// preferring SKILL.md (uppercase) over skill.md (lowercase).
func FindSkillFile(skillDir string) (string, bool) {
	return findSkillFile(defaultFS, skillDir)
}

func findSkillFile(fsys FS, skillDir string) (string, bool) {
	for _, name := range []string{SkillFileName, skillFileNameLower} {
		path := filepath.Join(skillDir, name)
		if fsys.Exists(path) {
			return path, true
		}
	}
	return "", false
}

// ParseFrontmatter splits raw SKILL.md content into the decoded frontmatter
// mapping and the markdown body. The body is trimmed of surrounding
// whitespace. Returns a ParseError when the delimiter is missing, the
// frontmatter is unclosed, or the YAML does not decode.
func ParseFrontmatter(content string) (map[string]any, string, error) {
	if !strings.HasPrefix(content, frontmatterDelimiter) {
		return nil, "", &ParseError{Message: "SKILL.md must start with YAML frontmatter (---)"}
	}

	parts := strings.SplitN(content, frontmatterDelimiter, 3)
	if len(parts) < 3 {
		return nil, "", &ParseError{Message: "SKILL.md frontmatter not properly closed with ---"}
	}

	var mapping map[string]any
	if err := yaml.Unmarshal([]byte(parts[1]), &mapping); err != nil {
		return nil, "", &ParseError{Message: fmt.Sprintf("Invalid YAML in frontmatter: %v", err)}
	}

	return mapping, strings.TrimSpace(parts[2]), nil
}

// ReadProperties locates and parses the SKILL.md in skillDir and returns
// its typed properties. Only presence and shape of the required fields are
// enforced here; use Validate for the full rule set.
func ReadProperties(skillDir string) (*Properties, error) {
	return readProperties(defaultFS, skillDir)
}

func readProperties(fsys FS, skillDir string) (*Properties, error) {
	path, ok := findSkillFile(fsys, skillDir)
	if !ok {
		return nil, &NotFoundError{Dir: skillDir}
	}

	content, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	mapping, _, err := ParseFrontmatter(string(content))
	if err != nil {
		return nil, err
	}

	if _, ok := mapping["name"]; !ok {
		return nil, newValidationError("Missing required field in frontmatter: name")
	}
	if _, ok := mapping["description"]; !ok {
		return nil, newValidationError("Missing required field in frontmatter: description")
	}

	name, ok := stringValue(mapping, "name")
	if !ok || strings.TrimSpace(name) == "" {
		return nil, newValidationError("Field 'name' must be a non-empty string")
	}
	description, ok := stringValue(mapping, "description")
	if !ok || strings.TrimSpace(description) == "" {
		return nil, newValidationError("Field 'description' must be a non-empty string")
	}

	props := &Properties{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}

	// Non-string optional scalars are treated as absent rather than
	// rejected. The leniency is deliberate: clients that set these fields
	// to odd YAML shapes keep parsing.
	if v, ok := stringValue(mapping, "license"); ok {
		props.License = v
	}
	if v, ok := stringValue(mapping, "compatibility"); ok {
		props.Compatibility = v
	}
	if v, ok := stringValue(mapping, "allowed-tools"); ok {
		props.AllowedTools = v
	}
	props.Metadata = stringMetadata(mapping)

	return props, nil
}

// stringValue returns the value for key when it is string-shaped.
func stringValue(mapping map[string]any, key string) (string, bool) {
	v, ok := mapping[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// stringMetadata converts the nested metadata mapping to string keys and
// values. Non-string values are stringified rather than rejected; an empty
// result collapses to absent.
func stringMetadata(mapping map[string]any) map[string]string {
	nested, ok := mapping["metadata"].(map[string]any)
	if !ok || len(nested) == 0 {
		return nil
	}

	out := make(map[string]string, len(nested))
	for k, v := range nested {
		if s, ok := v.(string); ok {
			out[k] = s
			continue
		}
		out[k] = fmt.Sprintf("%v", v)
	}
	return out
}
