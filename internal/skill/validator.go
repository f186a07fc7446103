package skill

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Length limits for skill properties.
const (
	// MaxNameLength is the maximum skill name length in Unicode code points.
	MaxNameLength = 64

	// MaxDescriptionLength is the maximum description length in bytes.
	MaxDescriptionLength = 1024

	// MaxCompatibilityLength is the maximum compatibility length in bytes.
	MaxCompatibilityLength = 500
)

// allowedFields is the fixed set of frontmatter keys a skill may declare.
var allowedFields = []string{
	"name",
	"description",
	"license",
	"allowed-tools",
	"metadata",
	"compatibility",
}

func isAllowedField(field string) bool {
	for _, allowed := range allowedFields {
		if field == allowed {
			return true
		}
	}
	return false
}

// Validate checks a skill directory against the full rule set and returns
// the violations found. An empty result means the skill is valid.
//
// Structural problems (missing path, missing or unreadable SKILL.md,
// malformed frontmatter) short-circuit with a single-message result, since
// no semantic check is meaningful without decoded frontmatter. Once the
// frontmatter decodes, every applicable semantic violation is accumulated.
func Validate(skillDir string) []string {
	return validate(defaultFS, skillDir)
}

func validate(fsys FS, skillDir string) []string {
	if !fsys.Exists(skillDir) {
		return []string{fmt.Sprintf("Path does not exist: %s", skillDir)}
	}
	if !fsys.IsDir(skillDir) {
		return []string{fmt.Sprintf("Not a directory: %s", skillDir)}
	}

	path, ok := findSkillFile(fsys, skillDir)
	if !ok {
		return []string{"Missing required file: SKILL.md"}
	}

	content, err := fsys.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("Failed to read %s: %v", path, err)}
	}

	mapping, _, err := ParseFrontmatter(string(content))
	if err != nil {
		return []string{err.Error()}
	}

	return ValidateMapping(mapping, skillDir)
}

// ValidateMapping checks already-parsed frontmatter against the semantic
// rule set, accumulating every violation in check order: allowed keys,
// name rules, description rules, compatibility rules. skillDir may be
// empty to skip the directory-name match.
func ValidateMapping(mapping map[string]any, skillDir string) []string {
	var errs []string

	errs = append(errs, validateAllowedFields(mapping)...)

	if _, ok := mapping["name"]; !ok {
		errs = append(errs, "Missing required field in frontmatter: name")
	} else if name, ok := stringValue(mapping, "name"); ok {
		errs = append(errs, validateName(name, skillDir)...)
	} else {
		errs = append(errs, "Field 'name' must be a non-empty string")
	}

	if _, ok := mapping["description"]; !ok {
		errs = append(errs, "Missing required field in frontmatter: description")
	} else if description, ok := stringValue(mapping, "description"); ok {
		errs = append(errs, validateDescription(description)...)
	} else {
		errs = append(errs, "Field 'description' must be a non-empty string")
	}

	if compat, ok := stringValue(mapping, "compatibility"); ok {
		errs = append(errs, validateCompatibility(compat)...)
	}

	return errs
}

// ValidateName checks a skill name against the naming rules without a
// directory match. Used when the skill directory does not exist yet.
func ValidateName(name string) []string {
	return validateName(name, "")
}

// validateName checks name format and, when skillDir is non-empty, that the
// directory basename matches the name. Skill names support Unicode letters
// and digits plus hyphens, must be lowercase, and cannot start or end with
// a hyphen. Both the name and the directory basename are NFKC-normalized
// before comparison so composed and decomposed spellings agree.
func validateName(name string, skillDir string) []string {
	if strings.TrimSpace(name) == "" {
		return []string{"Field 'name' must be a non-empty string"}
	}

	name = norm.NFKC.String(strings.TrimSpace(name))

	var errs []string

	if count := utf8.RuneCountInString(name); count > MaxNameLength {
		errs = append(errs, fmt.Sprintf("Skill name '%s' exceeds %d character limit (%d chars)",
			name, MaxNameLength, count))
	}
	if name != strings.ToLower(name) {
		errs = append(errs, fmt.Sprintf("Skill name '%s' must be lowercase", name))
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		errs = append(errs, "Skill name cannot start or end with a hyphen")
	}
	if strings.Contains(name, "--") {
		errs = append(errs, "Skill name cannot contain consecutive hyphens")
	}
	if !isNameCharset(name) {
		errs = append(errs, fmt.Sprintf("Skill name '%s' contains invalid characters. Only letters, digits, and hyphens are allowed.", name))
	}

	if skillDir != "" {
		dirName := filepath.Base(skillDir)
		if norm.NFKC.String(dirName) != name {
			errs = append(errs, fmt.Sprintf("Directory name '%s' must match skill name '%s'", dirName, name))
		}
	}

	return errs
}

func isNameCharset(name string) bool {
	for _, r := range name {
		if r == '-' || unicode.IsLetter(r) || unicode.IsNumber(r) {
			continue
		}
		return false
	}
	return true
}

func validateDescription(description string) []string {
	if strings.TrimSpace(description) == "" {
		return []string{"Field 'description' must be a non-empty string"}
	}
	if len(description) > MaxDescriptionLength {
		return []string{fmt.Sprintf("Description exceeds %d character limit (%d chars)",
			MaxDescriptionLength, len(description))}
	}
	return nil
}

func validateCompatibility(compatibility string) []string {
	if len(compatibility) > MaxCompatibilityLength {
		return []string{fmt.Sprintf("Compatibility exceeds %d character limit (%d chars)",
			MaxCompatibilityLength, len(compatibility))}
	}
	return nil
}

// validateAllowedFields reports any frontmatter keys outside the allowed
// set. Offending keys and the allowed set are both listed sorted so the
// message is stable.
func validateAllowedFields(mapping map[string]any) []string {
	var extra []string
	for key := range mapping {
		if !isAllowedField(key) {
			extra = append(extra, key)
		}
	}
	if len(extra) == 0 {
		return nil
	}

	sort.Strings(extra)
	allowed := append([]string(nil), allowedFields...)
	sort.Strings(allowed)

	return []string{fmt.Sprintf("Unexpected fields in frontmatter: %s. Only %s are allowed.",
		strings.Join(extra, ", "), strings.Join(allowed, ", "))}
}
