// Package skill parses, validates, and renders Agent Skill metadata.
//
// A skill is a directory containing a SKILL.md descriptor: a YAML
// frontmatter block declaring the skill's name, description, and optional
// properties, followed by free-form markdown instructions.
//
// Example SKILL.md:
//
//	---
//	name: pdf-reader
//	description: Read and extract text from PDF files
//	license: MIT
//	metadata:
//	  author: example
//	---
//
//	# PDF Reader
//	Follow these steps ...
package skill

// SkillFileName is the preferred descriptor filename inside a skill directory.
const SkillFileName = "SKILL.md"

// skillFileNameLower is the accepted lowercase fallback.
const skillFileNameLower = "skill.md"

// Properties holds the typed form of a skill's frontmatter. Name and
// Description are always present and trimmed on a successfully parsed
// record; optional fields are zero-valued when absent.
type Properties struct {
	// Name is the skill identifier in kebab-case (required).
	Name string `json:"name" yaml:"name"`

	// Description states what the skill does and when to use it (required).
	Description string `json:"description" yaml:"description"`

	// License for the skill (optional).
	License string `json:"license,omitempty" yaml:"license,omitempty"`

	// Compatibility information for the skill (optional).
	Compatibility string `json:"compatibility,omitempty" yaml:"compatibility,omitempty"`

	// AllowedTools lists tool patterns the skill requires (optional,
	// experimental). The pattern string is kept opaque.
	AllowedTools string `json:"allowed-tools,omitempty" yaml:"allowed-tools,omitempty"`

	// Metadata holds client-specific key-value pairs (optional).
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ToMap returns the frontmatter key-value form of the properties.
// Absent optional fields are omitted entirely.
func (p Properties) ToMap() map[string]any {
	result := map[string]any{
		"name":        p.Name,
		"description": p.Description,
	}

	if p.License != "" {
		result["license"] = p.License
	}
	if p.Compatibility != "" {
		result["compatibility"] = p.Compatibility
	}
	if p.AllowedTools != "" {
		result["allowed-tools"] = p.AllowedTools
	}
	if len(p.Metadata) > 0 {
		meta := make(map[string]string, len(p.Metadata))
		for k, v := range p.Metadata {
			meta[k] = v
		}
		result["metadata"] = meta
	}

	return result
}
