package skill

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestToMapMinimal(t *testing.T) {
	props := Properties{Name: "my-skill", Description: "A test skill"}

	m := props.ToMap()
	if len(m) != 2 {
		t.Fatalf("len = %d, want 2: %v", len(m), m)
	}
	if m["name"] != "my-skill" || m["description"] != "A test skill" {
		t.Errorf("map = %v", m)
	}
}

func TestToMapWithOptionalFields(t *testing.T) {
	props := Properties{
		Name:          "my-skill",
		Description:   "A test skill",
		License:       "MIT",
		Compatibility: "Requires bash",
		AllowedTools:  "Bash(git:*)",
		Metadata:      map[string]string{"author": "Test"},
	}

	m := props.ToMap()
	if len(m) != 6 {
		t.Fatalf("len = %d, want 6: %v", len(m), m)
	}
	if m["license"] != "MIT" {
		t.Errorf("license = %v", m["license"])
	}
	if m["allowed-tools"] != "Bash(git:*)" {
		t.Errorf("allowed-tools = %v", m["allowed-tools"])
	}
	meta, ok := m["metadata"].(map[string]string)
	if !ok || meta["author"] != "Test" {
		t.Errorf("metadata = %v", m["metadata"])
	}
}

func TestJSONOmitsAbsentOptionals(t *testing.T) {
	props := Properties{Name: "my-skill", Description: "A test skill"}

	out, err := json.Marshal(props)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if strings.Contains(string(out), "license") || strings.Contains(string(out), "metadata") {
		t.Errorf("json = %s, want optional fields omitted", out)
	}
	if !strings.Contains(string(out), `"name":"my-skill"`) {
		t.Errorf("json = %s, want name present", out)
	}
}
