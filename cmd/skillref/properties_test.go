package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/skillref/cli/internal/skill"
)

func writeTestSkill(t *testing.T, parent, name, content string) string {
	t.Helper()
	skillDir := filepath.Join(parent, name)
	if err := os.MkdirAll(skillDir, 0755); err != nil {
		t.Fatalf("MkdirAll error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}
	return skillDir
}

func TestPropertiesJSONFields(t *testing.T) {
	skillDir := writeTestSkill(t, t.TempDir(), "my-skill",
		"---\nname: my-skill\ndescription: A test skill\nlicense: MIT\nmetadata:\n  author: Test\n---\nBody\n")

	props, err := skill.ReadProperties(skillDir)
	if err != nil {
		t.Fatalf("ReadProperties error = %v", err)
	}
	out, err := propertiesJSON(props)
	if err != nil {
		t.Fatalf("propertiesJSON error = %v", err)
	}

	if got := gjson.Get(out, "name").String(); got != "my-skill" {
		t.Errorf("name = %q", got)
	}
	if got := gjson.Get(out, "description").String(); got != "A test skill" {
		t.Errorf("description = %q", got)
	}
	if got := gjson.Get(out, "license").String(); got != "MIT" {
		t.Errorf("license = %q", got)
	}
	if got := gjson.Get(out, "metadata.author").String(); got != "Test" {
		t.Errorf("metadata.author = %q", got)
	}
}

func TestPropertiesJSONOmitsAbsentOptionals(t *testing.T) {
	skillDir := writeTestSkill(t, t.TempDir(), "my-skill",
		"---\nname: my-skill\ndescription: A test skill\n---\nBody\n")

	props, err := skill.ReadProperties(skillDir)
	if err != nil {
		t.Fatalf("ReadProperties error = %v", err)
	}
	out, err := propertiesJSON(props)
	if err != nil {
		t.Fatalf("propertiesJSON error = %v", err)
	}

	for _, key := range []string{"license", "compatibility", "allowed-tools", "metadata"} {
		if gjson.Get(out, key).Exists() {
			t.Errorf("key %q should be omitted, got %s", key, out)
		}
	}
}
