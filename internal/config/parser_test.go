package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAMLSpec = `
name: archive-cleanup
rules:
  - type: retweet
  - type: substring
    config:
      substrings: ["spoiler"]
corrections:
  enabled: true
  window: 12h
  maxDistance: 10
output:
  indent: true
`

const validJSONSpec = `{
  "name": "archive-cleanup",
  "rules": [
    {"type": "retweet"},
    {"type": "prefix", "config": {"prefixes": ["#daily"]}}
  ]
}`

func TestParseSpecString_JSON(t *testing.T) {
	result := ParseSpecString(validJSONSpec, "")

	if !result.IsValid() {
		t.Fatalf("expected valid result, got errors: %v", result.AllErrors())
	}
	if result.Format != "json" {
		t.Errorf("format = %q, want json", result.Format)
	}
	if result.Data["name"] != "archive-cleanup" {
		t.Errorf("name = %v, want archive-cleanup", result.Data["name"])
	}
}

func TestParseSpecString_YAML(t *testing.T) {
	result := ParseSpecString(validYAMLSpec, "")

	if !result.IsValid() {
		t.Fatalf("expected valid result, got errors: %v", result.AllErrors())
	}
	if result.Format != "yaml" {
		t.Errorf("format = %q, want yaml", result.Format)
	}
}

func TestParseSpecString_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  string
	}{
		{name: "empty content", content: "", format: ""},
		{name: "broken JSON", content: `{"rules": [`, format: "json"},
		{name: "broken YAML", content: "rules:\n  - type: [unclosed", format: "yaml"},
		{name: "scalar instead of object", content: `"just a string"`, format: "json"},
		{name: "unsupported format", content: "rules: []", format: "toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseSpecString(tt.content, tt.format)
			if len(result.ParseErrors) == 0 {
				t.Errorf("expected parse errors, got none (data: %v)", result.Data)
			}
		})
	}
}

func TestParseJSONString_SyntaxErrorLocation(t *testing.T) {
	result := ParseJSONString("{\n  \"rules\": [,]\n}")

	if len(result.Errors) == 0 {
		t.Fatal("expected a parse error")
	}
	if result.Errors[0].Line != 2 {
		t.Errorf("error line = %d, want 2", result.Errors[0].Line)
	}
}

func TestParseSpec_File(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		filename string
		content  string
		wantFmt  string
	}{
		{name: "yaml extension", filename: "spec.yaml", content: validYAMLSpec, wantFmt: "yaml"},
		{name: "json extension", filename: "spec.json", content: validJSONSpec, wantFmt: "json"},
		{name: "unknown extension sniffs json", filename: "spec.conf", content: validJSONSpec, wantFmt: "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.filename)
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("failed to write spec file: %v", err)
			}

			result := ParseSpec(path)
			if !result.IsValid() {
				t.Fatalf("expected valid result, got errors: %v", result.AllErrors())
			}
			if result.Format != tt.wantFmt {
				t.Errorf("format = %q, want %q", result.Format, tt.wantFmt)
			}
		})
	}
}

func TestParseSpec_MissingFile(t *testing.T) {
	result := ParseSpec(filepath.Join(t.TempDir(), "nope.yaml"))

	if len(result.ParseErrors) == 0 {
		t.Fatal("expected an IO parse error")
	}
	if result.ParseErrors[0].Type != ErrorTypeIO {
		t.Errorf("error type = %q, want %q", result.ParseErrors[0].Type, ErrorTypeIO)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "spec.json", want: "json"},
		{path: "spec.yaml", want: "yaml"},
		{path: "spec.yml", want: "yaml"},
		{path: "spec.YAML", want: "yaml"},
		{path: "spec.conf", want: ""},
		{path: "spec", want: ""},
	}

	for _, tt := range tests {
		if got := DetectFormat(tt.path); got != tt.want {
			t.Errorf("DetectFormat(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
