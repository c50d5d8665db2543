package rules

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewScriptFromConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		config  ScriptConfig
		wantErr error
	}{
		{
			name:    "neither provided",
			config:  ScriptConfig{},
			wantErr: ErrScriptEmpty,
		},
		{
			name:    "whitespace only",
			config:  ScriptConfig{Script: "   \n\t"},
			wantErr: ErrScriptEmpty,
		},
		{
			name:    "both provided",
			config:  ScriptConfig{Script: "function exclude(t) { return false; }", ScriptFile: "x.js"},
			wantErr: ErrScriptAmbiguous,
		},
		{
			name:    "missing exclude function",
			config:  ScriptConfig{Script: "function transform(t) { return t; }"},
			wantErr: ErrMissingExcludeFunc,
		},
		{
			name:    "oversized script",
			config:  ScriptConfig{Script: "// " + strings.Repeat("x", MaxScriptLength)},
			wantErr: ErrScriptTooLong,
		},
		{
			name:   "valid predicate",
			config: ScriptConfig{Script: "function exclude(t) { return t.retweet; }"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScriptFromConfig(tt.config)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			} else if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewScriptFromConfig_CompilationError(t *testing.T) {
	_, err := NewScriptFromConfig(ScriptConfig{Script: "function exclude(t) {"})
	if err == nil {
		t.Fatal("expected compilation error")
	}
}

func TestScriptRule_Evaluate(t *testing.T) {
	script := `function exclude(tweet) {
		return tweet.retweet || tweet.text.indexOf("#ad") >= 0;
	}`

	rule, err := NewScriptFromConfig(ScriptConfig{Script: script})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		text    string
		retweet bool
		want    bool
	}{
		{name: "plain tweet kept", text: "hello", want: false},
		{name: "retweet excluded", text: "hello", retweet: true, want: true},
		{name: "ad excluded", text: "buy now #ad", want: true},
	}

	excluded := 0
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := textTweet(tt.text)
			tw.Retweet = tt.retweet

			if got := rule.Evaluate(tw); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
			if tt.want {
				excluded++
			}
		})
	}

	if rule.Excluded() != excluded {
		t.Errorf("Excluded() = %d, want %d", rule.Excluded(), excluded)
	}
}

func TestScriptRule_RuntimeErrorKeepsTweet(t *testing.T) {
	rule, err := NewScriptFromConfig(ScriptConfig{
		Script: "function exclude(t) { throw new Error('boom'); }",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rule.Evaluate(textTweet("hello")) {
		t.Error("tweet was excluded despite script failure")
	}
	if rule.Excluded() != 0 {
		t.Errorf("Excluded() = %d, want 0", rule.Excluded())
	}
}

func TestNewScriptFromConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exclude.js")
	script := "function exclude(t) { return t.text === 'drop me'; }"
	if err := os.WriteFile(path, []byte(script), 0o600); err != nil {
		t.Fatalf("failed to write script file: %v", err)
	}

	rule, err := NewScriptFromConfig(ScriptConfig{ScriptFile: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !rule.Evaluate(textTweet("drop me")) {
		t.Error("expected tweet to be excluded")
	}
	if rule.Evaluate(textTweet("keep me")) {
		t.Error("expected tweet to be kept")
	}
}

func TestNewScriptFromConfig_RejectsTraversalPath(t *testing.T) {
	_, err := NewScriptFromConfig(ScriptConfig{ScriptFile: "scripts/../../etc/exclude.js"})
	if err == nil {
		t.Fatal("expected an error for a traversal path")
	}
	if !strings.Contains(err.Error(), "traversal") {
		t.Errorf("error %q does not mention traversal", err.Error())
	}
}

func TestParseScriptConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  map[string]interface{}
		wantErr bool
	}{
		{name: "neither", config: map[string]interface{}{}, wantErr: true},
		{name: "both", config: map[string]interface{}{"script": "x", "scriptFile": "y"}, wantErr: true},
		{name: "inline", config: map[string]interface{}{"script": "function exclude(t){return false;}"}, wantErr: false},
		{name: "file", config: map[string]interface{}{"scriptFile": "exclude.js"}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScriptConfig(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseScriptConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
