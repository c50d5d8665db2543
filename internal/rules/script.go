// Package rules provides exclusion rule implementations.
// This file implements the "script" rule that drops tweets for which a
// user-supplied JavaScript predicate returns true, executed with Goja.
package rules

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dop251/goja"

	"github.com/tweetsift/tweetsift/internal/logger"
	"github.com/tweetsift/tweetsift/internal/pathutil"
	"github.com/tweetsift/tweetsift/pkg/tweet"
)

// MaxScriptLength is the maximum allowed script length in bytes (100KB).
const MaxScriptLength = 100 * 1024

// Common errors for the script rule
var (
	// ErrScriptEmpty is returned when neither script nor scriptFile is provided
	ErrScriptEmpty = errors.New("either 'script' or 'scriptFile' must be provided")
	// ErrScriptAmbiguous is returned when both script and scriptFile are provided
	ErrScriptAmbiguous = errors.New("cannot specify both 'script' and 'scriptFile'")
	// ErrScriptTooLong is returned when the script exceeds MaxScriptLength
	ErrScriptTooLong = errors.New("script exceeds maximum length")
	// ErrMissingExcludeFunc is returned when the script does not define exclude()
	ErrMissingExcludeFunc = errors.New("exclude function not found in script")
)

// ScriptConfig represents the configuration for a script rule.
// Either Script or ScriptFile must be provided, but not both.
type ScriptConfig struct {
	// Script is inline JavaScript source defining an exclude(tweet) function
	Script string `json:"script,omitempty"`
	// ScriptFile is the path to a JavaScript file defining exclude(tweet)
	ScriptFile string `json:"scriptFile,omitempty"`
}

// ScriptRule excludes tweets for which the script's exclude(tweet) function
// returns a truthy value.
//
// Goja runtimes are not goroutine-safe; a ScriptRule belongs to a single
// pipeline run and must not be evaluated concurrently.
type ScriptRule struct {
	source    string
	runtime   *goja.Runtime
	excludeFn goja.Callable
	excluded  int
}

// NewScriptFromConfig creates a script rule from configuration.
// The script is compiled once and the exclude function resolved at
// construction, so malformed scripts fail before the run starts.
func NewScriptFromConfig(config ScriptConfig) (*ScriptRule, error) {
	source, err := resolveScriptSource(config)
	if err != nil {
		return nil, err
	}

	vm := goja.New()
	if _, err := vm.RunString(source); err != nil {
		return nil, fmt.Errorf("script compilation failed: %w", err)
	}

	excludeFn, err := excludeFunction(vm)
	if err != nil {
		return nil, err
	}

	logger.Debug("script rule initialized",
		"script_length", len(source),
		"from_file", config.ScriptFile != "",
	)

	return &ScriptRule{
		source:    source,
		runtime:   vm,
		excludeFn: excludeFn,
	}, nil
}

// Evaluate implements the Rule interface.
// Script runtime errors keep the tweet and log a warning; they never
// abort the run.
func (r *ScriptRule) Evaluate(tw tweet.Tweet) bool {
	env := r.runtime.ToValue(scriptEnv(tw))
	result, err := r.excludeFn(goja.Undefined(), env)
	if err != nil {
		logger.Warn("script evaluation failed; keeping tweet",
			"tweet_id", tw.ID,
			"error", err.Error(),
		)
		return false
	}

	if !result.ToBoolean() {
		return false
	}
	r.excluded++
	return true
}

// Describe implements the Rule interface.
func (r *ScriptRule) Describe() string {
	return fmt.Sprintf("tweets matching script predicate: %d excluded", r.excluded)
}

// Type implements the Rule interface.
func (r *ScriptRule) Type() string { return TypeScript }

// Excluded implements the Rule interface.
func (r *ScriptRule) Excluded() int { return r.excluded }

// scriptEnv builds the JavaScript object handed to exclude().
func scriptEnv(tw tweet.Tweet) map[string]interface{} {
	replyTo := ""
	if tw.ReplyTo != nil {
		replyTo = *tw.ReplyTo
	}
	return map[string]interface{}{
		"id":         tw.ID,
		"text":       tw.Text,
		"author_id":  tw.AuthorID,
		"reply_to":   replyTo,
		"is_reply":   tw.IsReply(),
		"retweet":    tw.Retweet,
		"created_at": tw.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// resolveScriptSource returns the script source, inline or from file.
func resolveScriptSource(config ScriptConfig) (string, error) {
	if config.Script != "" && config.ScriptFile != "" {
		return "", ErrScriptAmbiguous
	}

	if config.Script != "" {
		return validateScriptLength(config.Script)
	}

	if config.ScriptFile != "" {
		if err := pathutil.ValidateFilePath(config.ScriptFile); err != nil {
			return "", fmt.Errorf("invalid script file path: %w", err)
		}
		info, err := os.Stat(config.ScriptFile)
		if err != nil {
			return "", fmt.Errorf("failed to stat script file %q: %w", config.ScriptFile, err)
		}
		if info.Size() > MaxScriptLength {
			return "", fmt.Errorf("%w: script file %q is %d bytes, maximum is %d",
				ErrScriptTooLong, config.ScriptFile, info.Size(), MaxScriptLength)
		}
		content, err := os.ReadFile(config.ScriptFile)
		if err != nil {
			return "", fmt.Errorf("failed to read script file %q: %w", config.ScriptFile, err)
		}
		return validateScriptLength(string(content))
	}

	return "", ErrScriptEmpty
}

// validateScriptLength rejects empty and oversized scripts.
func validateScriptLength(source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", ErrScriptEmpty
	}
	if len(source) > MaxScriptLength {
		return "", fmt.Errorf("%w: %d bytes, maximum is %d", ErrScriptTooLong, len(source), MaxScriptLength)
	}
	return source, nil
}

// excludeFunction resolves and validates the exclude() function.
func excludeFunction(vm *goja.Runtime) (goja.Callable, error) {
	value := vm.Get("exclude")
	if value == nil || goja.IsUndefined(value) || goja.IsNull(value) {
		return nil, ErrMissingExcludeFunc
	}
	fn, ok := goja.AssertFunction(value)
	if !ok {
		return nil, errors.New("exclude is not a function")
	}
	return fn, nil
}

// ParseScriptConfig parses a raw configuration map into ScriptConfig.
func ParseScriptConfig(config map[string]interface{}) (ScriptConfig, error) {
	var cfg ScriptConfig

	if script, ok := config["script"].(string); ok {
		cfg.Script = script
	}
	if scriptFile, ok := config["scriptFile"].(string); ok {
		cfg.ScriptFile = scriptFile
	}
	if cfg.Script == "" && cfg.ScriptFile == "" {
		return cfg, ErrScriptEmpty
	}
	if cfg.Script != "" && cfg.ScriptFile != "" {
		return cfg, ErrScriptAmbiguous
	}

	return cfg, nil
}

// Verify interface compliance at compile time
var _ Rule = (*ScriptRule)(nil)
