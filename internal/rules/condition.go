// Package rules provides exclusion rule implementations.
// This file implements the "condition" rule that drops tweets matching a
// boolean expression compiled with the expr library.
package rules

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/tweetsift/tweetsift/internal/logger"
	"github.com/tweetsift/tweetsift/pkg/tweet"
)

// Common errors for the condition rule
var (
	// ErrEmptyExpression is returned when the expression is missing
	ErrEmptyExpression = errors.New("'expression' is required")
	// ErrInvalidExpression is returned when the expression syntax is invalid
	ErrInvalidExpression = errors.New("invalid expression syntax")
)

// ConditionConfig represents the configuration for a condition rule.
type ConditionConfig struct {
	// Expression is the boolean expression evaluated per tweet (required).
	// Available variables: text, author_id, reply_to, is_reply, retweet,
	// created_at.
	Expression string `json:"expression"`
}

// ConditionRule excludes tweets for which the configured expression
// evaluates to true. Expressions that fail at runtime keep the tweet and
// log a warning; they never abort the run.
type ConditionRule struct {
	expression string
	program    *vm.Program
	excluded   int
}

// NewConditionFromConfig creates a condition rule from configuration.
// The expression is compiled once at construction; compilation failures
// surface here rather than during the run.
func NewConditionFromConfig(config ConditionConfig) (*ConditionRule, error) {
	if config.Expression == "" {
		return nil, ErrEmptyExpression
	}

	// AllowUndefinedVariables keeps the rule usable when an expression
	// references fields some tweets lack; AsBool enforces a boolean result.
	program, err := expr.Compile(config.Expression,
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}

	logger.Debug("condition rule initialized", "expression", config.Expression)

	return &ConditionRule{
		expression: config.Expression,
		program:    program,
	}, nil
}

// Evaluate implements the Rule interface.
func (r *ConditionRule) Evaluate(tw tweet.Tweet) bool {
	output, err := expr.Run(r.program, conditionEnv(tw))
	if err != nil {
		logger.Warn("condition evaluation failed; keeping tweet",
			"expression", r.expression,
			"tweet_id", tw.ID,
			"error", err.Error(),
		)
		return false
	}

	excluded, ok := output.(bool)
	if !ok || !excluded {
		return false
	}
	r.excluded++
	return true
}

// Describe implements the Rule interface.
func (r *ConditionRule) Describe() string {
	return fmt.Sprintf("tweets matching expression %q: %d excluded", r.expression, r.excluded)
}

// Type implements the Rule interface.
func (r *ConditionRule) Type() string { return TypeCondition }

// Excluded implements the Rule interface.
func (r *ConditionRule) Excluded() int { return r.excluded }

// conditionEnv builds the expression environment for a tweet.
func conditionEnv(tw tweet.Tweet) map[string]interface{} {
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
		"created_at": tw.CreatedAt,
	}
}

// ParseConditionConfig parses a raw configuration map into ConditionConfig.
func ParseConditionConfig(config map[string]interface{}) (ConditionConfig, error) {
	var cfg ConditionConfig

	if expression, ok := config["expression"].(string); ok {
		cfg.Expression = expression
	}
	if cfg.Expression == "" {
		return cfg, ErrEmptyExpression
	}

	return cfg, nil
}

// Verify interface compliance at compile time
var _ Rule = (*ConditionRule)(nil)
