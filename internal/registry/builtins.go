// This file registers all built-in rule types during initialization.
package registry

import (
	"fmt"

	"github.com/tweetsift/tweetsift/internal/config"
	"github.com/tweetsift/tweetsift/internal/rules"
)

func init() {
	registerBuiltinRules()
}

// registerBuiltinRules registers all built-in rule types.
func registerBuiltinRules() {
	// reply - exclude replies to anyone but the author themself
	RegisterRule(rules.TypeReply, func(cfg config.RuleConfig, index int) (rules.Rule, error) {
		replyConfig, err := rules.ParseReplyConfig(cfg.Config)
		if err != nil {
			return nil, fmt.Errorf("invalid reply config at index %d: %w", index, err)
		}
		rule, err := rules.NewReplyFromConfig(replyConfig)
		if err != nil {
			return nil, fmt.Errorf("invalid reply config at index %d: %w", index, err)
		}
		return rule, nil
	})

	// retweet - exclude retweets by flag or text prefix
	RegisterRule(rules.TypeRetweet, func(_ config.RuleConfig, _ int) (rules.Rule, error) {
		return rules.NewRetweet(), nil
	})

	// prefix - exclude tweets starting with any configured prefix
	RegisterRule(rules.TypePrefix, func(cfg config.RuleConfig, index int) (rules.Rule, error) {
		prefixConfig, err := rules.ParsePrefixConfig(cfg.Config)
		if err != nil {
			return nil, fmt.Errorf("invalid prefix config at index %d: %w", index, err)
		}
		rule, err := rules.NewPrefixFromConfig(prefixConfig)
		if err != nil {
			return nil, fmt.Errorf("invalid prefix config at index %d: %w", index, err)
		}
		return rule, nil
	})

	// substring - exclude tweets containing any configured substring
	RegisterRule(rules.TypeSubstring, func(cfg config.RuleConfig, index int) (rules.Rule, error) {
		substringConfig, err := rules.ParseSubstringConfig(cfg.Config)
		if err != nil {
			return nil, fmt.Errorf("invalid substring config at index %d: %w", index, err)
		}
		rule, err := rules.NewSubstringFromConfig(substringConfig)
		if err != nil {
			return nil, fmt.Errorf("invalid substring config at index %d: %w", index, err)
		}
		return rule, nil
	})

	// daterange - exclude tweets outside the configured bounds
	RegisterRule(rules.TypeDateRange, func(cfg config.RuleConfig, index int) (rules.Rule, error) {
		rangeConfig, err := rules.ParseDateRangeConfig(cfg.Config)
		if err != nil {
			return nil, fmt.Errorf("invalid daterange config at index %d: %w", index, err)
		}
		rule, err := rules.NewDateRangeFromConfig(rangeConfig)
		if err != nil {
			return nil, fmt.Errorf("invalid daterange config at index %d: %w", index, err)
		}
		return rule, nil
	})

	// condition - exclude tweets matching an expression
	RegisterRule(rules.TypeCondition, func(cfg config.RuleConfig, index int) (rules.Rule, error) {
		condConfig, err := rules.ParseConditionConfig(cfg.Config)
		if err != nil {
			return nil, fmt.Errorf("invalid condition config at index %d: %w", index, err)
		}
		rule, err := rules.NewConditionFromConfig(condConfig)
		if err != nil {
			return nil, fmt.Errorf("invalid condition config at index %d: %w", index, err)
		}
		return rule, nil
	})

	// script - exclude tweets via a JavaScript predicate
	RegisterRule(rules.TypeScript, func(cfg config.RuleConfig, index int) (rules.Rule, error) {
		scriptConfig, err := rules.ParseScriptConfig(cfg.Config)
		if err != nil {
			return nil, fmt.Errorf("invalid script config at index %d: %w", index, err)
		}
		rule, err := rules.NewScriptFromConfig(scriptConfig)
		if err != nil {
			return nil, fmt.Errorf("invalid script config at index %d: %w", index, err)
		}
		return rule, nil
	})
}
