// Package factory creates rule instances from filter spec entries.
// It centralizes the lookup of rule constructors via the registry so
// the pipeline assembly code never switches on type strings.
//
// To add a new rule type, see the documentation in internal/registry.
// You do NOT need to modify this factory; just register your constructor.
package factory

import (
	"fmt"
	"strings"

	"github.com/tweetsift/tweetsift/internal/config"
	"github.com/tweetsift/tweetsift/internal/logger"
	"github.com/tweetsift/tweetsift/internal/registry"
	"github.com/tweetsift/tweetsift/internal/rules"
)

// CreateRule creates a single rule instance from its spec entry.
// Returns an error for unregistered types, naming the known ones.
func CreateRule(cfg config.RuleConfig, index int) (rules.Rule, error) {
	constructor := registry.GetRuleConstructor(cfg.Type)
	if constructor == nil {
		return nil, fmt.Errorf("unknown rule type %q at index %d (known types: %s)",
			cfg.Type, index, strings.Join(registry.ListRuleTypes(), ", "))
	}

	rule, err := constructor(cfg, index)
	if err != nil {
		return nil, err
	}

	logger.Debug("rule created", "type", cfg.Type, "index", index)

	return rule, nil
}

// CreateRules creates all rules of a filter spec, preserving order.
// The first invalid entry aborts creation.
func CreateRules(cfgs []config.RuleConfig) ([]rules.Rule, error) {
	if len(cfgs) == 0 {
		return nil, nil
	}

	created := make([]rules.Rule, 0, len(cfgs))
	for i, cfg := range cfgs {
		rule, err := CreateRule(cfg, i)
		if err != nil {
			return nil, err
		}
		created = append(created, rule)
	}

	return created, nil
}
