// Package registry maps rule type strings to rule constructors.
//
// # Overview
//
// Instead of a hard-coded switch in the factory, rule implementations
// register their constructors by type string. Adding a new rule type
// means implementing rules.Rule, writing a constructor matching
// RuleConstructor, and registering it in an init() function.
//
// Example:
//
//	func init() {
//	    registry.RegisterRule("hashtag", func(cfg config.RuleConfig, index int) (rules.Rule, error) {
//	        // Parse cfg.Config and return your implementation
//	        return NewHashtag(...), nil
//	    })
//	}
//
// # Built-in Rules
//
// Built-in rules (reply, retweet, prefix, substring, daterange,
// condition, script) are registered automatically via init().
package registry

import (
	"sort"
	"sync"

	"github.com/tweetsift/tweetsift/internal/config"
	"github.com/tweetsift/tweetsift/internal/rules"
)

// RuleConstructor creates a rule from its spec entry. The constructor
// receives the RuleConfig and the rule's index in the spec, and returns
// an error if the configuration is invalid.
type RuleConstructor func(cfg config.RuleConfig, index int) (rules.Rule, error)

var (
	ruleMu       sync.RWMutex
	ruleRegistry = make(map[string]RuleConstructor)
)

// RegisterRule registers a rule constructor by type string. Registering
// an already registered type overwrites the previous constructor.
//
// Safe for concurrent use; typically called from init() functions.
func RegisterRule(ruleType string, constructor RuleConstructor) {
	ruleMu.Lock()
	defer ruleMu.Unlock()
	ruleRegistry[ruleType] = constructor
}

// GetRuleConstructor returns the registered constructor for a rule type.
// Returns nil if no constructor is registered for the given type.
func GetRuleConstructor(ruleType string) RuleConstructor {
	ruleMu.RLock()
	defer ruleMu.RUnlock()
	return ruleRegistry[ruleType]
}

// ListRuleTypes returns all registered rule type names, sorted.
// Useful for error messages and documentation.
func ListRuleTypes() []string {
	ruleMu.RLock()
	defer ruleMu.RUnlock()
	types := make([]string, 0, len(ruleRegistry))
	for t := range ruleRegistry {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
