// Package lint evaluates comment-oriented rules over a classified file.
// Rules read the comment classification and the raw token stream; they
// never re-lex and never mutate shared state, so one file's check is
// independent of any other.
package lint

import (
	"sort"

	"comet/internal/comment"
	"comet/internal/diag"
	"comet/internal/source"
	"comet/internal/token"
)

// Context carries everything a rule may inspect for a single file.
type Context struct {
	File     *source.File
	Tokens   []token.Token
	Comments comment.Info
	Reporter diag.Reporter
}

// Rule checks one file and reports findings through ctx.Reporter.
type Rule interface {
	Name() string
	Check(ctx *Context)
}

// Registry holds the known rules keyed by name.
type Registry struct {
	rules map[string]Rule
}

func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// Register adds a rule; a second rule with the same name replaces the first.
func (r *Registry) Register(rule Rule) {
	r.rules[rule.Name()] = rule
}

// Get returns the rule with the given name, if registered.
func (r *Registry) Get(name string) (Rule, bool) {
	rule, ok := r.rules[name]
	return rule, ok
}

// Names returns the registered rule names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select resolves rule names to rules, keeping the requested order.
// Unknown names are returned separately so the caller can diagnose them.
func (r *Registry) Select(names []string) (rules []Rule, unknown []string) {
	for _, name := range names {
		if rule, ok := r.rules[name]; ok {
			rules = append(rules, rule)
		} else {
			unknown = append(unknown, name)
		}
	}
	return rules, unknown
}
