// Package match evaluates rule match expressions against product facts.
//
// Expressions are CEL over a single `product` variable carrying the fields
// of models.Product.Facts(). Compiled programs are cached per rule and
// recompiled when the stored expression changes, so callers never observe a
// stale program after a rule update.
package match

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/merchware/shipcast/internal/domain/models"
)

// costLimit bounds expression evaluation so a pathological rule cannot
// exhaust the process.
const costLimit = 1000000

// Matcher compiles and evaluates rule expressions. Safe for concurrent use.
type Matcher struct {
	env      *cel.Env
	mu       sync.RWMutex
	programs map[string]compiledRule
}

type compiledRule struct {
	expr string
	prog cel.Program
}

// NewMatcher builds the CEL environment the rule expressions run in.
func NewMatcher() (*Matcher, error) {
	env, err := cel.NewEnv(cel.Variable("product", cel.DynType))
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}
	return &Matcher{env: env, programs: make(map[string]compiledRule)}, nil
}

// CheckExpression reports whether an expression compiles. A blank
// expression is valid: it marks the fallback rule.
func (m *Matcher) CheckExpression(expr string) error {
	if expr == "" {
		return nil
	}
	_, err := m.compile(expr)
	return err
}

// Match reports whether one rule matches the product facts. Fallback rules
// match unconditionally. Compile failures, evaluation errors and non-boolean
// results all report no match; a wrong-but-absent message beats a broken
// storefront.
func (m *Matcher) Match(r models.Rule, facts map[string]any) bool {
	if r.IsFallback() {
		return true
	}
	prog, err := m.compiled(r.ID, r.Match)
	if err != nil {
		return false
	}
	out, _, err := prog.Eval(facts)
	if err != nil {
		return false
	}
	matched, ok := out.Value().(bool)
	return ok && matched
}

// First returns the first active rule in the given order whose expression
// matches the facts. Fallback rules are held back and the first one is
// returned only when no expression matched.
func (m *Matcher) First(rules []models.Rule, facts map[string]any) (models.Rule, bool) {
	var fallback *models.Rule
	for i := range rules {
		r := rules[i]
		if !r.Active {
			continue
		}
		if r.IsFallback() {
			if fallback == nil {
				fallback = &rules[i]
			}
			continue
		}
		if m.Match(r, facts) {
			return r, true
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return models.Rule{}, false
}

// Remove drops a rule's compiled program. Deleting is optional bookkeeping:
// a changed expression recompiles on its own.
func (m *Matcher) Remove(id string) {
	m.mu.Lock()
	delete(m.programs, id)
	m.mu.Unlock()
}

// compiled returns the cached program for a rule, compiling on first use or
// when the expression under the rule's ID has changed.
func (m *Matcher) compiled(id, expr string) (cel.Program, error) {
	m.mu.RLock()
	c, ok := m.programs[id]
	m.mu.RUnlock()
	if ok && c.expr == expr {
		return c.prog, nil
	}

	prog, err := m.compile(expr)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.programs[id] = compiledRule{expr: expr, prog: prog}
	m.mu.Unlock()
	return prog, nil
}

func (m *Matcher) compile(expr string) (cel.Program, error) {
	ast, issues := m.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile expression: %w", issues.Err())
	}
	prog, err := m.env.Program(ast, cel.CostLimit(costLimit))
	if err != nil {
		return nil, fmt.Errorf("build program: %w", err)
	}
	return prog, nil
}
