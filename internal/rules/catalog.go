package rules

import (
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/roach88/gedcheck/internal/record"
)

// Evaluator computes every violation of one rule and adds it to out.
// Evaluators are pure: they read store, never mutate it, and take the
// reference date as an argument.
type Evaluator func(store *record.Store, now civil.Date, th Thresholds, out *Set)

// Rule is one catalog entry.
type Rule struct {
	ID          ID
	Description string
	Evaluate    Evaluator
}

// Catalog maps rule identifiers to evaluators and binds the thresholds
// every evaluator runs with. Registration order is the reporting order.
type Catalog struct {
	thresholds Thresholds
	rules      []Rule
	byID       map[ID]int
}

// NewCatalog returns a catalog holding every built-in rule.
func NewCatalog(th Thresholds) *Catalog {
	c := NewEmptyCatalog(th)
	for _, r := range builtins() {
		// Built-in identifiers are unique.
		_ = c.Register(r)
	}
	return c
}

// NewEmptyCatalog returns a catalog with no rules registered.
func NewEmptyCatalog(th Thresholds) *Catalog {
	return &Catalog{thresholds: th, byID: make(map[ID]int)}
}

// Register adds a rule. Fails on a duplicate identifier or a nil evaluator.
func (c *Catalog) Register(r Rule) error {
	if r.Evaluate == nil {
		return fmt.Errorf("rule %s: evaluator is nil", r.ID)
	}
	if _, exists := c.byID[r.ID]; exists {
		return fmt.Errorf("rule %s: already registered", r.ID)
	}
	c.byID[r.ID] = len(c.rules)
	c.rules = append(c.rules, r)
	return nil
}

// Lookup returns the rule registered under id.
func (c *Catalog) Lookup(id ID) (Rule, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Rule{}, false
	}
	return c.rules[i], true
}

// IDs returns the registered identifiers in registration order.
func (c *Catalog) IDs() []ID {
	ids := make([]ID, len(c.rules))
	for i, r := range c.rules {
		ids[i] = r.ID
	}
	return ids
}

// Rules returns the registered rules in registration order.
func (c *Catalog) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Thresholds returns the thresholds bound to this catalog.
func (c *Catalog) Thresholds() Thresholds {
	return c.thresholds
}

// Evaluate runs rule id and returns its findings.
// An unknown id is not an error: it yields an empty Set and ok=false.
func (c *Catalog) Evaluate(id ID, store *record.Store, now civil.Date) (*Set, bool) {
	out := NewSet()
	r, ok := c.Lookup(id)
	if !ok {
		return out, false
	}
	r.Evaluate(store, now, c.thresholds, out)
	return out, true
}

// builtins lists the built-in rules in reporting order.
func builtins() []Rule {
	return []Rule{
		{DatesBeforeNow, "Dates (birth, death, marriage, divorce) must not be after the current date", checkDatesBeforeNow},
		{BirthBeforeMarriage, "Spouses must be born before their marriage", checkBirthBeforeMarriage},
		{BirthBeforeDeath, "Individuals must be born before they die", checkBirthBeforeDeath},
		{MarriageBeforeDivorce, "Divorce must not precede marriage", checkMarriageBeforeDivorce},
		{MarriageBeforeDeath, "Spouses must not die before their marriage", checkMarriageBeforeDeath},
		{DivorceBeforeDeath, "Spouses must not die before their divorce", checkDivorceBeforeDeath},
		{ListDeceased, "List deceased family members", listDeceased},
		{ListLivingMarried, "List living married couples", listLivingMarried},
		{ListLivingSingle, "List never-married individuals older than the minimum marriage age", listLivingSingle},
		{ListOrphans, "List children orphaned before adulthood", listOrphans},
		{ListRecentDeaths, "List deaths within the recent window", listRecentDeaths},
		{ListRecentBirths, "List births within the recent window", listRecentBirths},
		{ListRecentMarriages, "List marriages of living couples within the recent window", listRecentMarriages},
	}
}
