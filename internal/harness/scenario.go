package harness

import (
	"bytes"
	"fmt"
	"os"

	"cloud.google.com/go/civil"
	"gopkg.in/yaml.v3"

	"github.com/roach88/gedcheck/internal/loader"
	"github.com/roach88/gedcheck/internal/rules"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Now is the reference date, YYYY-MM-DD.
	Now string `yaml:"now"`

	// Thresholds overrides individual rule thresholds.
	Thresholds *ThresholdOverrides `yaml:"thresholds,omitempty"`

	// Rules lists the rules to evaluate. Empty means every catalog rule.
	Rules []string `yaml:"rules,omitempty"`

	// Records is the record document under test.
	Records loader.Document `yaml:"records"`

	// Assertions validate the findings.
	// Supported types: finding_count, finding_contains, no_findings
	Assertions []Assertion `yaml:"assertions"`

	// RunID is an optional fixed run identifier.
	// If empty, defaults to "test-run-default" for golden file comparison.
	RunID string `yaml:"run_id,omitempty"`
}

// ThresholdOverrides replaces selected default thresholds.
type ThresholdOverrides struct {
	MinMarriageAge     *int `yaml:"min_marriage_age,omitempty"`
	AdultAge           *int `yaml:"adult_age,omitempty"`
	RecentDeathDays    *int `yaml:"recent_death_days,omitempty"`
	RecentBirthDays    *int `yaml:"recent_birth_days,omitempty"`
	RecentMarriageDays *int `yaml:"recent_marriage_days,omitempty"`
}

// Apply returns th with the overrides applied. A nil receiver changes nothing.
func (o *ThresholdOverrides) Apply(th rules.Thresholds) rules.Thresholds {
	if o == nil {
		return th
	}
	set := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	set(&th.MinMarriageAge, o.MinMarriageAge)
	set(&th.AdultAge, o.AdultAge)
	set(&th.RecentDeathDays, o.RecentDeathDays)
	set(&th.RecentBirthDays, o.RecentBirthDays)
	set(&th.RecentMarriageDays, o.RecentMarriageDays)
	return th
}

// Assertion validates the findings of one rule.
type Assertion struct {
	// Type specifies the assertion type:
	// - "finding_count": rule reports exactly Count findings
	// - "finding_contains": some finding of Rule matches Person, Family and Text
	// - "no_findings": Rule (or every rule, if Rule is empty) reports nothing
	Type string `yaml:"type"`

	// Rule is the rule identifier (e.g., "US02").
	Rule string `yaml:"rule,omitempty"`

	// Count is the expected number of findings (used by finding_count).
	Count int `yaml:"count,omitempty"`

	// Person must be one of the finding's subjects (used by finding_contains).
	Person string `yaml:"person,omitempty"`

	// Family must be the finding's family (used by finding_contains).
	Family string `yaml:"family,omitempty"`

	// Text must occur in the finding's message (used by finding_contains).
	Text string `yaml:"text,omitempty"`
}

// Assertion type constants.
const (
	AssertFindingCount    = "finding_count"
	AssertFindingContains = "finding_contains"
	AssertNoFindings      = "no_findings"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Now == "" {
		return fmt.Errorf("now is required")
	}
	if _, err := civil.ParseDate(s.Now); err != nil {
		return fmt.Errorf("now: %w", err)
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	if err := s.Thresholds.Apply(rules.DefaultThresholds()).Validate(); err != nil {
		return fmt.Errorf("thresholds: %w", err)
	}

	for i, r := range s.Rules {
		if rules.ParseID(r) == "" {
			return fmt.Errorf("rules[%d]: empty rule identifier", i)
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertFindingCount:
		if a.Rule == "" {
			return fmt.Errorf("assertions[%d]: rule is required for finding_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for finding_count", index)
		}
	case AssertFindingContains:
		if a.Rule == "" {
			return fmt.Errorf("assertions[%d]: rule is required for finding_contains", index)
		}
		if a.Person == "" && a.Family == "" && a.Text == "" {
			return fmt.Errorf("assertions[%d]: one of person, family or text is required for finding_contains", index)
		}
	case AssertNoFindings:
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
