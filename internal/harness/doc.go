// Package harness runs gedcheck conformance scenarios.
//
// A scenario pairs a small record document with a reference date and
// assertions about the findings the rule catalog produces for it.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: orphan_uses_later_death
//	description: "US33 measures age at the later parental death"
//	now: 2024-05-31
//	thresholds:
//	  adult_age: 18
//	rules: [US33]
//	records:
//	  persons:
//	    - { id: I1, name: "John /Smith/", death: 2000-01-01 }
//	  families:
//	    - { id: F1, husband: I1, wife: I2, children: [I3] }
//	assertions:
//	  - type: finding_count
//	    rule: US33
//	    count: 1
//	  - type: finding_contains
//	    rule: US33
//	    person: I3
//	    text: "orphaned at age 15"
//
// # Assertion Types
//
//   - finding_count: the rule reports exactly count findings
//   - finding_contains: some finding of the rule matches every given
//     filter (person subject, family, message substring)
//   - no_findings: the rule reports nothing; without a rule, no rule does
//
// # Deterministic Testing
//
// Scenarios run with an explicit reference date and a fixed run identifier
// (run_id, default "test-run-default"), so the canonical report is
// byte-identical across runs and can be compared with a golden file.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/orphans.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        log.Println(e)
//	    }
//	}
package harness
