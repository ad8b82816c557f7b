package testutil

// FixedRunIDGenerator returns the same run identifier every time.
//
// Implements report.RunIDGenerator. The same records, reference date and
// generator produce byte-identical reports for golden file comparison.
type FixedRunIDGenerator struct {
	id string
}

// NewFixedRunIDGenerator creates a generator for id.
// If id is empty, Generate() returns "test-run-default".
func NewFixedRunIDGenerator(id string) *FixedRunIDGenerator {
	if id == "" {
		id = "test-run-default"
	}
	return &FixedRunIDGenerator{id: id}
}

// Generate returns the fixed run identifier.
func (g *FixedRunIDGenerator) Generate() string {
	return g.id
}
