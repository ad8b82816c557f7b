package rules

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gedcheck/internal/record"
	"github.com/roach88/gedcheck/internal/testutil"
)

func TestCatalogRegistersBuiltinsInOrder(t *testing.T) {
	c := NewCatalog(DefaultThresholds())

	assert.Equal(t, []ID{
		DatesBeforeNow, BirthBeforeMarriage, BirthBeforeDeath, MarriageBeforeDivorce,
		MarriageBeforeDeath, DivorceBeforeDeath, ListDeceased, ListLivingMarried,
		ListLivingSingle, ListOrphans, ListRecentDeaths, ListRecentBirths, ListRecentMarriages,
	}, c.IDs())

	for _, r := range c.Rules() {
		assert.NotEmpty(t, r.Description, "rule %s needs a description", r.ID)
		assert.NotNil(t, r.Evaluate)
	}
}

func TestCatalogUnknownIDIsEmptyNotError(t *testing.T) {
	c := NewCatalog(DefaultThresholds())
	store := testutil.Store(nil)

	set, ok := c.Evaluate("US99", store, testutil.Day("2024-01-01"))
	assert.False(t, ok)
	require.NotNil(t, set)
	assert.Equal(t, 0, set.Len())
}

func TestCatalogRegisterRejectsDuplicatesAndNil(t *testing.T) {
	c := NewEmptyCatalog(DefaultThresholds())
	noop := func(*record.Store, civil.Date, Thresholds, *Set) {}

	require.NoError(t, c.Register(Rule{ID: "X1", Description: "x", Evaluate: noop}))
	assert.Error(t, c.Register(Rule{ID: "X1", Description: "again", Evaluate: noop}))
	assert.Error(t, c.Register(Rule{ID: "X2", Description: "nil"}))
	assert.Equal(t, []ID{"X1"}, c.IDs())
}

func TestCatalogBindsThresholds(t *testing.T) {
	th := DefaultThresholds()
	th.AdultAge = 21
	c := NewEmptyCatalog(th)

	var seen Thresholds
	require.NoError(t, c.Register(Rule{ID: "X1", Description: "x", Evaluate: func(_ *record.Store, _ civil.Date, got Thresholds, _ *Set) {
		seen = got
	}}))

	_, ok := c.Evaluate("X1", testutil.Store(nil), testutil.Day("2024-01-01"))
	require.True(t, ok)
	assert.Equal(t, 21, seen.AdultAge)
	assert.Equal(t, th, c.Thresholds())
}

func TestParseID(t *testing.T) {
	assert.Equal(t, ListDeceased, ParseID(" us29 "))
	assert.Equal(t, ID("US99"), ParseID("us99"))
}

func TestThresholdsValidate(t *testing.T) {
	assert.NoError(t, DefaultThresholds().Validate())

	th := DefaultThresholds()
	th.RecentBirthDays = -1
	err := th.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recent_birth_days")
}

func TestSetCollapsesIdenticalMessages(t *testing.T) {
	s := NewSet()

	assert.True(t, s.Add(Finding{Rule: ListDeceased, FamilyID: "F1", Message: "same"}))
	assert.False(t, s.Add(Finding{Rule: ListDeceased, FamilyID: "F2", Message: "same"}))
	assert.True(t, s.Add(Finding{Rule: ListDeceased, Message: "other"}))

	require.Equal(t, 2, s.Len())
	sorted := s.Sorted()
	assert.Equal(t, "other", sorted[0].Message)
	assert.Equal(t, "F1", sorted[1].FamilyID, "first finding for a message wins")
	assert.Equal(t, []string{"other", "same"}, s.Messages())
	assert.True(t, s.Contains("same"))
}

func TestSetMerge(t *testing.T) {
	a := NewSet()
	a.Add(Finding{Message: "a"})
	b := NewSet()
	b.Add(Finding{Message: "a"})
	b.Add(Finding{Message: "b"})

	a.Merge(b)
	a.Merge(nil)
	assert.Equal(t, []string{"a", "b"}, a.Messages())
}

func TestFindingPersonIDs(t *testing.T) {
	f := Finding{Subjects: []Subject{{ID: "I1"}, {ID: "I2", Name: "Ann"}}}
	assert.Equal(t, []string{"I1", "I2"}, f.PersonIDs())
}
