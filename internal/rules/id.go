package rules

import "strings"

// ID identifies a rule in the catalog.
type ID string

const (
	DatesBeforeNow        ID = "US01" // dates before current date
	BirthBeforeMarriage   ID = "US02" // spouse born after the marriage
	BirthBeforeDeath      ID = "US03" // death recorded before birth
	MarriageBeforeDivorce ID = "US04" // divorce recorded before marriage
	MarriageBeforeDeath   ID = "US05" // spouse died before the marriage
	DivorceBeforeDeath    ID = "US06" // spouse died before the divorce
	ListDeceased          ID = "US29" // deceased family member
	ListLivingMarried     ID = "US30" // living married couples
	ListLivingSingle      ID = "US31" // never married past the minimum age
	ListOrphans           ID = "US33" // orphaned before adulthood
	ListRecentDeaths      ID = "US36" // died in the recent window
	ListRecentBirths      ID = "US38" // born in the recent window
	ListRecentMarriages   ID = "US39" // married in the recent window
)

// ParseID normalizes a user-supplied rule identifier ("us29", " US29 ").
// The result is not checked against the catalog.
func ParseID(s string) ID {
	return ID(strings.ToUpper(strings.TrimSpace(s)))
}

func (id ID) String() string {
	return string(id)
}
