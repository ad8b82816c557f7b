package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/gedcheck/internal/record"
)

func TestFixedClock_ReturnsPinnedDate(t *testing.T) {
	clock := NewFixedClock("2024-05-31")

	assert.Equal(t, Day("2024-05-31"), clock.Today())
	assert.Equal(t, Day("2024-05-31"), clock.Today())
}

func TestFixedClock_Advance(t *testing.T) {
	clock := NewFixedClock("2024-02-28")

	clock.Advance(1)
	assert.Equal(t, Day("2024-02-29"), clock.Today())

	clock.Advance(-30)
	assert.Equal(t, Day("2024-01-30"), clock.Today())
}

func TestFixedClock_ThreadSafe(t *testing.T) {
	clock := NewFixedClock("2024-01-01")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clock.Advance(1)
			_ = clock.Today()
		}()
	}
	wg.Wait()

	assert.Equal(t, Day("2024-02-20"), clock.Today())
}

func TestFixedClock_PanicsOnBadDate(t *testing.T) {
	assert.Panics(t, func() { NewFixedClock("31/05/2024") })
}

func TestDateEmptyIsNil(t *testing.T) {
	assert.Nil(t, Date(""))
	assert.Equal(t, Day("2000-01-01"), *Date("2000-01-01"))
}

func TestStoreCollectsReferencedPersons(t *testing.T) {
	father := Person("I1", "John /Smith/", "1950-01-01", "")
	child := Person("I2", "", "1980-01-01", "")
	loner := Person("I9", "", "", "")

	s := Store([]*record.Family{Family("F1", father, nil, "", "", child, nil)}, loner)

	assert.Len(t, s.Persons(), 3)
	assert.Len(t, s.Families(), 1)
}

func TestFixedRunIDGenerator(t *testing.T) {
	assert.Equal(t, "run-1", NewFixedRunIDGenerator("run-1").Generate())
	assert.Equal(t, "test-run-default", NewFixedRunIDGenerator("").Generate())
}
