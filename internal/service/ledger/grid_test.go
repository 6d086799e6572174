package ledger

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildGrid_Completeness(t *testing.T) {
	grid := BuildGrid([]string{"Sari", "Budi"}, day(2025, 3, 3), day(2025, 3, 7))

	// 2 employees x 5 days, ordered by name then date
	require.Len(t, grid, 10)
	assert.Equal(t, "Budi", grid[0].Name)
	assert.Equal(t, day(2025, 3, 3), grid[0].Date)
	assert.Equal(t, "Budi", grid[4].Name)
	assert.Equal(t, day(2025, 3, 7), grid[4].Date)
	assert.Equal(t, "Sari", grid[5].Name)
	assert.Equal(t, day(2025, 3, 3), grid[5].Date)

	seen := make(map[string]int)
	for _, row := range grid {
		seen[row.Name+row.Date.Format("2006-01-02")]++
	}
	for key, count := range seen {
		assert.Equal(t, 1, count, key)
	}
}

func TestBuildGrid_SingleDay(t *testing.T) {
	grid := BuildGrid([]string{"Budi"}, day(2025, 3, 3), day(2025, 3, 3))
	require.Len(t, grid, 1)
}

func TestMerge_LeftJoin(t *testing.T) {
	grid := BuildGrid([]string{"Budi"}, day(2025, 3, 3), day(2025, 3, 5))
	punches := []punch.Record{
		{Name: "Budi", Date: day(2025, 3, 4), Location: "BSD"},
	}

	merged := Merge(grid, punches)

	require.Len(t, merged, 3)
	assert.Nil(t, merged[0].Punch)
	require.NotNil(t, merged[1].Punch)
	assert.Equal(t, "BSD", merged[1].Punch.Location)
	assert.Nil(t, merged[2].Punch)
}

func TestMerge_DuplicateLastWins(t *testing.T) {
	grid := BuildGrid([]string{"Budi"}, day(2025, 3, 3), day(2025, 3, 3))
	punches := []punch.Record{
		{Name: "Budi", Date: day(2025, 3, 3), Location: "HOME"},
		{Name: "Budi", Date: day(2025, 3, 3), Location: "BSD"},
	}

	merged := Merge(grid, punches)

	require.Len(t, merged, 1)
	require.NotNil(t, merged[0].Punch)
	assert.Equal(t, "BSD", merged[0].Punch.Location)
}

func TestDistinctNames(t *testing.T) {
	names := DistinctNames([]punch.Record{
		{Name: "Budi"}, {Name: "Sari"}, {Name: "Budi"},
	})
	assert.ElementsMatch(t, []string{"Budi", "Sari"}, names)
}

func TestDateRange(t *testing.T) {
	minDate, maxDate := DateRange([]punch.Record{
		{Date: day(2025, 3, 10)},
		{Date: day(2025, 3, 2)},
		{Date: day(2025, 3, 7)},
	})
	assert.Equal(t, day(2025, 3, 2), minDate)
	assert.Equal(t, day(2025, 3, 10), maxDate)
}
