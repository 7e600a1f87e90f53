package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGroups_PercentagesFromRawMinutes(t *testing.T) {
	groups, grandHours, grandTasks := BuildGroups([]GroupTotal{
		{Key: "a", Name: "Acme", Minutes: 120, TaskCount: 2},
		{Key: "b", Name: "Bolt", Minutes: 60, TaskCount: 1},
		{Key: "c", Name: "Crest", Minutes: 60, TaskCount: 1},
	})

	require.Len(t, groups, 3)
	assert.Equal(t, 4.0, grandHours)
	assert.Equal(t, 4, grandTasks)

	assert.Equal(t, "Acme", groups[0].Name)
	require.NotNil(t, groups[0].Percentage)
	assert.Equal(t, 50, *groups[0].Percentage)
	assert.Equal(t, 25, *groups[1].Percentage)
	assert.Equal(t, 25, *groups[2].Percentage)
}

func TestBuildGroups_OrderingHoursDescNameAsc(t *testing.T) {
	groups, _, _ := BuildGroups([]GroupTotal{
		{Key: "z", Name: "Zeta", Minutes: 60, TaskCount: 1},
		{Key: "a", Name: "Alpha", Minutes: 60, TaskCount: 1},
		{Key: "m", Name: "Mid", Minutes: 240, TaskCount: 1},
	})

	require.Len(t, groups, 3)
	assert.Equal(t, "Mid", groups[0].Name)
	assert.Equal(t, "Alpha", groups[1].Name, "ties break by name")
	assert.Equal(t, "Zeta", groups[2].Name)
}

func TestBuildGroups_ZeroGrandTotalHasNilPercentages(t *testing.T) {
	groups, grandHours, grandTasks := BuildGroups([]GroupTotal{
		{Key: "a", Name: "Acme", Minutes: 0, TaskCount: 0},
	})

	require.Len(t, groups, 1)
	assert.Nil(t, groups[0].Percentage)
	assert.Equal(t, 0.0, grandHours)
	assert.Equal(t, 0, grandTasks)
}

func TestBuildGroups_Empty(t *testing.T) {
	groups, grandHours, grandTasks := BuildGroups(nil)
	assert.Empty(t, groups)
	assert.Equal(t, 0.0, grandHours)
	assert.Equal(t, 0, grandTasks)
}

func TestBuildGroups_RoundedSharesCanExceedHundred(t *testing.T) {
	// 3-way even split rounds each share to 33; the sum is not forced
	// back to 100.
	groups, _, _ := BuildGroups([]GroupTotal{
		{Key: "a", Name: "A", Minutes: 60, TaskCount: 1},
		{Key: "b", Name: "B", Minutes: 60, TaskCount: 1},
		{Key: "c", Name: "C", Minutes: 60, TaskCount: 1},
	})

	require.Len(t, groups, 3)
	for _, g := range groups {
		require.NotNil(t, g.Percentage)
		assert.Equal(t, 33, *g.Percentage)
	}
}
