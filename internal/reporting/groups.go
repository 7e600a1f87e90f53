package reporting

import (
	"math"
	"sort"

	"github.com/alexanderramin/partes/internal/domain"
)

// GroupDimension selects the axis a grouped report is partitioned by.
type GroupDimension string

const (
	GroupByClient   GroupDimension = "client"
	GroupByEmployee GroupDimension = "employee"
	GroupByTaskType GroupDimension = "task_type"
)

// GroupTotal is one raw aggregation bucket as produced by the store:
// summed minutes and record count under a grouping key.
type GroupTotal struct {
	Key       string
	Name      string
	Minutes   int
	TaskCount int
}

// Group is a display-ready bucket of a grouped report.
type Group struct {
	Key        string
	Name       string
	TotalHours float64
	TaskCount  int
	// Percentage is the rounded share of the grand total, nil when the
	// grand total is zero (never a division by zero).
	Percentage *int
}

// BuildGroups turns raw aggregation buckets into ordered display groups
// and returns them with the grand totals. Percentages need the grand total
// as denominator, so this is a deliberate second pass over the buckets;
// both passes run on the same query result within one request, so the
// denominator cannot drift from concurrent writes.
//
// Groups are ordered by total hours descending, ties broken by name
// ascending for determinism. Percentages are computed on raw minutes so
// display rounding cannot skew the shares.
func BuildGroups(totals []GroupTotal) (groups []Group, grandHours float64, grandTasks int) {
	grandMinutes := 0
	for _, t := range totals {
		grandMinutes += t.Minutes
		grandTasks += t.TaskCount
	}

	groups = make([]Group, 0, len(totals))
	for _, t := range totals {
		g := Group{
			Key:        t.Key,
			Name:       t.Name,
			TotalHours: domain.HoursDecimal(t.Minutes),
			TaskCount:  t.TaskCount,
		}
		if grandMinutes > 0 {
			pct := int(math.Round(float64(t.Minutes) / float64(grandMinutes) * 100))
			g.Percentage = &pct
		}
		groups = append(groups, g)
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].TotalHours != groups[j].TotalHours {
			return groups[i].TotalHours > groups[j].TotalHours
		}
		return groups[i].Name < groups[j].Name
	})

	return groups, domain.HoursDecimal(grandMinutes), grandTasks
}
