package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() *TaskRecord {
	return &TaskRecord{
		ID:         "rec-1",
		EmployeeID: "emp-1",
		ClientID:   "cli-1",
		TaskTypeID: "tt-1",
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Minutes:    90,
		Note:       "quarterly report prep",
	}
}

func TestTaskRecord_Validate_OK(t *testing.T) {
	rec := validRecord()
	require.NoError(t, rec.Validate())
}

func TestTaskRecord_Validate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TaskRecord)
	}{
		{"missing employee", func(r *TaskRecord) { r.EmployeeID = "" }},
		{"missing client", func(r *TaskRecord) { r.ClientID = "" }},
		{"missing task type", func(r *TaskRecord) { r.TaskTypeID = "" }},
		{"zero date", func(r *TaskRecord) { r.Date = time.Time{} }},
		{"zero minutes", func(r *TaskRecord) { r.Minutes = 0 }},
		{"negative minutes", func(r *TaskRecord) { r.Minutes = -15 }},
		{"not a step multiple", func(r *TaskRecord) { r.Minutes = 50 }},
		{"over one day", func(r *TaskRecord) { r.Minutes = 1455 }},
		{"blank note", func(r *TaskRecord) { r.Note = "   " }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := validRecord()
			tc.mutate(rec)
			assert.Error(t, rec.Validate())
		})
	}
}

func TestTaskRecord_Validate_BoundaryMinutes(t *testing.T) {
	rec := validRecord()
	rec.Minutes = MaxMinutesPerRecord
	assert.NoError(t, rec.Validate(), "exactly 24 hours is allowed")

	rec.Minutes = MinutesStep
	assert.NoError(t, rec.Validate(), "a single step is allowed")
}

func TestHoursDecimal(t *testing.T) {
	assert.Equal(t, 1.5, HoursDecimal(90))
	assert.Equal(t, 4.5, HoursDecimal(270))
	assert.Equal(t, 0.25, HoursDecimal(15))
	assert.Equal(t, 24.0, HoursDecimal(1440))
	assert.Equal(t, 0.0, HoursDecimal(0))
}

func TestHoursClock(t *testing.T) {
	assert.Equal(t, "1:30", HoursClock(90))
	assert.Equal(t, "0:45", HoursClock(45))
	assert.Equal(t, "24:00", HoursClock(1440))
	assert.Equal(t, "2:05", HoursClock(125))
}

func TestEnabledFlags(t *testing.T) {
	e := &Employee{Active: true}
	assert.True(t, e.Enabled())
	e.Disabled = true
	assert.False(t, e.Enabled())

	c := &Client{Active: false}
	assert.False(t, c.Enabled())

	tt := &TaskType{Active: true, Disabled: false}
	assert.True(t, tt.Enabled())
}
