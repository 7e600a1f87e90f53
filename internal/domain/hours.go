package domain

import (
	"fmt"
	"math"
)

// HoursDecimal converts minutes to decimal hours rounded to 2 places.
// Hours are always derived from the stored integer minutes and never
// stored on their own, so the two displays cannot drift apart.
func HoursDecimal(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}

// HoursClock converts minutes to an "H:MM" display string.
func HoursClock(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
