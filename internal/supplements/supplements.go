// Package supplements models supplement reminders: what to take, how many
// pills per dose, and at which times of day. Actual notification delivery
// is an external collaborator; this package only answers "what's next".
package supplements

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Supplement is one reminder entry.
type Supplement struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	PillsPerDose  int       `json:"pills_per_dose"`
	ScheduleTimes []string  `json:"schedule_times"` // "HH:MM", sorted
	CreatedAt     time.Time `json:"created_at"`
}

// New validates and builds a Supplement with a fresh ID. Empty schedule
// slots are dropped; at least one valid time is required.
func New(name string, pillsPerDose int, scheduleTimes []string) (Supplement, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Supplement{}, fmt.Errorf("supplement name is required")
	}
	if pillsPerDose <= 0 {
		return Supplement{}, fmt.Errorf("pills per dose must be positive, got %d", pillsPerDose)
	}

	times := make([]string, 0, len(scheduleTimes))
	for _, ts := range scheduleTimes {
		ts = strings.TrimSpace(ts)
		if ts == "" {
			continue
		}
		if _, err := minuteOfDay(ts); err != nil {
			return Supplement{}, err
		}
		times = append(times, ts)
	}
	if len(times) == 0 {
		return Supplement{}, fmt.Errorf("at least one schedule time is required")
	}
	sort.Strings(times)

	return Supplement{
		ID:            uuid.NewString(),
		Name:          name,
		PillsPerDose:  pillsPerDose,
		ScheduleTimes: times,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// NextDose returns the first schedule time after the current minute of day,
// wrapping to the earliest slot when the day's doses are done.
func (s Supplement) NextDose(now time.Time) string {
	current := now.Hour()*60 + now.Minute()

	minutes := make([]int, 0, len(s.ScheduleTimes))
	for _, ts := range s.ScheduleTimes {
		m, err := minuteOfDay(ts)
		if err != nil {
			continue
		}
		minutes = append(minutes, m)
	}
	if len(minutes) == 0 {
		return ""
	}
	sort.Ints(minutes)

	next := minutes[0]
	for _, m := range minutes {
		if m > current {
			next = m
			break
		}
	}
	return fmt.Sprintf("%02d:%02d", next/60, next%60)
}

// minuteOfDay parses "HH:MM" into minutes since midnight.
func minuteOfDay(s string) (int, error) {
	var hours, mins int
	if _, err := fmt.Sscanf(s, "%d:%d", &hours, &mins); err != nil {
		return 0, fmt.Errorf("invalid schedule time %q: want HH:MM", s)
	}
	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("invalid schedule time %q: want HH:MM", s)
	}
	return hours*60 + mins, nil
}
