package lib

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	c "git.cmcode.dev/cmcode/finance-manager-tui/constants"

	"github.com/teambition/rrule-go"
)

// Repeat describes how many copies of a transaction to create and how far
// apart they are.
type Repeat struct {
	Count     int
	Frequency rrule.Frequency
}

// ParseRepeat reads text such as "3", "3 monthly", "2 weekly" or "1 yearly".
// The frequency defaults to monthly. The count must be between 1 and
// c.MaxRepeatCount.
func ParseRepeat(input string) (Repeat, error) {
	r := Repeat{Frequency: rrule.MONTHLY}

	parts := strings.Fields(input)
	if len(parts) == 0 || len(parts) > 2 {
		return r, &ValidationError{Field: c.ColumnDate, Reason: "expected a count followed by weekly, monthly or yearly"}
	}

	n, err := strconv.Atoi(parts[0])
	if err != nil || n < 1 || n > c.MaxRepeatCount {
		return r, &ValidationError{
			Field:  c.ColumnDate,
			Reason: fmt.Sprintf("repeat count must be a whole number from 1 to %v", c.MaxRepeatCount),
		}
	}

	r.Count = n

	if len(parts) == 2 {
		switch strings.ToUpper(parts[1]) {
		case c.WEEKLY:
			r.Frequency = rrule.WEEKLY
		case c.MONTHLY:
			r.Frequency = rrule.MONTHLY
		case c.YEARLY:
			r.Frequency = rrule.YEARLY
		default:
			return r, &ValidationError{Field: c.ColumnDate, Reason: fmt.Sprintf("unknown frequency %q", parts[1])}
		}
	}

	return r, nil
}

// Dates returns the next r.Count occurrences after start, not including start
// itself. Monthly recurrences that start on a day some months don't have
// (e.g. the 31st) skip those months.
func (r Repeat) Dates(start time.Time) ([]time.Time, error) {
	rule, err := rrule.NewRRule(
		rrule.ROption{
			Freq:     r.Frequency,
			Interval: 1,
			Count:    r.Count + 1,
			Dtstart:  start,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to construct rrule for repeat: %w", err)
	}

	all := rule.All()
	if len(all) <= 1 {
		return []time.Time{}, nil
	}

	return all[1:], nil
}
