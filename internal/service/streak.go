package service

import (
	"time"

	"github.com/ashfall/questlog/pkg/entity"
)

// DateOnly strips the time component, the result is midnight UTC of the
// same calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)) / (24 * time.Hour))
}

// NextStreak computes the streak record after a completion toggle for
// one calendar day.
//
// On completion: the first ever completion starts a streak of 1; a
// completion one day after the last recorded one extends it; the same
// day again changes nothing; a gap of more than one day resets the
// streak to 1. A backdated completion (day before the last recorded
// one) leaves the record untouched. longest_streak never decreases.
//
// On un-completion only the most recent completion day matters: the
// streak drops by 1 (floored at 0) and last_completed_date is cleared.
// Un-completing any earlier day is a no-op, history is not recomputed.
func NextStreak(prior entity.HabitStreak, day time.Time, completed bool) entity.HabitStreak {
	next := prior
	day = DateOnly(day)
	if !completed {
		if prior.LastCompletedDate != nil && DateOnly(*prior.LastCompletedDate).Equal(day) {
			next.CurrentStreak = prior.CurrentStreak - 1
			if next.CurrentStreak < 0 {
				next.CurrentStreak = 0
			}
			next.LastCompletedDate = nil
		}
		return next
	}
	if prior.LastCompletedDate == nil {
		next.CurrentStreak = 1
	} else {
		switch diff := daysBetween(*prior.LastCompletedDate, day); {
		case diff == 0:
			// Re-confirming the same day
		case diff == 1:
			next.CurrentStreak++
		case diff > 1:
			next.CurrentStreak = 1
		default:
			// Backdated completion, streak state stays as is
			return prior
		}
	}
	if next.CurrentStreak > next.LongestStreak {
		next.LongestStreak = next.CurrentStreak
	}
	next.LastCompletedDate = &day
	return next
}
