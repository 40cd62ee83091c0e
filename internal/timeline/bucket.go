package timeline

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
)

// DayBucket is a header cell spanning one or more consecutive visible days.
type DayBucket struct {
	Key      string
	Label    string
	Sublabel string
	Days     []time.Time
	IsToday  bool
}

// GroupBuckets groups the visible days into header buckets for the given
// view mode. Every visible day lands in exactly one bucket; partial weeks
// and months at the window edges still form buckets of their own.
func GroupBuckets(visibleDays []time.Time, mode domain.ViewMode, today time.Time) []DayBucket {
	switch mode {
	case domain.ViewDay:
		return dayBuckets(visibleDays, today)
	case domain.ViewMonth:
		return monthBuckets(visibleDays, today)
	default:
		return weekBuckets(visibleDays, today)
	}
}

func dayBuckets(days []time.Time, today time.Time) []DayBucket {
	today = domain.DateOnly(today)
	buckets := make([]DayBucket, 0, len(days))
	for _, d := range days {
		buckets = append(buckets, DayBucket{
			Key:      d.Format("2006-01-02"),
			Label:    fmt.Sprintf("%d", d.Day()),
			Sublabel: d.Format("Mon"),
			Days:     []time.Time{d},
			IsToday:  d.Equal(today),
		})
	}
	return buckets
}

// weekBuckets groups consecutive days sharing the same Monday-anchored week.
// Boundary weeks clipped by the window keep their calendar-week identity;
// the sublabel spans only the visible portion.
func weekBuckets(days []time.Time, today time.Time) []DayBucket {
	today = domain.DateOnly(today)
	var buckets []DayBucket
	var cur []time.Time
	var curAnchor time.Time

	flush := func() {
		if len(cur) == 0 {
			return
		}
		year, week := curAnchor.ISOWeek()
		first, last := cur[0], cur[len(cur)-1]
		buckets = append(buckets, DayBucket{
			Key:      fmt.Sprintf("%04d-W%02d", year, week),
			Label:    fmt.Sprintf("W%d", week),
			Sublabel: fmt.Sprintf("%s - %s", first.Format("Jan 2"), last.Format("Jan 2")),
			Days:     cur,
			IsToday:  containsDay(cur, today),
		})
	}

	for _, d := range days {
		anchor := weekAnchor(d)
		if len(cur) > 0 && !anchor.Equal(curAnchor) {
			flush()
			cur = nil
		}
		curAnchor = anchor
		cur = append(cur, d)
	}
	flush()
	return buckets
}

func monthBuckets(days []time.Time, today time.Time) []DayBucket {
	today = domain.DateOnly(today)
	var buckets []DayBucket
	var cur []time.Time

	sameMonth := func(a, b time.Time) bool {
		return a.Year() == b.Year() && a.Month() == b.Month()
	}
	flush := func() {
		if len(cur) == 0 {
			return
		}
		first := cur[0]
		buckets = append(buckets, DayBucket{
			Key:      first.Format("2006-01"),
			Label:    first.Format("Jan"),
			Sublabel: first.Format("2006"),
			Days:     cur,
			IsToday:  containsDay(cur, today),
		})
	}

	for _, d := range days {
		if len(cur) > 0 && !sameMonth(cur[0], d) {
			flush()
			cur = nil
		}
		cur = append(cur, d)
	}
	flush()
	return buckets
}

// weekAnchor returns the Monday of the week containing d.
func weekAnchor(d time.Time) time.Time {
	offset := int(d.Weekday())
	if offset == 0 {
		offset = 7 // Sunday belongs to the preceding Monday
	}
	offset--
	return d.AddDate(0, 0, -offset)
}

func containsDay(days []time.Time, target time.Time) bool {
	for _, d := range days {
		if d.Equal(target) {
			return true
		}
	}
	return false
}
