// Package period derives reporting buckets from a time unit and a reference
// instant. Nothing here reads the wall clock: every caller passes "now".
package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	gerr "github.com/jekabolt/grbpwr-analytics/internal/errors"
)

// yearsBack is how many years before the current one the year report covers.
const yearsBack = 3

// Resolution bounds a period report: rows are taken from Range and the
// output must contain exactly one bucket per entry of Labels, in order.
type Resolution struct {
	Unit   entity.TimeUnit
	Range  entity.TimeRange
	Labels []string
}

// ParseUnit converts a user supplied selector into a TimeUnit.
func ParseUnit(s string) (entity.TimeUnit, error) {
	u := entity.TimeUnit(strings.ToLower(strings.TrimSpace(s)))
	if !entity.ValidTimeUnits[u] {
		return "", gerr.InvalidArgumentf(gerr.ErrInvalidTimeUnit, "invalid time unit %q", s)
	}
	return u, nil
}

// Resolve computes the date range and the expected labels for unit anchored at now.
func Resolve(unit entity.TimeUnit, now time.Time) (Resolution, error) {
	loc := now.Location()
	y, m := now.Year(), now.Month()

	res := Resolution{Unit: unit}
	switch unit {
	case entity.TimeUnitWeek:
		first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
		next := first.AddDate(0, 1, 0)
		last := next.AddDate(0, 0, -1)
		res.Range = entity.TimeRange{From: first, To: next}
		for w := weekOfMonth(first); w <= weekOfMonth(last); w++ {
			res.Labels = append(res.Labels, weekLabel(y, w))
		}
	case entity.TimeUnitMonth:
		res.Range = yearRange(y, y, loc)
		for i := 1; i <= 12; i++ {
			res.Labels = append(res.Labels, monthLabel(y, time.Month(i)))
		}
	case entity.TimeUnitQuarter:
		res.Range = yearRange(y, y, loc)
		for q := 1; q <= 4; q++ {
			res.Labels = append(res.Labels, quarterLabel(y, q))
		}
	case entity.TimeUnitYear:
		res.Range = yearRange(y-yearsBack, y, loc)
		for yy := y - yearsBack; yy <= y; yy++ {
			res.Labels = append(res.Labels, strconv.Itoa(yy))
		}
	default:
		return Resolution{}, gerr.InvalidArgumentf(gerr.ErrInvalidTimeUnit, "invalid time unit %q", unit)
	}
	return res, nil
}

// LabelOf returns the bucket label t falls into for unit.
func LabelOf(unit entity.TimeUnit, t time.Time) (string, error) {
	switch unit {
	case entity.TimeUnitWeek:
		return weekLabel(t.Year(), weekOfMonth(t)), nil
	case entity.TimeUnitMonth:
		return monthLabel(t.Year(), t.Month()), nil
	case entity.TimeUnitQuarter:
		return quarterLabel(t.Year(), (int(t.Month())-1)/3+1), nil
	case entity.TimeUnitYear:
		return strconv.Itoa(t.Year()), nil
	default:
		return "", gerr.InvalidArgumentf(gerr.ErrInvalidTimeUnit, "invalid time unit %q", unit)
	}
}

// LabelExpr returns the MySQL expression that yields LabelOf(unit, col) for a
// timestamp column. col must be a trusted column reference, never user input.
func LabelExpr(unit entity.TimeUnit, col string) (string, error) {
	switch unit {
	case entity.TimeUnitWeek:
		// DAYOFWEEK is 1 for Sunday, the numerator stays positive so DIV floors.
		return "CONCAT(YEAR(" + col + "), '-W', (DAYOFMONTH(" + col + ") - DAYOFWEEK(" + col + ") + 8) DIV 7)", nil
	case entity.TimeUnitMonth:
		return "DATE_FORMAT(" + col + ", '%Y-%m')", nil
	case entity.TimeUnitQuarter:
		return "CONCAT(YEAR(" + col + "), '-Q', QUARTER(" + col + "))", nil
	case entity.TimeUnitYear:
		return "CAST(YEAR(" + col + ") AS CHAR)", nil
	default:
		return "", gerr.InvalidArgumentf(gerr.ErrInvalidTimeUnit, "invalid time unit %q", unit)
	}
}

// weekOfMonth numbers Sunday-started weeks within the month of t:
// ceil((dayOfMonth - dayOfWeek + 1) / 7), Sunday being 0. A month that does
// not start on Sunday or Monday begins with week 0.
func weekOfMonth(t time.Time) int {
	return ceilDiv(t.Day()-int(t.Weekday())+1, 7)
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a > 0) == (b > 0) {
		q++
	}
	return q
}

func yearRange(fromYear, toYear int, loc *time.Location) entity.TimeRange {
	return entity.TimeRange{
		From: time.Date(fromYear, time.January, 1, 0, 0, 0, 0, loc),
		To:   time.Date(toYear+1, time.January, 1, 0, 0, 0, 0, loc),
	}
}

func weekLabel(y, w int) string {
	return fmt.Sprintf("%d-W%d", y, w)
}

func monthLabel(y int, m time.Month) string {
	return fmt.Sprintf("%d-%02d", y, int(m))
}

func quarterLabel(y, q int) string {
	return fmt.Sprintf("%d-Q%d", y, q)
}
