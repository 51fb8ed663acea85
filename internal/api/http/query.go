package httpapi

import (
	"net/http"
	"strings"
	"time"

	v "github.com/asaskevich/govalidator"
	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	gerr "github.com/jekabolt/grbpwr-analytics/internal/errors"
	"github.com/jekabolt/grbpwr-analytics/internal/period"
	"github.com/jekabolt/grbpwr-analytics/internal/report"
)

const dateLayout = "2006-01-02"

func init() {
	v.TagMap["reportdate"] = v.Validator(func(s string) bool {
		_, err := parseTime(s, false, time.UTC)
		return err == nil
	})
}

// reportQuery is the raw query string of a report endpoint.
type reportQuery struct {
	Unit     string `valid:"optional,in(week|month|quarter|year)"`
	From     string `valid:"optional,reportdate"`
	To       string `valid:"optional,reportdate"`
	LastFrom string `valid:"optional,reportdate"`
	LastTo   string `valid:"optional,reportdate"`
}

func newReportQuery(r *http.Request) reportQuery {
	q := r.URL.Query()
	return reportQuery{
		Unit:     strings.ToLower(strings.TrimSpace(q.Get("unit"))),
		From:     q.Get("from"),
		To:       q.Get("to"),
		LastFrom: q.Get("last_from"),
		LastTo:   q.Get("last_to"),
	}
}

// parseTime accepts RFC 3339 or a plain date in loc. A plain date used as
// an upper bound covers the whole day.
func parseTime(s string, endOfDay bool, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Second)
	}
	return t, nil
}

func parseRange(from, to string, loc *time.Location) (entity.TimeRange, error) {
	if from == "" && to == "" {
		return entity.TimeRange{}, nil
	}
	if from == "" || to == "" {
		return entity.TimeRange{}, gerr.InvalidArgumentf(gerr.ErrInvalidDateRange, "both ends of a date range are required")
	}
	f, err := parseTime(from, false, loc)
	if err != nil {
		return entity.TimeRange{}, gerr.InvalidArgumentf(gerr.ErrInvalidDateRange, "invalid date %q", from)
	}
	t, err := parseTime(to, true, loc)
	if err != nil {
		return entity.TimeRange{}, gerr.InvalidArgumentf(gerr.ErrInvalidDateRange, "invalid date %q", to)
	}
	return entity.TimeRange{From: f, To: t}, nil
}

func (q reportQuery) validate() error {
	if _, err := v.ValidateStruct(q); err != nil {
		return gerr.InvalidArgument("invalid query: %v", err)
	}
	return nil
}

// unit parses the time unit; an empty unit is allowed only when !required.
func (q reportQuery) unit(required bool) (entity.TimeUnit, error) {
	if q.Unit == "" && !required {
		return "", nil
	}
	return period.ParseUnit(q.Unit)
}

func (q reportQuery) request(kind report.Kind, loc *time.Location) (report.Request, error) {
	req := report.Request{Kind: kind}
	var err error

	if req.Unit, err = q.unit(kind == report.KindFinancialSummary); err != nil {
		return req, err
	}
	if err = q.validate(); err != nil {
		return req, err
	}
	if req.Current, err = parseRange(q.From, q.To, loc); err != nil {
		return req, err
	}
	if req.Previous, err = parseRange(q.LastFrom, q.LastTo, loc); err != nil {
		return req, err
	}
	return req, nil
}
