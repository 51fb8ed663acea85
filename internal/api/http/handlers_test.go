package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	gerr "github.com/jekabolt/grbpwr-analytics/internal/errors"
	"github.com/jekabolt/grbpwr-analytics/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var fixedNow = time.Date(2023, time.June, 15, 10, 0, 0, 0, time.UTC)

type fakeService struct {
	req    report.Request
	res    *report.Result
	db     *entity.Dashboard
	unit   entity.TimeUnit
	err    error
	called bool
}

func (f *fakeService) Run(_ context.Context, req report.Request) (*report.Result, error) {
	f.called = true
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func (f *fakeService) Dashboard(_ context.Context, unit entity.TimeUnit) (*entity.Dashboard, error) {
	f.called = true
	f.unit = unit
	if f.err != nil {
		return nil, f.err
	}
	return f.db, nil
}

func (f *fakeService) Now() time.Time { return fixedNow }

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func do(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var er errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&er))
	return er
}

func TestHealthz(t *testing.T) {
	rec := do(t, NewRouter(&fakeService{}, fakePinger{}, nil), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, NewRouter(&fakeService{}, fakePinger{err: errors.New("conn refused")}, nil), "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	er := decodeError(t, rec)
	assert.Equal(t, "Unavailable", er.Code)
	assert.NotContains(t, er.Message, "conn refused")
}

func TestRunReportParsesQuery(t *testing.T) {
	svc := &fakeService{res: &report.Result{Kind: report.KindComparison}}
	h := NewRouter(svc, nil, nil)

	rec := do(t, h, "/api/reports/comparison?unit=Month&from=2023-06-01&to=2023-06-10&last_from=2023-05-01T00:00:00Z&last_to=2023-05-10T23:59:59Z")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, report.KindComparison, svc.req.Kind)
	assert.Equal(t, entity.TimeUnitMonth, svc.req.Unit)
	assert.Equal(t, time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), svc.req.Current.From)
	// a plain date upper bound covers the whole day
	assert.Equal(t, time.Date(2023, time.June, 10, 23, 59, 59, 0, time.UTC), svc.req.Current.To)
	assert.Equal(t, time.Date(2023, time.May, 10, 23, 59, 59, 0, time.UTC), svc.req.Previous.To)
}

func TestRunReportDefaults(t *testing.T) {
	svc := &fakeService{res: &report.Result{Kind: report.KindTopCustomers}}
	rec := do(t, NewRouter(svc, nil, nil), "/api/reports/top-customers")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.req.Unit)
	assert.True(t, svc.req.Current.IsZero())
}

func TestRunReportInvalidArgument(t *testing.T) {
	for name, target := range map[string]string{
		"bad unit":           "/api/reports/top-products?unit=day",
		"summary needs unit": "/api/reports/financial-summary",
		"bad date":           "/api/reports/top-products?from=2023-13-01&to=2023-06-01",
		"half range":         "/api/reports/top-products?from=2023-06-01",
	} {
		t.Run(name, func(t *testing.T) {
			svc := &fakeService{}
			rec := do(t, NewRouter(svc, nil, nil), target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "InvalidArgument", decodeError(t, rec).Code)
			assert.False(t, svc.called)
		})
	}
}

func TestRunReportServiceErrors(t *testing.T) {
	svc := &fakeService{err: gerr.StoreUnavailable("top customers", errors.New("dial tcp: timeout"))}
	rec := do(t, NewRouter(svc, nil, nil), "/api/reports/top-customers")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	er := decodeError(t, rec)
	assert.Equal(t, "Unavailable", er.Code)
	assert.NotContains(t, er.Message, "dial tcp")

	svc = &fakeService{err: gerr.InvalidArgumentf(gerr.ErrInvalidDateRange, "to is before from")}
	rec = do(t, NewRouter(svc, nil, nil), "/api/reports/comparison?unit=week")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "to is before from: invalid date range", decodeError(t, rec).Message)
}

func TestAmountsAreNumbers(t *testing.T) {
	decimal.MarshalJSONWithoutQuotes = true
	t.Cleanup(func() { decimal.MarshalJSONWithoutQuotes = false })

	svc := &fakeService{res: &report.Result{
		Kind: report.KindTopProducts,
		Ranking: []entity.RevenueRanking{
			{ID: 1, Name: "Tee", TotalRevenue: decimal.RequireFromString("120.50"), Quantity: decimal.NewFromInt(3)},
		},
	}}
	rec := do(t, NewRouter(svc, nil, nil), "/api/reports/top-products")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_revenue":120.5`)
}

func TestDashboard(t *testing.T) {
	svc := &fakeService{db: &entity.Dashboard{Unit: entity.TimeUnitQuarter}}
	rec := do(t, NewRouter(svc, nil, nil), "/api/reports/dashboard?unit=quarter")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.TimeUnitQuarter, svc.unit)

	rec = do(t, NewRouter(&fakeService{}, nil, nil), "/api/reports/dashboard")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFinancialSummaryXLSX(t *testing.T) {
	svc := &fakeService{res: &report.Result{
		Kind: report.KindFinancialSummary,
		FinancialSummary: []entity.FinancialSummary{
			{TimePeriod: "2023-Q1", TotalRevenue: decimal.NewFromInt(100), TotalCost: decimal.NewFromInt(40), Profit: decimal.NewFromInt(60)},
			{TimePeriod: "2023-Q2", TotalRevenue: decimal.Zero, TotalCost: decimal.Zero, Profit: decimal.Zero},
		},
	}}
	rec := do(t, NewRouter(svc, nil, nil), "/api/reports/financial-summary.xlsx?unit=quarter")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxMIME, rec.Header().Get("Content-Type"))
	assert.Equal(t, report.KindFinancialSummary, svc.req.Kind)

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Period", "Revenue", "Cost", "Profit"}, rows[0])
	assert.Equal(t, []string{"2023-Q1", "100", "40", "60"}, rows[1])
}

func TestIsOriginAllowed(t *testing.T) {
	assert.True(t, isOriginAllowed("http://localhost:3000", nil))
	assert.True(t, isOriginAllowed("https://admin.example.com", []string{"https://admin.example.com"}))
	assert.True(t, isOriginAllowed("https://any.example.com", []string{"*"}))
	assert.False(t, isOriginAllowed("https://evil.example.com", []string{"https://admin.example.com"}))
}

func TestReportMiddlewareSkipsHealthz(t *testing.T) {
	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
	}
	h := NewRouter(&fakeService{}, fakePinger{}, nil, deny)
	assert.Equal(t, http.StatusOK, do(t, h, "/healthz").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, "/api/reports/top-customers").Code)
}
