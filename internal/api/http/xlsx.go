package httpapi

import (
	"fmt"
	"net/http"

	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	"github.com/jekabolt/grbpwr-analytics/internal/report"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Sheet1"
	xlsxMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var summaryHeadings = []any{"Period", "Revenue", "Cost", "Profit"}

// financialSummaryWorkbook renders one row per bucket under a heading row.
func financialSummaryWorkbook(rows []entity.FinancialSummary) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetRow(summarySheet, "A1", &summaryHeadings); err != nil {
		f.Close()
		return nil, err
	}
	for i, fs := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		row := []any{
			fs.TimePeriod,
			fs.TotalRevenue.InexactFloat64(),
			fs.TotalCost.InexactFloat64(),
			fs.Profit.InexactFloat64(),
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func (h *handler) financialSummaryXLSX(w http.ResponseWriter, r *http.Request) {
	q := newReportQuery(r)
	unit, err := q.unit(true)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.svc.Run(r.Context(), report.Request{Kind: report.KindFinancialSummary, Unit: unit})
	if err != nil {
		writeError(w, r, err)
		return
	}

	f, err := financialSummaryWorkbook(res.FinancialSummary)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", xlsxMIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=financial-summary-%s.xlsx", unit))
	if err := f.Write(w); err != nil {
		http.Error(w, "Failed to write file", http.StatusInternalServerError)
	}
}
