package httpapi

import (
	"net/http"

	gerr "github.com/jekabolt/grbpwr-analytics/internal/errors"
	"github.com/jekabolt/grbpwr-analytics/internal/period"
	"github.com/jekabolt/grbpwr-analytics/internal/report"
)

func (h *handler) healthz(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health.Ping(r.Context()); err != nil {
			writeError(w, r, gerr.StoreUnavailable("ping", err))
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) runReport(kind report.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := newReportQuery(r).request(kind, h.svc.Now().Location())
		if err != nil {
			writeError(w, r, err)
			return
		}
		res, err := h.svc.Run(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func (h *handler) dashboard(w http.ResponseWriter, r *http.Request) {
	unit, err := period.ParseUnit(r.URL.Query().Get("unit"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	db, err := h.svc.Dashboard(r.Context(), unit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, db)
}
