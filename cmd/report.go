package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jekabolt/grbpwr-analytics/app"
	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	"github.com/jekabolt/grbpwr-analytics/internal/period"
	"github.com/jekabolt/grbpwr-analytics/internal/report"
	"github.com/jekabolt/grbpwr-analytics/internal/store"
	"github.com/spf13/cobra"
)

var reportFlags struct {
	unit     string
	from     string
	to       string
	lastFrom string
	lastTo   string
	now      string
}

var reportCmd = &cobra.Command{
	Use:   "report <kind>",
	Short: "Run one report against the database and print it as JSON",
	Long: "Run one report against the database and print it as JSON.\n\nKinds: " +
		strings.Join(reportKinds(), ", ") + ", dashboard",
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	f := reportCmd.Flags()
	f.StringVarP(&reportFlags.unit, "unit", "u", "", "time unit: week, month, quarter or year")
	f.StringVar(&reportFlags.from, "from", "", "current window start (RFC 3339)")
	f.StringVar(&reportFlags.to, "to", "", "current window end (RFC 3339)")
	f.StringVar(&reportFlags.lastFrom, "last-from", "", "previous window start (RFC 3339)")
	f.StringVar(&reportFlags.lastTo, "last-to", "", "previous window end (RFC 3339)")
	f.StringVar(&reportFlags.now, "now", "", "reference instant for default windows (RFC 3339)")
}

func reportKinds() []string {
	kinds := make([]string, 0, len(report.ValidKinds))
	for k := range report.ValidKinds {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	return kinds
}

func parseFlagRange(from, to string) (entity.TimeRange, error) {
	if from == "" && to == "" {
		return entity.TimeRange{}, nil
	}
	f, err := time.Parse(time.RFC3339, from)
	if err != nil {
		return entity.TimeRange{}, fmt.Errorf("invalid start %q: %w", from, err)
	}
	t, err := time.Parse(time.RFC3339, to)
	if err != nil {
		return entity.TimeRange{}, fmt.Errorf("invalid end %q: %w", to, err)
	}
	return entity.TimeRange{From: f, To: t}, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	db, err := store.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("couldn't connect to mysql: %w", err)
	}
	defer db.Close()

	var opts []report.Option
	if reportFlags.now != "" {
		now, err := time.Parse(time.RFC3339, reportFlags.now)
		if err != nil {
			return fmt.Errorf("invalid --now %q: %w", reportFlags.now, err)
		}
		opts = append(opts, report.WithClock(func() time.Time { return now }))
	}

	svc, err := app.NewReportService(ctx, cfg, db.Reports(), opts...)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if args[0] == "dashboard" {
		unit, err := period.ParseUnit(reportFlags.unit)
		if err != nil {
			return err
		}
		d, err := svc.Dashboard(ctx, unit)
		if err != nil {
			return err
		}
		return enc.Encode(d)
	}

	req := report.Request{Kind: report.Kind(args[0])}
	if reportFlags.unit != "" {
		if req.Unit, err = period.ParseUnit(reportFlags.unit); err != nil {
			return err
		}
	}
	if req.Current, err = parseFlagRange(reportFlags.from, reportFlags.to); err != nil {
		return err
	}
	if req.Previous, err = parseFlagRange(reportFlags.lastFrom, reportFlags.lastTo); err != nil {
		return err
	}

	res, err := svc.Run(ctx, req)
	if err != nil {
		return err
	}
	return enc.Encode(res)
}
