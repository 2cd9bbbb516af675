package main

import (
	"context"
	"fmt"
	"os"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/output"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const reportConcurrency = 4

var (
	flagReportUsers   []string
	flagReportPeriod  string
	flagReportNoColor bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print mood insights for one or more users",
	Example: `  mood-journal report --user 11111111-1111-1111-1111-111111111111
  mood-journal report --user <id> --user <id> --period month --no-color`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringArrayVar(&flagReportUsers, "user", nil, "User UUID (repeatable)")
	reportCmd.Flags().StringVar(&flagReportPeriod, "period", string(domain.PeriodWeek), "Window: week, month or year")
	reportCmd.Flags().BoolVar(&flagReportNoColor, "no-color", false, "Disable colored output")
	_ = reportCmd.MarkFlagRequired("user")
}

func runReport(cmd *cobra.Command, args []string) error {
	period, err := domain.ParsePeriod(flagReportPeriod)
	if err != nil {
		return err
	}
	ids := make([]uuid.UUID, len(flagReportUsers))
	for i, raw := range flagReportUsers {
		if ids[i], err = uuid.Parse(raw); err != nil {
			return fmt.Errorf("invalid user id %q: %w", raw, err)
		}
	}

	if flagReportNoColor || !output.StdoutIsTerminal() {
		output.SetNoColor(true)
	}

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDatabase(cfg, log)
	if err != nil {
		return err
	}
	svc := buildServices(cfg, db, log)
	defer svc.tracer.Close(context.Background())

	rendered := make([]string, len(ids))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(reportConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			user, err := svc.users.GetByID(ctx, id)
			if err != nil {
				return fmt.Errorf("user %s: %w", id, err)
			}
			insights, err := svc.insights.Generate(ctx, id, period)
			if err != nil {
				return fmt.Errorf("insights for %s: %w", id, err)
			}
			name := user.Name
			if name == "" {
				name = id.String()
			}
			rendered[i] = output.RenderInsights(name, period, insights)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, output.JoinReports(rendered))
	return nil
}
