package cli

import (
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/export"
	"github.com/Casper-hue/api-watchdog/internal/viewmodel"
)

type exportResult struct {
	Path    string `json:"path" yaml:"path"`
	Records int    `json:"records" yaml:"records"`
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the statistics summary as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts, false)
			if err != nil {
				return err
			}
			defer e.close()
			period, err := resolvePeriod(cmd, e)
			if err != nil {
				return err
			}
			dir, _ := cmd.Flags().GetString("dir")

			in, err := fetchExportInput(cmd, e.client, period)
			if err != nil {
				return err
			}
			records := viewmodel.ExportRecords(in)
			path, err := export.WriteFile(dir, time.Now(), records)
			if err != nil {
				return err
			}
			e.log.Infow("exported statistics", "path", path, "records", len(records))
			return e.out.message(exportResult{Path: path, Records: len(records)}, "Exported to "+path)
		},
	}
	addPeriodFlag(cmd)
	cmd.Flags().String("dir", ".", "output directory")
	return cmd
}

// fetchExportInput loads the summary, the aggregate stats and the warnings
// in parallel. The first failure cancels the rest.
func fetchExportInput(cmd *cobra.Command, c *api.Client, period viewmodel.Period) (viewmodel.ExportInput, error) {
	ctx, cancel := requestContext(cmd.Context())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	var (
		summary  *api.DashboardSummary
		stats    *api.ProjectStats
		warnings *api.WarningList
	)
	g.Go(func() (err error) {
		summary, err = c.DashboardSummary(ctx, period.TimeRange())
		return err
	})
	g.Go(func() (err error) {
		stats, err = c.AllProjectsStats(ctx, period.TimeRange())
		return err
	})
	g.Go(func() (err error) {
		warnings, err = c.Warnings(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return viewmodel.ExportInput{}, err
	}

	return viewmodel.ExportInput{
		Period:         summary.ForRange(period.TimeRange()),
		Stats:          stats,
		ActiveProjects: summary.ActiveProjects,
		Warnings:       max(summary.WarningCount, warnings.TotalCount, len(warnings.Warnings)),
	}, nil
}
