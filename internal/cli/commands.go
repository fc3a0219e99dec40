package cli

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/viewmodel"
)

var levelNames = [...]string{"info", "notice", "similar", "high-similarity", "rate-limited"}

func levelName(l api.Level) string {
	if !l.Valid() {
		return strconv.Itoa(int(l))
	}
	return levelNames[l]
}

// resolvePeriod returns the --period flag, or the configured period when unset.
func resolvePeriod(cmd *cobra.Command, e *env) (viewmodel.Period, error) {
	s, _ := cmd.Flags().GetString("period")
	if s == "" {
		return e.cfg.Period(), nil
	}
	return viewmodel.ParsePeriod(s)
}

func addPeriodFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("period", "p", "", "reporting period: week, month, quarter (default from config)")
}

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show spend against budget",
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

			ctx, cancel := requestContext(cmd.Context())
			defer cancel()
			s, err := e.client.DashboardSummary(ctx, period.TimeRange())
			if err != nil {
				return err
			}
			prefs := api.DefaultUserPreferences()
			if p, err := e.client.UserPreferences(ctx); err == nil {
				prefs = *p
			} else {
				e.log.Warnw("preferences unavailable, using defaults", "error", err)
			}

			eq := e.cfg.Equivalent()
			cards := viewmodel.BuildStatCards(*s, prefs, eq, eq, e.tr)
			return e.out.print(s, func() string {
				t := newTable("METRIC", "VALUE", "EQUIVALENT", "METER")
				for _, c := range cards {
					t.Row(c.Title, c.Value, c.Equivalent, fmt.Sprintf("%d%%", c.Meter))
				}
				return t.String()
			})
		},
	}
	addPeriodFlag(cmd)
	return cmd
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [project-id]",
		Short: "Show per-model costs for all projects or one project",
		Args:  cobra.MaximumNArgs(1),
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

			ctx, cancel := requestContext(cmd.Context())
			defer cancel()
			var s *api.ProjectStats
			if len(args) == 1 {
				s, err = e.client.ProjectStats(ctx, args[0], period.TimeRange())
			} else {
				s, err = e.client.AllProjectsStats(ctx, period.TimeRange())
			}
			if err != nil {
				return err
			}

			return e.out.print(s, func() string {
				t := newTable("MODEL", "REQUESTS", "COST", "AVG", "SHARE")
				for _, r := range viewmodel.ModelRows(s.TopModels) {
					t.Row(r.Model, strconv.Itoa(r.Requests), fmt.Sprintf("$%.2f", r.TotalCost),
						fmt.Sprintf("$%.4f", r.AvgCost), fmt.Sprintf("%d%%", r.Share))
				}
				tot := viewmodel.StatsTotals(s)
				footer := fmt.Sprintf("%s · %d requests · $%.2f (¥%.2f)",
					period.Label(e.tr), tot.Requests, tot.TotalCost, s.TotalCostCNY)
				return t.String() + "\n" + footer
			})
		},
	}
	addPeriodFlag(cmd)
	return cmd
}

func activityTable(items []viewmodel.ActivityItem) string {
	t := newTable("TIME", "LEVEL", "PROJECT", "MESSAGE", "DETAILS")
	for _, it := range items {
		var details []string
		if it.Cost != nil {
			details = append(details, *it.Cost)
		}
		if it.Similarity != nil {
			details = append(details, "similarity "+viewmodel.SimilarityPercent(*it.Similarity))
		}
		if it.Efficiency != nil {
			details = append(details, "efficiency "+*it.Efficiency)
		}
		if it.LimitDuration != nil {
			details = append(details, "cooldown "+*it.LimitDuration)
		}
		t.Row(it.Timestamp, levelName(it.Level), it.Project, it.Message, strings.Join(details, ", "))
	}
	return t.String()
}

func newActivityCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "activity",
		Short: "Show recent API activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts, false)
			if err != nil {
				return err
			}
			defer e.close()

			ctx, cancel := requestContext(cmd.Context())
			defer cancel()
			feed, err := e.client.RecentActivities(ctx)
			if err != nil {
				return err
			}
			return e.out.print(feed, func() string {
				return activityTable(viewmodel.MapActivities(feed.Activities))
			})
		},
	}
}

func newWarningsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "warnings",
		Short: "Show warnings from the last 24 hours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts, false)
			if err != nil {
				return err
			}
			defer e.close()

			ctx, cancel := requestContext(cmd.Context())
			defer cancel()
			w, err := e.client.Warnings(ctx)
			if err != nil {
				return err
			}
			return e.out.print(w, func() string {
				return activityTable(viewmodel.MapWarnings(w.Warnings)) +
					fmt.Sprintf("\n%d warnings", max(w.TotalCount, len(w.Warnings)))
			})
		},
	}
}

func newFeedbackCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback <request-id>",
		Short: "Report a warning as a false positive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts, false)
			if err != nil {
				return err
			}
			defer e.close()

			project, _ := cmd.Flags().GetString("project")
			message, _ := cmd.Flags().GetString("message")
			fb := viewmodel.FeedbackFor(viewmodel.ActivityItem{ID: args[0], Project: project, Message: message})
			if message == "" {
				fb.Message = "False positive reported from the command line"
			}

			ctx, cancel := requestContext(cmd.Context())
			defer cancel()
			res, err := e.client.SubmitFeedback(ctx, fb)
			if err != nil {
				return err
			}
			return e.out.message(res, "Feedback sent for "+args[0])
		},
	}
	cmd.Flags().String("project", "", "project the request belongs to")
	cmd.Flags().String("message", "", "warning message being reported")
	return cmd
}

type versionInfo struct {
	Version string `json:"version" yaml:"version"`
	Go      string `json:"go" yaml:"go"`
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			out, err := newPrinter(cmd.OutOrStdout(), format)
			if err != nil {
				return err
			}
			v := versionInfo{Version: version, Go: runtime.Version()}
			return out.message(v, "api-watchdog "+version)
		},
	}
}
