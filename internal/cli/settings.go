package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/pricing"
)

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show backend settings or refresh model pricing",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show pricing, privacy and notification settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts, false)
			if err != nil {
				return err
			}
			defer e.close()

			ctx, cancel := requestContext(cmd.Context())
			defer cancel()
			s, err := e.client.Settings(ctx)
			if err != nil {
				return err
			}
			return e.out.print(s, func() string { return settingsTables(s) })
		},
	}

	official := &cobra.Command{
		Use:   "official",
		Short: "Load official model prices into the pricing table",
		Long: `Fetches the vendor price table and saves it to the backend.
--merge (the default) only adds models that are missing; --replace overwrites the whole table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			replace, _ := cmd.Flags().GetBool("replace")

			e, err := setup(cmd, opts, false)
			if err != nil {
				return err
			}
			defer e.close()

			ctx, cancel := requestContext(cmd.Context())
			defer cancel()
			s, err := e.client.Settings(ctx)
			if err != nil {
				return err
			}
			prices, err := e.client.OfficialPricing(ctx)
			if err != nil {
				return err
			}

			table := pricing.Table(s.Pricing.Models).Clone()
			var summary string
			if replace {
				table.Replace(prices)
				summary = fmt.Sprintf("Pricing replaced with %d official models", len(table))
			} else {
				n := table.MergeMissing(prices)
				summary = fmt.Sprintf("Added %d official models (%d total)", n, len(table))
			}
			s.Pricing.Models = table

			if _, err := e.client.SaveSettings(ctx, *s); err != nil {
				return err
			}
			e.log.Infow("official pricing applied", "replace", replace, "models", len(table))
			return e.out.message(s.Pricing, summary)
		},
	}
	official.Flags().Bool("merge", false, "add models that are missing (default)")
	official.Flags().Bool("replace", false, "replace every model price")
	official.MarkFlagsMutuallyExclusive("merge", "replace")

	cmd.AddCommand(show, official)
	return cmd
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func settingsTables(s *api.Settings) string {
	general := newTable("SETTING", "VALUE")
	general.Row("USD to CNY", strconv.FormatFloat(s.Pricing.ExchangeRate, 'f', -1, 64))
	general.Row("Coffee", fmt.Sprintf("¥%g", s.Pricing.Equivalents.Coffee))
	general.Row("Jianbing", fmt.Sprintf("¥%g", s.Pricing.Equivalents.Jianbing))
	general.Row("Meal", fmt.Sprintf("¥%g", s.Pricing.Equivalents.Meal))
	general.Row("Hotpot", fmt.Sprintf("¥%g", s.Pricing.Equivalents.Hotpot))
	general.Row("Store request content", onOff(s.Privacy.StoreRequestContent))
	general.Row("Similarity method", s.Privacy.SimilarityMethod)
	general.Row("Cache TTL", strconv.Itoa(s.Privacy.CacheTTLSeconds)+"s")
	general.Row("Anonymize project IDs", onOff(s.Privacy.AnonymizeProjectID))
	general.Row("Email notifications", onOff(s.Notification.EmailNotifications))
	general.Row("Slack notifications", onOff(s.Notification.SlackNotifications))
	general.Row("Webhook", onOff(s.Notification.WebhookEnabled))

	models := newTable("MODEL", "INPUT $/1M", "OUTPUT $/1M")
	table := pricing.Table(s.Pricing.Models)
	for _, name := range table.Names() {
		p := table[name]
		models.Row(name, strconv.FormatFloat(p.Input, 'f', -1, 64), strconv.FormatFloat(p.Output, 'f', -1, 64))
	}
	return general.String() + "\n" + models.String()
}

var errNoPrefsChange = errors.New("nothing to set: pass at least one of --today-budget, --week-budget, --active-limit, --warning-threshold")

func newPrefsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change dashboard budgets and limits",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show user preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts, false)
			if err != nil {
				return err
			}
			defer e.close()

			ctx, cancel := requestContext(cmd.Context())
			defer cancel()
			p, err := e.client.UserPreferences(ctx)
			if err != nil {
				return err
			}
			return e.out.print(p, func() string { return prefsTable(p) })
		},
	}

	set := &cobra.Command{
		Use:   "set",
		Short: "Change user preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if !f.Changed("today-budget") && !f.Changed("week-budget") &&
				!f.Changed("active-limit") && !f.Changed("warning-threshold") {
				return errNoPrefsChange
			}

			e, err := setup(cmd, opts, false)
			if err != nil {
				return err
			}
			defer e.close()

			ctx, cancel := requestContext(cmd.Context())
			defer cancel()
			p, err := e.client.UserPreferences(ctx)
			if err != nil {
				return err
			}
			if f.Changed("today-budget") {
				p.TodayBudget, _ = f.GetFloat64("today-budget")
			}
			if f.Changed("week-budget") {
				p.WeekBudget, _ = f.GetFloat64("week-budget")
			}
			if f.Changed("active-limit") {
				p.ActiveProjLimit, _ = f.GetInt("active-limit")
			}
			if f.Changed("warning-threshold") {
				p.WarningThreshold, _ = f.GetInt("warning-threshold")
			}

			saved, err := e.client.SaveUserPreferences(ctx, *p)
			if err != nil {
				return err
			}
			return e.out.print(saved, func() string { return prefsTable(saved) })
		},
	}
	set.Flags().Float64("today-budget", 0, "daily budget in USD")
	set.Flags().Float64("week-budget", 0, "weekly budget in USD")
	set.Flags().Int("active-limit", 0, "active project limit")
	set.Flags().Int("warning-threshold", 0, "warning threshold")

	cmd.AddCommand(show, set)
	return cmd
}

func prefsTable(p *api.UserPreferences) string {
	t := newTable("PREFERENCE", "VALUE")
	t.Row("Today budget", fmt.Sprintf("$%.2f", p.TodayBudget))
	t.Row("Week budget", fmt.Sprintf("$%.2f", p.WeekBudget))
	t.Row("Active project limit", strconv.Itoa(p.ActiveProjLimit))
	t.Row("Warning threshold", strconv.Itoa(p.WarningThreshold))
	return t.String()
}
