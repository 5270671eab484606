package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/bank-holidays/internal/calendar"
	"github.com/username/bank-holidays/internal/config"
	"github.com/username/bank-holidays/internal/holiday"
	"github.com/username/bank-holidays/pkg/dateutil"
	"go.uber.org/zap"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <date>",
		Short: "Check whether a date is a French bank holiday",
		Long:  "Check a date given as YYYY-MM-DD, DD/MM/YYYY or DD.MM.YYYY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := dateutil.ParseDate(args[0])
			if err != nil {
				return fmt.Errorf("%w: %v", holiday.ErrInvalidInput, err)
			}

			hd, err := holiday.Lookup(date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if hd == nil {
				fmt.Fprintf(out, "%s (%s) is not a bank holiday\n", dateutil.FormatDate(date), date.Weekday())
				return nil
			}

			fmt.Fprintf(out, "%s (%s) is a bank holiday: %s\n", dateutil.FormatDate(date), date.Weekday(), hd.Name)
			return nil
		},
	}
}

func easterCmd() *cobra.Command {
	var conway bool

	cmd := &cobra.Command{
		Use:   "easter <year>",
		Short: "Print Easter Sunday of a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYearArg(args[0])
			if err != nil {
				return err
			}

			easter := holiday.EasterSunday(year)
			if conway {
				easter = holiday.EasterSundayConway(year)
			}

			fmt.Fprintln(cmd.OutOrStdout(), dateutil.FormatDate(easter))
			return nil
		},
	}

	cmd.Flags().BoolVar(&conway, "conway", false, "Use Conway's method instead of Meeus/Jones/Butcher")

	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <year>",
		Short: "List the bank holidays of a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYearArg(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n📅 Bank holidays %d:\n", year)
			fmt.Fprintln(out, "═══════════════════════════════════════════════════════")
			for _, hd := range holiday.ForYear(year) {
				kind := "fixed"
				if hd.Movable {
					kind = "movable"
				}
				fmt.Fprintf(out, "  %s  %-9s  %-7s  %s\n",
					dateutil.FormatDate(hd.Date), hd.Date.Weekday(), kind, hd.Name)
			}
			return nil
		},
	}
}

func monthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month <year> <month>",
		Short: "Show working days and hours of a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYearArg(args[0])
			if err != nil {
				return err
			}
			month, err := dateutil.ParseMonth(args[1])
			if err != nil {
				return fmt.Errorf("%w: %v", holiday.ErrInvalidInput, err)
			}

			source, err := buildSource(cfg, logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Calendar.GetTimeout())
			defer cancel()

			cal := calendar.NewWorkCalendar(source, cfg.Calendar.HoursPerDay, logger)
			monthInfo, err := cal.MonthInfo(ctx, year, month)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n📅 %s %d (%s)\n", month, year, source.Name())
			fmt.Fprintln(out, "═══════════════════════════════════════════════════════")
			for _, day := range monthInfo.Days {
				fmt.Fprintf(out, "  %s  %-9s  %-7s  %dh  %s\n",
					dateutil.FormatDate(day.Date), day.Date.Weekday(), day.Type, day.WorkingHours, day.Note)
			}
			fmt.Fprintln(out, "───────────────────────────────────────────────────────")
			fmt.Fprintf(out, "  Working days:   %d\n", monthInfo.WorkDays)
			fmt.Fprintf(out, "  Weekend days:   %d\n", monthInfo.Weekends)
			fmt.Fprintf(out, "  Holidays:       %d\n", monthInfo.Holidays)
			fmt.Fprintf(out, "  Working hours:  %dh\n", monthInfo.WorkingHours)
			return nil
		},
	}
}

func verifyCmd() *cobra.Command {
	var against string

	cmd := &cobra.Command{
		Use:   "verify <year>",
		Short: "Compare computed holidays with a reference source",
		Long: "Compare computed holidays with the configured source (gouv, file or library). " +
			"Fails when an official holiday is missing from the computed set.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYearArg(args[0])
			if err != nil {
				return err
			}

			refCfg := *cfg
			if against != "" {
				refCfg.Calendar.Source = against
			}
			// The computed set cannot be its own reference
			if refCfg.Calendar.Source == config.SourceComputed {
				refCfg.Calendar.Source = config.SourceLibrary
			}
			if err := refCfg.Validate(); err != nil {
				return err
			}

			reference, err := buildSource(&refCfg, logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), refCfg.Calendar.GetTimeout())
			defer cancel()

			report, err := calendar.Verify(ctx, year, reference)
			if err != nil {
				return err
			}

			logger.Info("Verification finished",
				zap.Int("year", year),
				zap.String("reference", report.Reference),
				zap.Int("matched", report.Matched),
				zap.Int("missing", len(report.Missing)),
				zap.Int("extra", len(report.Extra)))

			printReport(cmd, report)

			if !report.OK() {
				return fmt.Errorf("%d official holiday(s) missing from computed set", len(report.Missing))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&against, "against", "", "Reference source: gouv, file or library (default: configured source)")

	return cmd
}

func printReport(cmd *cobra.Command, report *calendar.Report) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "\n📋 Verification %d against %s:\n", report.Year, report.Reference)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════")
	fmt.Fprintf(out, "  Matched:  %d\n", report.Matched)
	fmt.Fprintf(out, "  Missing:  %d\n", len(report.Missing))
	for _, hd := range report.Missing {
		fmt.Fprintf(out, "    - %s  %s\n", dateutil.FormatDate(hd.Date), hd.Name)
	}
	fmt.Fprintf(out, "  Extra:    %d\n", len(report.Extra))
	for _, hd := range report.Extra {
		fmt.Fprintf(out, "    + %s  %s\n", dateutil.FormatDate(hd.Date), hd.Name)
	}

	if report.OK() {
		fmt.Fprintln(out, "\n✅ Every official holiday is computed")
	} else {
		fmt.Fprintln(out, "\n❌ Computed holidays are incomplete")
	}
}

// parseYearArg accepts years 1..9999
func parseYearArg(s string) (int, error) {
	year, err := dateutil.ParseYear(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", holiday.ErrInvalidInput, err)
	}
	return year, nil
}
