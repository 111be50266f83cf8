package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"hebdate/internal/core/calendar"
	"hebdate/internal/core/hebrew"
	"hebdate/internal/services/api/convert/domain"

	"github.com/spf13/cobra"
)

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [text]",
		Short: "Parse free Hebrew date text and convert it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.svc.ParseAndConvert(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return a.printResult(r)
		},
	}
}

func (a *app) convertHebrewCmd() *cobra.Command {
	var day, month, year string
	cmd := &cobra.Command{
		Use:   "convert-hebrew",
		Short: "Convert a Hebrew date given as fields",
		Long: `Day and year accept digits or gematria; the month is a Hebrew month name.

Example:
  hebdate convert-hebrew --day "ט״ו" --month ניסן --year "תשפ״ה"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.svc.ConvertFields(cmd.Context(), day, month, year)
			if err != nil {
				return err
			}
			return a.printResult(r)
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "day of month")
	cmd.Flags().StringVar(&month, "month", "", "Hebrew month name")
	cmd.Flags().StringVar(&year, "year", "", "year")
	return cmd
}

func (a *app) convertCmd() *cobra.Command {
	var g calendar.Gregorian
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a Gregorian date to Hebrew",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.svc.ConvertGregorian(cmd.Context(), g)
			if err != nil {
				return err
			}
			return a.printResult(r)
		},
	}
	cmd.Flags().IntVar(&g.Day, "day", 0, "day 1-31")
	cmd.Flags().IntVar(&g.Month, "month", 0, "month 1-12")
	cmd.Flags().IntVar(&g.Year, "year", 0, "year, negative for BCE")
	return cmd
}

func (a *app) splitCmd() *cobra.Command {
	var (
		y          hebrew.SplitYear
		day, month string
	)
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Convert a Hebrew date whose year is given as numeral parts",
		Long: `Each part is a numeral; "0" or an absent part contributes nothing and thousands is scaled by 1000.

Example:
  hebdate split --thousands ה --hundreds תש --tens פ --ones ה --month ניסן --day טו`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.svc.ConvertSplit(cmd.Context(), day, month, y)
			if err != nil {
				return err
			}
			return a.printResult(r)
		},
	}
	cmd.Flags().StringVar(&y.Thousands, "thousands", "", "thousands numeral")
	cmd.Flags().StringVar(&y.Hundreds, "hundreds", "", "hundreds numeral")
	cmd.Flags().StringVar(&y.Tens, "tens", "", "tens numeral")
	cmd.Flags().StringVar(&y.Ones, "ones", "", "ones numeral")
	cmd.Flags().StringVar(&day, "day", "", "day of month")
	cmd.Flags().StringVar(&month, "month", "", "Hebrew month name")
	return cmd
}

func (a *app) optionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the days, months and years a date form offers",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.svc.Options(cmd.Context())
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(o)
			}
			fmt.Fprintf(a.out, "days:   %s\n", strings.Join(o.Days, " "))
			fmt.Fprintf(a.out, "months: %s\n", strings.Join(o.Months, ", "))
			if n := len(o.Years); n > 0 {
				fmt.Fprintf(a.out, "years:  %s .. %s\n", o.Years[0], o.Years[n-1])
			}
			return nil
		},
	}
}

func (a *app) printResult(r domain.Result) error {
	if a.asJSON {
		return a.printJSON(r)
	}
	line := r.HebrewFormatted + " = " + r.GregorianFormatted
	if r.Source == domain.SourceOverride {
		line += " (historical)"
	}
	_, err := fmt.Fprintln(a.out, line)
	return err
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
