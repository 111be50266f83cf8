package main

import (
	"io"

	"hebdate/internal/adapters/hebcal"
	"hebdate/internal/adapters/localcal"
	"hebdate/internal/core/calendar"
	"hebdate/internal/modkit"
	"hebdate/internal/modkit/module"
	"hebdate/internal/platform/config"
	convertmod "hebdate/internal/services/api/convert/module"
	convertsvc "hebdate/internal/services/api/convert/service"

	"github.com/spf13/cobra"
)

// app carries the flags and the service shared by every subcommand
type app struct {
	offline bool
	asJSON  bool
	out     io.Writer
	svc     convertsvc.Service
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	rootCmd := &cobra.Command{
		Use:   "hebdate",
		Short: "Convert dates between the Hebrew and Gregorian calendars",
		Long: `hebdate converts Hebrew dates written in free text, as separate fields or with a split
year into Gregorian dates, and Gregorian dates back into Hebrew.

Historical dates with a traditional Gregorian equivalent are answered from the built-in
override table. Everything else goes to hebcal.com unless --offline is set.

Example:
  hebdate parse "ה' בניסן תשפ\"ה"
  hebdate convert --year 2025 --month 4 --day 13 --offline`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.svc = a.service()
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.offline, "offline", false, "use the built-in calendar instead of hebcal.com")
	rootCmd.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print results as JSON")

	rootCmd.AddCommand(
		a.parseCmd(),
		a.convertHebrewCmd(),
		a.convertCmd(),
		a.splitCmd(),
		a.optionsCmd(),
	)
	return rootCmd
}

// service builds the same convert module the API mounts and pulls its service port
func (a *app) service() convertsvc.Service {
	local := localcal.New()
	var cal calendar.Converter = local
	if !a.offline {
		cal = hebcal.NewConverter(hebcal.NewClient(hebcal.FromConfig(config.New().Prefix("HEBDATE_"))), local)
	}
	m := convertmod.New(modkit.Deps{Calendar: cal, Years: local})
	return module.MustPortsOf[convertsvc.Service](m)
}
