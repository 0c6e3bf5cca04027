package main

import (
	"github.com/spf13/cobra"

	"github.com/kubev2v/patch-scheduler/internal/config"
	"github.com/kubev2v/patch-scheduler/internal/services"
)

func newPrecheckCommand(cfg *config.Configuration) *cobra.Command {
	var (
		output string
		date   string
	)

	cmd := &cobra.Command{
		Use:   "precheck",
		Short: "Check the servers scheduled on a day and store the outcome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDate(date, today())
			if err != nil {
				return err
			}

			st, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			checker := services.TCPPrechecker{Port: cfg.Precheck.ManagementPort}
			results, err := services.NewPrecheckService(st, checker, cfg.Precheck).Run(cmd.Context(), day)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), output, newPrecheckSummary(day, results))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&date, "date", "", "patch day to check (YYYY-MM-DD), today if empty")
	flags.Int("management-port", cfg.Precheck.ManagementPort, "port dialed by the reachability precheck")
	flags.Duration("check-timeout", cfg.Precheck.CheckTimeout, "timeout of a single precheck attempt")
	flags.Int("precheck-workers", cfg.Precheck.PrecheckWorkers, "concurrent prechecks")
	flags.Uint("precheck-retries", cfg.Precheck.PrecheckRetries, "retries of a failing precheck")
	flags.StringVarP(&output, "output", "o", outputTable, "output format (table, json, yaml)")

	configFlag(flags, "management-port", "precheck.managementport")
	configFlag(flags, "check-timeout", "precheck.checktimeout")
	configFlag(flags, "precheck-workers", "precheck.precheckworkers")
	configFlag(flags, "precheck-retries", "precheck.precheckretries")

	return cmd
}
