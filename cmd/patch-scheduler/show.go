package main

import (
	"github.com/spf13/cobra"

	"github.com/kubev2v/patch-scheduler/internal/config"
	"github.com/kubev2v/patch-scheduler/internal/models"
	"github.com/kubev2v/patch-scheduler/internal/services"
)

func newShowCommand(cfg *config.Configuration) *cobra.Command {
	var (
		output   string
		date     string
		statuses []string
		apps     []string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored schedule, one line per batch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := services.ScheduleListParams{Applications: apps}
			for _, s := range statuses {
				status, err := models.ParseApprovalStatus(s)
				if err != nil {
					return err
				}
				params.ApprovalStatuses = append(params.ApprovalStatuses, status)
			}
			if date != "" {
				d, err := parseDate(date, today())
				if err != nil {
					return err
				}
				params.Date = &d
			}

			st, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			result, err := services.NewScheduleService(st).Batches(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), output, newBatchList(result))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&date, "date", "", "only batches patched on this day (YYYY-MM-DD)")
	flags.StringSliceVar(&statuses, "status", nil, "only batches with these approval statuses")
	flags.StringSliceVar(&apps, "application", nil, "only batches containing these applications")
	flags.StringVarP(&output, "output", "o", outputTable, "output format (table, json, yaml)")

	return cmd
}
