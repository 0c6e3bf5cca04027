package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kubev2v/patch-scheduler/internal/config"
)

func newNotifyCommand(cfg *config.Configuration) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send approval requests for every pending batch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			result, err := newApprovalService(st, cfg).Notify(cmd.Context())
			if err != nil {
				return err
			}

			if err := render(cmd.OutOrStdout(), output, newNotifySummary(result)); err != nil {
				return err
			}
			if len(result.Failed) > 0 {
				return fmt.Errorf("%d approval requests could not be delivered", len(result.Failed))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("approval-base-url", cfg.Approval.BaseURL, "base URL of the approve and propose links")
	flags.String("default-approver", cfg.Approval.DefaultApprover, "approver of applications without a mapping")
	flags.Uint("notify-retries", cfg.Approval.NotifyRetries, "delivery retries per request")
	flags.String("webhook-url", cfg.Approval.WebhookURL, "webhook receiving the approval requests, log them if empty")
	flags.StringVarP(&output, "output", "o", outputTable, "output format (table, json, yaml)")

	configFlag(flags, "approval-base-url", "approval.baseurl")
	configFlag(flags, "default-approver", "approval.defaultapprover")
	configFlag(flags, "notify-retries", "approval.notifyretries")
	configFlag(flags, "webhook-url", "approval.webhookurl")

	return cmd
}
