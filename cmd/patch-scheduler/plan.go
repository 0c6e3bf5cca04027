package main

import (
	"github.com/spf13/cobra"

	"github.com/kubev2v/patch-scheduler/internal/config"
	"github.com/kubev2v/patch-scheduler/internal/services"
)

func newPlanCommand(cfg *config.Configuration) *cobra.Command {
	var (
		inventoryPath   string
		output          string
		tierOrder       []string
		dryRun          bool
		ignoreProposals bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan patch batches from an inventory file",
		Long: `Load an inventory (.xlsx or .csv), split it into size-bounded batches and
give every batch a patch date. Non-prod batches are patched first; prod batches
wait lag-days after the non-prod servers of the same application.

Times proposed through the approval workflow pin their batches unless
--ignore-proposals is set. The result replaces the stored schedule unless
--dry-run is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := plannerOptions(cfg.Planner, tierOrder, today())
			if err != nil {
				return err
			}

			st, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			result, err := services.NewPlanService(st).PlanFile(cmd.Context(), inventoryPath, services.PlanRequest{
				Options:         opts,
				DryRun:          dryRun,
				IgnoreProposals: ignoreProposals,
			})
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), output, newPlanSummary(result))
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&inventoryPath, "inventory", "i", "", "inventory file (.xlsx or .csv)")
	flags.String("start-date", cfg.Planner.StartDate, "first patch day (YYYY-MM-DD), today if empty")
	flags.Int("min-batch-size", cfg.Planner.MinBatchSize, "smallest batch the chunker flushes")
	flags.Int("max-batch-size", cfg.Planner.MaxBatchSize, "largest batch")
	flags.Int("lag-days", cfg.Planner.LagDays, "days between the non-prod and prod patching of an application")
	flags.Bool("repack-prod", cfg.Planner.RepackProd, "re-chunk undersized prod batches landing on the same day")
	flags.StringSliceVar(&tierOrder, "tier-order", nil, "tier order (non-prod-db,non-prod-no-db,prod-db,prod-no-db)")
	flags.BoolVar(&dryRun, "dry-run", false, "plan without saving")
	flags.BoolVar(&ignoreProposals, "ignore-proposals", false, "do not pin batches to proposed times")
	flags.StringVarP(&output, "output", "o", outputTable, "output format (table, json, yaml)")

	configFlag(flags, "start-date", "planner.startdate")
	configFlag(flags, "min-batch-size", "planner.minbatchsize")
	configFlag(flags, "max-batch-size", "planner.maxbatchsize")
	configFlag(flags, "lag-days", "planner.lagdays")
	configFlag(flags, "repack-prod", "planner.repackprod")

	_ = cmd.MarkFlagRequired("inventory")

	return cmd
}
