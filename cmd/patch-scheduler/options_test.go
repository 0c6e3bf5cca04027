package main

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/patch-scheduler/internal/config"
	"github.com/kubev2v/patch-scheduler/internal/models"
	srvErrors "github.com/kubev2v/patch-scheduler/pkg/errors"
)

var _ = Describe("plannerOptions", func() {
	now := time.Date(2025, time.June, 9, 15, 30, 0, 0, time.UTC)

	It("should default the start date to the current day", func() {
		opts, err := plannerOptions(*config.NewPlannerWithOptionsAndDefaults(), nil, now)

		Expect(err).NotTo(HaveOccurred())
		Expect(opts.StartDate).To(Equal(time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)))
		Expect(opts.MinBatchSize).To(Equal(10))
		Expect(opts.MaxBatchSize).To(Equal(20))
		Expect(opts.LagDays).To(Equal(10))
		Expect(opts.RepackProd).To(BeTrue())
		Expect(opts.TierOrder).To(Equal(models.DefaultTierOrder))
	})

	It("should use the configured values", func() {
		cfg := config.NewPlannerWithOptionsAndDefaults(
			config.WithStartDate("2025-03-03"),
			config.WithMinBatchSize(5),
			config.WithMaxBatchSize(8),
			config.WithLagDays(2),
			config.WithRepackProd(false),
		)

		opts, err := plannerOptions(*cfg, []string{"non-prod-no-db", "non-prod-db", "prod-no-db", "prod-db"}, now)

		Expect(err).NotTo(HaveOccurred())
		Expect(opts.StartDate).To(Equal(time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)))
		Expect(opts.MinBatchSize).To(Equal(5))
		Expect(opts.MaxBatchSize).To(Equal(8))
		Expect(opts.LagDays).To(Equal(2))
		Expect(opts.RepackProd).To(BeFalse())
		Expect(opts.TierOrder).To(Equal([]models.Tier{
			models.TierNonProdNoDB, models.TierNonProdDB, models.TierProdNoDB, models.TierProdDB,
		}))
	})

	DescribeTable("should reject invalid options",
		func(cfg *config.Planner, tierOrder []string, field string) {
			_, err := plannerOptions(*cfg, tierOrder, now)

			Expect(srvErrors.IsConfigurationError(err)).To(BeTrue())
			Expect(err.(*srvErrors.ConfigurationError).Field).To(Equal(field))
		},
		Entry("malformed start date", config.NewPlannerWithOptionsAndDefaults(config.WithStartDate("03/03/2025")), nil, "startDate"),
		Entry("unknown tier", config.NewPlannerWithOptionsAndDefaults(), []string{"staging"}, "tierOrder"),
		Entry("prod before non-prod", config.NewPlannerWithOptionsAndDefaults(), []string{"prod-db", "non-prod-db", "non-prod-no-db", "prod-no-db"}, "tierOrder"),
		Entry("min above max", config.NewPlannerWithOptionsAndDefaults(config.WithMinBatchSize(30)), nil, "minBatchSize"),
		Entry("no lag", config.NewPlannerWithOptionsAndDefaults(config.WithLagDays(0)), nil, "lagDays"),
	)
})
