package main

import (
	"time"

	"github.com/kubev2v/patch-scheduler/internal/config"
	"github.com/kubev2v/patch-scheduler/internal/models"
	srvErrors "github.com/kubev2v/patch-scheduler/pkg/errors"
	"github.com/kubev2v/patch-scheduler/pkg/planner"
)

// plannerOptions turns the planner configuration into run options. An empty
// start date means now's calendar day.
func plannerOptions(cfg config.Planner, tierOrder []string, now time.Time) (planner.Options, error) {
	start, err := parseDate(cfg.StartDate, now)
	if err != nil {
		return planner.Options{}, srvErrors.NewConfigurationError("startDate", err.Error())
	}

	opts := planner.DefaultOptions(start)
	opts.MinBatchSize = cfg.MinBatchSize
	opts.MaxBatchSize = cfg.MaxBatchSize
	opts.LagDays = cfg.LagDays
	opts.RepackProd = cfg.RepackProd

	if len(tierOrder) > 0 {
		opts.TierOrder = make([]models.Tier, 0, len(tierOrder))
		for _, name := range tierOrder {
			t, err := models.ParseTier(name)
			if err != nil {
				return planner.Options{}, srvErrors.NewConfigurationError("tierOrder", err.Error())
			}
			opts.TierOrder = append(opts.TierOrder, t)
		}
	}

	return opts, opts.Validate()
}

// parseDate parses YYYY-MM-DD, defaulting to the day of now.
func parseDate(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return planner.Day(now), nil
	}
	d, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, err
	}
	return d, nil
}
