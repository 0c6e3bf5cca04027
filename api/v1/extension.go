package v1

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/kubev2v/patch-scheduler/internal/models"
)

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=config.yaml openapi.yaml

// NewScheduleEntryFromModel converts a models.ScheduleEntry to an API ScheduleEntry.
func NewScheduleEntryFromModel(e models.ScheduleEntry) ScheduleEntry {
	entry := ScheduleEntry{
		ApplicationName: e.ApplicationName,
		ApprovalStatus:  ScheduleEntryApprovalStatus(e.ApprovalStatus),
		BatchId:         e.BatchID,
		BatchType:       ScheduleEntryBatchType(e.BatchType),
		DbStatus:        ScheduleEntryDbStatus(e.DBStatus),
		Environment:     ScheduleEntryEnvironment(e.Environment),
		Hostname:        e.Hostname,
		IpAddress:       e.IPAddress,
		PatchDate:       openapi_types.Date{Time: e.PatchDate},
		ProposedTime:    e.ProposedTime,
	}

	if e.PrecheckStatus != nil {
		status := ScheduleEntryPrecheckStatus(*e.PrecheckStatus)
		entry.PrecheckStatus = &status
	}

	return entry
}

// NewBatchFromModel converts a models.BatchSummary to an API Batch.
func NewBatchFromModel(b models.BatchSummary) Batch {
	apps := b.Applications
	if apps == nil {
		apps = []string{}
	}
	hosts := b.Hostnames
	if hosts == nil {
		hosts = []string{}
	}

	return Batch{
		Applications:   apps,
		ApprovalStatus: BatchApprovalStatus(b.ApprovalStatus),
		BatchId:        b.BatchID,
		BatchType:      BatchBatchType(b.BatchType),
		Hostnames:      hosts,
		PatchDate:      openapi_types.Date{Time: b.PatchDate},
		ProposedTime:   b.ProposedTime,
		ServerCount:    b.ServerCount,
	}
}

func NewRunFromModel(r models.ScheduleRun) Run {
	return Run{
		BatchCount:   r.BatchCount,
		CreatedAt:    r.CreatedAt,
		Id:           r.ID,
		LagDays:      r.LagDays,
		MaxBatchSize: r.MaxBatchSize,
		MinBatchSize: r.MinBatchSize,
		ServerCount:  r.ServerCount,
		StartDate:    openapi_types.Date{Time: r.StartDate},
	}
}

func NewApprovalResponse(b models.BatchSummary) ApprovalResponse {
	return ApprovalResponse{
		ApprovalStatus: ApprovalResponseApprovalStatus(b.ApprovalStatus),
		BatchId:        b.BatchID,
		ProposedTime:   b.ProposedTime,
	}
}

// NewPrecheckRunResponse converts precheck results; the failed count covers
// every result whose status is fail.
func NewPrecheckRunResponse(date time.Time, results []models.PrecheckResult) PrecheckRunResponse {
	resp := PrecheckRunResponse{
		Date:    openapi_types.Date{Time: date},
		Total:   len(results),
		Results: make([]PrecheckResult, 0, len(results)),
	}

	for _, r := range results {
		item := PrecheckResult{
			BatchId:   r.Target.BatchID,
			Hostname:  r.Target.Hostname,
			IpAddress: r.Target.IPAddress,
			Status:    PrecheckResultStatus(r.Status),
		}
		if r.Error != nil {
			msg := r.Error.Error()
			item.Error = &msg
		}
		if r.Status == models.PrecheckStatusFail {
			resp.Failed++
		}
		resp.Results = append(resp.Results, item)
	}

	return resp
}

// ToEnvironments validates and converts API environment filters.
func ToEnvironments(envs []Environments) ([]models.Environment, error) {
	result := make([]models.Environment, 0, len(envs))
	for _, e := range envs {
		env, err := models.ParseEnvironment(string(e))
		if err != nil {
			return nil, err
		}
		result = append(result, env)
	}
	return result, nil
}

func ToApprovalStatuses(statuses []ApprovalStatuses) ([]models.ApprovalStatus, error) {
	result := make([]models.ApprovalStatus, 0, len(statuses))
	for _, s := range statuses {
		status, err := models.ParseApprovalStatus(string(s))
		if err != nil {
			return nil, err
		}
		result = append(result, status)
	}
	return result, nil
}
