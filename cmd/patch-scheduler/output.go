package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/kubev2v/patch-scheduler/internal/models"
	"github.com/kubev2v/patch-scheduler/internal/services"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)

	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	headerStyle  = cellStyle.Bold(true).Foreground(lipgloss.Color("6"))
	nonProdStyle = cellStyle.Foreground(lipgloss.Color("2"))
	prodStyle    = cellStyle.Foreground(lipgloss.Color("3"))
	failStyle    = cellStyle.Bold(true).Foreground(lipgloss.Color("1"))
)

type tabular interface {
	writeTable(w io.Writer)
}

func render(w io.Writer, format string, v tabular) error {
	switch format {
	case outputTable:
		v.writeTable(w)
		return nil
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q (table, json, yaml)", format)
	}
}

type batchLine struct {
	ID             string   `json:"id" yaml:"id"`
	Type           string   `json:"type" yaml:"type"`
	Date           string   `json:"date" yaml:"date"`
	Servers        int      `json:"servers" yaml:"servers"`
	Application    string   `json:"application" yaml:"application"`
	Applications   []string `json:"applications" yaml:"applications"`
	ApprovalStatus string   `json:"approvalStatus,omitempty" yaml:"approvalStatus,omitempty"`
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func writeBatches(w io.Writer, batches []batchLine) {
	t := newTable("BATCH", "TYPE", "DATE", "SERVERS", "STATUS", "APPLICATION").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col != 1 || row >= len(batches):
				return cellStyle
			case batches[row].Type == string(models.EnvironmentProd):
				return prodStyle
			default:
				return nonProdStyle
			}
		})

	for _, b := range batches {
		status := b.ApprovalStatus
		if status == "" {
			status = "-"
		}
		t.Row(b.ID, b.Type, b.Date, strconv.Itoa(b.Servers), status, b.Application)
	}

	fmt.Fprintln(w, t.Render())
}

type planSummary struct {
	RunID     string           `json:"runId" yaml:"runId"`
	Saved     bool             `json:"saved" yaml:"saved"`
	StartDate string           `json:"startDate" yaml:"startDate"`
	Inventory inventorySummary `json:"inventory" yaml:"inventory"`
	Batches   []batchLine      `json:"batches" yaml:"batches"`
}

type inventorySummary struct {
	Rows    int            `json:"rows" yaml:"rows"`
	Kept    int            `json:"kept" yaml:"kept"`
	Dropped map[string]int `json:"dropped,omitempty" yaml:"dropped,omitempty"`
}

func newPlanSummary(r *services.PlanResult) planSummary {
	s := planSummary{
		RunID:     r.RunID,
		Saved:     r.Saved,
		StartDate: r.Schedule.StartDate.Format(time.DateOnly),
		Inventory: inventorySummary{Rows: r.Report.Total, Kept: r.Report.Kept},
		Batches:   make([]batchLine, 0, len(r.Schedule.Batches)),
	}

	if len(r.Report.Dropped) > 0 {
		s.Inventory.Dropped = make(map[string]int, len(r.Report.Dropped))
		for reason, n := range r.Report.Dropped {
			s.Inventory.Dropped[string(reason)] = n
		}
	}

	for _, b := range r.Schedule.Batches {
		s.Batches = append(s.Batches, batchLine{
			ID:           b.ID,
			Type:         string(b.BatchType()),
			Date:         b.ScheduledDate.Format(time.DateOnly),
			Servers:      b.Size(),
			Application:  b.ApplicationName,
			Applications: b.Applications,
		})
	}

	return s
}

func (s planSummary) writeTable(w io.Writer) {
	writeBatches(w, s.Batches)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "inventory: %d rows, %d kept", s.Inventory.Rows, s.Inventory.Kept)
	reasons := make([]string, 0, len(s.Inventory.Dropped))
	for reason := range s.Inventory.Dropped {
		reasons = append(reasons, reason)
	}
	slices.Sort(reasons)
	for _, reason := range reasons {
		fmt.Fprintf(w, ", %d %s", s.Inventory.Dropped[reason], reason)
	}
	fmt.Fprintln(w)

	if s.Saved {
		okColor.Fprintf(w, "run %s saved, %d batches from %s\n", s.RunID, len(s.Batches), s.StartDate)
	} else {
		fmt.Fprintf(w, "dry run, %d batches from %s not saved\n", len(s.Batches), s.StartDate)
	}
}

type batchList struct {
	Total   int         `json:"total" yaml:"total"`
	Batches []batchLine `json:"batches" yaml:"batches"`
}

func newBatchList(r *services.BatchListResult) batchList {
	l := batchList{Total: r.Total, Batches: make([]batchLine, 0, len(r.Batches))}
	for _, b := range r.Batches {
		app := models.MultiApplicationLabel
		if len(b.Applications) == 1 {
			app = b.Applications[0]
		}
		l.Batches = append(l.Batches, batchLine{
			ID:             b.BatchID,
			Type:           string(b.BatchType),
			Date:           b.PatchDate.Format(time.DateOnly),
			Servers:        b.ServerCount,
			Application:    app,
			Applications:   b.Applications,
			ApprovalStatus: string(b.ApprovalStatus),
		})
	}
	return l
}

func (l batchList) writeTable(w io.Writer) {
	writeBatches(w, l.Batches)
	fmt.Fprintf(w, "\n%d batches\n", l.Total)
}

type notifySummary struct {
	Sent   []string          `json:"sent" yaml:"sent"`
	Failed map[string]string `json:"failed,omitempty" yaml:"failed,omitempty"`
}

func newNotifySummary(r *services.NotifyResult) notifySummary {
	s := notifySummary{Sent: r.Sent}
	if s.Sent == nil {
		s.Sent = []string{}
	}
	if len(r.Failed) > 0 {
		s.Failed = make(map[string]string, len(r.Failed))
		for id, err := range r.Failed {
			s.Failed[id] = err.Error()
		}
	}
	return s
}

func (s notifySummary) writeTable(w io.Writer) {
	fmt.Fprintf(w, "sent: %d", len(s.Sent))
	if len(s.Sent) > 0 {
		fmt.Fprintf(w, " (%s)", strings.Join(s.Sent, ", "))
	}
	fmt.Fprintln(w)

	ids := make([]string, 0, len(s.Failed))
	for id := range s.Failed {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		failColor.Fprintf(w, "failed: %s: %s\n", id, s.Failed[id])
	}
}

type precheckLine struct {
	BatchID   string `json:"batchId" yaml:"batchId"`
	Hostname  string `json:"hostname" yaml:"hostname"`
	IPAddress string `json:"ipAddress" yaml:"ipAddress"`
	Status    string `json:"status" yaml:"status"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

type precheckSummary struct {
	Date    string         `json:"date" yaml:"date"`
	Total   int            `json:"total" yaml:"total"`
	Failed  int            `json:"failed" yaml:"failed"`
	Results []precheckLine `json:"results" yaml:"results"`
}

func newPrecheckSummary(date time.Time, results []models.PrecheckResult) precheckSummary {
	s := precheckSummary{
		Date:    date.Format(time.DateOnly),
		Total:   len(results),
		Results: make([]precheckLine, 0, len(results)),
	}
	for _, r := range results {
		line := precheckLine{
			BatchID:   r.Target.BatchID,
			Hostname:  r.Target.Hostname,
			IPAddress: r.Target.IPAddress,
			Status:    string(r.Status),
		}
		if r.Error != nil {
			line.Error = r.Error.Error()
		}
		if r.Status == models.PrecheckStatusFail {
			s.Failed++
		}
		s.Results = append(s.Results, line)
	}
	return s
}

func (s precheckSummary) writeTable(w io.Writer) {
	t := newTable("BATCH", "HOSTNAME", "IP", "STATUS").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col != 3 || row >= len(s.Results):
				return cellStyle
			case s.Results[row].Status == string(models.PrecheckStatusFail):
				return failStyle
			default:
				return nonProdStyle
			}
		})

	for _, r := range s.Results {
		status := r.Status
		if r.Error != "" {
			status = fmt.Sprintf("%s (%s)", r.Status, r.Error)
		}
		t.Row(r.BatchID, r.Hostname, r.IPAddress, status)
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%s: %d servers, %d failed\n", s.Date, s.Total, s.Failed)
}
