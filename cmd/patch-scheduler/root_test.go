package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/kubev2v/patch-scheduler/pkg/webhook"
)

var _ = Describe("patch-scheduler", func() {
	var (
		dir           string
		inventoryPath string
	)

	// writeInventory writes 25 non-prod db servers, 10 prod no-db servers and
	// one row with an unknown environment, all of application billing.
	writeInventory := func(prodIP string) {
		var b strings.Builder
		b.WriteString("hostname,ip_address,env,db_status,application_name\n")
		for i := range 25 {
			fmt.Fprintf(&b, "np-%02d,10.0.0.%d,non-prod,yes,billing\n", i, i+1)
		}
		for i := range 10 {
			fmt.Fprintf(&b, "pr-%02d,%s,prod,no,billing\n", i, prodIP)
		}
		b.WriteString("qa-00,10.0.2.1,staging,no,billing\n")

		inventoryPath = filepath.Join(dir, "inventory.csv")
		Expect(os.WriteFile(inventoryPath, []byte(b.String()), 0o600)).To(Succeed())
	}

	execute := func(args ...string) (string, error) {
		cmd := NewRootCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(io.Discard)
		cmd.SetArgs(append(args, "--log-level", "error", "--data-folder", dir, "--env-file", ""))
		err := cmd.Execute()
		return out.String(), err
	}

	planJSON := func(args ...string) planSummary {
		out, err := execute(append([]string{"plan", "-i", inventoryPath, "--start-date", "2025-03-03", "-o", "json"}, args...)...)
		Expect(err).NotTo(HaveOccurred())

		var summary planSummary
		Expect(json.Unmarshal([]byte(out), &summary)).To(Succeed())
		return summary
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		writeInventory("10.0.1.1")
	})

	Context("plan", func() {
		// Given an inventory with one invalid row
		// When it is planned with the default options
		// Then non-prod batches come first and prod waits ten days
		It("should plan and save the inventory", func() {
			summary := planJSON()

			Expect(summary.Saved).To(BeTrue())
			Expect(summary.RunID).NotTo(BeEmpty())
			Expect(summary.StartDate).To(Equal("2025-03-03"))
			Expect(summary.Inventory.Rows).To(Equal(36))
			Expect(summary.Inventory.Kept).To(Equal(35))
			Expect(summary.Inventory.Dropped).To(Equal(map[string]int{"invalid env": 1}))

			Expect(summary.Batches).To(HaveLen(3))
			Expect(summary.Batches[0]).To(haveBatch("NP-0001", "non-prod", "2025-03-03", 20))
			Expect(summary.Batches[1]).To(haveBatch("NP-0002", "non-prod", "2025-03-04", 5))
			Expect(summary.Batches[2]).To(haveBatch("PR-0001", "prod", "2025-03-14", 10))
		})

		It("should print a table", func() {
			out, err := execute("plan", "-i", inventoryPath, "--start-date", "2025-03-03", "--dry-run")

			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("NP-0001"))
			Expect(out).To(ContainSubstring("PR-0001"))
			Expect(out).To(ContainSubstring("inventory: 36 rows, 35 kept, 1 invalid env"))
			Expect(out).To(ContainSubstring("dry run, 3 batches from 2025-03-03 not saved"))
		})

		It("should read the configuration file", func() {
			configPath := filepath.Join(dir, "config.yaml")
			Expect(os.WriteFile(configPath, []byte("planner:\n  lagDays: 3\n  minBatchSize: 5\n"), 0o600)).To(Succeed())

			summary := planJSON("--config", configPath)

			Expect(summary.Batches[2].Date).To(Equal("2025-03-07"))
		})

		It("should let flags override the configuration file", func() {
			configPath := filepath.Join(dir, "config.yaml")
			Expect(os.WriteFile(configPath, []byte("planner:\n  lagDays: 3\n"), 0o600)).To(Succeed())

			summary := planJSON("--config", configPath, "--lag-days", "7")

			Expect(summary.Batches[2].Date).To(Equal("2025-03-11"))
		})

		It("should read the environment", func() {
			Expect(os.Setenv("PATCH_SCHEDULER_LAG_DAYS", "4")).To(Succeed())
			DeferCleanup(os.Unsetenv, "PATCH_SCHEDULER_LAG_DAYS")

			summary := planJSON()

			Expect(summary.Batches[2].Date).To(Equal("2025-03-08"))
		})

		It("should not save a dry run", func() {
			summary := planJSON("--dry-run")
			Expect(summary.Saved).To(BeFalse())

			out, err := execute("show", "-o", "json")
			Expect(err).NotTo(HaveOccurred())
			var list batchList
			Expect(json.Unmarshal([]byte(out), &list)).To(Succeed())
			Expect(list.Total).To(BeZero())
		})

		DescribeTable("should fail",
			func(args ...string) {
				_, err := execute(args...)

				Expect(err).To(HaveOccurred())
			},
			Entry("without an inventory", "plan"),
			Entry("with a malformed start date", "plan", "-i", "inventory.csv", "--start-date", "tomorrow"),
			Entry("with an unknown output format", "show", "-o", "xml"),
			Entry("with an unknown log format", "show", "--log-format", "logfmt"),
		)
	})

	Context("show", func() {
		BeforeEach(func() {
			planJSON()
		})

		It("should list the stored batches as yaml", func() {
			out, err := execute("show", "-o", "yaml")

			Expect(err).NotTo(HaveOccurred())
			var list batchList
			Expect(yaml.Unmarshal([]byte(out), &list)).To(Succeed())
			Expect(list.Total).To(Equal(3))
			Expect(list.Batches[0].ApprovalStatus).To(Equal("Pending"))
			Expect(list.Batches[0].Applications).To(Equal([]string{"billing"}))
		})

		It("should filter by date", func() {
			out, err := execute("show", "--date", "2025-03-14", "-o", "json")

			Expect(err).NotTo(HaveOccurred())
			var list batchList
			Expect(json.Unmarshal([]byte(out), &list)).To(Succeed())
			Expect(list.Total).To(Equal(1))
			Expect(list.Batches[0].ID).To(Equal("PR-0001"))
		})
	})

	It("should notify every pending batch", func() {
		planJSON()

		out, err := execute("notify", "-o", "json")

		Expect(err).NotTo(HaveOccurred())
		var summary notifySummary
		Expect(json.Unmarshal([]byte(out), &summary)).To(Succeed())
		Expect(summary.Sent).To(Equal([]string{"NP-0001", "NP-0002", "PR-0001"}))
		Expect(summary.Failed).To(BeEmpty())
	})

	It("should post approval requests to the webhook", func() {
		var (
			mu       sync.Mutex
			received []webhook.Message
			auth     []string
		)
		hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var msg webhook.Message
			if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			mu.Lock()
			received = append(received, msg)
			auth = append(auth, r.Header.Get("Authorization"))
			mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		}))
		DeferCleanup(hook.Close)

		Expect(os.Setenv("PATCH_SCHEDULER_WEBHOOK_TOKEN", "hook-token")).To(Succeed())
		DeferCleanup(os.Unsetenv, "PATCH_SCHEDULER_WEBHOOK_TOKEN")

		planJSON()

		_, err := execute("notify", "--webhook-url", hook.URL, "--default-approver", "billing-owner@example.com")

		Expect(err).NotTo(HaveOccurred())
		mu.Lock()
		defer mu.Unlock()
		Expect(received).To(HaveLen(3))
		Expect(received[0].To).To(Equal("billing-owner@example.com"))
		Expect(received[2].BatchID).To(Equal("PR-0001"))
		Expect(auth).To(HaveEach("Bearer hook-token"))
	})

	It("should put a token on the links when authentication is enabled", func() {
		var (
			mu       sync.Mutex
			received []webhook.Message
		)
		hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var msg webhook.Message
			if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			mu.Lock()
			received = append(received, msg)
			mu.Unlock()
			w.WriteHeader(http.StatusAccepted)
		}))
		DeferCleanup(hook.Close)

		configPath := filepath.Join(dir, "config.yaml")
		Expect(os.WriteFile(configPath, []byte("auth:\n  enabled: true\napproval:\n  linkTTL: 1h\n"), 0o600)).To(Succeed())
		Expect(os.Setenv("PATCH_SCHEDULER_AUTH_SECRET", "link-secret")).To(Succeed())
		DeferCleanup(os.Unsetenv, "PATCH_SCHEDULER_AUTH_SECRET")

		planJSON()

		_, err := execute("notify", "--config", configPath, "--webhook-url", hook.URL)

		Expect(err).NotTo(HaveOccurred())
		mu.Lock()
		defer mu.Unlock()
		Expect(received).To(HaveLen(3))
		for _, msg := range received {
			Expect(msg.ApproveLink).To(MatchRegexp(`/approve\?batch_id=%s&token=[\w-]+\.[\w-]+\.[\w-]+$`, msg.BatchID))
			Expect(msg.ProposeLink).To(ContainSubstring("&token="))
		}
	})

	It("should precheck the servers of a day", func() {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(listener.Close)
		go func() {
			for {
				conn, err := listener.Accept()
				if err != nil {
					return
				}
				conn.Close()
			}
		}()
		port := strconv.Itoa(listener.Addr().(*net.TCPAddr).Port)

		writeInventory("127.0.0.1")
		planJSON()

		out, err := execute("precheck", "--date", "2025-03-14", "--management-port", port, "--check-timeout", "2s", "-o", "json")

		Expect(err).NotTo(HaveOccurred())
		var summary precheckSummary
		Expect(json.Unmarshal([]byte(out), &summary)).To(Succeed())
		Expect(summary.Total).To(Equal(10))
		Expect(summary.Failed).To(BeZero())
		Expect(summary.Results[0].BatchID).To(Equal("PR-0001"))
		Expect(summary.Results[0].Status).To(Equal("success"))
	})
})

func haveBatch(id, typ, date string, servers int) OmegaMatcher {
	return SatisfyAll(
		HaveField("ID", id),
		HaveField("Type", typ),
		HaveField("Date", date),
		HaveField("Servers", servers),
	)
}
