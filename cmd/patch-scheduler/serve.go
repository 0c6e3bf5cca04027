package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	v1 "github.com/kubev2v/patch-scheduler/api/v1"
	"github.com/kubev2v/patch-scheduler/internal/config"
	"github.com/kubev2v/patch-scheduler/internal/handlers"
	"github.com/kubev2v/patch-scheduler/internal/server"
	"github.com/kubev2v/patch-scheduler/internal/services"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the schedule, approval and precheck API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.S().Named("serve")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			h := handlers.New(
				services.NewScheduleService(st),
				newApprovalService(st, cfg),
				services.NewPrecheckService(st, services.TCPPrechecker{Port: cfg.Precheck.ManagementPort}, cfg.Precheck),
			)

			srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
				v1.RegisterHandlersWithOptions(router, h, v1.GinServerOptions{ErrorHandler: handlers.ErrorHandler})
			})
			if err != nil {
				return err
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return srv.Start(gctx)
			})
			g.Go(func() error {
				<-gctx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Stop(shutdownCtx)
			})

			err = g.Wait()
			logger.Infow("server stopped", "error", err)
			return err
		},
	}

	flags := cmd.Flags()
	flags.Int("http-port", cfg.Server.HTTPPort, "HTTP listen port")
	flags.String("server-mode", cfg.Server.ServerMode, "server mode (dev, prod)")
	flags.Bool("auth-enabled", cfg.Auth.Enabled, "require a JWT on every API request")
	flags.String("approval-base-url", cfg.Approval.BaseURL, "base URL of the approve and propose links")
	flags.Int("management-port", cfg.Precheck.ManagementPort, "port dialed by the reachability precheck")
	flags.Duration("check-timeout", cfg.Precheck.CheckTimeout, "timeout of a single precheck attempt")
	flags.Int("precheck-workers", cfg.Precheck.PrecheckWorkers, "concurrent prechecks")

	configFlag(flags, "http-port", "server.httpport")
	configFlag(flags, "server-mode", "server.servermode")
	configFlag(flags, "auth-enabled", "auth.enabled")
	configFlag(flags, "approval-base-url", "approval.baseurl")
	configFlag(flags, "management-port", "precheck.managementport")
	configFlag(flags, "check-timeout", "precheck.checktimeout")
	configFlag(flags, "precheck-workers", "precheck.precheckworkers")

	return cmd
}
