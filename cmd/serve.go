package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/teamdisc/core"
	"github.com/huangsam/teamdisc/internal/api"
	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/internal/logging"
	"github.com/huangsam/teamdisc/internal/metrics"
	"github.com/spf13/cobra"
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the teamdisc HTTP API",
	Long: `Serve assessment submission and department analytics over HTTP.

Routes:
  POST /api/assessments              - score and store a submission
  GET  /api/profiles/:id             - read one profile
  GET  /api/profiles                 - list profiles (admin)
  GET  /api/analytics/{view}         - departments, compatibility, composition,
                                       communication, report (admin)
  POST /api/admin/team-codes         - generate team codes (admin)
  GET  /healthz, GET /metrics

Admin routes require the x-admin-token header when --admin-token is set.

Examples:
  TEAMDISC_ADMIN_TOKEN=s3cret teamdisc serve --listen :8080 --backend postgresql \
    --db-connect "host=localhost dbname=teamdisc"`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		collector, err := metrics.NewCollector(cfg.Metrics)
		if err != nil {
			return err
		}
		defer func() {
			if err := collector.Shutdown(context.Background()); err != nil {
				contract.LogWarn("Failed to stop metrics", err)
			}
		}()

		svc, repo, err := openService(ctx, core.WithMetrics(collector))
		if err != nil {
			return err
		}
		defer closeRepo(repo)

		if cfg.AdminToken == "" {
			logging.Log.Warn("No admin token set; analytics and admin routes are open")
		}
		return api.NewServer(cfg, svc, collector).Run(ctx)
	},
}
