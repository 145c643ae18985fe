// SPDX-License-Identifier: MIT

package main

import (
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nooverlap/metrics"
	"github.com/katalvlaran/nooverlap/selection"
	"github.com/katalvlaran/nooverlap/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP selection service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}
			gin.SetMode(gin.ReleaseMode)

			reg := prometheus.NewRegistry()
			opts := []selection.Option{
				selection.WithStrategy(cfg.Strategy()),
				selection.WithLogger(a.logger),
			}
			if cfg.Server.Metrics {
				opts = append(opts, selection.WithObserver(metrics.New(reg)))
			}
			svc := server.NewService(selection.New(opts...), cfg.Engine.MaxIntervals)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a.logger.Info("starting nooverlap",
				"strategy", cfg.Engine.Strategy,
				"max_intervals", cfg.Engine.MaxIntervals,
				"metrics", cfg.Server.Metrics)

			return server.New(cfg.Server, svc, reg, a.logger).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "override server.addr")

	return cmd
}
