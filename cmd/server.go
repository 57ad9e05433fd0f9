/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mautops/employee-gin/internal/api"
	"github.com/mautops/employee-gin/internal/config"
	"github.com/mautops/employee-gin/internal/container"
	"github.com/mautops/employee-gin/internal/metrics"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the API server",
	Long: `Start the Employee Gin API server.
The server will listen on the configured host and port,
and provide REST API interfaces for registration approval,
the employee directory and report review.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. 加载配置
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// 2. 初始化日志
		logger, err := api.NewLoggerFromConfig(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		// 3. 初始化容器(数据库、仓储、服务)
		ctr, err := container.NewContainer(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize container: %w", err)
		}
		defer ctr.Close()

		// 4. 初始化控制器并设置路由
		router := api.SetupRoutes(&api.RouterDeps{
			Config:      cfg,
			Logger:      logger,
			DB:          ctr.DB(),
			TokenIssuer: ctr.TokenIssuer(),

			AccountController:    api.NewAccountController(ctr.AccountService(), ctr.WorkflowService()),
			EmployeeController:   api.NewEmployeeController(ctr.EmployeeService(), ctr.WorkflowService()),
			DepartmentController: api.NewDepartmentController(ctr.DepartmentService()),
			ReportController:     api.NewReportController(ctr.ReportService(), ctr.WorkflowService()),
			ContactController:    api.NewContactController(ctr.ContactService()),

			DocumentsDir: ctr.DocumentStore().BaseDir(),
		})

		// 5. 周期刷新数据库连接池指标
		metricsCtx, metricsCancel := context.WithCancel(context.Background())
		defer metricsCancel()
		go func() {
			ticker := time.NewTicker(15 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-metricsCtx.Done():
					return
				case <-ticker.C:
					_ = metrics.UpdateDatabaseConnections(ctr.DB())
				}
			}
		}()

		// 6. 启动服务器
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		srv := &http.Server{
			Addr:    addr,
			Handler: router,
		}

		go func() {
			logger.WithField("addr", addr).Info("server starting")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.WithError(err).Fatal("failed to start server")
			}
		}()

		// 等待中断信号
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("shutting down server")

		// 优雅关闭
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.WithError(err).Fatal("server forced to shutdown")
		}

		logger.Info("server exited")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().String("config", "", "Config file path (default: config.yaml)")
}
