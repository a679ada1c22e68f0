package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	httpadp "loandesk-backend/internal/adapter/http"
	"loandesk-backend/internal/adapter/middleware"
	"loandesk-backend/internal/adapter/repository/gormdb"
	"loandesk-backend/internal/config"
	"loandesk-backend/internal/infrastructure/cache"
	"loandesk-backend/internal/infrastructure/db"
	"loandesk-backend/internal/infrastructure/logging"
	"loandesk-backend/internal/usecase/audit"
	"loandesk-backend/internal/usecase/client"
	"loandesk-backend/internal/usecase/loanfile"
	"loandesk-backend/internal/usecase/loantype"
	"loandesk-backend/internal/usecase/maintenance"
	"loandesk-backend/internal/usecase/message"
	"loandesk-backend/internal/usecase/provisioning"
	"loandesk-backend/internal/usecase/task"
	"loandesk-backend/internal/usecase/tasktemplate"
	"loandesk-backend/internal/usecase/workspace"
	"loandesk-backend/pkg/id"
)

const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "loandesk",
		Short:        "Loan file workspace backend",
		SilenceUsage: true,
	}
	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedTemplatesCmd(),
		newBackfillCmd(),
	)
	return root
}

// env is what every subcommand needs: validated config, a logger and an
// open database.
type appEnv struct {
	cfg *config.Config
	log *logrus.Logger
	db  *gorm.DB
}

func bootstrap() (*appEnv, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN(), log)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &appEnv{cfg: cfg, log: log, db: gdb}, nil
}

func (e *appEnv) close() {
	if sqlDB, err := e.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (e *appEnv) provisioner() *provisioning.Usecase {
	return provisioning.NewUsecase(gormdb.NewGormUoW(e.db), e.log,
		provisioning.WithSeedPolicy(e.cfg.TemplateSeedPolicy))
}

func newServeCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := bootstrap()
			if err != nil {
				return err
			}
			defer env.close()

			if migrate {
				if err := db.Migrate(env.db); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
			}
			rdb, err := cache.OpenRedis(env.cfg.RedisAddr, env.cfg.RedisDB)
			if err != nil {
				return fmt.Errorf("open redis: %w", err)
			}
			defer rdb.Close()

			e := echo.New()
			e.HideBanner = true
			e.HidePort = true
			e.Validator = httpadp.NewValidator()
			e.Use(echomw.Recover(), middleware.RequestLogger(env.log))

			ttl := time.Duration(env.cfg.IdempTTLSecs) * time.Second
			checks := map[string]httpadp.Pinger{
				"database": func(ctx context.Context) error {
					sqlDB, err := env.db.DB()
					if err != nil {
						return err
					}
					return sqlDB.PingContext(ctx)
				},
				"redis": func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
			}
			httpadp.Register(e, handlers(env, checks), middleware.Idempotency(rdb, ttl, env.log))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			addr := ":" + env.cfg.AppPort
			errCh := make(chan error, 1)
			go func() {
				env.log.WithField("addr", addr).Info("listening")
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}
			env.log.Info("shutting down")
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(sctx)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "run schema migrations before serving")
	return cmd
}

func handlers(env *appEnv, checks map[string]httpadp.Pinger) httpadp.Handlers {
	tx := gormdb.NewGormUoW(env.db)
	repos := gormdb.Repos(env.db)
	files := loanfile.NewUsecase(tx, env.log)
	return httpadp.Handlers{
		Health:        httpadp.NewHandler(checks),
		Workspaces:    httpadp.NewWorkspaceHandler(workspace.NewUsecase(tx)),
		Clients:       httpadp.NewClientHandler(client.NewUsecase(tx, env.log), files),
		LoanTypes:     httpadp.NewLoanTypeHandler(loantype.NewUsecase(tx)),
		TaskTemplates: httpadp.NewTaskTemplateHandler(tasktemplate.NewUsecase(tx)),
		LoanFiles:     httpadp.NewLoanFileHandler(env.provisioner(), files),
		Tasks:         httpadp.NewTaskHandler(task.NewUsecase(repos.Tasks, repos.LoanFiles, repos.Workspaces)),
		Messages:      httpadp.NewMessageHandler(message.NewUsecase(repos.Messages, repos.LoanFiles)),
		Audit:         httpadp.NewAuditHandler(audit.NewUsecase(repos.Audit)),
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			env, err := bootstrap()
			if err != nil {
				return err
			}
			defer env.close()
			if err := db.Migrate(env.db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			env.log.Info("schema up to date")
			return nil
		},
	}
}

func newSeedTemplatesCmd() *cobra.Command {
	var workspaceID, actor string
	cmd := &cobra.Command{
		Use:   "seed-templates",
		Short: "Insert the default task templates into an empty workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !id.Valid(workspaceID) {
				return fmt.Errorf("--workspace must be a 32-char hex id, got %q", workspaceID)
			}
			env, err := bootstrap()
			if err != nil {
				return err
			}
			defer env.close()
			n, err := env.provisioner().SeedDefaults(cmd.Context(), workspaceID, actor)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d task templates\n", n)
			return nil
		},
	}
	cmd.Flags().StringVar(&workspaceID, "workspace", "", "workspace id")
	cmd.Flags().StringVar(&actor, "actor", "", "user id recorded in the audit log")
	_ = cmd.MarkFlagRequired("workspace")
	return cmd
}

func newBackfillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backfill",
		Short: "Copy loan file workspace ids onto their tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := bootstrap()
			if err != nil {
				return err
			}
			defer env.close()
			uc := maintenance.NewUsecase(gormdb.NewTaskRepository(env.db), env.log)
			n, err := uc.BackfillTaskWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "fixed %d tasks\n", n)
			return nil
		},
	}
}
