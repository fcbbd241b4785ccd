// Package app is the composition root: bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"tora-app.io/tora/internal/api/handlers"
	"tora-app.io/tora/internal/app/modules"
	"tora-app.io/tora/internal/config"
	"tora-app.io/tora/internal/infrastructure"
	"tora-app.io/tora/internal/jobs"
	"tora-app.io/tora/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Infra   *modules.Infrastructure
	DB      *infrastructure.DatabaseClients
	Pools   *worker.Pools
	Modules []modules.Module
}

// Bootstrap initializes all dependencies using module-oriented manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	infra, err := modules.NewInfrastructure(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	notifications, err := modules.NewNotificationsModule(infra)
	if err != nil {
		infra.Close()
		return nil, fmt.Errorf("init notifications module: %w", err)
	}
	alerting := modules.NewAlertingModule(infra, notifications)

	allModules := []modules.Module{notifications, alerting}

	workers := river.NewWorkers()
	for _, mod := range allModules {
		mod.RegisterWorkers(workers)
	}
	if err := infra.InitRiver(workers); err != nil {
		infra.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}

	// Periodic jobs: the reminder sweep keeps pending tasks noisy, the
	// daily token cleanup keeps multicast lists free of dead devices.
	if infra.RiverClient != nil {
		infra.RiverClient.PeriodicJobs().Add(
			river.NewPeriodicJob(
				river.PeriodicInterval(cfg.River.ReminderInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return jobs.TaskReminderArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: false},
			),
		)
		infra.RiverClient.PeriodicJobs().Add(
			river.NewPeriodicJob(
				river.PeriodicInterval(24*time.Hour),
				func() (river.JobArgs, *river.InsertOpts) {
					return jobs.TokenCleanupArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		)
	}

	serverDeps := modules.NewServerDeps(infra, allModules)
	server := handlers.NewServer(serverDeps)

	return &Application{
		Config:  cfg,
		Router:  newRouter(server, []byte(cfg.Security.JWTSecret)),
		Infra:   infra,
		DB:      infra.DB,
		Pools:   infra.Pools,
		Modules: allModules,
	}, nil
}
