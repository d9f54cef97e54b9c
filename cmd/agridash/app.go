package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"sasyak-admin/internal/apiclient"
	"sasyak-admin/internal/config"
	"sasyak-admin/internal/notify"
	"sasyak-admin/internal/repository"
	"sasyak-admin/internal/repository/remote"
	"sasyak-admin/internal/scouting"
	"sasyak-admin/internal/service"
	"sasyak-admin/internal/session"
	"sasyak-admin/internal/storage"
	"sasyak-admin/internal/tasks"
)

// app is everything one invocation (or one shell) works with.
type app struct {
	cfg   config.Config
	log   zerolog.Logger
	out   io.Writer
	now   func() time.Time
	store storage.Store

	sessions  *session.Manager
	users     repository.UserRepository
	auth      *service.AuthService
	tasks     *service.TaskService
	dashboard *service.DashboardService
	catalog   *scouting.Catalog
}

func newApp(ctx context.Context, cfg config.Config, l zerolog.Logger, out io.Writer) (*app, error) {
	store, err := storage.Open(ctx, cfg.SessionDSN)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	a := &app{cfg: cfg, log: l, out: out, now: time.Now, store: store}
	n := notify.NewLogNotifier(l)

	a.sessions = session.New(store, l, session.WithOnClear(func() {
		fmt.Fprintln(a.out, "Signed out. Run `agridash login` to sign in again.")
	}))
	api := apiclient.New(cfg.APIURL, a.sessions,
		apiclient.WithNotifier(n),
		apiclient.WithLogger(l),
		apiclient.WithTimeout(cfg.HTTPTimeout),
	)
	a.users = remote.NewUserRepo(api)
	a.auth = service.NewAuthService(api, a.sessions, n, l)

	board := tasks.NewBoard(tasks.Seed())
	a.tasks = service.NewTaskService(board, tasks.NewInbox(tasks.SeedInbox(a.now())), a.users, a.sessions, n, l)
	a.dashboard = service.NewDashboardService(a.users, board, n, l)
	a.catalog = scouting.Seeded()
	return a, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn().Err(err).Msg("close session store")
	}
}
