package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/aishwaryaDel/aihub-bolt/config"
	"github.com/aishwaryaDel/aihub-bolt/internal/auth"
	"github.com/aishwaryaDel/aihub-bolt/internal/db"
	"github.com/aishwaryaDel/aihub-bolt/internal/health"
	"github.com/aishwaryaDel/aihub-bolt/internal/logs"
	"github.com/aishwaryaDel/aihub-bolt/internal/middleware"
	"github.com/aishwaryaDel/aihub-bolt/internal/models"
	"github.com/aishwaryaDel/aihub-bolt/internal/repo"
	"github.com/aishwaryaDel/aihub-bolt/internal/usecases"
	"github.com/aishwaryaDel/aihub-bolt/internal/users"
)

type App struct {
	cfg        *config.Config
	db         *gorm.DB
	Router     *mux.Router
	httpServer *http.Server

	ctx    context.Context
	cancel context.CancelFunc
}

// Initialize builds every service once and passes references down — no
// package-level singletons, so tests can substitute freely.
func (a *App) Initialize(cfg *config.Config) {
	a.cfg = cfg

	/* 1) Logs */
	logs.Init(logs.Options{
		Level:  a.cfg.Logging.Level,
		Format: a.cfg.Logging.Format,
		File:   a.cfg.Logging.File,
	})

	/* 2) DB */
	d, err := db.Open(a.cfg.Database.Driver, a.cfg.Database.DSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	a.db = d
	if err := a.db.AutoMigrate(&models.UseCase{}, &models.User{}); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	/* 3) Stores and services */
	ucStore := repo.NewUseCaseStore(a.db)
	userStore := repo.NewUserStore(a.db)

	ucSvc := usecases.NewService(ucStore)
	userSvc := users.NewService(userStore)
	authSvc := auth.NewService(userStore, a.cfg.Auth.JWTSecret,
		time.Duration(a.cfg.Auth.TokenTTLHours)*time.Hour)

	a.seedAdmin(authSvc, userStore)

	/* 4) Router + middleware */
	a.Router = mux.NewRouter().StrictSlash(true)
	a.Router.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middleware.LoggerMW,
		cors.Handler(cors.Options{
			AllowedOrigins: a.cfg.CORS.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:         300,
		}),
	)

	/* 5) Health */
	health.RegisterRoutes(a.Router, a.db)

	/* 6) API */
	authMW := middleware.NewAuth(authSvc)
	auth.RegisterRoutes(a.Router, auth.NewHandler(authSvc), authMW)
	usecases.RegisterRoutes(a.Router, usecases.NewHandler(ucSvc), authMW)
	users.RegisterRoutes(a.Router, users.NewHandler(userSvc), authMW)

	// Log the known routes at startup
	_ = a.Router.Walk(func(rt *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		path, _ := rt.GetPathTemplate()
		methods, _ := rt.GetMethods()
		if len(methods) == 0 {
			methods = []string{"ANY"}
		}
		log.Printf("route: %-6v %s", methods, path)
		return nil
	})
}

// seedAdmin creates the bootstrap admin account when the users table is
// empty and credentials were configured, so a fresh deployment has a way in.
func (a *App) seedAdmin(authSvc *auth.Service, userStore *repo.UserStore) {
	if a.cfg.Auth.AdminEmail == "" || a.cfg.Auth.AdminPassword == "" {
		return
	}
	ctx := context.Background()
	n, err := userStore.Count(ctx)
	if err != nil {
		log.Fatalf("user count failed: %v", err)
	}
	if n > 0 {
		return
	}
	_, err = authSvc.Register(ctx, &models.CreateUserInput{
		Email:    a.cfg.Auth.AdminEmail,
		Name:     "Administrator",
		Password: a.cfg.Auth.AdminPassword,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		log.Fatalf("admin seed failed: %v", err)
	}
	logs.Logger.Infof("seeded bootstrap admin %s", a.cfg.Auth.AdminEmail)
}

func (a *App) Run() error {
	if a.Router == nil || a.cfg == nil {
		return fmt.Errorf("server not initialized")
	}

	bind := net.JoinHostPort(a.cfg.Server.Address, a.cfg.Server.HTTPPort)

	a.ctx, a.cancel = context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigs
		logs.Logger.Infof("shutdown signal: %s", s)
		a.cancel()
	}()

	// Hard timeouts matter in production
	a.httpServer = &http.Server{
		Addr:              bind,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logs.Logger.Infof("HTTP listening on %s", bind)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Logger.Fatalf("http server error: %v", err)
		}
	}()

	<-a.ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.httpServer.Shutdown(ctx); err != nil {
		logs.Logger.Errorf("http shutdown: %v", err)
	}
	return nil
}
