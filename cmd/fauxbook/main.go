// fauxbook es el servidor HTTP del backend.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/fauxbook/internal/cache"
	"github.com/dropDatabas3/fauxbook/internal/config"
	"github.com/dropDatabas3/fauxbook/internal/email"
	accountctrl "github.com/dropDatabas3/fauxbook/internal/http/controllers/account"
	authctrl "github.com/dropDatabas3/fauxbook/internal/http/controllers/auth"
	healthctrl "github.com/dropDatabas3/fauxbook/internal/http/controllers/health"
	postctrl "github.com/dropDatabas3/fauxbook/internal/http/controllers/post"
	mw "github.com/dropDatabas3/fauxbook/internal/http/middlewares"
	"github.com/dropDatabas3/fauxbook/internal/http/router"
	accountsvc "github.com/dropDatabas3/fauxbook/internal/http/services/account"
	authsvc "github.com/dropDatabas3/fauxbook/internal/http/services/auth"
	postsvc "github.com/dropDatabas3/fauxbook/internal/http/services/post"
	jwtx "github.com/dropDatabas3/fauxbook/internal/jwt"
	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
	"github.com/dropDatabas3/fauxbook/internal/store/core"
	"github.com/dropDatabas3/fauxbook/internal/store/memory"
	"github.com/dropDatabas3/fauxbook/internal/store/pg"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	// .env si existe; en prod la config viene del entorno directamente.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		// Logger todavía no inicializado.
		println("fatal:", err.Error())
		os.Exit(1)
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.Log.Level,
		ServiceName: "fauxbook",
	})
	defer func() { _ = logger.Sync() }()
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ─── Store ───
	var store core.Store
	var pool func() *pgxpool.Pool
	switch cfg.Storage.Driver {
	case "postgres":
		pgStore, err := pg.New(ctx, cfg.Storage.DSN)
		if err != nil {
			log.Fatal("postgres connection failed", logger.Err(err))
		}
		store = pgStore
		pool = pgStore.Pool
	default:
		store = memory.New()
	}
	defer store.Close()

	// ─── Cache ───
	cacheClient, err := cache.New(cache.Config{
		Driver:   cfg.Cache.Driver,
		Host:     cfg.Cache.Redis.Host,
		Port:     cfg.Cache.Redis.Port,
		Password: cfg.Cache.Redis.Password,
		DB:       cfg.Cache.Redis.DB,
		Prefix:   cfg.Cache.Redis.Prefix,
	})
	if err != nil {
		log.Fatal("cache connection failed", logger.Err(err))
	}
	defer func() { _ = cacheClient.Close() }()

	// ─── Email ───
	sender := email.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, cfg.SMTP.Username, cfg.SMTP.Password)
	sender.TLSMode = cfg.SMTP.TLS
	sender.InsecureSkipVerify = cfg.SMTP.InsecureSkipVerify
	mailer := email.NewMailer(sender, cfg.App.Name)

	// ─── Tokens ───
	issuer := jwtx.NewIssuer(cfg.App.Name, []byte(cfg.SigningKeys.Access), []byte(cfg.SigningKeys.Refresh))

	// ─── Services ───
	authService := authsvc.NewService(authsvc.Deps{
		Store:  store,
		Cache:  cacheClient,
		Issuer: issuer,
		Mailer: mailer,
		Domain: cfg.App.Domain,
	})
	accountService := accountsvc.NewService(accountsvc.Deps{
		Store:  store,
		Cache:  cacheClient,
		Mailer: mailer,
		Domain: cfg.App.Domain,
	})
	postService := postsvc.NewService(postsvc.Deps{
		Store:      store,
		Domain:     cfg.App.Domain,
		UploadsDir: cfg.Server.UploadsDir,
	})

	// ─── Métricas ───
	metricsHandler, err := mw.RegisterMetrics(mw.MetricsConfig{Pool: pool})
	if err != nil {
		log.Fatal("metrics registration failed", logger.Err(err))
	}

	// ─── Router ───
	handler := router.New(router.Deps{
		Issuer:      issuer,
		Auth:        authctrl.NewController(authService),
		Account:     accountctrl.NewController(accountService),
		Post:        postctrl.NewController(postService),
		Health:      healthctrl.NewController(store, cacheClient),
		Metrics:     metricsHandler,
		UploadsDir:  cfg.Server.UploadsDir,
		CORSOrigins: []string{"*"},
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", logger.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server failed", logger.Err(err))
	}
	log.Info("bye")
}
