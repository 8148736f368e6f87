package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/atinyakov/useful-links/internal/app/server"
	grpcserver "github.com/atinyakov/useful-links/internal/app/server/grpc"
	"github.com/atinyakov/useful-links/internal/app/service"
	"github.com/atinyakov/useful-links/internal/config"
	"github.com/atinyakov/useful-links/internal/loading"
	"github.com/atinyakov/useful-links/internal/logger"
	"github.com/atinyakov/useful-links/internal/repository"
	"github.com/atinyakov/useful-links/internal/storage"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

const shutdownTimeout = 5 * time.Second

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func main() {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))

	options, err := config.Parse()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, options, log.Log); err != nil {
		log.Log.Error("server stopped with error", zap.Error(err))
		panic(err)
	}
}

// run serves until ctx is cancelled, then shuts every server down.
func run(ctx context.Context, options *config.Options, zapLogger *zap.Logger) error {
	flags := loading.NewState()

	s, closer, err := openStorage(ctx, options, flags, zapLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			zapLogger.Error("cannot close storage", zap.Error(err))
		}
	}()

	svcCtx, cancelSvc := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelSvc()

	linkService := service.NewLinks(svcCtx, s, flags, zapLogger)
	auth := service.NewAuth(options.JWTSecret)
	r := server.Init(zapLogger, linkService, auth, options.TrustedSubnet)

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	errc := make(chan error, 2)

	var grpcSrv *grpcserver.Server
	if options.GRPCPort != 0 {
		grpcSrv = grpcserver.New(zapLogger, linkService, auth, options.TrustedSubnet, options.GRPCPort)
		go func() {
			errc <- grpcSrv.Start()
		}()
	}

	srv := &http.Server{
		Addr:    options.Port,
		Handler: r,
	}

	go func() {
		if options.EnableHTTPS {
			manager := &autocert.Manager{
				// директория для хранения сертификатов
				Cache: autocert.DirCache("cache-dir"),
				// принимаем Terms of Service издателя сертификатов
				Prompt: autocert.AcceptTOS,
				// домены, для которых выпускаются сертификаты
				HostPolicy: autocert.HostWhitelist("links.example.com", "www.links.example.com"),
			}
			srv.Addr = ":443"
			srv.TLSConfig = manager.TLSConfig()

			zapLogger.Info("Server is running with TLS", zap.String("addr", srv.Addr))
			errc <- srv.ListenAndServeTLS("", "")
			return
		}

		zapLogger.Info("Server is running", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		zapLogger.Info("shutting down")
	case serveErr = <-errc:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("http shutdown", zap.Error(err))
	}
	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}

	cancelSvc()
	linkService.Wait()

	if errors.Is(serveErr, http.ErrServerClosed) {
		return nil
	}
	return serveErr
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openStorage picks the database when a DSN is configured, then the file,
// then memory. The store flag is raised while the backend bootstraps.
func openStorage(ctx context.Context, options *config.Options, flags *loading.State, zapLogger *zap.Logger) (service.Storage, io.Closer, error) {
	// флаг store поднят, пока хранилище загружается
	defer flags.Store.Begin()()

	switch {
	case options.DatabaseDSN != "":
		zapLogger.Info("using db")

		db, err := repository.InitDB(ctx, options.DatabaseDSN, zapLogger)
		if err != nil {
			return nil, nil, err
		}
		zapLogger.Info("Database connected and table ready.")

		return repository.CreateLinkRepository(db, zapLogger), db, nil

	case options.FilePath != "":
		zapLogger.Info("using file", zap.String("filePath", options.FilePath))

		fs, err := storage.NewFileStorage(options.FilePath, zapLogger)
		if err != nil {
			return nil, nil, err
		}
		return fs, fs, nil

	default:
		zapLogger.Info("using in memory storage")

		m, err := storage.CreateMemoryStorage()
		if err != nil {
			return nil, nil, err
		}
		return m, closerFunc(func() error { return nil }), nil
	}
}
