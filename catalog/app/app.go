package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/Astemirdum/local-library/catalog/config"
	"github.com/Astemirdum/local-library/catalog/internal/handler"
	"github.com/Astemirdum/local-library/catalog/internal/repository"
	"github.com/Astemirdum/local-library/catalog/internal/server"
	"github.com/Astemirdum/local-library/catalog/internal/service"
	"github.com/Astemirdum/local-library/catalog/migrations"
	"github.com/Astemirdum/local-library/pkg/auth"
	"github.com/Astemirdum/local-library/pkg/logger"
	"github.com/Astemirdum/local-library/pkg/postgres"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "catalog")
	if cfg.Auth.Secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	issuer := auth.NewIssuer(cfg.Auth)
	svc := service.NewService(repo, issuer, log)

	h := handler.New(svc, svc, svc, svc, issuer, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}

// Migrate applies the schema migrations and exits.
func Migrate(ctx context.Context, cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "migrate")
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "migrate")
	}
	db.Close()
	log.Info("migrations applied")
	return nil
}

type NewUser struct {
	Username    string
	Password    string
	Superuser   bool
	Permissions []string
}

// CreateUser adds a staff or member account.
func CreateUser(ctx context.Context, cfg *config.Config, u NewUser) (int64, error) {
	log := logger.NewLogger(cfg.Log, "createuser")
	for _, perm := range u.Permissions {
		if !slices.Contains(auth.AllPermissions, perm) {
			return 0, errors.Errorf("unknown permission %q", perm)
		}
	}
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return 0, errors.Wrap(err, "db init")
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return 0, err
	}
	svc := service.NewService(repo, auth.NewIssuer(cfg.Auth), log)
	id, err := svc.CreateUser(ctx, u.Username, u.Password, u.Superuser, u.Permissions...)
	if err != nil {
		return 0, err
	}
	log.Info("user created", zap.Int64("id", id), zap.String("username", u.Username))
	return id, nil
}
