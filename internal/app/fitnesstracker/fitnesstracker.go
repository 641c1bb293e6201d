// Package fitnesstracker собирает HTTP-приложение фитнес-трекера:
// подключение к базе, миграции, кеш, объектное хранилище, сервисы
// и HTTP-сервер с graceful shutdown.
package fitnesstracker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/fitness-tracker/internal/cache"
	"github.com/magabrotheeeer/fitness-tracker/internal/config"
	"github.com/magabrotheeeer/fitness-tracker/internal/filestore"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/password"
	"github.com/magabrotheeeer/fitness-tracker/internal/migrations"
	authservice "github.com/magabrotheeeer/fitness-tracker/internal/services/auth"
	categoryservice "github.com/magabrotheeeer/fitness-tracker/internal/services/category"
	goalservice "github.com/magabrotheeeer/fitness-tracker/internal/services/goal"
	playlistservice "github.com/magabrotheeeer/fitness-tracker/internal/services/playlist"
	songservice "github.com/magabrotheeeer/fitness-tracker/internal/services/song"
	workoutservice "github.com/magabrotheeeer/fitness-tracker/internal/services/workout"
	"github.com/magabrotheeeer/fitness-tracker/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New собирает приложение: хранилище, миграции, кеш, объектное хранилище,
// сервисы и маршруты. Все зависимости передаются явно, глобального
// состояния у приложения нет.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	files, err := filestore.New(ctx, cfg.SongStorage)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	hasher := password.New(cfg.BcryptCost)

	authService := authservice.NewAuthService(db, jwtMaker, hasher)
	workoutService := workoutservice.NewWorkoutService(db, logger)
	goalService := goalservice.NewGoalService(db, logger)
	playlistService := playlistservice.NewPlaylistService(db, logger)
	songService := songservice.NewSongService(db, files, cacheRedis, logger)
	categoryService := categoryservice.NewCategoryService(db, cacheRedis, logger)

	limiter := rate.NewLimiter(rate.Limit(50), 100)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, limiter, &Services{
		Auth:     authService,
		Workout:  workoutService,
		Goal:     goalService,
		Playlist: playlistService,
		Song:     songService,
		Category: categoryService,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if dbErr := a.db.DB.Close(); dbErr != nil && err == nil {
			err = dbErr
		}
		if cacheErr := a.cache.Client.Close(); cacheErr != nil && err == nil {
			err = cacheErr
		}
		return err
	}
}
