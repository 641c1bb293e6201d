// Package fitnesstracker предоставляет маршруты для основного приложения.
package fitnesstracker

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/auth/token"
	categorycreate "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/category/create"
	categorylist "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/category/list"
	goalcreate "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/goal/create"
	goallist "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/goal/list"
	goalread "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/goal/read"
	goalremove "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/goal/remove"
	goalupdate "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/goal/update"
	"github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/health"
	"github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/playlist/addsong"
	playlistcreate "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/playlist/create"
	playlistlist "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/playlist/list"
	playlistread "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/playlist/read"
	playlistremove "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/playlist/remove"
	"github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/playlist/removesong"
	playlistupdate "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/playlist/update"
	songlist "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/song/list"
	songupload "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/song/upload"
	workoutcreate "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/workout/create"
	workoutlist "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/workout/list"
	workoutread "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/workout/read"
	workoutremove "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/workout/remove"
	workoutupdate "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/workout/update"
	"github.com/magabrotheeeer/fitness-tracker/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/fitness-tracker/internal/services/auth"
	categoryservice "github.com/magabrotheeeer/fitness-tracker/internal/services/category"
	goalservice "github.com/magabrotheeeer/fitness-tracker/internal/services/goal"
	playlistservice "github.com/magabrotheeeer/fitness-tracker/internal/services/playlist"
	songservice "github.com/magabrotheeeer/fitness-tracker/internal/services/song"
	workoutservice "github.com/magabrotheeeer/fitness-tracker/internal/services/workout"
)

// Services собирает все сервисы приложения для регистрации маршрутов.
type Services struct {
	Auth     *authservice.AuthService
	Workout  *workoutservice.WorkoutService
	Goal     *goalservice.GoalService
	Playlist *playlistservice.PlaylistService
	Song     *songservice.SongService
	Category *categoryservice.CategoryService
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, limiter *rate.Limiter, svc *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]any{
			"message": "Fitness Tracker API",
		})
	})
	r.Get("/health", health.New(logger).ServeHTTP)
	r.Post("/users/", register.New(logger, svc.Auth).ServeHTTP)
	r.Post("/token", token.New(logger, svc.Auth).ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {
		// Группа с JWT аутентификацией
		r.Use(middlewarectx.JWTMiddleware(svc.Auth, logger))
		r.Use(middlewarectx.RateLimitMiddleware(limiter, logger))

		r.Post("/workouts", workoutcreate.New(logger, svc.Workout).ServeHTTP)
		r.Get("/workouts", workoutlist.New(logger, svc.Workout).ServeHTTP)
		r.Get("/workouts/{id}", workoutread.New(logger, svc.Workout).ServeHTTP)
		r.Put("/workouts/{id}", workoutupdate.New(logger, svc.Workout).ServeHTTP)
		r.Delete("/workouts/{id}", workoutremove.New(logger, svc.Workout).ServeHTTP)

		r.Post("/goals", goalcreate.New(logger, svc.Goal).ServeHTTP)
		r.Get("/goals", goallist.New(logger, svc.Goal).ServeHTTP)
		r.Get("/goals/{id}", goalread.New(logger, svc.Goal).ServeHTTP)
		r.Put("/goals/{id}", goalupdate.New(logger, svc.Goal).ServeHTTP)
		r.Delete("/goals/{id}", goalremove.New(logger, svc.Goal).ServeHTTP)

		r.Post("/playlists", playlistcreate.New(logger, svc.Playlist).ServeHTTP)
		r.Get("/playlists", playlistlist.New(logger, svc.Playlist).ServeHTTP)
		r.Get("/playlists/{id}", playlistread.New(logger, svc.Playlist).ServeHTTP)
		r.Put("/playlists/{id}", playlistupdate.New(logger, svc.Playlist).ServeHTTP)
		r.Delete("/playlists/{id}", playlistremove.New(logger, svc.Playlist).ServeHTTP)
		r.Post("/playlists/{id}/songs", addsong.New(logger, svc.Playlist).ServeHTTP)
		r.Delete("/playlists/{id}/songs/{songID}", removesong.New(logger, svc.Playlist).ServeHTTP)

		r.Post("/songs", songupload.New(logger, svc.Song).ServeHTTP)
		r.Get("/songs", songlist.New(logger, svc.Song).ServeHTTP)

		r.Post("/categories", categorycreate.New(logger, svc.Category).ServeHTTP)
		r.Get("/categories", categorylist.New(logger, svc.Category).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
