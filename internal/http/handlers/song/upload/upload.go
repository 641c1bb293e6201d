// Package upload реализует HTTP-обработчик загрузки песни в общую библиотеку.
//
// Handler принимает multipart-форму с полями title, artist, duration и файлом
// file, сохраняет файл в объектное хранилище и метаданные в базу.
// Библиотека общая: загруженная песня видна всем пользователям.
package upload

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/fitness-tracker/internal/http/response"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// maxUploadSize ограничивает размер multipart-формы (64 МБ).
const maxUploadSize = 64 << 20

// Handler обрабатывает запросы на загрузку песни.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики загрузки песни.
type Service interface {
	Upload(ctx context.Context, req models.SongRequest, filename string, data io.Reader) (int64, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Загрузить новую песню
// @Description Принимает multipart-форму с метаданными и файлом песни. Возвращает ID созданной записи.
// @Tags Songs
// @Accept  multipart/form-data
// @Produce  json
// @Param title formData string true "Название песни"
// @Param artist formData string true "Исполнитель"
// @Param duration formData number false "Длительность в секундах"
// @Param file formData file true "Файл песни"
// @Success 201 {object} response.Response "Успешная загрузка песни"
// @Failure 400 {object} response.Response "Некорректная форма"
// @Failure 401 {object} response.Response "Пользователь не авторизован"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Failure 500 {object} response.Response "Ошибка сервера при загрузке песни"
// @Router /api/v1/songs [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.song.upload"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Error("failed to parse multipart form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid multipart form"))
		return
	}

	duration, err := strconv.ParseFloat(r.FormValue("duration"), 64)
	if err != nil {
		duration = 0
	}
	req := models.SongRequest{
		Title:    r.FormValue("title"),
		Artist:   r.FormValue("artist"),
		Duration: duration,
	}
	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Error("missing song file in form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing song file"))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	id, err := h.service.Upload(r.Context(), req, header.Filename, file)
	if err != nil {
		log.Error("failed to upload song", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not upload song"))
		return
	}

	log.Info("success to upload song", slog.Int64("id", id))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"last_added_id": id,
	}))
}
