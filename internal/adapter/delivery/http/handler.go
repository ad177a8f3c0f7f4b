package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/linkpulse/internal/entity"
	"github.com/vadimbarashkov/linkpulse/internal/metrics"
	"github.com/vadimbarashkov/linkpulse/internal/usecase"
)

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

type linkUseCase interface {
	Shorten(ctx context.Context, input usecase.ShortenInput) (*entity.Link, error)
	Resolve(ctx context.Context, slug string) (*entity.Link, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Link, error)
	ListAll(ctx context.Context) ([]entity.Link, error)
	Delete(ctx context.Context, id int64) error
}

type clickUseCase interface {
	Record(ctx context.Context, linkID int64, cc entity.ClickContext) error
}

type linkHandler struct {
	baseURL  string
	useCase  linkUseCase
	clicks   clickUseCase
	validate *validator.Validate
}

func newLinkHandler(baseURL string, useCase linkUseCase, clicks clickUseCase, validate *validator.Validate) *linkHandler {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &linkHandler{
		baseURL:  baseURL,
		useCase:  useCase,
		clicks:   clicks,
		validate: validate,
	}
}

func (h *linkHandler) shorten(w http.ResponseWriter, r *http.Request) {
	var req linkRequest

	if err := render.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, emptyRequestBodyResponse)
			return
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorResponse(err))
		return
	}

	link, err := h.useCase.Shorten(r.Context(), usecase.ShortenInput{
		OriginalURL: req.OriginalURL,
		Name:        req.Name,
		OwnerID:     req.OwnerID,
		CampaignID:  req.CampaignID,
	})
	if err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toLinkResponse(link, h.baseURL))
}

func (h *linkHandler) list(w http.ResponseWriter, r *http.Request) {
	var links []entity.Link
	var err error

	if ownerID := r.URL.Query().Get("owner_id"); ownerID != "" {
		links, err = h.useCase.ListByOwner(r.Context(), ownerID)
	} else {
		links, err = h.useCase.ListAll(r.Context())
	}

	if err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toLinkListResponse(links, h.baseURL))
}

func (h *linkHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidIDResponse)
		return
	}

	if err := h.useCase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrLinkNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, linkNotFoundResponse)
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// redirect resolves a slug and sends the visitor to the original URL.
// The click is recorded before redirecting; a failed recording is logged
// and does not block the redirect.
func (h *linkHandler) redirect(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	slug := chi.URLParam(r, "slug")

	link, err := h.useCase.Resolve(r.Context(), slug)
	if err != nil {
		if errors.Is(err, entity.ErrLinkNotFound) {
			metrics.RedirectsTotal.WithLabelValues("not_found").Inc()

			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, linkNotFoundResponse)
			return
		}

		metrics.RedirectsTotal.WithLabelValues("error").Inc()
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	if err := h.clicks.Record(r.Context(), link.ID, clickContextFromRequest(r)); err != nil {
		httplog.LogEntrySetField(r.Context(), "click_err", slog.AnyValue(err))
	}

	metrics.RedirectsTotal.WithLabelValues("ok").Inc()
	metrics.RedirectDuration.Observe(time.Since(start).Seconds())

	http.Redirect(w, r, link.OriginalURL, http.StatusFound)
}
