package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/linkpulse/internal/entity"
	"github.com/vadimbarashkov/linkpulse/internal/usecase"
)

type templateUseCase interface {
	Create(ctx context.Context, input usecase.TemplateInput) (*entity.RedirectTemplate, error)
	List(ctx context.Context) ([]entity.RedirectTemplate, error)
	SetDefault(ctx context.Context, id int64) (*entity.RedirectTemplate, error)
	Delete(ctx context.Context, id int64) error
}

type templateHandler struct {
	useCase  templateUseCase
	validate *validator.Validate
}

func newTemplateHandler(useCase templateUseCase, validate *validator.Validate) *templateHandler {
	return &templateHandler{
		useCase:  useCase,
		validate: validate,
	}
}

func (h *templateHandler) create(w http.ResponseWriter, r *http.Request) {
	var req templateRequest

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

	tpl, err := h.useCase.Create(r.Context(), usecase.TemplateInput{
		Name:             req.Name,
		CountdownSeconds: req.CountdownSeconds,
		BrandingText:     req.BrandingText,
	})
	if err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toTemplateResponse(tpl))
}

func (h *templateHandler) list(w http.ResponseWriter, r *http.Request) {
	templates, err := h.useCase.List(r.Context())
	if err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	resp := make([]templateResponse, 0, len(templates))
	for i := range templates {
		resp = append(resp, toTemplateResponse(&templates[i]))
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

func (h *templateHandler) setDefault(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidIDResponse)
		return
	}

	tpl, err := h.useCase.SetDefault(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrTemplateNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, templateNotFoundResponse)
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toTemplateResponse(tpl))
}

func (h *templateHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidIDResponse)
		return
	}

	if err := h.useCase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrTemplateNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, templateNotFoundResponse)
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
