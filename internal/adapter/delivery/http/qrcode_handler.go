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

// Defaults for QR rendering parameters left unset by the caller.
const (
	defaultQRForeground = "#000000"
	defaultQRBackground = "#ffffff"
	defaultQRSize       = 256
)

type qrCodeUseCase interface {
	Create(ctx context.Context, input usecase.QRCodeInput) (*entity.QRCode, error)
	ListByLink(ctx context.Context, linkID int64) ([]entity.QRCode, error)
	RenderPNG(ctx context.Context, id int64) ([]byte, error)
	Delete(ctx context.Context, id int64) error
}

type qrCodeHandler struct {
	useCase  qrCodeUseCase
	validate *validator.Validate
}

func newQRCodeHandler(useCase qrCodeUseCase, validate *validator.Validate) *qrCodeHandler {
	return &qrCodeHandler{
		useCase:  useCase,
		validate: validate,
	}
}

func (h *qrCodeHandler) create(w http.ResponseWriter, r *http.Request) {
	var req qrCodeRequest

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

	if req.Foreground == "" {
		req.Foreground = defaultQRForeground
	}
	if req.Background == "" {
		req.Background = defaultQRBackground
	}
	if req.Size == 0 {
		req.Size = defaultQRSize
	}

	qr, err := h.useCase.Create(r.Context(), usecase.QRCodeInput{
		LinkID:     req.LinkID,
		Foreground: req.Foreground,
		Background: req.Background,
		Size:       req.Size,
	})
	if err != nil {
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

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toQRCodeResponse(qr))
}

func (h *qrCodeHandler) listByLink(w http.ResponseWriter, r *http.Request) {
	linkID, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidIDResponse)
		return
	}

	qrCodes, err := h.useCase.ListByLink(r.Context(), linkID)
	if err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	resp := make([]qrCodeResponse, 0, len(qrCodes))
	for i := range qrCodes {
		resp = append(resp, toQRCodeResponse(&qrCodes[i]))
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

func (h *qrCodeHandler) image(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidIDResponse)
		return
	}

	png, err := h.useCase.RenderPNG(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrQRCodeNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, qrCodeNotFoundResponse)
			return
		}
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

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png) //nolint:errcheck
}

func (h *qrCodeHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidIDResponse)
		return
	}

	if err := h.useCase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrQRCodeNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, qrCodeNotFoundResponse)
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
