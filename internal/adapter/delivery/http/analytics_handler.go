package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/vadimbarashkov/linkpulse/internal/entity"
)

type analyticsUseCase interface {
	SummarizeLink(ctx context.Context, linkID int64, dr entity.DateRange) (*entity.AnalyticsSummary, error)
	SummarizeGlobal(ctx context.Context, dr entity.DateRange) (*entity.GlobalAnalyticsSummary, error)
	ExportCSV(ctx context.Context, linkID int64, dr entity.DateRange, w io.Writer) error
}

type analyticsHandler struct {
	useCase analyticsUseCase
}

func newAnalyticsHandler(useCase analyticsUseCase) *analyticsHandler {
	return &analyticsHandler{useCase: useCase}
}

func (h *analyticsHandler) linkAnalytics(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidIDResponse)
		return
	}

	dr, ok := parseDateRange(r)
	if !ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidDateRangeResponse)
		return
	}

	summary, err := h.useCase.SummarizeLink(r.Context(), id, dr)
	if err != nil {
		h.renderSummaryError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toAnalyticsResponse(summary))
}

func (h *analyticsHandler) globalAnalytics(w http.ResponseWriter, r *http.Request) {
	dr, ok := parseDateRange(r)
	if !ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidDateRangeResponse)
		return
	}

	summary, err := h.useCase.SummarizeGlobal(r.Context(), dr)
	if err != nil {
		h.renderSummaryError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toGlobalAnalyticsResponse(summary))
}

// exportCSV writes the click log as a CSV attachment. The export is built
// into a buffer first so a storage failure can still produce a proper
// error response.
func (h *analyticsHandler) exportCSV(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidIDResponse)
		return
	}

	dr, ok := parseDateRange(r)
	if !ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidDateRangeResponse)
		return
	}

	var buf bytes.Buffer

	if err := h.useCase.ExportCSV(r.Context(), id, dr, &buf); err != nil {
		h.renderSummaryError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=clicks-%d.csv", id))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w) //nolint:errcheck
}

func (h *analyticsHandler) renderSummaryError(w http.ResponseWriter, r *http.Request, err error) {
	httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

	if errors.Is(err, entity.ErrAggregationUnavailable) {
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, analyticsUnavailableResponse)
		return
	}

	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, serverErrorResponse)
}
