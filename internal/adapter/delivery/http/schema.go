package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/linkpulse/internal/entity"
)

const statusError = "error"

// linkRequest represents the structure for a request to shorten a URL.
type linkRequest struct {
	OriginalURL string  `json:"original_url" validate:"required,url"`
	Name        string  `json:"name"`
	OwnerID     *string `json:"owner_id"`
	CampaignID  *int64  `json:"campaign_id"`
}

// linkResponse represents the structure for a response containing link information.
type linkResponse struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	ShortURL    string    `json:"short_url"`
	OriginalURL string    `json:"original_url"`
	Name        string    `json:"name"`
	OwnerID     *string   `json:"owner_id,omitempty"`
	CampaignID  *int64    `json:"campaign_id,omitempty"`
	ClickCount  int64     `json:"click_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toLinkResponse(link *entity.Link, baseURL string) linkResponse {
	return linkResponse{
		ID:          link.ID,
		Slug:        link.Slug,
		ShortURL:    link.ShortURL(baseURL),
		OriginalURL: link.OriginalURL,
		Name:        link.Name,
		OwnerID:     link.OwnerID,
		CampaignID:  link.CampaignID,
		ClickCount:  link.ClickCount,
		CreatedAt:   link.CreatedAt,
		UpdatedAt:   link.UpdatedAt,
	}
}

func toLinkListResponse(links []entity.Link, baseURL string) []linkResponse {
	resp := make([]linkResponse, 0, len(links))
	for i := range links {
		resp = append(resp, toLinkResponse(&links[i], baseURL))
	}
	return resp
}

// dailyCountResponse is one day of the dense daily series.
type dailyCountResponse struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// analyticsResponse represents the structure for a response containing an analytics summary.
type analyticsResponse struct {
	TotalClicks        int64                `json:"total_clicks"`
	DeviceCounts       map[string]int64     `json:"device_counts"`
	OSCounts           map[string]int64     `json:"os_counts"`
	BrowserCounts      map[string]int64     `json:"browser_counts"`
	CountryCounts      []entity.Bucket      `json:"country_counts"`
	ReferrerCounts     []entity.Bucket      `json:"referrer_counts"`
	DailySeries        []dailyCountResponse `json:"daily_series"`
	HourlyDistribution [24]int64            `json:"hourly_distribution"`
	SourceCounts       map[string]int64     `json:"source_counts,omitempty"`
}

func toAnalyticsResponse(s *entity.AnalyticsSummary) analyticsResponse {
	series := make([]dailyCountResponse, 0, len(s.DailySeries))
	for _, d := range s.DailySeries {
		series = append(series, dailyCountResponse{
			Date:  d.Date.Format("2006-01-02"),
			Count: d.Count,
		})
	}

	return analyticsResponse{
		TotalClicks:        s.TotalClicks,
		DeviceCounts:       s.DeviceCounts,
		OSCounts:           s.OSCounts,
		BrowserCounts:      s.BrowserCounts,
		CountryCounts:      s.CountryCounts,
		ReferrerCounts:     s.ReferrerCounts,
		DailySeries:        series,
		HourlyDistribution: s.HourlyDistribution,
	}
}

func toGlobalAnalyticsResponse(s *entity.GlobalAnalyticsSummary) analyticsResponse {
	resp := toAnalyticsResponse(&s.AnalyticsSummary)
	resp.SourceCounts = s.SourceCounts
	return resp
}

// templateRequest represents the structure for a request to create a redirect template.
type templateRequest struct {
	Name             string `json:"name" validate:"required"`
	CountdownSeconds int    `json:"countdown_seconds" validate:"gte=0,lte=60"`
	BrandingText     string `json:"branding_text"`
}

// templateResponse represents the structure for a response containing redirect template information.
type templateResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	CountdownSeconds int       `json:"countdown_seconds"`
	BrandingText     string    `json:"branding_text,omitempty"`
	IsDefault        bool      `json:"is_default"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toTemplateResponse(tpl *entity.RedirectTemplate) templateResponse {
	return templateResponse{
		ID:               tpl.ID,
		Name:             tpl.Name,
		CountdownSeconds: tpl.CountdownSeconds,
		BrandingText:     tpl.BrandingText,
		IsDefault:        tpl.IsDefault,
		CreatedAt:        tpl.CreatedAt,
		UpdatedAt:        tpl.UpdatedAt,
	}
}

// qrCodeRequest represents the structure for a request to create a QR code.
type qrCodeRequest struct {
	LinkID     int64  `json:"link_id" validate:"required"`
	Foreground string `json:"foreground" validate:"omitempty,hexcolor"`
	Background string `json:"background" validate:"omitempty,hexcolor"`
	Size       int    `json:"size" validate:"omitempty,gt=0,lte=2048"`
}

// qrCodeResponse represents the structure for a response containing QR code information.
type qrCodeResponse struct {
	ID         int64     `json:"id"`
	LinkID     int64     `json:"link_id"`
	Foreground string    `json:"foreground"`
	Background string    `json:"background"`
	Size       int       `json:"size"`
	CreatedAt  time.Time `json:"created_at"`
}

func toQRCodeResponse(qr *entity.QRCode) qrCodeResponse {
	return qrCodeResponse{
		ID:         qr.ID,
		LinkID:     qr.LinkID,
		Foreground: qr.Foreground,
		Background: qr.Background,
		Size:       qr.Size,
		CreatedAt:  qr.CreatedAt,
	}
}

// validationError represents an individual validation error.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse represents a structured error response.
type errorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  []validationError `json:"errors,omitempty"`
}

// Predefined error responses for common scenarios.
var (
	emptyRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "empty request body",
	}

	invalidRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "invalid request body",
	}

	invalidIDResponse = errorResponse{
		Status:  statusError,
		Message: "invalid id",
	}

	invalidDateRangeResponse = errorResponse{
		Status:  statusError,
		Message: "invalid date range",
	}

	linkNotFoundResponse = errorResponse{
		Status:  statusError,
		Message: "link not found",
	}

	templateNotFoundResponse = errorResponse{
		Status:  statusError,
		Message: "redirect template not found",
	}

	qrCodeNotFoundResponse = errorResponse{
		Status:  statusError,
		Message: "qr code not found",
	}

	analyticsUnavailableResponse = errorResponse{
		Status:  statusError,
		Message: "analytics temporarily unavailable",
	}

	serverErrorResponse = errorResponse{
		Status:  statusError,
		Message: "server error occurred",
	}
)

// messageForTag returns a user-friendly message based on the validation tag.
func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "url":
		return "invalid url"
	case "hexcolor":
		return "invalid hex color"
	case "gte", "lte", "gt":
		return "value out of range"
	default:
		return "invalid value"
	}
}

// getValidationErrors processes validation errors and returns a list of validationError.
func getValidationErrors(err error) []validationError {
	var validationErrs []validationError

	errs, ok := err.(validator.ValidationErrors)
	if ok {
		for _, e := range errs {
			validationErrs = append(validationErrs, validationError{
				Field:   e.Field(),
				Message: messageForTag(e.Tag()),
			})
		}
	}

	return validationErrs
}

// validationErrorResponse constructs an errorResponse for validation errors.
func validationErrorResponse(err error) errorResponse {
	return errorResponse{
		Status:  statusError,
		Message: "validation error",
		Errors:  getValidationErrors(err),
	}
}

// parseID parses a positive numeric URL parameter.
func parseID(param string) (int64, bool) {
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseDateRange extracts an optional inclusive date range from the query.
// Accepts from/to as YYYY-MM-DD; last_days takes precedence when supplied.
func parseDateRange(r *http.Request) (entity.DateRange, bool) {
	q := r.URL.Query()

	if lastDays := q.Get("last_days"); lastDays != "" {
		n, err := strconv.Atoi(lastDays)
		if err != nil || n <= 0 {
			return entity.DateRange{}, false
		}
		return entity.LastNDays(n, time.Now()), true
	}

	var dr entity.DateRange

	if from := q.Get("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return entity.DateRange{}, false
		}
		dr.From = t
	}

	if to := q.Get("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return entity.DateRange{}, false
		}
		dr.To = t
	}

	if !dr.From.IsZero() && !dr.To.IsZero() && dr.To.Before(dr.From) {
		return entity.DateRange{}, false
	}

	return dr, true
}
