package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/go-chi/httplog/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vadimbarashkov/linkpulse/internal/entity"
	"github.com/vadimbarashkov/linkpulse/internal/usecase"

	httpMock "github.com/vadimbarashkov/linkpulse/mocks/http"
)

const testBaseURL = "http://localhost:8080"

type HandlersTestSuite struct {
	suite.Suite
	logger               *httplog.Logger
	linkUseCaseMock      *httpMock.MockLinkUseCase
	clickUseCaseMock     *httpMock.MockClickUseCase
	analyticsUseCaseMock *httpMock.MockAnalyticsUseCase
	templateUseCaseMock  *httpMock.MockTemplateUseCase
	qrCodeUseCaseMock    *httpMock.MockQRCodeUseCase
	server               *httptest.Server
	e                    *httpexpect.Expect
}

func (suite *HandlersTestSuite) SetupSuite() {
	suite.logger = httplog.NewLogger("", httplog.Options{Writer: io.Discard})
}

func (suite *HandlersTestSuite) SetupSubTest() {
	suite.linkUseCaseMock = httpMock.NewMockLinkUseCase(suite.T())
	suite.clickUseCaseMock = httpMock.NewMockClickUseCase(suite.T())
	suite.analyticsUseCaseMock = httpMock.NewMockAnalyticsUseCase(suite.T())
	suite.templateUseCaseMock = httpMock.NewMockTemplateUseCase(suite.T())
	suite.qrCodeUseCaseMock = httpMock.NewMockQRCodeUseCase(suite.T())

	router := NewRouter(suite.logger, testBaseURL, UseCases{
		Links:     suite.linkUseCaseMock,
		Clicks:    suite.clickUseCaseMock,
		Analytics: suite.analyticsUseCaseMock,
		Templates: suite.templateUseCaseMock,
		QRCodes:   suite.qrCodeUseCaseMock,
	})
	suite.server = httptest.NewServer(router)
	suite.T().Cleanup(func() {
		suite.server.Close()
	})

	suite.e = httpexpect.Default(suite.T(), suite.server.URL)
}

func (suite *HandlersTestSuite) TearDownSubTest() {
	suite.linkUseCaseMock.AssertExpectations(suite.T())
	suite.clickUseCaseMock.AssertExpectations(suite.T())
	suite.analyticsUseCaseMock.AssertExpectations(suite.T())
	suite.templateUseCaseMock.AssertExpectations(suite.T())
	suite.qrCodeUseCaseMock.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestPing() {
	const path = "/api/v1/ping"

	suite.Run("success", func() {
		suite.e.GET(path).
			Expect().
			Status(http.StatusOK).
			Text().IsEqual("pong")
	})
}

func (suite *HandlersTestSuite) TestShorten() {
	const path = "/api/v1/links"

	suite.Run("empty request body", func() {
		resp := suite.e.POST(path).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.HasValue("status", "error")
		resp.ContainsKey("message")
	})

	suite.Run("invalid request body", func() {
		resp := suite.e.POST(path).
			WithJSON("invalid body").
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.HasValue("status", "error")
		resp.ContainsKey("message")
	})

	suite.Run("validation error", func() {
		resp := suite.e.POST(path).
			WithJSON(map[string]string{"original_url": "invalid url"}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.HasValue("status", "error")
		resp.ContainsKey("message")
		resp.Value("errors").Array().Value(0).Object().
			HasValue("field", "original_url").
			ContainsKey("message")
	})

	suite.Run("server error", func() {
		suite.linkUseCaseMock.
			On("Shorten", mock.Anything, usecase.ShortenInput{OriginalURL: "https://example.com"}).
			Once().
			Return(nil, errors.New("unknown error"))

		resp := suite.e.POST(path).
			WithJSON(map[string]string{"original_url": "https://example.com"}).
			Expect().
			Status(http.StatusInternalServerError).
			JSON().Object()

		resp.HasValue("status", "error")
		resp.ContainsKey("message")
	})

	suite.Run("success", func() {
		suite.linkUseCaseMock.
			On("Shorten", mock.Anything, usecase.ShortenInput{
				OriginalURL: "https://example.com",
				Name:        "Example",
			}).
			Once().
			Return(&entity.Link{
				ID:          1,
				Slug:        "abc123",
				OriginalURL: "https://example.com",
				Name:        "Example",
			}, nil)

		resp := suite.e.POST(path).
			WithJSON(map[string]string{
				"original_url": "https://example.com",
				"name":         "Example",
			}).
			Expect().
			Status(http.StatusCreated).
			JSON().Object()

		resp.HasValue("id", 1)
		resp.HasValue("slug", "abc123")
		resp.HasValue("short_url", testBaseURL+"/r/abc123")
		resp.HasValue("original_url", "https://example.com")
		resp.HasValue("click_count", 0)
		resp.ContainsKey("created_at")
		resp.ContainsKey("updated_at")
	})
}

func (suite *HandlersTestSuite) TestListLinks() {
	const path = "/api/v1/links"

	suite.Run("server error", func() {
		suite.linkUseCaseMock.
			On("ListAll", mock.Anything).
			Once().
			Return(nil, errors.New("unknown error"))

		resp := suite.e.GET(path).
			Expect().
			Status(http.StatusInternalServerError).
			JSON().Object()

		resp.HasValue("status", "error")
	})

	suite.Run("all links", func() {
		suite.linkUseCaseMock.
			On("ListAll", mock.Anything).
			Once().
			Return([]entity.Link{
				{ID: 2, Slug: "def456", OriginalURL: "https://example.org"},
				{ID: 1, Slug: "abc123", OriginalURL: "https://example.com"},
			}, nil)

		resp := suite.e.GET(path).
			Expect().
			Status(http.StatusOK).
			JSON().Array()

		resp.Length().IsEqual(2)
		resp.Value(0).Object().HasValue("slug", "def456")
		resp.Value(1).Object().HasValue("slug", "abc123")
	})

	suite.Run("filtered by owner", func() {
		suite.linkUseCaseMock.
			On("ListByOwner", mock.Anything, "user-1").
			Once().
			Return([]entity.Link{
				{ID: 1, Slug: "abc123", OriginalURL: "https://example.com"},
			}, nil)

		resp := suite.e.GET(path).
			WithQuery("owner_id", "user-1").
			Expect().
			Status(http.StatusOK).
			JSON().Array()

		resp.Length().IsEqual(1)
		resp.Value(0).Object().HasValue("slug", "abc123")
	})
}

func (suite *HandlersTestSuite) TestDeleteLink() {
	const path = "/api/v1/links/%s"

	suite.Run("invalid id", func() {
		resp := suite.e.DELETE(fmt.Sprintf(path, "abc")).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.HasValue("status", "error")
	})

	suite.Run("link not found", func() {
		suite.linkUseCaseMock.
			On("Delete", mock.Anything, int64(1)).
			Once().
			Return(entity.ErrLinkNotFound)

		resp := suite.e.DELETE(fmt.Sprintf(path, "1")).
			Expect().
			Status(http.StatusNotFound).
			JSON().Object()

		resp.HasValue("status", "error")
	})

	suite.Run("success", func() {
		suite.linkUseCaseMock.
			On("Delete", mock.Anything, int64(1)).
			Once().
			Return(nil)

		suite.e.DELETE(fmt.Sprintf(path, "1")).
			Expect().
			Status(http.StatusNoContent)
	})
}

func (suite *HandlersTestSuite) TestRedirect() {
	const path = "/r/%s"

	suite.Run("link not found", func() {
		suite.linkUseCaseMock.
			On("Resolve", mock.Anything, "abc123").
			Once().
			Return(nil, entity.ErrLinkNotFound)

		resp := suite.e.GET(fmt.Sprintf(path, "abc123")).
			Expect().
			Status(http.StatusNotFound).
			JSON().Object()

		resp.HasValue("status", "error")
	})

	suite.Run("success records the click", func() {
		suite.linkUseCaseMock.
			On("Resolve", mock.Anything, "abc123").
			Once().
			Return(&entity.Link{
				ID:          1,
				Slug:        "abc123",
				OriginalURL: "https://example.com",
			}, nil)
		suite.clickUseCaseMock.
			On("Record", mock.Anything, int64(1), mock.MatchedBy(func(cc entity.ClickContext) bool {
				return cc.DedupKey == "key-1" && cc.Referrer == "https://google.com/"
			})).
			Once().
			Return(nil)

		suite.e.GET(fmt.Sprintf(path, "abc123")).
			WithHeader("Idempotency-Key", "key-1").
			WithHeader("Referer", "https://google.com/").
			WithRedirectPolicy(httpexpect.DontFollowRedirects).
			Expect().
			Status(http.StatusFound).
			Header("Location").IsEqual("https://example.com")
	})

	suite.Run("click recording failure does not block the redirect", func() {
		suite.linkUseCaseMock.
			On("Resolve", mock.Anything, "abc123").
			Once().
			Return(&entity.Link{
				ID:          1,
				Slug:        "abc123",
				OriginalURL: "https://example.com",
			}, nil)
		suite.clickUseCaseMock.
			On("Record", mock.Anything, int64(1), mock.Anything).
			Once().
			Return(errors.New("storage down"))

		suite.e.GET(fmt.Sprintf(path, "abc123")).
			WithRedirectPolicy(httpexpect.DontFollowRedirects).
			Expect().
			Status(http.StatusFound).
			Header("Location").IsEqual("https://example.com")
	})
}

func (suite *HandlersTestSuite) TestLinkAnalytics() {
	const path = "/api/v1/links/%s/analytics"

	suite.Run("invalid id", func() {
		resp := suite.e.GET(fmt.Sprintf(path, "abc")).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.HasValue("status", "error")
	})

	suite.Run("invalid date range", func() {
		resp := suite.e.GET(fmt.Sprintf(path, "1")).
			WithQuery("from", "2025-03-10").
			WithQuery("to", "2025-03-01").
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.HasValue("status", "error")
	})

	suite.Run("aggregation unavailable", func() {
		suite.analyticsUseCaseMock.
			On("SummarizeLink", mock.Anything, int64(1), entity.DateRange{}).
			Once().
			Return(nil, fmt.Errorf("summarize: %w", entity.ErrAggregationUnavailable))

		resp := suite.e.GET(fmt.Sprintf(path, "1")).
			Expect().
			Status(http.StatusServiceUnavailable).
			JSON().Object()

		resp.HasValue("status", "error")
	})

	suite.Run("success", func() {
		suite.analyticsUseCaseMock.
			On("SummarizeLink", mock.Anything, int64(1), entity.DateRange{}).
			Once().
			Return(&entity.AnalyticsSummary{
				TotalClicks:   2,
				DeviceCounts:  map[string]int64{"desktop": 2},
				OSCounts:      map[string]int64{"Windows": 2},
				BrowserCounts: map[string]int64{"Chrome": 2},
				CountryCounts: []entity.Bucket{{Key: "US", Count: 2}},
				ReferrerCounts: []entity.Bucket{
					{Key: "google.com", Count: 1},
					{Key: "Direct/Unknown", Count: 1},
				},
				DailySeries: []entity.DailyCount{
					{Date: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), Count: 2},
				},
			}, nil)

		resp := suite.e.GET(fmt.Sprintf(path, "1")).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("total_clicks", 2)
		resp.Value("device_counts").Object().HasValue("desktop", 2)
		resp.Value("daily_series").Array().Value(0).Object().
			HasValue("date", "2025-03-10").
			HasValue("count", 2)
		resp.Value("hourly_distribution").Array().Length().IsEqual(24)
		resp.NotContainsKey("source_counts")
	})
}

func (suite *HandlersTestSuite) TestGlobalAnalytics() {
	const path = "/api/v1/analytics"

	suite.Run("aggregation unavailable", func() {
		suite.analyticsUseCaseMock.
			On("SummarizeGlobal", mock.Anything, entity.DateRange{}).
			Once().
			Return(nil, fmt.Errorf("summarize: %w", entity.ErrAggregationUnavailable))

		resp := suite.e.GET(path).
			Expect().
			Status(http.StatusServiceUnavailable).
			JSON().Object()

		resp.HasValue("status", "error")
	})

	suite.Run("success", func() {
		suite.analyticsUseCaseMock.
			On("SummarizeGlobal", mock.Anything, entity.DateRange{}).
			Once().
			Return(&entity.GlobalAnalyticsSummary{
				AnalyticsSummary: entity.AnalyticsSummary{
					TotalClicks:   3,
					DeviceCounts:  map[string]int64{"desktop": 3},
					OSCounts:      map[string]int64{},
					BrowserCounts: map[string]int64{},
				},
				SourceCounts: map[string]int64{"Google": 2, "Direct": 1},
			}, nil)

		resp := suite.e.GET(path).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("total_clicks", 3)
		resp.Value("source_counts").Object().
			HasValue("Google", 2).
			HasValue("Direct", 1)
	})
}

func (suite *HandlersTestSuite) TestExportCSV() {
	const path = "/api/v1/links/%s/clicks/export"

	suite.Run("aggregation unavailable", func() {
		suite.analyticsUseCaseMock.
			On("ExportCSV", mock.Anything, int64(1), entity.DateRange{}, mock.Anything).
			Once().
			Return(fmt.Errorf("export: %w", entity.ErrAggregationUnavailable))

		resp := suite.e.GET(fmt.Sprintf(path, "1")).
			Expect().
			Status(http.StatusServiceUnavailable).
			JSON().Object()

		resp.HasValue("status", "error")
	})

	suite.Run("success", func() {
		suite.analyticsUseCaseMock.
			On("ExportCSV", mock.Anything, int64(1), entity.DateRange{}, mock.Anything).
			Once().
			Run(func(args mock.Arguments) {
				w := args.Get(3).(io.Writer)
				fmt.Fprintln(w, "date,time,ip,device,browser,os,country,region,city,referrer")
			}).
			Return(nil)

		resp := suite.e.GET(fmt.Sprintf(path, "1")).
			Expect().
			Status(http.StatusOK)

		resp.Header("Content-Type").IsEqual("text/csv")
		resp.Header("Content-Disposition").IsEqual("attachment; filename=clicks-1.csv")
		resp.Body().Contains("date,time,ip")
	})
}

func (suite *HandlersTestSuite) TestCreateTemplate() {
	const path = "/api/v1/templates"

	suite.Run("validation error", func() {
		resp := suite.e.POST(path).
			WithJSON(map[string]interface{}{"countdown_seconds": 5}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.HasValue("status", "error")
		resp.Value("errors").Array().Value(0).Object().
			HasValue("field", "name")
	})

	suite.Run("countdown out of range", func() {
		resp := suite.e.POST(path).
			WithJSON(map[string]interface{}{"name": "Promo", "countdown_seconds": 120}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.HasValue("status", "error")
		resp.Value("errors").Array().Value(0).Object().
			HasValue("field", "countdown_seconds")
	})

	suite.Run("success", func() {
		suite.templateUseCaseMock.
			On("Create", mock.Anything, usecase.TemplateInput{
				Name:             "Promo",
				CountdownSeconds: 5,
				BrandingText:     "Powered by linkpulse",
			}).
			Once().
			Return(&entity.RedirectTemplate{
				ID:               1,
				Name:             "Promo",
				CountdownSeconds: 5,
				BrandingText:     "Powered by linkpulse",
			}, nil)

		resp := suite.e.POST(path).
			WithJSON(map[string]interface{}{
				"name":              "Promo",
				"countdown_seconds": 5,
				"branding_text":     "Powered by linkpulse",
			}).
			Expect().
			Status(http.StatusCreated).
			JSON().Object()

		resp.HasValue("id", 1)
		resp.HasValue("name", "Promo")
		resp.HasValue("is_default", false)
	})
}

func (suite *HandlersTestSuite) TestSetDefaultTemplate() {
	const path = "/api/v1/templates/%s/default"

	suite.Run("template not found", func() {
		suite.templateUseCaseMock.
			On("SetDefault", mock.Anything, int64(1)).
			Once().
			Return(nil, entity.ErrTemplateNotFound)

		resp := suite.e.PUT(fmt.Sprintf(path, "1")).
			Expect().
			Status(http.StatusNotFound).
			JSON().Object()

		resp.HasValue("status", "error")
	})

	suite.Run("success", func() {
		suite.templateUseCaseMock.
			On("SetDefault", mock.Anything, int64(1)).
			Once().
			Return(&entity.RedirectTemplate{ID: 1, Name: "Promo", IsDefault: true}, nil)

		resp := suite.e.PUT(fmt.Sprintf(path, "1")).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("id", 1)
		resp.HasValue("is_default", true)
	})
}

func (suite *HandlersTestSuite) TestCreateQRCode() {
	const path = "/api/v1/qrcodes"

	suite.Run("validation error", func() {
		resp := suite.e.POST(path).
			WithJSON(map[string]interface{}{"link_id": 1, "foreground": "not a color"}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.HasValue("status", "error")
		resp.Value("errors").Array().Value(0).Object().
			HasValue("field", "foreground")
	})

	suite.Run("link not found", func() {
		suite.qrCodeUseCaseMock.
			On("Create", mock.Anything, usecase.QRCodeInput{
				LinkID:     1,
				Foreground: "#000000",
				Background: "#ffffff",
				Size:       256,
			}).
			Once().
			Return(nil, entity.ErrLinkNotFound)

		resp := suite.e.POST(path).
			WithJSON(map[string]interface{}{"link_id": 1}).
			Expect().
			Status(http.StatusNotFound).
			JSON().Object()

		resp.HasValue("status", "error")
	})

	suite.Run("defaults are applied", func() {
		suite.qrCodeUseCaseMock.
			On("Create", mock.Anything, usecase.QRCodeInput{
				LinkID:     1,
				Foreground: "#000000",
				Background: "#ffffff",
				Size:       256,
			}).
			Once().
			Return(&entity.QRCode{
				ID:         1,
				LinkID:     1,
				Foreground: "#000000",
				Background: "#ffffff",
				Size:       256,
			}, nil)

		resp := suite.e.POST(path).
			WithJSON(map[string]interface{}{"link_id": 1}).
			Expect().
			Status(http.StatusCreated).
			JSON().Object()

		resp.HasValue("foreground", "#000000")
		resp.HasValue("background", "#ffffff")
		resp.HasValue("size", 256)
	})
}

func (suite *HandlersTestSuite) TestQRCodeImage() {
	const path = "/api/v1/qrcodes/%s/image"

	suite.Run("qr code not found", func() {
		suite.qrCodeUseCaseMock.
			On("RenderPNG", mock.Anything, int64(1)).
			Once().
			Return(nil, entity.ErrQRCodeNotFound)

		resp := suite.e.GET(fmt.Sprintf(path, "1")).
			Expect().
			Status(http.StatusNotFound).
			JSON().Object()

		resp.HasValue("status", "error")
	})

	suite.Run("success", func() {
		suite.qrCodeUseCaseMock.
			On("RenderPNG", mock.Anything, int64(1)).
			Once().
			Return([]byte("png bytes"), nil)

		resp := suite.e.GET(fmt.Sprintf(path, "1")).
			Expect().
			Status(http.StatusOK)

		resp.Header("Content-Type").IsEqual("image/png")
		resp.Body().IsEqual("png bytes")
	})
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
