package http

import (
	"net"
	"net/http"

	"github.com/vadimbarashkov/linkpulse/internal/entity"
	"github.com/vadimbarashkov/linkpulse/pkg/useragent"
)

// Geo headers injected by the CDN in front of the service.
const (
	headerCountry = "CF-IPCountry"
	headerRegion  = "X-Geo-Region"
	headerCity    = "X-Geo-City"

	headerIdempotencyKey = "Idempotency-Key"
)

// clickContextFromRequest derives the classified click context from the
// inbound redirect request. The RealIP middleware has already rewritten
// RemoteAddr from the forwarding headers.
func clickContextFromRequest(r *http.Request) entity.ClickContext {
	ua := useragent.Classify(r.UserAgent())

	return entity.ClickContext{
		DedupKey:  r.Header.Get(headerIdempotencyKey),
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
		Referrer:  r.Referer(),
		Device:    ua.Device,
		OS:        ua.OS,
		Browser:   ua.Browser,
		Country:   r.Header.Get(headerCountry),
		Region:    r.Header.Get(headerRegion),
		City:      r.Header.Get(headerCity),
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
