package useragent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Classification
	}{
		{
			name: "empty user agent",
			raw:  "",
			want: Classification{Device: Unknown, OS: Unknown, Browser: Unknown},
		},
		{
			name: "desktop chrome on windows",
			raw:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Safari/537.36",
			want: Classification{Device: DeviceDesktop, OS: "Windows", Browser: "Chrome"},
		},
		{
			name: "mobile safari on ios",
			raw:  "Mozilla/5.0 (iPhone; CPU iPhone OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1",
			want: Classification{Device: DeviceMobile, OS: "iOS", Browser: "Safari"},
		},
		{
			name: "googlebot",
			raw:  "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			want: Classification{Device: DeviceBot, OS: Unknown, Browser: "Googlebot"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.raw))
		})
	}
}
