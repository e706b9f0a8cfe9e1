package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      string
	}{
		{"empty string", "", Unknown},
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", IOS},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X)", IOS},
		{"iphone upper case", "MOZILLA/5.0 (IPHONE)", IOS},
		{"android", "Mozilla/5.0 (Linux; Android 14; Pixel 8)", Android},
		{"android upper case", "MOZILLA (ANDROID 12)", Android},
		{"desktop chrome", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0", Desktop},
		{"desktop mac", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)", Desktop},
		{"curl", "curl/8.4.0", Desktop},
		{"apple checked before android", "something iPad Android mixed", IOS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.userAgent))
		})
	}
}

func TestKnown(t *testing.T) {
	for _, category := range Categories {
		assert.True(t, Known(category))
	}

	assert.False(t, Known(""))
	assert.False(t, Known("SmartTV"))
}
