package device

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, ID("203.0.113.7"), ID("203.0.113.7"))
	})

	t.Run("whitespace insensitive", func(t *testing.T) {
		assert.Equal(t, ID("203.0.113.7"), ID("  203.0.113.7 "))
	})

	t.Run("distinct addresses get distinct ids", func(t *testing.T) {
		assert.NotEqual(t, ID("203.0.113.7"), ID("203.0.113.8"))
	})

	t.Run("format", func(t *testing.T) {
		id := ID("Unknown")
		assert.True(t, strings.HasPrefix(id, "DEV-"))
		assert.Len(t, id, len("DEV-")+8)
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		ua          string
		wantDevice  string
		wantBrowser string
		wantOS      string
	}{
		{
			name:        "windows chrome desktop",
			ua:          "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0 Safari/537.36",
			wantDevice:  "Desktop",
			wantBrowser: "Chrome",
			wantOS:      "Windows",
		},
		{
			name:        "android mobile firefox",
			ua:          "Mozilla/5.0 (Android 14; Mobile) Firefox/121.0",
			wantDevice:  "Mobile",
			wantBrowser: "Firefox",
			wantOS:      "Android",
		},
		{
			name:        "ipad safari",
			ua:          "Mozilla/5.0 (iPad; CPU OS 17_0) Version/17.0 Safari/605.1.15",
			wantDevice:  "Tablet",
			wantBrowser: "Safari",
			wantOS:      "iOS",
		},
		{
			name:        "edge over chrome token",
			ua:          "Mozilla/5.0 (Windows NT 10.0) Chrome/120.0 Edg/120.0",
			wantDevice:  "Desktop",
			wantBrowser: "Edge",
			wantOS:      "Windows",
		},
		{
			name:        "portal terminal descriptor",
			ua:          "govportal/xterm-256color (linux; amd64)",
			wantDevice:  "Desktop",
			wantBrowser: "Portal Terminal",
			wantOS:      "Linux",
		},
		{
			name:        "unrecognized",
			ua:          "curl/8.4.0",
			wantDevice:  "Desktop",
			wantBrowser: "Other",
			wantOS:      "Other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := Classify("203.0.113.7", tt.ua)
			assert.Equal(t, ID("203.0.113.7"), fp.ID)
			assert.Equal(t, tt.wantDevice, fp.Device)
			assert.Equal(t, tt.wantBrowser, fp.Browser)
			assert.Equal(t, tt.wantOS, fp.OS)
		})
	}
}

func TestClassifyEmptyAgentUsesLocalRuntime(t *testing.T) {
	fp := Classify("203.0.113.7", "")
	assert.Equal(t, "Portal Terminal", fp.Browser)
	assert.NotEmpty(t, fp.OS)
}
