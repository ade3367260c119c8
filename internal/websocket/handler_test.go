package websocket

import (
	"bytes"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandleLogsFailedUpgradeThroughHubLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil)).With("component", "websocket")
	hub := NewHub(logger)

	// A plain GET without upgrade headers cannot be accepted.
	rec := httptest.NewRecorder()
	Handle(hub).ServeHTTP(rec, httptest.NewRequest("GET", "/ws", nil))

	out := buf.String()
	if !strings.Contains(out, "websocket accept") {
		t.Fatalf("expected accept failure in log output, got %q", out)
	}
	if !strings.Contains(out, "component=websocket") {
		t.Errorf("expected the hub's component logger to be used, got %q", out)
	}
}
