package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

func TestSetupTracing(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := setupTracing(&buf)
	if err != nil {
		t.Fatalf("setupTracing() error = %v", err)
	}

	ctx, span := otel.Tracer("hikerhunger").Start(context.Background(), "calculate-plan")
	carrier := propagation.HeaderCarrier(http.Header{})
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	span.End()

	if carrier.Get("traceparent") == "" {
		t.Error("global propagator did not inject traceparent")
	}

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error = %v", err)
	}
	if !strings.Contains(buf.String(), "calculate-plan") {
		t.Errorf("exported spans = %q, want the finished span", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
