package log

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestContextFields(t *testing.T) {
	ctx := WithUserID(WithRequestID(context.Background(), "req-1"), "user-1")

	fields := contextFields(ctx)
	if len(fields) != 4 {
		t.Fatalf("expected 4 field entries, got %d: %v", len(fields), fields)
	}
	if fields[1] != "req-1" || fields[3] != "user-1" {
		t.Errorf("unexpected fields: %v", fields)
	}
	if RequestID(ctx) != "req-1" {
		t.Errorf("RequestID() = %q", RequestID(ctx))
	}
	if got := contextFields(context.Background()); got != nil {
		t.Errorf("expected no fields, got %v", got)
	}
}

func TestInitWritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := Init(ZapConfig{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON, FilePath: path})

	l.Infof(WithRequestID(context.Background(), "req-9"), "hello %s", "file")
	l.Debug(context.Background(), "filtered out")
	_ = Sync(l)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected log output in rotating file")
	}
}

func TestInitUnknownLevel(t *testing.T) {
	l := Init(ZapConfig{Level: "chatty", Mode: ModeDevelopment, Encoding: EncodingConsole})
	if l == nil {
		t.Fatal("expected logger")
	}
	l.Info(context.Background(), "still works")
}
