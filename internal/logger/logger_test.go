package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestStandardLoggerLevels(t *testing.T) {
	tests := []struct {
		name   string
		log    func(Logger)
		prefix string
		text   string
	}{
		{"info", func(l Logger) { l.Info("started %d", 1) }, "[INFO]", "started 1"},
		{"warning", func(l Logger) { l.Warning("slow %s", "write") }, "[WARNING]", "slow write"},
		{"error", func(l Logger) { l.Error("failed: %v", "boom") }, "[ERROR]", "failed: boom"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tc.log(NewStandardLogger(log.New(buf, "", 0), ""))
			output := buf.String()
			if !strings.Contains(output, tc.prefix) {
				t.Errorf("expected %s prefix, got: %s", tc.prefix, output)
			}
			if !strings.Contains(output, tc.text) {
				t.Errorf("expected %q, got: %s", tc.text, output)
			}
		})
	}
}

func TestStandardLoggerComponent(t *testing.T) {
	buf := &bytes.Buffer{}
	base := NewStandardLogger(log.New(buf, "", 0), "engine")
	base.Info("tick")
	base.Named("store").Warning("cleared")

	output := buf.String()
	if !strings.Contains(output, "[INFO] engine: tick") {
		t.Errorf("missing engine line: %s", output)
	}
	if !strings.Contains(output, "[WARNING] store: cleared") {
		t.Errorf("missing store line: %s", output)
	}
}

func TestMockLoggerRecords(t *testing.T) {
	mock := NewMockLogger()
	mock.Info("a %d", 1)
	mock.Warning("b")
	mock.Error("c %s", "x")
	_ = mock.Close()

	if len(mock.InfoCalls) != 1 || mock.InfoCalls[0] != "a 1" {
		t.Errorf("unexpected info calls: %v", mock.InfoCalls)
	}
	if got := mock.Warnings(); len(got) != 1 || got[0] != "b" {
		t.Errorf("unexpected warnings: %v", got)
	}
	if got := mock.Errors(); len(got) != 1 || got[0] != "c x" {
		t.Errorf("unexpected errors: %v", got)
	}
	if !mock.CloseCalled {
		t.Error("expected CloseCalled")
	}
}
