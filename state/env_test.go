package state

import (
	"context"
	"log"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"pdfhtml/resolve"
)

func TestEnvFromContext(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if env.Diag == nil || env.Diag.Total() != 0 {
		t.Error("Environment should start with empty diagnostics")
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := &LocalEnv{start: time.Now().Add(-time.Minute)}
	if up := env.Uptime(); up < time.Minute || up > time.Hour {
		t.Errorf("Uptime() = %v", up)
	}
}

func TestLocalEnv_StdLog(t *testing.T) {
	tests := []struct {
		name     string
		withLog  bool
		redirect bool
	}{
		{"redirected", true, true},
		{"restore without redirect", true, false},
		{"no logger", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			env := &LocalEnv{}
			if tt.withLog {
				env.Log = zap.New(core)
			}
			if tt.redirect {
				env.RedirectStdLog()
			}
			if (env.restoreStdLog != nil) != (tt.withLog && tt.redirect) {
				t.Fatalf("restoreStdLog set = %v", env.restoreStdLog != nil)
			}
			log.Print("from standard logger")
			env.RestoreStdLog()

			want := 0
			if tt.withLog && tt.redirect {
				want = 1
			}
			if got := logs.FilterMessage("from standard logger").Len(); got != want {
				t.Errorf("captured %d records, want %d", got, want)
			}
		})
	}
}

func TestLocalEnv_DiagnosticsCore(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	core, _ := observer.New(zapcore.DebugLevel)
	log := zap.New(zapcore.NewTee(core, env.Diag.Core()))

	log.Warn("skipped", zap.Stringer("code", resolve.CodeUnsupportedValue), zap.String("property", "float"))
	log.Warn("no code")
	log.Info("too low", zap.Stringer("code", resolve.CodeUnsupportedValue))

	if got := env.Diag.Total(); got != 1 {
		t.Errorf("Diag.Total() = %d, want 1", got)
	}
}
