package state

import (
	"context"
	"log"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextWithEnv(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	time.Sleep(10 * time.Millisecond)
	if uptime := env.Uptime(); uptime < 10*time.Millisecond {
		t.Errorf("Uptime() = %v, expected at least 10ms", uptime)
	}
}

func TestLocalEnv_StdLogRedirect(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	env := newLocalEnv()
	env.Log = zap.New(core)

	env.RedirectStdLog()
	log.Print("from std log")
	env.RestoreStdLog()

	if logs.FilterMessage("from std log").Len() != 1 {
		t.Errorf("std log message not captured, got %v", logs.All())
	}
	// second restore is harmless
	env.RestoreStdLog()
}

func TestLocalEnv_NoLog(t *testing.T) {
	env := newLocalEnv()
	env.RedirectStdLog()
	env.RestoreStdLog()
}
