package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithContext(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	newCtx := WithContext(ctx, logger)

	retrieved := FromContext(newCtx)
	assert.Equal(t, logger, retrieved)
}

func TestFromContext_NotFound(t *testing.T) {
	ctx := context.Background()

	logger := FromContext(ctx)

	assert.NotNil(t, logger)
}

func TestWithRequestID(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	requestID := "req-123"

	newCtx, newLogger := WithRequestID(ctx, logger, requestID)

	assert.NotNil(t, newCtx)
	assert.NotNil(t, newLogger)
	assert.Equal(t, requestID, GetRequestID(newCtx))
}

func TestGetRequestID_NotFound(t *testing.T) {
	ctx := context.Background()
	requestID := GetRequestID(ctx)
	assert.Empty(t, requestID)
}

func TestFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), LoggerKey, "not a logger")

	logger := FromContext(ctx)

	// Falls back to a no-op logger on type mismatch
	assert.NotNil(t, logger)
}

func TestMultipleWithRequestID(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	ctx, _ = WithRequestID(ctx, logger, "first")
	ctx, _ = WithRequestID(ctx, logger, "second")

	// The most recent request ID wins
	assert.Equal(t, "second", GetRequestID(ctx))
}

func TestContextLogger_InjectsRequestID(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	ctx, _ := WithRequestID(context.Background(), logger, "req-42")
	ctx = WithContext(ctx, logger)

	L(ctx).Info("order received")

	entries := recorded.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "order received", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
}

func TestContextLogger_With(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	cl := WithLogger(context.Background(), logger).With(zap.String("order_number", "PO-0001"))
	cl.Info("status changed")

	entries := recorded.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "PO-0001", entries[0].ContextMap()["order_number"])
}

func TestContextLogger_NilLoggerDoesNotPanic(t *testing.T) {
	cl := &ContextLogger{ctx: context.Background()}

	assert.NotPanics(t, func() {
		cl.Info("message")
		cl.Debug("message")
		cl.Warn("message")
		cl.Error("message")
	})
}

func TestContextLogger_Sugar(t *testing.T) {
	cl := WithLogger(context.Background(), zap.NewNop())
	assert.NotNil(t, cl.Sugar())
	assert.NotNil(t, cl.Zap())
}
