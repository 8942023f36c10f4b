package logger_test

import (
	"context"
	"foodgram/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		debug       bool
		wantErr     bool
	}{
		{name: "development", environment: logger.DevelopmentEnvironment, debug: true},
		{name: "production", environment: logger.ProductionEnvironment},
		{name: "production at debug", environment: logger.ProductionEnvironment, level: "debug", debug: true},
		{name: "development at warn", environment: logger.DevelopmentEnvironment, level: "warn"},
		{name: "unknown environment", environment: "staging", debug: true},
		{name: "bad level", environment: logger.DevelopmentEnvironment, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.environment, tt.level)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)

			l := logger.Get(context.Background())
			require.NotNil(t, l)
			require.Equal(t, tt.debug, l.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestGet_PrefersContextLogger(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))

	core, _ := observer.New(zapcore.InfoLevel)
	custom := zap.New(core)

	require.NotSame(t, custom, logger.Get(context.Background()))
	require.Same(t, custom, logger.Get(logger.WithLogger(context.Background(), custom)))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("requestId", "abc"))
	ctx = logger.WithFields(ctx, zap.Int64("userId", 7))

	logger.Debug(ctx, "loading recipe")
	logger.Info(ctx, "recipe created", zap.Int64("recipeId", 3))
	logger.Warn(ctx, "image missing")
	logger.Error(ctx, "commit failed")

	entries := logs.All()
	require.Len(t, entries, 4)
	require.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel},
		[]zapcore.Level{entries[0].Level, entries[1].Level, entries[2].Level, entries[3].Level})

	fields := entries[1].ContextMap()
	require.Equal(t, "abc", fields["requestId"])
	require.Equal(t, int64(7), fields["userId"])
	require.Equal(t, int64(3), fields["recipeId"])
}
