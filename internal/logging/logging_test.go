package logging_test

import (
	"messageboard/internal/logging"
	"messageboard/internal/models"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		enabled  zapcore.Level
		disabled zapcore.Level
	}{
		{
			name:     "Debug enables everything",
			level:    "debug",
			enabled:  zapcore.DebugLevel,
			disabled: zapcore.InvalidLevel,
		},
		{
			name:     "Info hides debug",
			level:    "info",
			enabled:  zapcore.InfoLevel,
			disabled: zapcore.DebugLevel,
		},
		{
			name:     "Warn hides info",
			level:    "warn",
			enabled:  zapcore.WarnLevel,
			disabled: zapcore.InfoLevel,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sugar, closeLog, err := logging.Setup(&models.ConfigFile{LogLevel: tc.level})
			require.NoError(t, err)
			defer closeLog()

			core := sugar.Desugar().Core()
			require.True(t, core.Enabled(tc.enabled))
			if tc.disabled != zapcore.InvalidLevel {
				require.False(t, core.Enabled(tc.disabled))
			}
		})
	}
}

func TestSetupUnknownLevel(t *testing.T) {
	_, _, err := logging.Setup(&models.ConfigFile{LogLevel: "loud"})
	require.Error(t, err)
}

func TestSetupLogToFile(t *testing.T) {
	req := require.New(t)
	wd, err := os.Getwd()
	req.NoError(err)
	req.NoError(os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	sugar, closeLog, err := logging.Setup(&models.ConfigFile{LogLevel: "info", LogToFile: true})
	req.NoError(err)

	sugar.Infow("Database initialized successfully", "attemptsLeft", 29)
	req.NoError(closeLog())
	req.NoError(closeLog())

	contents, err := os.ReadFile(logging.LogFile)
	req.NoError(err)
	req.Contains(string(contents), `"msg":"Database initialized successfully"`)
	req.Contains(string(contents), `"attemptsLeft":29`)
}

func TestSetupCloseWithoutFile(t *testing.T) {
	_, closeLog, err := logging.Setup(&models.ConfigFile{LogLevel: "info"})
	require.NoError(t, err)
	require.NoError(t, closeLog())
}
