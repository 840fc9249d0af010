package logging

import (
	"messageboard/internal/models"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const LogFile = "app.log"

// Setup builds the process logger. JSON goes to stdout, and to a rotated
// app.log as well when LogToFile is set. The returned func syncs the logger
// and closes the log file; call it once on shutdown.
func Setup(cfg *models.ConfigFile) (*zap.SugaredLogger, func() error, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	}

	var rotator *lumberjack.Logger
	if cfg.LogToFile {
		rotator = &lumberjack.Logger{
			Filename: LogFile,
			MaxSize:  100,
			MaxAge:   28,
			Compress: true,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotator), level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller())

	closeLog := func() error {
		// stdout refuses fsync on some terminals and pipes
		_ = logger.Sync()
		if rotator == nil {
			return nil
		}
		return rotator.Close()
	}

	return logger.Sugar(), closeLog, nil
}
