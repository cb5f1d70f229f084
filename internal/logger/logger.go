package logger

import (
	"context"

	"sankhya-crm/internal/config"
	"sankhya-crm/internal/database"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewLogger builds the application logger. When the log store is configured,
// every entry is also written asynchronously to its "logs" collection.
func NewLogger(lc fx.Lifecycle, cfg *config.Config, mongodb *database.MongodbDB) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Environment == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	// Enable Caller to get Function Name
	zapConfig.EncoderConfig.FunctionKey = "func"

	baseLogger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	if !mongodb.Enabled() {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				_ = baseLogger.Sync()
				return nil
			},
		})
		return baseLogger, nil
	}

	dbWriter := NewDBLogWriter(mongodb.DB.Collection("logs"), cfg.AppId)
	logger := zap.New(NewDBCore(baseLogger.Core(), dbWriter), zap.AddCaller())

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = logger.Sync()
			return dbWriter.Close(ctx)
		},
	})

	return logger, nil
}
