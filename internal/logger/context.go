package logger

import (
	"context"

	"sankhya-crm/pkg/utils"

	"go.uber.org/zap"
)

// ForContext returns l annotated with the caller carried by ctx, if any.
func ForContext(ctx context.Context, l *zap.Logger) *zap.Logger {
	if claims := utils.ClaimsFromContext(ctx); claims != nil {
		return l.With(zap.String("user_id", claims.UserID))
	}
	return l
}
