package notifier

import (
	"context"

	"github.com/srgjo27/apsrtc_booking/internal/core/domain"
	"go.uber.org/zap"
)

// LogNotifier writes notifications to the service log.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, msg domain.Notification) {
	fields := []zap.Field{
		zap.String("title", msg.Title),
		zap.String("description", msg.Description),
	}
	if msg.Severity == domain.SeverityError {
		n.log.Warn("user notification", fields...)
		return
	}
	n.log.Info("user notification", fields...)
}
