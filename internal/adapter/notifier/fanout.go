package notifier

import (
	"context"

	"github.com/srgjo27/apsrtc_booking/internal/core/domain"
	"github.com/srgjo27/apsrtc_booking/internal/core/ports"
)

// Fanout delivers every notification to each wrapped notifier in order.
type Fanout []ports.Notifier

func (f Fanout) Notify(ctx context.Context, n domain.Notification) {
	for _, target := range f {
		target.Notify(ctx, n)
	}
}
