package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// FeedbackUseCase records a lead quality classification and reports it to
// the platform as a conversion signal.
type FeedbackUseCase interface {
	// Classify sets the lead's quality and sends best-effort conversion
	// feedback. The returned bool reports whether a platform event was
	// actually sent; businesses without a pixel or token get a no-op
	// that still succeeds, and a failed send is logged and reported as
	// not sent rather than returned as an error, since the local record
	// is the source of truth. Personally identifying fields are always
	// hashed before transmission.
	Classify(ctx context.Context, leadID int64, q domain.LeadQuality) (bool, error)
}
