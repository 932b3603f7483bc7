package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// ConversionFeedback reports lead quality back to the platform so its
// optimization can steer toward (or away from) similar profiles. It
// implements port.FeedbackUseCase. Platform feedback is best-effort; the
// local quality record is the source of truth.
type ConversionFeedback struct {
	gw         port.PlatformGateway
	leads      port.LeadRepository
	businesses port.BusinessRepository
	logger     *slog.Logger
}

// NewConversionFeedback constructs the feedback reporter.
func NewConversionFeedback(gw port.PlatformGateway, leads port.LeadRepository, businesses port.BusinessRepository, logger *slog.Logger) *ConversionFeedback {
	return &ConversionFeedback{gw: gw, leads: leads, businesses: businesses, logger: logger}
}

// Classify records the quality on the lead and sends the conversion
// event. See port.FeedbackUseCase for the contract.
func (f *ConversionFeedback) Classify(ctx context.Context, leadID int64, q domain.LeadQuality) (bool, error) {
	if !q.Valid() {
		return false, &port.ValidationError{Field: "quality"}
	}
	lead, err := f.leads.GetByID(ctx, leadID)
	if err != nil {
		return false, err
	}
	if lead == nil {
		return false, port.ErrLeadNotFound
	}
	if err = f.leads.SetQuality(ctx, leadID, q); err != nil {
		return false, err
	}
	lead.Quality = q

	biz, err := f.businesses.GetByID(ctx, lead.BusinessID)
	if err != nil {
		return false, err
	}
	return f.report(ctx, lead, biz)
}

// report builds and sends one conversion event. Businesses without a
// pixel or access token get a documented no-op that still succeeds.
// Good quality maps to a positive-value lead event; bad quality to a
// zero-value signal.
func (f *ConversionFeedback) report(ctx context.Context, lead *domain.Lead, biz *domain.Business) (bool, error) {
	if biz == nil || biz.MetaPixelID == "" || biz.MetaAccessToken == "" {
		f.logger.Info("no platform credentials, skipping conversion feedback",
			slog.Int64("lead", lead.ID))
		return false, nil
	}

	// Good leads feed the platform's lead optimization directly; bad
	// leads send a named zero-value signal steering it away from
	// similar profiles.
	eventName := "LeadQualityDisqualified"
	value := 0
	if lead.Quality == domain.QualityGood {
		eventName = "Lead"
		value = 100
	}

	// Reuse the originating platform lead id for deduplication when the
	// lead came from the platform; otherwise mint a fresh id.
	eventID := lead.MetaLeadID
	if eventID == "" {
		eventID = uuid.NewString()
	}

	ev := port.ConversionEvent{
		EventName: eventName,
		EventTime: time.Now().UTC().Unix(),
		EventID:   eventID,
		UserData:  hashUserData(lead),
		CustomData: map[string]any{
			"value":             value,
			"currency":          "USD",
			"lead_event_source": "crm",
		},
	}

	// The quality record is already written; a failed send must not
	// surface as an error to the caller.
	if err := f.gw.SendEvents(ctx, biz.MetaAccessToken, biz.MetaPixelID, []port.ConversionEvent{ev}); err != nil {
		f.logger.Warn("conversion feedback send failed",
			slog.Int64("lead", lead.ID),
			slog.Any("error", err))
		return false, nil
	}
	f.logger.Info("conversion feedback sent",
		slog.Int64("lead", lead.ID),
		slog.String("quality", string(lead.Quality)))
	return true, nil
}

// hashUserData hashes every personally identifying field. Raw PII never
// crosses the platform boundary.
func hashUserData(lead *domain.Lead) map[string]string {
	ud := make(map[string]string, 3)
	if lead.Email != "" {
		ud["em"] = hashField(lead.Email)
	}
	if lead.Phone != "" {
		ud["ph"] = hashField(normalizePhone(lead.Phone))
	}
	if lead.FullName != "" {
		ud["fn"] = hashField(lead.FullName)
	}
	return ud
}

// hashField normalizes to lowercase trimmed form and returns the hex
// SHA-256, the hashing scheme the platform's conversion API specifies.
func hashField(s string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(s))))
	return hex.EncodeToString(sum[:])
}

// normalizePhone strips everything but digits.
func normalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
