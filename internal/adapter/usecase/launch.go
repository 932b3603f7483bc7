package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Fixed platform parameters for launched campaigns. Lead generation on a
// website link is the only objective this service provisions.
const (
	campaignObjective = "OUTCOME_LEADS"
	billingEvent      = "IMPRESSIONS"
	optimizationGoal  = "LEAD_GENERATION"
	defaultCTA        = "LEARN_MORE"
)

// LaunchPipeline drives the ordered creation of remote campaign objects
// (campaign, ad set, creatives, ads, activation) against a platform that
// offers no multi-object transactions. Each completed step is persisted
// before the next begins, so a truncated run leaves a resumable record
// rather than losing remote identifiers. It implements port.LaunchUseCase.
type LaunchPipeline struct {
	gw         port.PlatformGateway
	campaigns  port.CampaignRepository
	businesses port.BusinessRepository
	logger     *slog.Logger
}

// NewLaunchPipeline constructs the pipeline with its outbound ports.
func NewLaunchPipeline(gw port.PlatformGateway, campaigns port.CampaignRepository, businesses port.BusinessRepository, logger *slog.Logger) *LaunchPipeline {
	return &LaunchPipeline{gw: gw, campaigns: campaigns, businesses: businesses, logger: logger}
}

// Launch provisions a new campaign for the business in spec. See
// port.LaunchUseCase for the contract. Steps are strictly sequential
// within one call; independent launches run fully in parallel.
func (p *LaunchPipeline) Launch(ctx context.Context, userID int64, spec domain.LaunchSpec) (*domain.Campaign, error) {
	biz, err := p.businesses.GetByID(ctx, spec.BusinessID)
	if err != nil {
		return nil, err
	}
	if biz == nil {
		return nil, port.ErrBusinessNotFound
	}
	if biz.OwnerUserID != userID {
		return nil, port.ErrNotOwner
	}
	if !biz.Connected() {
		return nil, port.ErrNoCredentials
	}
	if err = validateSpec(spec, biz); err != nil {
		return nil, err
	}

	camp := newCampaign(spec, biz)
	if err = p.campaigns.Upsert(ctx, camp); err != nil {
		return nil, err
	}

	token := biz.MetaAccessToken

	// Step 1: platform campaign, created paused. A failure here aborts
	// with no external state recorded.
	metaCampaignID, err := p.gw.CreateCampaign(ctx, token, port.CampaignParams{
		AccountID: biz.MetaAdAccountID,
		Name:      camp.Name,
		Objective: campaignObjective,
	})
	if err != nil {
		return nil, p.fail(ctx, camp, port.StepCampaign, err)
	}
	camp.MetaCampaignID = metaCampaignID
	if err = p.campaigns.Upsert(ctx, camp); err != nil {
		p.logger.Warn("persisting campaign id failed mid-launch", slog.String("campaign", camp.ID), slog.Any("error", err))
	}

	// Step 2: ad set. A failure leaves the platform campaign orphaned;
	// the error discloses its id and no cleanup is attempted here.
	metaAdSetID, err := p.gw.CreateAdSet(ctx, token, port.AdSetParams{
		AccountID:        biz.MetaAdAccountID,
		Name:             camp.Name + " - Ad Set",
		CampaignID:       metaCampaignID,
		DailyBudgetCents: camp.DailyBudgetCents,
		BillingEvent:     billingEvent,
		OptimizationGoal: optimizationGoal,
		Targeting:        camp.Targeting,
	})
	if err != nil {
		return nil, p.fail(ctx, camp, port.StepAdSet, err)
	}
	camp.MetaAdSetID = metaAdSetID
	if err = p.campaigns.Upsert(ctx, camp); err != nil {
		p.logger.Warn("persisting ad set id failed mid-launch", slog.String("campaign", camp.ID), slog.Any("error", err))
	}

	// Step 3: one creative and ad per variant. Variants fail
	// independently; the loop continues past failures.
	var failures []string
	for i, v := range camp.Variants {
		adID, verr := p.provisionVariant(ctx, token, biz, camp, i, v)
		if verr != nil {
			failures = append(failures, fmt.Sprintf("variant %d: %v", i+1, verr))
			p.logger.Warn("ad variant failed",
				slog.String("campaign", camp.ID),
				slog.Int("variant", i+1),
				slog.Any("error", verr))
			continue
		}
		camp.MetaAdIDs = append(camp.MetaAdIDs, adID)
		if err = p.campaigns.Upsert(ctx, camp); err != nil {
			p.logger.Warn("persisting ad id failed mid-launch", slog.String("campaign", camp.ID), slog.Any("error", err))
		}
	}

	// Step 4: gate on partial success. Zero ads means nothing to
	// activate; campaign and ad set stay paused on the platform.
	if len(camp.MetaAdIDs) == 0 {
		camp.Status = domain.StatusError
		camp.FailedStep = port.StepAds
		if uerr := p.campaigns.Upsert(ctx, camp); uerr != nil {
			p.logger.Error("persisting failed launch state", slog.String("campaign", camp.ID), slog.Any("error", uerr))
		}
		return nil, &port.NoViableAdError{
			MetaCampaignID: camp.MetaCampaignID,
			MetaAdSetID:    camp.MetaAdSetID,
			Failures:       failures,
		}
	}
	if len(failures) > 0 {
		p.logger.Warn("launch proceeding with partial ad set",
			slog.String("campaign", camp.ID),
			slog.Int("created", len(camp.MetaAdIDs)),
			slog.Int("failed", len(failures)))
	}

	// Step 5: activate children before parents so no parent is ever
	// observably active while referencing an inactive child.
	for _, adID := range camp.MetaAdIDs {
		if err = p.gw.SetStatus(ctx, token, adID, "ACTIVE"); err != nil {
			return nil, p.fail(ctx, camp, port.StepActivate, err)
		}
	}
	if err = p.gw.SetStatus(ctx, token, camp.MetaAdSetID, "ACTIVE"); err != nil {
		return nil, p.fail(ctx, camp, port.StepActivate, err)
	}
	if err = p.gw.SetStatus(ctx, token, camp.MetaCampaignID, "ACTIVE"); err != nil {
		return nil, p.fail(ctx, camp, port.StepActivate, err)
	}

	// Step 6: final persistence. The remote objects exist regardless of
	// the outcome here, so a failure is surfaced loudly with their ids.
	now := time.Now().UTC()
	camp.Status = domain.StatusActive
	camp.FailedStep = ""
	camp.LaunchedAt = &now
	camp.LastSyncedAt = &now
	if err = p.campaigns.Upsert(ctx, camp); err != nil {
		return nil, &port.PersistenceError{
			MetaCampaignID: camp.MetaCampaignID,
			MetaAdSetID:    camp.MetaAdSetID,
			MetaAdIDs:      camp.MetaAdIDs,
			Err:            err,
		}
	}

	p.logger.Info("campaign launched",
		slog.String("campaign", camp.ID),
		slog.Int64("business", camp.BusinessID),
		slog.Int("ads", len(camp.MetaAdIDs)))
	return camp, nil
}

// provisionVariant creates the creative and the ad for one variant.
func (p *LaunchPipeline) provisionVariant(ctx context.Context, token string, biz *domain.Business, camp *domain.Campaign, i int, v domain.AdVariant) (string, error) {
	cta := v.CTA
	if cta == "" {
		cta = defaultCTA
	}
	creativeID, err := p.gw.CreateCreative(ctx, token, port.CreativeParams{
		AccountID:    biz.MetaAdAccountID,
		Name:         fmt.Sprintf("%s - Creative %d", camp.Name, i+1),
		PageID:       biz.MetaPageID,
		Message:      v.Body,
		Headline:     v.Headline,
		LinkURL:      v.LinkURL,
		ImageURL:     v.ImageURL,
		CallToAction: cta,
	})
	if err != nil {
		return "", err
	}
	return p.gw.CreateAd(ctx, token, port.AdParams{
		AccountID:  biz.MetaAdAccountID,
		Name:       fmt.Sprintf("%s - Ad %d", camp.Name, i+1),
		AdSetID:    camp.MetaAdSetID,
		CreativeID: creativeID,
	})
}

// fail records the failing step on the campaign and wraps the cause. A
// platform rejection becomes a ProvisioningError naming the step and the
// already created remote ids; transport failures pass through wrapped.
func (p *LaunchPipeline) fail(ctx context.Context, camp *domain.Campaign, step string, cause error) error {
	camp.Status = domain.StatusError
	camp.FailedStep = step
	if err := p.campaigns.Upsert(ctx, camp); err != nil {
		p.logger.Error("persisting failed launch state", slog.String("campaign", camp.ID), slog.Any("error", err))
	}

	var perr *port.PlatformError
	if errors.As(cause, &perr) {
		return &port.ProvisioningError{
			Step:           step,
			Code:           perr.Code,
			Message:        perr.Message,
			MetaCampaignID: camp.MetaCampaignID,
			MetaAdSetID:    camp.MetaAdSetID,
			Err:            cause,
		}
	}
	return fmt.Errorf("step %s: %w", step, cause)
}

// OptimizeBudget updates an active campaign's ad set budget on the
// platform and re-persists the local record. See port.LaunchUseCase.
func (p *LaunchPipeline) OptimizeBudget(ctx context.Context, campaignID string, dailyBudgetCents int64) (*domain.Campaign, error) {
	if dailyBudgetCents <= 0 {
		return nil, &port.ValidationError{Field: "daily_budget_cents"}
	}
	camp, err := p.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if camp == nil {
		return nil, port.ErrCampaignNotFound
	}
	if camp.MetaAdSetID == "" {
		return nil, port.ErrCampaignNotFound
	}
	biz, err := p.businesses.GetByID(ctx, camp.BusinessID)
	if err != nil {
		return nil, err
	}
	if biz == nil || !biz.Connected() {
		return nil, port.ErrNoCredentials
	}

	if err = p.gw.UpdateBudget(ctx, biz.MetaAccessToken, camp.MetaAdSetID, dailyBudgetCents); err != nil {
		var perr *port.PlatformError
		if errors.As(err, &perr) {
			return nil, &port.ProvisioningError{
				Step:           port.StepAdSet,
				Code:           perr.Code,
				Message:        perr.Message,
				MetaCampaignID: camp.MetaCampaignID,
				MetaAdSetID:    camp.MetaAdSetID,
				Err:            err,
			}
		}
		return nil, err
	}

	now := time.Now().UTC()
	camp.DailyBudgetCents = dailyBudgetCents
	camp.LastSyncedAt = &now
	if err = p.campaigns.Upsert(ctx, camp); err != nil {
		return nil, err
	}
	return camp, nil
}

// ListStale surfaces campaigns stuck in provisioning or error beyond the
// threshold so an operator can resume or clean up. Nothing is deleted.
func (p *LaunchPipeline) ListStale(ctx context.Context, olderThan time.Duration) ([]domain.Campaign, error) {
	return p.campaigns.ListStale(ctx, time.Now().UTC().Add(-olderThan))
}

// validateSpec enforces the required identity fields. Optional targeting
// and budget fields are defaulted later, never rejected.
func validateSpec(spec domain.LaunchSpec, biz *domain.Business) error {
	if biz.MetaPageID == "" {
		return &port.ValidationError{Field: "page_id"}
	}
	if len(spec.Variants) == 0 {
		return &port.ValidationError{Field: "variants"}
	}
	for _, v := range spec.Variants {
		if v.Body == "" {
			return &port.ValidationError{Field: "body"}
		}
		if v.Headline == "" {
			return &port.ValidationError{Field: "headline"}
		}
	}
	return nil
}

// newCampaign builds the initial provisioning record with defaults
// substituted for unspecified budget and targeting.
func newCampaign(spec domain.LaunchSpec, biz *domain.Business) *domain.Campaign {
	budget := spec.DailyBudgetCents
	if budget <= 0 {
		budget = domain.DefaultDailyBudgetCents
	}

	t := domain.Targeting{
		AgeMin: spec.AgeMin,
		AgeMax: spec.AgeMax,
	}
	if t.AgeMin <= 0 {
		t.AgeMin = domain.DefaultAgeMin
	}
	if t.AgeMax <= 0 {
		t.AgeMax = domain.DefaultAgeMax
	}
	switch {
	case spec.RadiusKm > 0:
		t.RadiusKm = spec.RadiusKm
		t.Latitude = biz.Latitude
		t.Longitude = biz.Longitude
	case len(spec.Countries) > 0:
		t.Countries = spec.Countries
	case biz.Country != "":
		t.Countries = []string{biz.Country}
	default:
		t.Countries = []string{domain.DefaultCountry}
	}

	name := spec.Name
	if name == "" {
		name = biz.Name + " Campaign"
	}

	now := time.Now().UTC()
	return &domain.Campaign{
		ID:               uuid.NewString(),
		BusinessID:       biz.ID,
		Name:             name,
		Status:           domain.StatusProvisioning,
		DailyBudgetCents: budget,
		Targeting:        t,
		Variants:         spec.Variants,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
