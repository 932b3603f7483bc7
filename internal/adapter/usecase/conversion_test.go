package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

func testLead() *domain.Lead {
	return &domain.Lead{
		ID:         5,
		BusinessID: 7,
		CampaignID: "c-1",
		MetaLeadID: "fb-lead-9",
		Email:      "Anna@Example.com",
		Phone:      "+1 (555) 010-0000",
		FullName:   "Anna Ruiz",
	}
}

// TestClassifyHashesPII: the outbound event never contains raw email or
// phone, only their normalized hashes, and reuses the platform lead id
// for deduplication.
func TestClassifyHashesPII(t *testing.T) {
	gw := mocks.NewMockPlatformGateway(t)
	leads := mocks.NewMockLeadRepository(t)
	businesses := mocks.NewMockBusinessRepository(t)

	biz := testBusiness()
	biz.MetaPixelID = "pixel-1"

	leads.EXPECT().GetByID(mock.Anything, int64(5)).Return(testLead(), nil)
	leads.EXPECT().SetQuality(mock.Anything, int64(5), domain.QualityGood).Return(nil)
	businesses.EXPECT().GetByID(mock.Anything, int64(7)).Return(biz, nil)

	var sent []port.ConversionEvent
	gw.EXPECT().
		SendEvents(mock.Anything, "token-1", "pixel-1", mock.AnythingOfType("[]port.ConversionEvent")).
		Run(func(ctx context.Context, token, pixelID string, events []port.ConversionEvent) {
			sent = events
		}).
		Return(nil)

	f := NewConversionFeedback(gw, leads, businesses, testLogger())
	ok, err := f.Classify(context.Background(), 5, domain.QualityGood)
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	if !ok {
		t.Fatal("expected event to be sent")
	}
	if len(sent) != 1 {
		t.Fatalf("got %d events, want 1", len(sent))
	}

	ev := sent[0]
	if ev.EventID != "fb-lead-9" {
		t.Fatalf("event id %q, want the platform lead id", ev.EventID)
	}
	wantEm := sha256.Sum256([]byte("anna@example.com"))
	if ev.UserData["em"] != hex.EncodeToString(wantEm[:]) {
		t.Fatalf("email hash mismatch: %q", ev.UserData["em"])
	}
	for k, v := range ev.UserData {
		if strings.Contains(strings.ToLower(v), "anna") || strings.Contains(v, "555") {
			t.Fatalf("raw PII leaked in user_data[%s]=%q", k, v)
		}
	}
	if ev.CustomData["value"] != 100 {
		t.Fatalf("good lead value %v, want 100", ev.CustomData["value"])
	}
}

// TestClassifyBadQualityZeroValue: bad leads send a zero-value signal.
func TestClassifyBadQualityZeroValue(t *testing.T) {
	gw := mocks.NewMockPlatformGateway(t)
	leads := mocks.NewMockLeadRepository(t)
	businesses := mocks.NewMockBusinessRepository(t)

	biz := testBusiness()
	biz.MetaPixelID = "pixel-1"

	leads.EXPECT().GetByID(mock.Anything, int64(5)).Return(testLead(), nil)
	leads.EXPECT().SetQuality(mock.Anything, int64(5), domain.QualityBad).Return(nil)
	businesses.EXPECT().GetByID(mock.Anything, int64(7)).Return(biz, nil)

	var sent []port.ConversionEvent
	gw.EXPECT().
		SendEvents(mock.Anything, "token-1", "pixel-1", mock.AnythingOfType("[]port.ConversionEvent")).
		Run(func(ctx context.Context, token, pixelID string, events []port.ConversionEvent) {
			sent = events
		}).
		Return(nil)

	f := NewConversionFeedback(gw, leads, businesses, testLogger())
	if _, err := f.Classify(context.Background(), 5, domain.QualityBad); err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	if sent[0].CustomData["value"] != 0 {
		t.Fatalf("bad lead value %v, want 0", sent[0].CustomData["value"])
	}
	if sent[0].EventName != "LeadQualityDisqualified" {
		t.Fatalf("bad lead event %q, want LeadQualityDisqualified", sent[0].EventName)
	}
}

// TestClassifyNoCredentials: without a pixel the call is a no-op that
// still succeeds; the local quality record is the source of truth.
func TestClassifyNoCredentials(t *testing.T) {
	gw := mocks.NewMockPlatformGateway(t)
	leads := mocks.NewMockLeadRepository(t)
	businesses := mocks.NewMockBusinessRepository(t)

	biz := testBusiness()
	biz.MetaPixelID = ""

	leads.EXPECT().GetByID(mock.Anything, int64(5)).Return(testLead(), nil)
	leads.EXPECT().SetQuality(mock.Anything, int64(5), domain.QualityGood).Return(nil)
	businesses.EXPECT().GetByID(mock.Anything, int64(7)).Return(biz, nil)

	f := NewConversionFeedback(gw, leads, businesses, testLogger())
	sent, err := f.Classify(context.Background(), 5, domain.QualityGood)
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	if sent {
		t.Fatal("no event should be sent without a pixel")
	}
}

// TestClassifySendFailureBestEffort: a failed platform send is not an
// error; the quality record is already written and remains the source
// of truth.
func TestClassifySendFailureBestEffort(t *testing.T) {
	gw := mocks.NewMockPlatformGateway(t)
	leads := mocks.NewMockLeadRepository(t)
	businesses := mocks.NewMockBusinessRepository(t)

	biz := testBusiness()
	biz.MetaPixelID = "pixel-1"

	leads.EXPECT().GetByID(mock.Anything, int64(5)).Return(testLead(), nil)
	leads.EXPECT().SetQuality(mock.Anything, int64(5), domain.QualityGood).Return(nil)
	businesses.EXPECT().GetByID(mock.Anything, int64(7)).Return(biz, nil)
	gw.EXPECT().
		SendEvents(mock.Anything, "token-1", "pixel-1", mock.AnythingOfType("[]port.ConversionEvent")).
		Return(errors.New("connection reset"))

	f := NewConversionFeedback(gw, leads, businesses, testLogger())
	sent, err := f.Classify(context.Background(), 5, domain.QualityGood)
	if err != nil {
		t.Fatalf("send failure surfaced as error: %v", err)
	}
	if sent {
		t.Fatal("failed send reported as sent")
	}
}

// TestClassifyUnknownLead returns ErrLeadNotFound untouched.
func TestClassifyUnknownLead(t *testing.T) {
	gw := mocks.NewMockPlatformGateway(t)
	leads := mocks.NewMockLeadRepository(t)
	businesses := mocks.NewMockBusinessRepository(t)

	leads.EXPECT().GetByID(mock.Anything, int64(5)).Return(nil, nil)

	f := NewConversionFeedback(gw, leads, businesses, testLogger())
	_, err := f.Classify(context.Background(), 5, domain.QualityGood)
	if !errors.Is(err, port.ErrLeadNotFound) {
		t.Fatalf("want ErrLeadNotFound, got %v", err)
	}
}

// TestClassifyRejectsUnknownQuality validates the quality value before
// touching storage.
func TestClassifyRejectsUnknownQuality(t *testing.T) {
	gw := mocks.NewMockPlatformGateway(t)
	leads := mocks.NewMockLeadRepository(t)
	businesses := mocks.NewMockBusinessRepository(t)

	f := NewConversionFeedback(gw, leads, businesses, testLogger())
	_, err := f.Classify(context.Background(), 5, domain.LeadQuality("excellent"))

	var verr *port.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}
