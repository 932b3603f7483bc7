package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"adpilot/internal/adapter/platform"
	"adpilot/internal/adapter/usecase"
	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port/mocks"
)

// TestLaunchEndToEnd drives the launch route through the real pipeline
// and platform client against a fake graph server, asserting the radius
// targeting derived from the business location reaches the wire.
func TestLaunchEndToEnd(t *testing.T) {
	var adSetForm url.Values
	graph := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Error(err)
		}
		switch {
		case strings.HasSuffix(r.URL.Path, "/campaigns"):
			_, _ = w.Write([]byte(`{"id":"mc-1"}`))
		case strings.HasSuffix(r.URL.Path, "/adsets"):
			adSetForm = r.PostForm
			_, _ = w.Write([]byte(`{"id":"mas-1"}`))
		case strings.HasSuffix(r.URL.Path, "/adcreatives"):
			_, _ = w.Write([]byte(`{"id":"cr-1"}`))
		case strings.HasSuffix(r.URL.Path, "/ads"):
			_, _ = w.Write([]byte(`{"id":"ad-1"}`))
		default:
			_, _ = w.Write([]byte(`{"success":true}`))
		}
	}))
	defer graph.Close()

	base, err := url.Parse(graph.URL)
	if err != nil {
		t.Fatal(err)
	}
	gw := platform.NewClient(configs.Meta{BaseURL: *base, Version: "v19.0", Timeout: 5 * time.Second})

	campaigns := mocks.NewMockCampaignRepository(t)
	businesses := mocks.NewMockBusinessRepository(t)
	businesses.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Business{
		ID:              1,
		OwnerUserID:     7,
		Name:            "Riverside Bakery",
		MetaPageID:      "page-1",
		MetaAdAccountID: "acct-1",
		MetaAccessToken: "token-1",
		Latitude:        40.7128,
		Longitude:       -74.0060,
		Country:         "US",
	}, nil)
	campaigns.EXPECT().Upsert(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

	pipeline := usecase.NewLaunchPipeline(gw, campaigns, businesses, slog.New(slog.NewTextHandler(io.Discard, nil)))
	h := newTestHandler(pipeline, &stubAutomation{}, &stubFeedback{}, "s")

	body := `{"business_id":1,"name":"Bakery","headline":"Fresh Bread Daily","body":"Order before 10am.","radius_km":25,"daily_budget_cents":1500}`
	rec := doRequest(h, http.MethodPost, "/api/v1/campaigns/launch", body, map[string]string{"X-User-ID": "7"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}

	var camp domain.Campaign
	if err = json.Unmarshal(rec.Body.Bytes(), &camp); err != nil {
		t.Fatal(err)
	}
	if camp.Status != domain.StatusActive {
		t.Fatalf("status %q, want active", camp.Status)
	}
	if camp.MetaCampaignID != "mc-1" || camp.MetaAdSetID != "mas-1" || len(camp.MetaAdIDs) != 1 {
		t.Fatalf("external ids incomplete: %+v", camp)
	}

	var targeting struct {
		GeoLocations struct {
			CustomLocations []struct {
				Latitude     float64 `json:"latitude"`
				Longitude    float64 `json:"longitude"`
				Radius       float64 `json:"radius"`
				DistanceUnit string  `json:"distance_unit"`
			} `json:"custom_locations"`
		} `json:"geo_locations"`
	}
	if err = json.Unmarshal([]byte(adSetForm.Get("targeting")), &targeting); err != nil {
		t.Fatalf("targeting is not valid JSON: %v", err)
	}
	locs := targeting.GeoLocations.CustomLocations
	if len(locs) != 1 || locs[0].Radius != 25 || locs[0].DistanceUnit != "kilometer" {
		t.Fatalf("unexpected targeting: %+v", locs)
	}
	if locs[0].Latitude != 40.7128 {
		t.Fatalf("latitude %v not taken from the business", locs[0].Latitude)
	}
	if adSetForm.Get("daily_budget") != "1500" {
		t.Fatalf("daily_budget %q, want 1500", adSetForm.Get("daily_budget"))
	}
}
