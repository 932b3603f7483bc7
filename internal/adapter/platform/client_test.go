package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	return NewClient(configs.Meta{BaseURL: *u, Version: "v19.0", Timeout: 5 * time.Second}), srv
}

// TestPostNormalizesRejection: a structured platform error on a 400 comes
// back as a failed Result, never as a Go error.
func TestPostNormalizesRejection(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid parameter","type":"OAuthException","code":100}}`))
	})

	res, err := c.Post(context.Background(), "act_1/campaigns", url.Values{}, "tok")
	if err != nil {
		t.Fatalf("rejection surfaced as transport error: %v", err)
	}
	if res.OK {
		t.Fatal("rejection reported as success")
	}
	if res.ErrorCode != "100" || res.ErrorMessage != "Invalid parameter" {
		t.Fatalf("unexpected normalization: %+v", res)
	}
}

// TestPostRejectionWithoutEnvelope: a 4xx whose JSON body carries no
// error object is still a rejection, never a success with an empty id.
func TestPostRejectionWithoutEnvelope(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"request_id":"abc"}`))
	})

	res, err := c.Post(context.Background(), "act_1/campaigns", url.Values{}, "tok")
	if err != nil {
		t.Fatalf("rejection surfaced as transport error: %v", err)
	}
	if res.OK {
		t.Fatal("4xx without error envelope reported as success")
	}
	if res.ErrorCode != "400" {
		t.Fatalf("error code %q, want the status code", res.ErrorCode)
	}
}

// TestPostTransportError: an unreachable server is a real error.
func TestPostTransportError(t *testing.T) {
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	if _, err := c.Post(context.Background(), "act_1/campaigns", url.Values{}, "tok"); err == nil {
		t.Fatal("expected transport error")
	}
}

// TestCreateCampaignWireFormat: paused status and an explicitly empty
// special categories list are always sent.
func TestCreateCampaignWireFormat(t *testing.T) {
	var form url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Error(err)
		}
		form = r.PostForm
		_, _ = w.Write([]byte(`{"id":"camp-1"}`))
	})

	id, err := c.CreateCampaign(context.Background(), "tok", port.CampaignParams{
		AccountID: "99",
		Name:      "Bakery Campaign",
		Objective: "OUTCOME_LEADS",
	})
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}
	if id != "camp-1" {
		t.Fatalf("id %q, want camp-1", id)
	}
	if form.Get("status") != "PAUSED" {
		t.Fatalf("status %q, want PAUSED", form.Get("status"))
	}
	if form.Get("special_ad_categories") != "[]" {
		t.Fatalf("special_ad_categories %q, want []", form.Get("special_ad_categories"))
	}
	if form.Get("access_token") != "tok" {
		t.Fatal("access token not sent")
	}
}

// TestCreateAdSetTargeting: a radius spec renders as a custom location
// circle in kilometers around the given coordinates.
func TestCreateAdSetTargeting(t *testing.T) {
	var form url.Values
	var path string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Error(err)
		}
		form = r.PostForm
		path = r.URL.Path
		_, _ = w.Write([]byte(`{"id":"adset-1"}`))
	})

	_, err := c.CreateAdSet(context.Background(), "tok", port.AdSetParams{
		AccountID:        "99",
		Name:             "Ad Set",
		CampaignID:       "camp-1",
		DailyBudgetCents: 1500,
		BillingEvent:     "IMPRESSIONS",
		OptimizationGoal: "LEAD_GENERATION",
		Targeting: domain.Targeting{
			RadiusKm:  25,
			Latitude:  40.7128,
			Longitude: -74.0060,
			AgeMin:    18,
			AgeMax:    65,
		},
	})
	if err != nil {
		t.Fatalf("CreateAdSet error: %v", err)
	}
	if path != "/v19.0/act_99/adsets" {
		t.Fatalf("path %q", path)
	}
	if form.Get("daily_budget") != "1500" {
		t.Fatalf("daily_budget %q, want 1500", form.Get("daily_budget"))
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
		AgeMin int `json:"age_min"`
		AgeMax int `json:"age_max"`
	}
	if err = json.Unmarshal([]byte(form.Get("targeting")), &targeting); err != nil {
		t.Fatalf("targeting is not valid JSON: %v", err)
	}
	locs := targeting.GeoLocations.CustomLocations
	if len(locs) != 1 || locs[0].Radius != 25 || locs[0].DistanceUnit != "kilometer" {
		t.Fatalf("unexpected custom locations: %+v", locs)
	}
	if locs[0].Latitude != 40.7128 || locs[0].Longitude != -74.0060 {
		t.Fatalf("coordinates not carried through: %+v", locs[0])
	}
	if targeting.AgeMin != 18 || targeting.AgeMax != 65 {
		t.Fatalf("age range %d-%d", targeting.AgeMin, targeting.AgeMax)
	}
}

// TestCreateCreativeStorySpec: page identity, message, headline and call
// to action are carried in the object story spec.
func TestCreateCreativeStorySpec(t *testing.T) {
	var form url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Error(err)
		}
		form = r.PostForm
		_, _ = w.Write([]byte(`{"id":"cr-1"}`))
	})

	_, err := c.CreateCreative(context.Background(), "tok", port.CreativeParams{
		AccountID:    "99",
		Name:         "Creative 1",
		PageID:       "page-1",
		Message:      "Order before 10am.",
		Headline:     "Fresh Bread Daily",
		LinkURL:      "https://example.com",
		ImageURL:     "https://example.com/bread.jpg",
		CallToAction: "LEARN_MORE",
	})
	if err != nil {
		t.Fatalf("CreateCreative error: %v", err)
	}

	var story struct {
		PageID   string `json:"page_id"`
		LinkData struct {
			Message      string `json:"message"`
			Name         string `json:"name"`
			Link         string `json:"link"`
			Picture      string `json:"picture"`
			CallToAction struct {
				Type string `json:"type"`
			} `json:"call_to_action"`
		} `json:"link_data"`
	}
	if err = json.Unmarshal([]byte(form.Get("object_story_spec")), &story); err != nil {
		t.Fatalf("object_story_spec is not valid JSON: %v", err)
	}
	if story.PageID != "page-1" || story.LinkData.Name != "Fresh Bread Daily" {
		t.Fatalf("unexpected story spec: %+v", story)
	}
	if story.LinkData.CallToAction.Type != "LEARN_MORE" {
		t.Fatalf("cta %q", story.LinkData.CallToAction.Type)
	}
	if story.LinkData.Picture != "https://example.com/bread.jpg" {
		t.Fatalf("picture %q", story.LinkData.Picture)
	}
}

// TestSetStatusTargetsObject: status updates post directly to the object
// id.
func TestSetStatusTargetsObject(t *testing.T) {
	var path, status string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Error(err)
		}
		path = r.URL.Path
		status = r.PostForm.Get("status")
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	if err := c.SetStatus(context.Background(), "tok", "adset-1", "ACTIVE"); err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if path != "/v19.0/adset-1" || status != "ACTIVE" {
		t.Fatalf("got %s status=%s", path, status)
	}
}

// TestSendEventsPayload: events post to the pixel path with a JSON data
// array.
func TestSendEventsPayload(t *testing.T) {
	var path string
	var form url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Error(err)
		}
		path = r.URL.Path
		form = r.PostForm
		_, _ = w.Write([]byte(`{"events_received":1}`))
	})

	err := c.SendEvents(context.Background(), "tok", "pixel-1", []port.ConversionEvent{{
		EventName: "Lead",
		EventTime: 1700000000,
		EventID:   "fb-lead-9",
		UserData:  map[string]string{"em": "hashed"},
	}})
	if err != nil {
		t.Fatalf("SendEvents error: %v", err)
	}
	if path != "/v19.0/pixel-1/events" {
		t.Fatalf("path %q", path)
	}

	var data []map[string]any
	if err = json.Unmarshal([]byte(form.Get("data")), &data); err != nil {
		t.Fatalf("data is not valid JSON: %v", err)
	}
	if len(data) != 1 || data[0]["event_name"] != "Lead" || data[0]["event_id"] != "fb-lead-9" {
		t.Fatalf("unexpected payload: %+v", data)
	}
}
