package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Statuses accepted by the platform for campaigns, ad sets and ads.
const (
	StatusPaused = "PAUSED"
	StatusActive = "ACTIVE"
)

// CreateCampaign creates a paused campaign under the ad account. The
// special_ad_categories list is always sent, explicitly empty.
func (c *Client) CreateCampaign(ctx context.Context, token string, p port.CampaignParams) (string, error) {
	params := url.Values{}
	params.Set("name", p.Name)
	params.Set("objective", p.Objective)
	params.Set("status", StatusPaused)
	params.Set("special_ad_categories", "[]")

	res, err := c.Post(ctx, "act_"+p.AccountID+"/campaigns", params, token)
	if err != nil {
		return "", err
	}
	if !res.OK {
		return "", asErr(res)
	}
	return res.ExternalID, nil
}

// CreateAdSet creates a paused ad set under an existing campaign with the
// budget, billing event, optimization goal and targeting from p.
func (c *Client) CreateAdSet(ctx context.Context, token string, p port.AdSetParams) (string, error) {
	targeting, err := json.Marshal(buildTargeting(p.Targeting))
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("name", p.Name)
	params.Set("campaign_id", p.CampaignID)
	params.Set("daily_budget", strconv.FormatInt(p.DailyBudgetCents, 10))
	params.Set("billing_event", p.BillingEvent)
	params.Set("optimization_goal", p.OptimizationGoal)
	params.Set("targeting", string(targeting))
	params.Set("status", StatusPaused)

	res, err := c.Post(ctx, "act_"+p.AccountID+"/adsets", params, token)
	if err != nil {
		return "", err
	}
	if !res.OK {
		return "", asErr(res)
	}
	return res.ExternalID, nil
}

// buildTargeting renders the domain targeting into the platform's
// targeting object: a custom-location radius when one is set, otherwise a
// country list, plus fixed platform and placement selectors.
func buildTargeting(t domain.Targeting) map[string]any {
	geo := map[string]any{}
	if t.RadiusKm > 0 {
		geo["custom_locations"] = []map[string]any{{
			"latitude":      t.Latitude,
			"longitude":     t.Longitude,
			"radius":        t.RadiusKm,
			"distance_unit": "kilometer",
		}}
	} else {
		geo["countries"] = t.Countries
	}
	return map[string]any{
		"geo_locations":       geo,
		"age_min":             t.AgeMin,
		"age_max":             t.AgeMax,
		"publisher_platforms": []string{"facebook", "instagram"},
		"facebook_positions":  []string{"feed"},
	}
}

// CreateCreative creates an ad creative from an object story spec: page
// identity plus link data with message, headline, call to action and an
// optional picture.
func (c *Client) CreateCreative(ctx context.Context, token string, p port.CreativeParams) (string, error) {
	linkData := map[string]any{
		"message": p.Message,
		"name":    p.Headline,
		"link":    p.LinkURL,
		"call_to_action": map[string]any{
			"type": p.CallToAction,
		},
	}
	if p.ImageURL != "" {
		linkData["picture"] = p.ImageURL
	}
	story, err := json.Marshal(map[string]any{
		"page_id":   p.PageID,
		"link_data": linkData,
	})
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("name", p.Name)
	params.Set("object_story_spec", string(story))

	res, err := c.Post(ctx, "act_"+p.AccountID+"/adcreatives", params, token)
	if err != nil {
		return "", err
	}
	if !res.OK {
		return "", asErr(res)
	}
	return res.ExternalID, nil
}

// CreateAd creates a paused ad that references an existing creative.
func (c *Client) CreateAd(ctx context.Context, token string, p port.AdParams) (string, error) {
	creative, err := json.Marshal(map[string]string{"creative_id": p.CreativeID})
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("name", p.Name)
	params.Set("adset_id", p.AdSetID)
	params.Set("creative", string(creative))
	params.Set("status", StatusPaused)

	res, err := c.Post(ctx, "act_"+p.AccountID+"/ads", params, token)
	if err != nil {
		return "", err
	}
	if !res.OK {
		return "", asErr(res)
	}
	return res.ExternalID, nil
}

// SetStatus updates the status of any platform object by id.
func (c *Client) SetStatus(ctx context.Context, token, objectID, status string) error {
	params := url.Values{}
	params.Set("status", status)

	res, err := c.Post(ctx, objectID, params, token)
	if err != nil {
		return err
	}
	if !res.OK {
		return asErr(res)
	}
	return nil
}

// UpdateBudget changes the daily budget of an existing ad set.
func (c *Client) UpdateBudget(ctx context.Context, token, adSetID string, dailyBudgetCents int64) error {
	params := url.Values{}
	params.Set("daily_budget", strconv.FormatInt(dailyBudgetCents, 10))

	res, err := c.Post(ctx, adSetID, params, token)
	if err != nil {
		return err
	}
	if !res.OK {
		return asErr(res)
	}
	return nil
}

// SendEvents posts a batch of conversion events to the pixel.
func (c *Client) SendEvents(ctx context.Context, token, pixelID string, events []port.ConversionEvent) error {
	data := make([]map[string]any, 0, len(events))
	for _, ev := range events {
		data = append(data, map[string]any{
			"event_name":  ev.EventName,
			"event_time":  ev.EventTime,
			"event_id":    ev.EventID,
			"user_data":   ev.UserData,
			"custom_data": ev.CustomData,
		})
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	params := url.Values{}
	params.Set("data", string(payload))

	res, err := c.Post(ctx, fmt.Sprintf("%s/events", pixelID), params, token)
	if err != nil {
		return err
	}
	if !res.OK {
		return asErr(res)
	}
	return nil
}
