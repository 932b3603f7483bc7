package domain

import "time"

// LeadQuality is the manual classification of a captured prospect.
type LeadQuality string

const (
	QualityUnclassified LeadQuality = ""
	QualityGood         LeadQuality = "good"
	QualityBad          LeadQuality = "bad"
)

// Valid reports whether q is a classification a caller may set.
func (q LeadQuality) Valid() bool {
	return q == QualityGood || q == QualityBad
}

// Lead is a captured prospect tied to a campaign. Immutable except for
// Quality. MetaLeadID, when present, is reused as the deduplication key
// for conversion feedback events.
type Lead struct {
	ID         int64
	BusinessID int64
	CampaignID string
	MetaLeadID string
	Email      string
	Phone      string
	FullName   string
	Quality    LeadQuality
	CreatedAt  time.Time
}
