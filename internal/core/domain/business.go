package domain

import "time"

// Business is a small business on whose behalf campaigns are run. The
// Meta* fields are the linked advertising platform credentials; an empty
// MetaAccessToken or MetaAdAccountID means the account is not connected
// and no platform calls can be made for this business.
type Business struct {
	ID              int64
	OwnerUserID     int64
	Name            string
	MetaPageID      string
	MetaPixelID     string
	MetaAdAccountID string
	MetaAccessToken string
	Latitude        float64
	Longitude       float64
	Country         string
	CreatedAt       time.Time
}

// Connected reports whether the business has usable platform credentials.
func (b Business) Connected() bool {
	return b.MetaAccessToken != "" && b.MetaAdAccountID != ""
}
