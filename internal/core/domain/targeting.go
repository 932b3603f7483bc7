package domain

// Targeting describes who a campaign is shown to. Either a geo radius
// around the business location (RadiusKm with Latitude/Longitude) or a
// country list is used, never both; when both are empty the business's
// home country is substituted at launch time.
type Targeting struct {
	RadiusKm  float64  `json:"radius_km,omitempty"`
	Latitude  float64  `json:"latitude,omitempty"`
	Longitude float64  `json:"longitude,omitempty"`
	Countries []string `json:"countries,omitempty"`
	AgeMin    int      `json:"age_min"`
	AgeMax    int      `json:"age_max"`
}
