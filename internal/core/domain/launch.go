package domain

// Defaults substituted for optional launch fields. The pipeline is
// permissive about targeting and budget, strict about identity.
const (
	DefaultDailyBudgetCents int64 = 1000
	DefaultAgeMin                 = 18
	DefaultAgeMax                 = 65
	DefaultCountry                = "US"
)

// AdVariant is one requested ad: creative text plus an optional image.
// Each variant becomes one ad creative and one ad on the platform.
type AdVariant struct {
	Headline string `json:"headline"`
	Body     string `json:"body"`
	CTA      string `json:"cta"`
	LinkURL  string `json:"link_url"`
	ImageURL string `json:"image_url,omitempty"`
}

// LaunchSpec is the input to a campaign launch. BusinessID and at least
// one variant with body text are required; everything else is defaulted.
type LaunchSpec struct {
	BusinessID       int64
	Name             string
	DailyBudgetCents int64
	RadiusKm         float64
	Countries        []string
	AgeMin           int
	AgeMax           int
	Variants         []AdVariant
}
