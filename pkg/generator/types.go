package generator

// BusinessFacts is the immutable ingestion-side view of a business that the
// generation pipeline consumes. Every field except Name may be empty.
type BusinessFacts struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Rating       *float64 `json:"rating"`
	ReviewCount  int      `json:"review_count"`
	OpeningHours []string `json:"opening_hours"`
	PlaceID      string   `json:"place_id"`
}

// Selection records every deterministic choice the pipeline made for one
// generation: the classified industry, the assigned archetype and the curated
// assets. Persisted next to the generated content so previews stay stable.
type Selection struct {
	IndustryKey string      `json:"industry_key"`
	ArchetypeID string      `json:"archetype_id"`
	HeroImage   string      `json:"hero_image"`
	Gallery     []string    `json:"gallery"`
	Colors      ColorScheme `json:"colors"`
}
