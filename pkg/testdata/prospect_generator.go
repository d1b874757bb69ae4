package testdata

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/sitewerk/sitewerk/ent"
)

// ProspectGeneratorConfig configures prospect generation parameters
type ProspectGeneratorConfig struct {
	IndustryKey   string
	Count         int
	City          string
	MinRating     float64 // 1.0-5.0
	MaxRating     float64 // 1.0-5.0
	EmailChance   float64 // 0.0-1.0 (probability of having email)
	PhoneChance   float64
	WebsiteChance float64
}

// GermanCities lists the cities seed data draws from.
var GermanCities = []string{
	"Berlin", "Hamburg", "München", "Köln", "Frankfurt",
	"Stuttgart", "Düsseldorf", "Dortmund", "Essen", "Leipzig",
	"Dresden", "Hannover", "Nürnberg", "Bremen", "Mannheim",
}

// Industry-specific German business name prefixes and suffixes
var businessNameParts = map[string]struct {
	Prefixes []string
	Suffixes []string
}{
	"food": {
		Prefixes: []string{"Café", "Trattoria", "Gasthaus", "Restaurant", "Bistro", "Pizzeria", "Bäckerei", "Konditorei"},
		Suffixes: []string{"Lindenhof", "Sonnenschein", "Zur Post", "Am Markt", "Bella Vista", "Goldener Löwe", "Altstadt", "Rosengarten"},
	},
	"beauty": {
		Prefixes: []string{"Friseursalon", "Kosmetikstudio", "Nagelstudio", "Beauty Lounge", "Barbershop", "Wellness Oase"},
		Suffixes: []string{"Scholz", "Bella", "Glanz", "Charme", "Eleganz", "Harmonie", "Marie", "Diva"},
	},
	"medical": {
		Prefixes: []string{"Zahnarztpraxis", "Arztpraxis", "Physiotherapie", "Apotheke", "Heilpraktiker"},
		Suffixes: []string{"Dr. Weber", "Dr. Müller", "Am Stadtpark", "Gesundheit Plus", "Vita", "Zentrum"},
	},
	"trades": {
		Prefixes: []string{"Dachdeckerei", "Elektro", "Malermeister", "Sanitär", "Schreinerei", "Zimmerei", "Gartenbau"},
		Suffixes: []string{"Schmidt GmbH", "Becker & Söhne", "Hoffmann", "Meisterbetrieb Krause", "Wagner", "Fischer GmbH"},
	},
	"fitness": {
		Prefixes: []string{"Fitnessstudio", "Sportstudio", "Yoga Studio", "CrossFit", "Kampfsportschule"},
		Suffixes: []string{"Aktiv", "Vital", "Power", "Balance", "Energie", "Bewegung"},
	},
	"automotive": {
		Prefixes: []string{"Autohaus", "KFZ-Werkstatt", "Reifenservice", "Autopflege", "Motorradcenter"},
		Suffixes: []string{"Braun", "Schneider", "Am Ring", "Premium", "Meier & Co", "Nord"},
	},
	"legal": {
		Prefixes: []string{"Rechtsanwaltskanzlei", "Steuerberatung", "Notariat", "Kanzlei"},
		Suffixes: []string{"Richter & Partner", "Dr. Lehmann", "Vogel", "Am Gericht", "Hartmann", "Winkler & Kollegen"},
	},
	"hospitality": {
		Prefixes: []string{"Hotel", "Pension", "Gästehaus", "Ferienwohnung"},
		Suffixes: []string{"Seeblick", "Zur Sonne", "Waldesruh", "Am Dom", "Bergblick", "Alte Mühle"},
	},
	"tech": {
		Prefixes: []string{"Softwareentwicklung", "Webagentur", "IT-Service", "Digitalagentur", "Computerservice"},
		Suffixes: []string{"Nova", "Pixelwerk", "Codeschmiede", "Netline", "Datenwerk", "Loom"},
	},
	"retail": {
		Prefixes: []string{"Boutique", "Blumenladen", "Buchhandlung", "Juwelier", "Fahrradladen", "Weinhandlung"},
		Suffixes: []string{"Am Eck", "Rosenrot", "Leseratte", "Goldstück", "Radwelt", "Rebstock"},
	},
	"general": {
		Prefixes: []string{"Dienstleistungen", "Service", "Agentur", "Büro"},
		Suffixes: []string{"Müller", "Klein", "Zentral", "Stadtmitte"},
	},
}

// categoryByIndustry maps an industry key to a plausible places category label.
var categoryByIndustry = map[string]string{
	"food":        "Restaurant",
	"beauty":      "Friseursalon",
	"medical":     "Arztpraxis",
	"trades":      "Handwerksbetrieb",
	"fitness":     "Fitnessstudio",
	"automotive":  "Autowerkstatt",
	"legal":       "Rechtsanwalt",
	"hospitality": "Hotel",
	"tech":        "IT-Dienstleister",
	"retail":      "Einzelhandel",
	"general":     "Dienstleistung",
}

// GenerateBusinessName creates industry-specific realistic German business names
func GenerateBusinessName(industryKey string) string {
	parts, ok := businessNameParts[industryKey]
	if !ok {
		return fmt.Sprintf("%s %s", gofakeit.Company(), gofakeit.LastName())
	}

	prefix := parts.Prefixes[rand.Intn(len(parts.Prefixes))]
	suffix := parts.Suffixes[rand.Intn(len(parts.Suffixes))]

	return fmt.Sprintf("%s %s", prefix, suffix)
}

// GenerateProspect creates a single prospect with realistic data.
// The returned create has no score; callers compute one from the generated
// facts the same way ingestion does.
func GenerateProspect(client *ent.Client, config ProspectGeneratorConfig) *ent.ProspectCreate {
	businessName := GenerateBusinessName(config.IndustryKey)

	city := config.City
	if city == "" {
		city = GermanCities[rand.Intn(len(GermanCities))]
	}

	category, ok := categoryByIndustry[config.IndustryKey]
	if !ok {
		category = "Dienstleistung"
	}

	create := client.Prospect.Create().
		SetPlaceID(fmt.Sprintf("seed-%s", gofakeit.UUID())).
		SetName(businessName).
		SetCategory(category).
		SetIndustryKey(config.IndustryKey).
		SetAddress(fmt.Sprintf("%s %d", gofakeit.StreetName(), rand.Intn(120)+1)).
		SetCity(city).
		SetPostalCode(fmt.Sprintf("%05d", rand.Intn(90000)+10000)).
		SetReviewCount(rand.Intn(150))

	if config.MaxRating > config.MinRating {
		rating := config.MinRating + rand.Float64()*(config.MaxRating-config.MinRating)
		create.SetRating(float64(int(rating*10)) / 10)
	}

	if rand.Float64() < config.PhoneChance {
		create.SetPhone(fmt.Sprintf("+4930%07d", rand.Intn(10000000)))
	}

	if rand.Float64() < config.EmailChance {
		create.SetEmail(fmt.Sprintf("info@%s.de", domainFromName(businessName)))
	}

	if rand.Float64() < config.WebsiteChance {
		create.SetExistingWebsite(fmt.Sprintf("https://www.%s.de", domainFromName(businessName)))
	}

	return create
}

// GenerateProspects creates multiple prospect builders with the given config
func GenerateProspects(client *ent.Client, config ProspectGeneratorConfig) []*ent.ProspectCreate {
	out := make([]*ent.ProspectCreate, config.Count)
	for i := 0; i < config.Count; i++ {
		out[i] = GenerateProspect(client, config)
	}
	return out
}

func domainFromName(name string) string {
	d := strings.ToLower(name)
	replacer := strings.NewReplacer(
		" ", "-", "ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss",
		"é", "e", "&", "und", ".", "", ",", "",
	)
	d = replacer.Replace(d)
	if len(d) > 30 {
		d = d[:30]
	}
	return strings.Trim(d, "-")
}
