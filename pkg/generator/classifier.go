package generator

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canonical industry keys. Derived, never stored on their own; recomputed
// from (category, name) on every classification call.
const (
	IndustryBeauty      = "beauty"
	IndustryFood        = "food"
	IndustryTrades      = "trades"
	IndustryMedical     = "medical"
	IndustryFitness     = "fitness"
	IndustryAutomotive  = "automotive"
	IndustryLegal       = "legal"
	IndustryRetail      = "retail"
	IndustryHospitality = "hospitality"
	IndustryTech        = "tech"
	IndustryGeneral     = "general"
)

// Classification is the result of mapping free-text business data onto a
// canonical industry key plus the ordered archetype pool for that industry.
type Classification struct {
	Key  string
	Pool []string
}

type industryRule struct {
	pattern *regexp.Regexp
	key     string
}

// industryRules is evaluated top to bottom against the folded
// category+name search string; the first match wins. Order is significant:
// "Barber Café" classifies as food because the food rule sits above beauty,
// and "Spa Hotel" classifies as beauty because beauty sits above hospitality.
// Patterns are written against accent-folded lowercase text ("café" → "cafe",
// "sanitär" → "sanitar").
var industryRules = []industryRule{
	{regexp.MustCompile(`cafe|restaurant|bistro|backerei|konditorei|imbiss|pizzeria|pizza|sushi|gasthaus|gasthof|brauerei|eisdiele|eiscafe|catering|kitchen|grill|taverne|weinbar`), IndustryFood},
	{regexp.MustCompile(`friseur|frisor|barber|kosmetik|beauty|nagelstudio|nagel|nails|salon|spa|wellness|massage|lash|brow|waxing|hairstyl|haarstudio|tattoo|piercing`), IndustryBeauty},
	{regexp.MustCompile(`zahnarzt|arztpraxis|praxis|physiotherapie|physio|apotheke|dental|doctor|medizin|heilpraktiker|tierarzt|logopadie|ergotherapie|hebamme|pflege`), IndustryMedical},
	{regexp.MustCompile(`dachdecker|elektriker|installateur|sanitar|heizung|maler|schreiner|tischler|zimmerei|bauunternehmen|handwerk|klempner|fliesenleger|fliesen|gerustbau|schlosserei|metallbau|garten|landschaftsbau|roofing|plumb|electric|hvac|renovierung`), IndustryTrades},
	{regexp.MustCompile(`fitness|gym|sportstudio|sportverein|yoga|pilates|crossfit|personal training|kampfsport|tanzschule|kletterhalle`), IndustryFitness},
	{regexp.MustCompile(`autohaus|autowerkstatt|kfz|werkstatt|reifenservice|reifen|autolackiererei|fahrzeug|autopflege|carwash|abschleppdienst|motorrad`), IndustryAutomotive},
	{regexp.MustCompile(`rechtsanwalt|anwaltskanzlei|anwalt|kanzlei|notar|steuerberater|steuerbuero|wirtschaftsprufer|buchhaltung|versicherungsmakler|finanzberatung|lawyer|legal|accounting`), IndustryLegal},
	{regexp.MustCompile(`hotel|pension|ferienwohnung|ferienhaus|hostel|gastehaus|guesthouse|bed and breakfast|campingplatz`), IndustryHospitality},
	{regexp.MustCompile(`softwareentwicklung|software|webdesign|webagentur|digitalagentur|it-service|it service|it-systemhaus|edv|computerservice|app-entwicklung|medienagentur`), IndustryTech},
	{regexp.MustCompile(`boutique|mode|blumenladen|blumen|florist|buchhandlung|schmuck|juwelier|geschenke|spielwaren|fahrradladen|zweirad|feinkost|weinhandlung|laden|shop|store|einzelhandel`), IndustryRetail},
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldSearchText lowercases and strips combining marks so accented input
// ("Café", "Sanitär") matches the accent-free rule patterns.
func foldSearchText(s string) string {
	folded, _, err := transform.String(foldTransformer, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}

// Classify maps free-text category and business name to an industry key and
// its layout pool. Pure: identical inputs always yield identical output.
// Unmatched input falls back to the general key with the generic pool.
func Classify(category, businessName string) Classification {
	search := foldSearchText(category + " " + businessName)

	for _, rule := range industryRules {
		if rule.pattern.MatchString(search) {
			return Classification{Key: rule.key, Pool: PoolFor(rule.key)}
		}
	}

	return Classification{Key: IndustryGeneral, Pool: PoolFor(IndustryGeneral)}
}

// ClassifyWithOverride short-circuits rule evaluation when the caller pins an
// explicit industry key (self-serve onboarding lets customers correct a
// misclassification). An empty override behaves like Classify.
func ClassifyWithOverride(category, businessName, override string) Classification {
	if override != "" {
		return Classification{Key: override, Pool: PoolFor(override)}
	}
	return Classify(category, businessName)
}
