package generator

import (
	"math"
	"strings"
)

// ColorScheme is the full palette handed to the rendering layer. The five
// On* fields are derived, never curated: each one is a text color guaranteed
// to reach at least a 3.0:1 contrast ratio against its paired base color.
type ColorScheme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`

	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	TextLight  string `json:"text_light"`

	OnPrimary    string `json:"on_primary"`
	OnSecondary  string `json:"on_secondary"`
	OnAccent     string `json:"on_accent"`
	OnSurface    string `json:"on_surface"`
	OnBackground string `json:"on_background"`
}

// Deterministic fallback text colors for bases that pure white cannot sit on.
const (
	fallbackDarkText  = "#0f172a"
	fallbackLightText = "#f8fafc"
)

// parseHex reads a #rrggbb color. Shorthand and named colors are not part of
// the curated pools, so they are treated as unparseable.
func parseHex(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	var vals [3]int
	for i := 0; i < 3; i++ {
		v := 0
		for _, c := range hex[i*2 : i*2+2] {
			v *= 16
			switch {
			case c >= '0' && c <= '9':
				v += int(c - '0')
			case c >= 'a' && c <= 'f':
				v += int(c-'a') + 10
			case c >= 'A' && c <= 'F':
				v += int(c-'A') + 10
			default:
				return 0, 0, 0, false
			}
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], true
}

func channelLuminance(c int) float64 {
	v := float64(c) / 255.0
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// RelativeLuminance computes WCAG relative luminance of a #rrggbb color.
// Unparseable input reads as black.
func RelativeLuminance(hex string) float64 {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return 0
	}
	return 0.2126*channelLuminance(r) + 0.7152*channelLuminance(g) + 0.0722*channelLuminance(b)
}

// ContrastRatio computes the WCAG contrast ratio between two colors,
// always ≥1.0.
func ContrastRatio(a, b string) float64 {
	la, lb := RelativeLuminance(a), RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// yiqBrightness is the classic perceived-brightness heuristic (0..255).
func yiqBrightness(hex string) float64 {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return 0
	}
	return (float64(r)*299 + float64(g)*587 + float64(b)*114) / 1000
}

// OnColor derives a legible text color for the given base. Pure white is
// used whenever it clears 3.0:1 (large/bold text threshold); otherwise the
// base is light, and the YIQ threshold picks near-black over near-white.
// Deterministic: no randomness, no ordering dependence.
func OnColor(base string) string {
	if ContrastRatio("#ffffff", base) >= 3.0 {
		return "#ffffff"
	}
	if yiqBrightness(base) >= 160 {
		return fallbackDarkText
	}
	return fallbackLightText
}

// withOnColors returns a copy with all five derived text colors filled in.
func (s ColorScheme) withOnColors() ColorScheme {
	s.OnPrimary = OnColor(s.Primary)
	s.OnSecondary = OnColor(s.Secondary)
	s.OnAccent = OnColor(s.Accent)
	s.OnSurface = OnColor(s.Surface)
	s.OnBackground = OnColor(s.Background)
	return s
}

// SchemeFor picks the color scheme for a business: curated pool by industry,
// index by the stable hash of the seed (usually the business name). Identical
// seeds always yield identical schemes; empty seeds are valid and map to the
// pool's first entry.
func SchemeFor(industryKey, seed string) ColorScheme {
	pool, ok := colorPools[industryKey]
	if !ok {
		pool = colorPools[IndustryGeneral]
	}
	return pool[PickIndex(seed, len(pool))].withOnColors()
}

// ColorPools exposes every curated palette with derived on-colors, keyed by
// industry. Used by the contrast invariant tests and the seed tooling.
func ColorPools() map[string][]ColorScheme {
	out := make(map[string][]ColorScheme, len(colorPools))
	for key, pool := range colorPools {
		derived := make([]ColorScheme, len(pool))
		for i, s := range pool {
			derived[i] = s.withOnColors()
		}
		out[key] = derived
	}
	return out
}

// Curated base palettes. Primaries and secondaries are kept dark enough for
// white text; accents are either dark or bright enough (YIQ ≥ 160) for the
// near-black fallback, so every derived on-color clears 3.0:1.
var colorPools = map[string][]ColorScheme{
	IndustryBeauty: {
		{Primary: "#831843", Secondary: "#44403c", Accent: "#b45309", Background: "#fdf2f8", Surface: "#ffffff", Text: "#1c1917", TextLight: "#78716c"},
		{Primary: "#0f172a", Secondary: "#334155", Accent: "#9d174d", Background: "#faf9f7", Surface: "#ffffff", Text: "#0f172a", TextLight: "#64748b"},
	},
	IndustryFood: {
		{Primary: "#7c2d12", Secondary: "#44403c", Accent: "#e85d04", Background: "#fefcf8", Surface: "#fff7ed", Text: "#1c1917", TextLight: "#78716c"},
		{Primary: "#14532d", Secondary: "#3f6212", Accent: "#b45309", Background: "#f7faf7", Surface: "#ffffff", Text: "#14532d", TextLight: "#6b7280"},
	},
	IndustryTrades: {
		{Primary: "#1e3a5f", Secondary: "#0f172a", Accent: "#ea580c", Background: "#f8fafc", Surface: "#ffffff", Text: "#0f172a", TextLight: "#64748b"},
		{Primary: "#b91c1c", Secondary: "#292524", Accent: "#a16207", Background: "#fafaf9", Surface: "#ffffff", Text: "#1c1917", TextLight: "#78716c"},
	},
	IndustryMedical: {
		{Primary: "#0e7490", Secondary: "#155e75", Accent: "#0d9488", Background: "#f8fafc", Surface: "#ffffff", Text: "#0f172a", TextLight: "#64748b"},
		{Primary: "#334155", Secondary: "#475569", Accent: "#0369a1", Background: "#f0f9ff", Surface: "#ffffff", Text: "#0f172a", TextLight: "#64748b"},
	},
	IndustryFitness: {
		{Primary: "#111111", Secondary: "#3f3f46", Accent: "#dc2626", Background: "#fafafa", Surface: "#ffffff", Text: "#111111", TextLight: "#71717a"},
		{Primary: "#581c87", Secondary: "#1e1b4b", Accent: "#be185d", Background: "#ffffff", Surface: "#faf5ff", Text: "#1e1b4b", TextLight: "#6b7280"},
	},
	IndustryAutomotive: {
		{Primary: "#0c0a09", Secondary: "#292524", Accent: "#d4af37", Background: "#0c0a09", Surface: "#1c1917", Text: "#e7e5e4", TextLight: "#a8a29e"},
		{Primary: "#1e3a5f", Secondary: "#334155", Accent: "#ea580c", Background: "#f8fafc", Surface: "#ffffff", Text: "#0f172a", TextLight: "#64748b"},
	},
	IndustryLegal: {
		{Primary: "#1e3a5f", Secondary: "#44403c", Accent: "#9a7b4f", Background: "#fdfdfb", Surface: "#ffffff", Text: "#1c1917", TextLight: "#78716c"},
		{Primary: "#0f172a", Secondary: "#1e40af", Accent: "#a16207", Background: "#f8fafc", Surface: "#ffffff", Text: "#0f172a", TextLight: "#64748b"},
	},
	IndustryRetail: {
		{Primary: "#0e7490", Secondary: "#164e63", Accent: "#f59e0b", Background: "#fffbf5", Surface: "#ffffff", Text: "#1c1917", TextLight: "#78716c"},
		{Primary: "#831843", Secondary: "#3f3f46", Accent: "#0d9488", Background: "#fafafa", Surface: "#ffffff", Text: "#18181b", TextLight: "#71717a"},
	},
	IndustryHospitality: {
		{Primary: "#7c2d12", Secondary: "#1c1917", Accent: "#a16207", Background: "#fefcf8", Surface: "#fff7ed", Text: "#1c1917", TextLight: "#78716c"},
		{Primary: "#1e3a5f", Secondary: "#0f172a", Accent: "#b45309", Background: "#fdfdfb", Surface: "#ffffff", Text: "#0f172a", TextLight: "#64748b"},
	},
	IndustryTech: {
		{Primary: "#0f172a", Secondary: "#1e293b", Accent: "#2563eb", Background: "#ffffff", Surface: "#f8fafc", Text: "#0f172a", TextLight: "#64748b"},
		{Primary: "#312e81", Secondary: "#1e1b4b", Accent: "#7c3aed", Background: "#fafafa", Surface: "#ffffff", Text: "#18181b", TextLight: "#71717a"},
	},
	IndustryGeneral: {
		{Primary: "#0f172a", Secondary: "#334155", Accent: "#2563eb", Background: "#ffffff", Surface: "#f8fafc", Text: "#0f172a", TextLight: "#64748b"},
		{Primary: "#14532d", Secondary: "#1c1917", Accent: "#e85d04", Background: "#fefcf8", Surface: "#ffffff", Text: "#1c1917", TextLight: "#78716c"},
	},
}
