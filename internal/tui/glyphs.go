package tui

import "github.com/nikolayk812/airport-services/internal/domain"

const (
	planeGlyph   = "✈"
	defaultGlyph = "•"
)

var glyphs = map[domain.Icon]string{
	domain.IconArmchair:     "💺",
	domain.IconPlaneTakeoff: "🛫",
	domain.IconLuggage:      "🧳",
	domain.IconUtensils:     "🍴",
	domain.IconWifi:         "📶",
	domain.IconShieldCheck:  "🛡",
	domain.IconZap:          "⚡",
}

// glyph resolves a symbolic icon to something a terminal can print.
func glyph(icon domain.Icon) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return defaultGlyph
}
