// Package placeholder derives the fallback image URL shown when no real
// infographic could be generated.
package placeholder

import (
	"fmt"
	"net/url"
	"strings"

	"course-planner/internal/domain"
	"course-planner/internal/util"
)

const (
	// BaseURL is the placeholder image service every fallback points at.
	BaseURL = "https://placehold.co/"

	size          = "1200x630"
	maxTitleRunes = 30
)

// Colors is a background/foreground hex pair without the leading '#'.
type Colors struct {
	Background string
	Foreground string
}

var styleColors = map[domain.Style]Colors{
	domain.StyleHandDrawn: {"FFF4E6", "8B4513"},
	domain.StyleTechAI:    {"0F172A", "38BDF8"},
	domain.StyleManga:     {"FFFFFF", "1F2937"},
	domain.Style8Bit:      {"1E1B4B", "FACC15"},
}

var defaultColors = Colors{"3B82F6", "FFFFFF"}

// ColorsFor returns the color pair for style, or the default pair.
func ColorsFor(style domain.Style) Colors {
	if c, ok := styleColors[style]; ok {
		return c
	}
	return defaultColors
}

// URL builds the placeholder image URL for a unit. It is deterministic and
// never touches the network.
func URL(style domain.Style, unitName string) string {
	c := ColorsFor(style)
	title := url.QueryEscape(util.TruncateRunes(unitName, maxTitleRunes))
	return fmt.Sprintf("%s%s/%s/%s/png?text=%s&font=roboto", BaseURL, size, c.Background, c.Foreground, title)
}

// IsPlaceholder reports whether imageURL points at the placeholder service.
func IsPlaceholder(imageURL string) bool {
	return strings.HasPrefix(imageURL, BaseURL)
}
