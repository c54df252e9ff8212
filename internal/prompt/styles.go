package prompt

import "course-planner/internal/domain"

// visual is the art direction for one style and audience.
type visual struct {
	Name        string
	Description string
	Palette     string
}

var styleVisuals = map[domain.Style][2]visual{
	domain.StyleHandDrawn: {
		{
			Name:        "手繪插畫風",
			Description: "warm hand-drawn illustration with crayon and watercolor textures, rounded friendly characters, doodle icons and arrows, playful handwritten headings",
			Palette:     "cream paper background (#FFF4E6), brown ink outlines (#8B4513), soft orange and mint accents",
		},
		{
			Name:        "手繪筆記風",
			Description: "sketchnote style with clean pen strokes, hand-lettered section titles, simple pictograms and connecting arrows, like a well organised notebook page",
			Palette:     "cream paper background (#FFF4E6), dark brown ink (#8B4513), muted teal highlights",
		},
	},
	domain.StyleTechAI: {
		{
			Name:        "科技AI風",
			Description: "friendly futuristic scene with cute robots, glowing circuit lines and floating holographic cards, bright and welcoming rather than cold",
			Palette:     "deep navy background (#0F172A), cyan glow (#38BDF8), pops of purple and lime",
		},
		{
			Name:        "科技AI風",
			Description: "sleek tech dashboard layout with glassmorphism cards, neural network motifs, thin neon grid lines and crisp iconography",
			Palette:     "deep navy background (#0F172A), cyan (#38BDF8) and electric blue accents",
		},
	},
	domain.StyleManga: {
		{
			Name:        "日式漫畫風",
			Description: "colourful Japanese manga panels with expressive chibi students, speech bubbles, speed lines and sparkle effects",
			Palette:     "white background (#FFFFFF), bold black ink (#1F2937), bright pink and yellow screentone accents",
		},
		{
			Name:        "日式漫畫風",
			Description: "clean seinen manga layout with confident adult characters, dynamic panel borders and halftone shading",
			Palette:     "white background (#FFFFFF), charcoal ink (#1F2937), single red accent colour",
		},
	},
	domain.Style8Bit: {
		{
			Name:        "8bit遊戲風",
			Description: "retro 8-bit pixel art adventure map, each learning goal shown as a game level with coins, hearts and a cheerful pixel hero",
			Palette:     "dark indigo background (#1E1B4B), golden yellow (#FACC15), bright pixel greens and reds",
		},
		{
			Name:        "8bit遊戲風",
			Description: "pixel art skill tree and quest log interface, experience bars and achievement badges in a retro console UI",
			Palette:     "dark indigo background (#1E1B4B), golden yellow (#FACC15), teal pixel highlights",
		},
	},
}

// visualFor looks up the art direction; unknown styles use hand-drawn and any
// category other than children uses the vocational column.
func visualFor(style domain.Style, category domain.Category) visual {
	row, ok := styleVisuals[style]
	if !ok {
		row = styleVisuals[domain.StyleHandDrawn]
	}
	if category.IsChildren() {
		return row[0]
	}
	return row[1]
}
