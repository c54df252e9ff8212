package prompt

import (
	"fmt"
	"strings"

	"course-planner/internal/domain"
	"course-planner/internal/util"
)

const (
	maxInfographicObjectives = 4
	maxObjectiveRunes        = 30
	maxHomeworkRunes         = 60
	maxSummaryRunes          = 120
)

// Infographic builds the layout description sent to the image model for one
// course day. Objectives from summary take precedence over objectives.
func Infographic(unitName string, objectives []string, style domain.Style, summary *domain.InfographicSummary, category domain.Category) string {
	v := visualFor(style, category)

	objs := util.NonEmpty(objectives)
	var homework, content string
	if summary != nil {
		if s := util.NonEmpty(summary.Objectives); len(s) > 0 {
			objs = s
		}
		homework = strings.TrimSpace(summary.Homework)
		content = strings.TrimSpace(summary.FullContent)
	}
	if len(objs) > maxInfographicObjectives {
		objs = objs[:maxInfographicObjectives]
	}

	var b strings.Builder
	b.WriteString("Create a single 16:9 (1200x630) educational infographic poster for one lesson of a course.\n\n")

	fmt.Fprintf(&b, "Visual style: %s (%s).\n", v.Name, v.Description)
	fmt.Fprintf(&b, "Color palette: %s.\n", v.Palette)
	if category.IsChildren() {
		b.WriteString("Audience: children and their parents. Keep it cheerful, simple and easy to read.\n\n")
	} else {
		b.WriteString("Audience: adult learners in vocational training. Keep it clear, credible and professional.\n\n")
	}

	b.WriteString("Layout:\n")
	fmt.Fprintf(&b, "1. Header band with the lesson title in large Traditional Chinese text: 「%s」\n", strings.TrimSpace(unitName))
	if len(objs) > 0 {
		fmt.Fprintf(&b, "2. A section titled 「學習目標」 with %d numbered cards, one icon per card:\n", len(objs))
		for i, o := range objs {
			fmt.Fprintf(&b, "   %d) %s\n", i+1, util.TruncateRunes(o, maxObjectiveRunes))
		}
	} else {
		b.WriteString("2. A central illustration that represents the lesson theme.\n")
	}
	if content != "" {
		fmt.Fprintf(&b, "3. A small visual flow (3 to 4 steps with arrows) summarising: %s\n", util.TruncateRunes(content, maxSummaryRunes))
	}
	if homework != "" {
		fmt.Fprintf(&b, "4. Footer ribbon titled 「小作業」: %s\n", util.TruncateRunes(homework, maxHomeworkRunes))
	}

	b.WriteString("\nRequirements:\n")
	b.WriteString("- All visible text must be Traditional Chinese, spelled exactly as given, large and legible.\n")
	b.WriteString("- Generous whitespace, clear visual hierarchy, no more than about 60 Chinese characters of text in total.\n")
	b.WriteString("- No watermarks, logos, photographs of real people or English filler text.\n")
	return b.String()
}
