package prompt

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"course-planner/internal/domain"
	"course-planner/internal/util"
)

// MaxPromotionObjectives caps the objective bullets quoted in promotion copy.
const MaxPromotionObjectives = 5

var (
	bulletLine  = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)、])\s+(.+?)\s*$`)
	headingLine = regexp.MustCompile(`^\s*#{1,6}\s`)
)

// ExtractObjectives collects the bullet lines listed under headings that
// mention 學習目標, keeping at most limit entries in document order.
func ExtractObjectives(markdown string, limit int) []string {
	var out []string
	inSection := false
	for _, line := range strings.Split(markdown, "\n") {
		if len(out) >= limit {
			break
		}
		trimmed := strings.TrimSpace(line)
		switch {
		case isObjectiveHeading(trimmed):
			inSection = true
		case !inSection:
		case trimmed == "":
		case bulletLine.MatchString(trimmed):
			item := strings.Trim(bulletLine.FindStringSubmatch(trimmed)[1], "* ")
			if item != "" {
				out = append(out, item)
			}
		default:
			inSection = false
		}
	}
	return out
}

func isObjectiveHeading(line string) bool {
	if !strings.Contains(line, "學習目標") {
		return false
	}
	if bulletLine.MatchString(line) {
		return false
	}
	return headingLine.MatchString(line) ||
		strings.HasPrefix(line, "**") ||
		strings.HasSuffix(line, "：") ||
		strings.HasSuffix(line, ":")
}

// RenderCurriculum renders curriculum days as markdown, one section per day.
func RenderCurriculum(days []domain.DayCurriculum) string {
	var b strings.Builder
	for i, d := range days {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(RenderDay(i+1, d))
	}
	return b.String()
}

// RenderDay renders a single curriculum day under a "第 N 天" heading.
func RenderDay(day int, d domain.DayCurriculum) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 第 %d 天：%s\n\n", day, d.UnitName)
	if objs := util.NonEmpty(d.LearningObjectives); len(objs) > 0 {
		b.WriteString("### 學習目標\n")
		for _, o := range objs {
			fmt.Fprintf(&b, "- %s\n", o)
		}
		b.WriteString("\n")
	}
	if content := RenderTeachingContent(d.TeachingContent); content != "" {
		b.WriteString("### 教學內容\n")
		b.WriteString(content)
		b.WriteString("\n")
	}
	if hw := strings.TrimSpace(d.Homework); hw != "" {
		fmt.Fprintf(&b, "### 小作業\n%s\n", hw)
	}
	return b.String()
}

// RenderTeachingContent lists the segments in session order, followed by any
// keys the model invented.
func RenderTeachingContent(content map[string]string) string {
	var b strings.Builder
	for _, key := range contentKeys(content) {
		label := key
		if isSegment(key) {
			label = key + " 分鐘"
		}
		fmt.Fprintf(&b, "- **%s**：%s\n", label, strings.TrimSpace(content[key]))
	}
	return b.String()
}

// orderedContent returns the non-blank content blocks in session order.
func orderedContent(content map[string]string) []string {
	keys := contentKeys(content)
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = strings.TrimSpace(content[key])
	}
	return out
}

// contentKeys lists the keys with non-blank text: known segments first in
// session order, then the rest sorted.
func contentKeys(content map[string]string) []string {
	var keys, extra []string
	for _, seg := range domain.TimeSegments {
		if strings.TrimSpace(content[seg]) != "" {
			keys = append(keys, seg)
		}
	}
	for k, v := range content {
		if !isSegment(k) && strings.TrimSpace(v) != "" {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

func isSegment(key string) bool {
	for _, seg := range domain.TimeSegments {
		if seg == key {
			return true
		}
	}
	return false
}
