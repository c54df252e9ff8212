package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"course-planner/internal/domain"
)

// Language register markers per audience.
const (
	RegisterChildren   = "使用國中生可理解的語言，活潑有趣"
	RegisterVocational = "使用高中生以上可理解的語言，專業清晰"
)

// segmentActivities describes what happens in each entry of domain.TimeSegments.
var segmentActivities = map[string]string{
	"0-10":    "暖身與引導（回顧、提問、情境導入）",
	"10-40":   "核心概念講解與示範",
	"40-45":   "休息",
	"45-75":   "實作練習（逐步帶領操作）",
	"75-80":   "休息",
	"80-110":  "進階應用與分組活動",
	"110-120": "總結回顧與作業說明",
}

// Register returns the language register instruction for a category.
func Register(c domain.Category) string {
	if c.IsChildren() {
		return RegisterChildren
	}
	return RegisterVocational
}

// SessionTemplate is the fixed 120-minute time-block outline embedded in the
// curriculum prompt.
func SessionTemplate() string {
	var b strings.Builder
	b.WriteString("每日課程時間安排（120 分鐘，請嚴格依照以下時段）：\n")
	for _, seg := range domain.TimeSegments {
		fmt.Fprintf(&b, "- %s 分鐘：%s\n", seg, segmentActivities[seg])
	}
	return b.String()
}

func curriculumExample() string {
	var b strings.Builder
	b.WriteString("{\n")
	b.WriteString("  \"unitName\": \"單元名稱\",\n")
	b.WriteString("  \"learningObjectives\": [\"目標1\", \"目標2\", \"目標3\"],\n")
	b.WriteString("  \"teachingContent\": {\n")
	for i, seg := range domain.TimeSegments {
		fmt.Fprintf(&b, "    %q: \"%s的詳細內容...\"", seg, segmentActivities[seg])
		if i < len(domain.TimeSegments)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("  },\n")
	b.WriteString("  \"homework\": \"小作業說明...\"\n")
	b.WriteString("}")
	return b.String()
}

// DayCurriculum builds the prompt for the plan of one course day (1-based).
func DayCurriculum(info domain.CourseInfo, day int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "請根據以下課程資訊，生成第 %d 天的完整課綱：\n\n", day)

	b.WriteString("課程資訊：\n")
	writeField(&b, "班級名稱", info.ClassName)
	writeField(&b, "課程主題", info.Topic)
	writeField(&b, "課程描述", info.Description)
	writeField(&b, "目標客群", info.Audience)
	writeField(&b, "課程分類", info.Category.Label())
	if info.TotalDays > 0 {
		writeField(&b, "總天數", strconv.Itoa(info.TotalDays))
	}
	if info.HoursPerDay > 0 {
		writeField(&b, "每日時數", formatHours(info.HoursPerDay)+" 小時")
	}

	b.WriteString("\n要求：\n")
	fmt.Fprintf(&b, "- %s\n", Register(info.Category))
	if strings.TrimSpace(info.Description) != "" {
		b.WriteString("- 內容必須緊扣「課程描述」中提到的教學重點、工具和技能\n")
	}
	fmt.Fprintf(&b, "- 內容要符合第 %d 天的學習進度（循序漸進）\n", day)
	b.WriteString("- 第1天著重基礎概念與環境設定，後續天數逐步深入實作\n")
	b.WriteString("- 學習目標要明確可衡量（3-5個）\n")
	b.WriteString("- 教學內容要詳細具體，包含實作步驟\n")
	b.WriteString("- 小作業要能鞏固當日學習，並與課程目標一致\n\n")

	b.WriteString(SessionTemplate())
	b.WriteString("\nteachingContent 必須以上述時段作為鍵，每個時段都要填寫。\n\n")

	b.WriteString("請以 JSON 格式回應：\n")
	b.WriteString(curriculumExample())
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value = strings.TrimSpace(value); value == "" {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, value)
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
