package prompt

import (
	"fmt"
	"strings"

	"course-planner/internal/domain"
	"course-planner/internal/schedule"
	"course-planner/internal/util"
)

const promotionStructure = `文案結構（依序）：
1. 開場點出目標客群的痛點或焦慮
2. 說明本課程如何解決
3. 具體描述上完課能獲得的成果
4. 以溫暖、鼓勵報名的語氣收尾`

const promotionExample = `範例：
「孩子每天滑手機，卻不知道 AI 能幫他學得更好？這堂課帶孩子認識 Gemini、NotebookLM 等工具，從提問技巧到整理筆記一步步實作。五天後，孩子能用 AI 規劃自己的讀書計畫，還能做出屬於自己的測驗小遊戲。名額有限，陪孩子一起跨出聰明學習的第一步！」`

// PromotionObjectives picks the objective bullets quoted in promotion copy.
// Headings mentioning 學習目標 inside the free-text teaching content win;
// otherwise the structured objectives of each day are used.
func PromotionObjectives(curriculum []domain.DayCurriculum) []string {
	var text strings.Builder
	for _, d := range curriculum {
		for _, block := range orderedContent(d.TeachingContent) {
			text.WriteString(block)
			text.WriteString("\n")
		}
		text.WriteString(d.Homework)
		text.WriteString("\n")
	}
	if found := ExtractObjectives(text.String(), MaxPromotionObjectives); len(found) > 0 {
		return found
	}

	var out []string
	for _, d := range curriculum {
		for _, o := range util.NonEmpty(d.LearningObjectives) {
			if len(out) == MaxPromotionObjectives {
				return out
			}
			out = append(out, o)
		}
	}
	return out
}

// Promotion builds the prompt for roughly 200 characters of marketing prose.
// The answer is used verbatim, so no JSON shape is requested.
func Promotion(info domain.CourseInfo, curriculum []domain.DayCurriculum, sched *domain.Schedule, fee string) string {
	var b strings.Builder
	b.WriteString("請為以下課程撰寫吸引人的招生宣傳文案（約 200 字）：\n\n")

	b.WriteString("課程資訊：\n")
	writeField(&b, "班級名稱", info.ClassName)
	writeField(&b, "課程主題", info.Topic)
	writeField(&b, "課程描述", info.Description)
	writeField(&b, "目標客群", info.Audience)
	writeField(&b, "課程分類", info.Category.Label())

	if objs := PromotionObjectives(curriculum); len(objs) > 0 {
		b.WriteString("\n學習目標：\n")
		for _, o := range objs {
			fmt.Fprintf(&b, "- %s\n", o)
		}
	}

	if sched != nil {
		var lines strings.Builder
		if sched.StartDate != "" {
			writeField(&lines, "開課日期", schedule.FormatDate(sched.StartDate))
		}
		if n := len(sched.ScheduledDates); n > 0 {
			writeField(&lines, "上課天數", fmt.Sprintf("%d 天", n))
		}
		if sched.StartTime != "" && sched.EndTime != "" {
			writeField(&lines, "上課時間", sched.StartTime+" - "+sched.EndTime)
		}
		if sched.TotalHours > 0 {
			writeField(&lines, "總時數", formatHours(sched.TotalHours)+" 小時")
		}
		if lines.Len() > 0 {
			b.WriteString("\n上課資訊：\n")
			b.WriteString(lines.String())
		}
	}

	if fee = strings.TrimSpace(fee); fee != "" {
		b.WriteString("\n")
		writeField(&b, "課程費用", fee)
	}

	b.WriteString("\n")
	b.WriteString(promotionStructure)
	b.WriteString("\n\n")
	b.WriteString(promotionExample)
	b.WriteString("\n\n要求：\n")
	b.WriteString("- 語氣真誠，避免過度誇大\n")
	b.WriteString("- 請直接回應宣傳文案內容（不需要 JSON 格式、不需要標題）\n")
	return b.String()
}
