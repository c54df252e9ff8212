// Package prompt renders the natural-language instructions sent to the
// generative models. Every builder is a pure function of its inputs: missing
// optional values drop their section instead of failing.
package prompt

import (
	"fmt"
	"strings"
)

const classNameRules = `命名原則：
1. **簡短精準**：控制在 8-12 字，去除冗詞贅字
2. **直擊痛點**：用一個核心痛點詞彙（落後→領先、不會→精通、迷茫→突破）
3. **具體成果**：明確說出能獲得什麼（技能、證書、作品、能力）
4. **易記易傳**：口語化、有節奏感、朗朗上口

三種風格（每個只用一個痛點詞+一個成果詞）：
- 第1個：焦慮解決型 →「X天學會Y」「零基礎變Z高手」
- 第2個：成果展示型 →「做出X作品」「拿到Y證照」
- 第3個：能力躍升型 →「從X到Y」「突破Z關卡」`

const classNameExample = `範例（注意簡短）：
- "AI實戰營：5天做出智能助手"（8字核心+成果）
- "Python零基礎速成班"（9字解決焦慮）
- "小創客證照特訓"（7字能力+認證）`

const classNameKeywordExample = `範例（關鍵字為「Canva」時）：
- "Canva速成：3天做出爆款海報"（關鍵字自然融入成果）
- "零基礎Canva設計班"（關鍵字搭配焦慮解決）
- "從小白到Canva達人"（關鍵字搭配能力躍升）`

const classNameResponse = `請以 JSON 格式回應：
{
  "suggestions": ["名稱1", "名稱2", "名稱3"]
}`

// ClassNames builds the prompt asking for three class-name suggestions. A
// non-blank keywords value adds a mandatory-keyword rule and swaps the worked
// example for one that shows the keyword woven in.
func ClassNames(topic, audience, keywords string) string {
	keywords = strings.TrimSpace(keywords)

	var b strings.Builder
	b.WriteString("你是一位教育行銷專家。請生成 3 個簡短有力、直擊痛點的課程班級名稱：\n\n")
	b.WriteString("課程資訊：\n")
	fmt.Fprintf(&b, "- 課程主題: %s\n", topic)
	fmt.Fprintf(&b, "- 目標客群: %s\n", audience)
	if keywords != "" {
		fmt.Fprintf(&b, "- 指定關鍵字: %s\n", keywords)
	}
	b.WriteString("\n")
	b.WriteString(classNameRules)
	b.WriteString("\n\n")

	if keywords != "" {
		b.WriteString("關鍵字規則（必須遵守）：\n")
		fmt.Fprintf(&b, "- 每個名稱都必須包含關鍵字「%s」\n", keywords)
		b.WriteString("- 關鍵字要自然融入，不可生硬堆疊\n")
		b.WriteString("- 關鍵字不計入字數限制\n\n")
		b.WriteString(classNameKeywordExample)
	} else {
		b.WriteString(classNameExample)
	}
	b.WriteString("\n\n")
	b.WriteString(classNameResponse)
	return b.String()
}
