package usecase

import (
	"app/internal/domain/model"
	"encoding/json"
	"fmt"
	"strings"
)

type QualityCheckResult struct {
	IsValid     bool     `json:"is_valid"`
	Score       int      `json:"score"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// CheckContentQuality は生成結果をテンプレートのルールで採点する。
// 満点100から減点・加点して0〜100に収める。
func CheckContentQuality(content string, rules model.QualityRules) QualityCheckResult {
	issues := []string{}
	suggestions := []string{}
	score := 100

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		issues = append(issues, "Content is empty")
		score -= 50
	} else {
		length := len(trimmed)
		if length < 10 {
			issues = append(issues, "Content is too short")
			score -= 20
		} else if length > 10000 {
			issues = append(issues, "Content is extremely long")
			score -= 10
		}
	}

	var parsed map[string]interface{}
	jsonValid := false
	if rules.RequireJSONFormat {
		if err := json.Unmarshal([]byte(content), &parsed); err != nil {
			issues = append(issues, "Content is not valid JSON")
			score -= 30
			suggestions = append(suggestions, "Ensure content is properly formatted JSON")
		} else {
			jsonValid = true
			score += 10
		}
	}

	//JSONが読めたときだけ構造ルールを見る
	if jsonValid {
		for _, field := range rules.RequiredFields {
			if _, ok := parsed[field]; !ok {
				issues = append(issues, fmt.Sprintf("Missing required field: %s", field))
				score -= 15
			}
		}

		if len(rules.ValidClassifications) > 0 {
			if c, ok := parsed["classification"].(string); ok {
				valid := false
				for _, v := range rules.ValidClassifications {
					if c == v {
						valid = true
						break
					}
				}
				if !valid {
					issues = append(issues, fmt.Sprintf("Invalid classification: %s", c))
					score -= 20
				}
			}
		}

		if len(rules.ConfidenceRange) == 2 {
			if conf, ok := parsed["confidence"].(float64); ok {
				if conf < rules.ConfidenceRange[0] || conf > rules.ConfidenceRange[1] {
					issues = append(issues, fmt.Sprintf("Confidence out of range: %v", conf))
					score -= 15
				}
			}
		}

		if rules.MaxReasoningLength != nil {
			if reasoning, ok := parsed["reasoning"].(string); ok {
				if len(reasoning) > *rules.MaxReasoningLength {
					issues = append(issues, fmt.Sprintf("Reasoning too long: %d characters", len(reasoning)))
					score -= 10
					suggestions = append(suggestions,
						fmt.Sprintf("Shorten reasoning to %d characters or less", *rules.MaxReasoningLength))
				}
			}
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return QualityCheckResult{
		IsValid:     len(issues) == 0,
		Score:       score,
		Issues:      issues,
		Suggestions: suggestions,
	}
}
