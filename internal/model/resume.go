package model

type Recommendation struct {
	Category string `json:"category"`
	Advice   string `json:"advice"`
}

// swagger:model ResumeAnalysis
type ResumeAnalysis struct {
	Skills                    []string         `json:"skills"`
	ExtractedRoles            []string         `json:"extracted_roles"`
	Suggestions               []string         `json:"suggestions"`
	Keywords                  []string         `json:"keywords"`
	ImprovementAreas          []string         `json:"improvement_areas"`
	ActionableRecommendations []Recommendation `json:"actionable_recommendations"`
	AnalyzedAt                int64            `json:"analyzedAt,omitempty"`
}

// EmptyResumeAnalysis 解析失败时的降级值，所有列表为空
func EmptyResumeAnalysis() ResumeAnalysis {
	return ResumeAnalysis{
		Skills:                    []string{},
		ExtractedRoles:            []string{},
		Suggestions:               []string{},
		Keywords:                  []string{},
		ImprovementAreas:          []string{},
		ActionableRecommendations: []Recommendation{},
	}
}
