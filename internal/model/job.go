package model

type JobMatch struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	MatchPercentage float64  `json:"matchPercentage"`
	MissingSkills   []string `json:"missingSkills"`
	SourceURL       string   `json:"sourceUrl"`
}

// GroundingSource 搜索增强回答附带的引用
type GroundingSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type JobSearchResult struct {
	Jobs      []JobMatch        `json:"jobs"`
	Grounding []GroundingSource `json:"grounding"`
}
