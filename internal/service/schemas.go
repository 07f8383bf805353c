package service

import "google.golang.org/genai"

// 结构化输出schema，与 internal/model 的JSON标签一一对应

var jobListSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":              {Type: genai.TypeString},
			"title":           {Type: genai.TypeString},
			"company":         {Type: genai.TypeString},
			"location":        {Type: genai.TypeString},
			"matchPercentage": {Type: genai.TypeNumber},
			"missingSkills":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"sourceUrl":       {Type: genai.TypeString},
		},
		Required: []string{"id", "title", "company", "location", "matchPercentage", "missingSkills", "sourceUrl"},
	},
}

var skillCheckSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"questions": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{"questions"},
}

var skillEvalSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"passed":           {Type: genai.TypeBoolean},
		"score":            {Type: genai.TypeNumber},
		"feedback":         {Type: genai.TypeString},
		"weakConcepts":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"actionableAdvice": {Type: genai.TypeString},
	},
	Required: []string{"passed", "score", "feedback", "weakConcepts", "actionableAdvice"},
}

var suggestionsSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":         {Type: genai.TypeString},
			"description":   {Type: genai.TypeString},
			"reasoning":     {Type: genai.TypeString},
			"estimatedTime": {Type: genai.TypeString},
		},
		Required: []string{"title", "description", "reasoning", "estimatedTime"},
	},
}

var curriculumSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":       {Type: genai.TypeString},
		"description": {Type: genai.TypeString},
		"goal_role":   {Type: genai.TypeString},
		"phases": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title": {Type: genai.TypeString},
					"topics": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"title":             {Type: genai.TypeString},
								"description":       {Type: genai.TypeString},
								"estimated_minutes": {Type: genai.TypeNumber},
								"difficulty_level":  {Type: genai.TypeString},
							},
						},
					},
				},
			},
		},
	},
}

var resumeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"skills":            {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"extracted_roles":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"suggestions":       {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"keywords":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"improvement_areas": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"actionable_recommendations": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category": {Type: genai.TypeString},
					"advice":   {Type: genai.TypeString},
				},
				Required: []string{"category", "advice"},
			},
		},
	},
	Required: []string{"skills", "extracted_roles", "suggestions", "keywords", "improvement_areas", "actionable_recommendations"},
}
