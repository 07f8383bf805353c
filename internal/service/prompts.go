package service

import (
	"fmt"
	"strings"

	"sanvii_backend/internal/model"
)

const advisorPersona = "You are Sanvii.AI, a high-end career advisor. Provide professional, encouraging, and deeply insightful advice."

// 助教对话中的控制标记，前端据此渲染交互组件
const (
	markerBlocker    = "#BLOCKER_DETECTED"
	markerValidation = "#READY_FOR_VALIDATION"
)

func advisorInstruction(profile *model.CareerProfile) string {
	instruction := advisorPersona
	if profile != nil && profile.OnboardingDone {
		instruction += fmt.Sprintf("\n\nUser Context:\nRole: %s\nTargets: %s\nSkills: %s",
			profile.JobRole,
			strings.Join(profile.TargetRoles, ", "),
			strings.Join(profile.SkillNames(), ", "))
	}
	return instruction
}

func tutorInstruction(topic model.LearningTopic, blockers []model.LessonBlocker, profile *model.CareerProfile, mode model.ChatMode) string {
	var blockerContext string
	if len(blockers) > 0 {
		texts := make([]string, 0, len(blockers))
		for _, b := range blockers {
			texts = append(texts, b.Text)
		}
		blockerContext = fmt.Sprintf("\nCURRENT LEARNING BLOCKERS: %s. Keep these in mind while explaining.", strings.Join(texts, ", "))
	}

	role := profile.JobRole
	if role == "" {
		role = "Learner"
	}
	profileContext := fmt.Sprintf("\nSTUDENT PROFILE: Currently a %s, aiming for %s. Their skills include %s. Use analogies relevant to their background where possible.",
		role,
		strings.Join(profile.TargetRoles, " or "),
		strings.Join(profile.SkillNames(), ", "))

	return fmt.Sprintf(`You are a dedicated AI Tutor for: %q.
TEACHING SCOPE: %s
MODE: %s
%s%s
STRICT TOPIC ADHERENCE RULE: ONLY answer questions directly related to %q. Refuse out-of-scope queries politely.
If stuck, start with %s. If mastered, suggest %s. Use Markdown, QUESTION: [Question], OPTIONS: [A, B].`,
		topic.Title, topic.Description, strings.ToUpper(string(mode)),
		blockerContext, profileContext, topic.Title,
		markerBlocker, markerValidation)
}

func jobSearchPrompt(profile *model.CareerProfile) string {
	return fmt.Sprintf(`Search for 3-4 real-time job openings for the role of %q.
The candidate has these skills: %s.
Compare the candidate to these jobs and provide a match percentage and a list of missing skills for each.`,
		profile.TargetRole(), strings.Join(profile.SkillNames(), ", "))
}

const jobSearchInstruction = `Return a structured JSON list of jobs.
Each job object must have: id, title, company, location, matchPercentage (number), missingSkills (array), and sourceUrl.
Ensure you only return real, current jobs found via search.`

func suggestionsPrompt(profile *model.CareerProfile) string {
	return fmt.Sprintf("Suggest 3 high-impact learning path titles and short descriptions for someone who is a %s and wants to become a %s. Use their current skills: %s.",
		profile.JobRole,
		strings.Join(profile.TargetRoles, ", "),
		strings.Join(profile.SkillNames(), ", "))
}

func curriculumPrompt(goal, description string, profile *model.CareerProfile, opts PathOptions) string {
	timeline := opts.Timeline
	if timeline == "" {
		timeline = "6"
	}
	userContext := fmt.Sprintf("Goal: %s\nContext: %s\nTimeline: %s months", goal, description, timeline)
	if opts.Scope != "" {
		userContext += "\nScope: " + opts.Scope
	}
	if opts.Technologies != "" {
		userContext += "\nTechnologies: " + opts.Technologies
	}
	if opts.UseProfile && profile != nil {
		userContext += "\nCurrent Skills: " + strings.Join(profile.SkillNames(), ", ")
	}
	return fmt.Sprintf("Design an expert curriculum for: %q.\n\n%s.", goal, userContext)
}

func interviewerInstruction(profile *model.CareerProfile) string {
	return fmt.Sprintf(`You are a professional interviewer conducting a mock interview for the role of %q.
Ask one question at a time, listen to the candidate's spoken answer, then follow up or move on.
Keep questions relevant to the role and the candidate's skills: %s.
Be realistic but encouraging; give brief verbal feedback when the candidate finishes an answer.`,
		profile.TargetRole(), strings.Join(profile.SkillNames(), ", "))
}
