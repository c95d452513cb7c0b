package grading

import (
	"fmt"
	"strings"
)

// Prompt sizing limits: the excerpt keeps the call cheap, the skill and
// project caps keep it focused.
const (
	maxResumeExcerpt  = 3000
	maxPromptSkills   = 20
	maxPromptProjects = 5
	maxProjectSummary = 200
)

// responseShape describes the JSON payload the model must return.
const responseShape = `{
  "overall_score": "number (0-100)",
  "letter_grade": "string (A+ to F)",
  "grade_description": "string",
  "market_tier": "string",
  "component_scores": {
    "technical_depth": "number (0-100)",
    "project_quality": "number (0-100)",
    "capability_strength": "number (0-100)",
    "experience_quality": "number (0-100)",
    "completeness": "number (0-100)",
    "competitiveness": "number (0-100)"
  },
  "strengths": ["string"],
  "weaknesses": ["string"],
  "improvement_areas": ["string"],
  "competitive_position": "string",
  "percentile_rank": "string",
  "justification": "string (why this grade?)"
}`

// buildGradingPrompt assembles the grading request: resume excerpt, top
// skills, project summaries, rubric and the required response shape.
func buildGradingPrompt(input Input) string {
	excerpt := input.ResumeText
	if len(excerpt) > maxResumeExcerpt {
		excerpt = excerpt[:maxResumeExcerpt]
	}

	skills := input.DetectedSkills
	if len(skills) > maxPromptSkills {
		skills = skills[:maxPromptSkills]
	}

	var projectLines []string
	for i, p := range input.ProjectAnalysis.DetailedProjects {
		if i >= maxPromptProjects {
			break
		}
		desc := p.Description
		if len(desc) > maxProjectSummary {
			desc = desc[:maxProjectSummary]
		}
		projectLines = append(projectLines, fmt.Sprintf("- %s: %s", p.Title, desc))
	}
	projectSummary := strings.Join(projectLines, "\n")
	if projectSummary == "" {
		projectSummary = "No structured projects detected"
	}

	return fmt.Sprintf(`You are an expert technical recruiter and resume evaluator with 15+ years of experience at FAANG companies.

TASK: Analyze this resume and provide an accurate, realistic grade.

RESUME TEXT:
%s

DETECTED SKILLS (%d total):
%s

TOP PROJECTS/EXPERIENCE:
%s

GRADING GUIDELINES:
1. Be REALISTIC - don't give A+ to everyone, but don't be overly harsh either
2. Consider CONTEXT - did they use skills in complex, real-world scenarios?
3. Evaluate DEPTH - do descriptions show expertise or just mention keywords?
4. Compare to MARKET - how competitive is this resume for their level?

SCORING RUBRIC:
- A+/A (90-100): FAANG-ready, exceptional depth, proven complex projects
- B+/B (80-89): Strong senior professional, solid experience, good depth
- C+/C (70-79): Mid-level professional, decent skills, room for growth
- D+/D (60-69): Junior/Entry-level, basic skills, limited depth
- F (<60): Minimal experience, very limited skills

COMPONENT SCORES (each 0-100):
- technical_depth: Breadth and depth of technical skills
- project_quality: Complexity, impact, and scale of projects
- capability_strength: Actual mastery level demonstrated
- experience_quality: Years, roles, and responsibilities
- completeness: Resume structure and information quality
- competitiveness: How competitive in current job market

Provide detailed, actionable feedback. Be honest but constructive.

IMPORTANT: Respond ONLY with valid JSON matching this schema.
Keep text descriptions CONCISE and professional to ensure valid JSON output.
%s

Do not include any explanation or markdown formatting. Just the raw JSON.`,
		excerpt, len(input.DetectedSkills), strings.Join(skills, ", "), projectSummary, responseShape)
}
