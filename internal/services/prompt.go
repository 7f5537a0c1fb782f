package services

import (
	"fmt"
	"strings"

	"hirehub/hirehub-api/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCandidateAnalysisPrompt creates the full analysis prompt for a single
// candidate. The model is asked for rating, summary, strengths, weaknesses
// and recommendation; the normalizer defaults any field it omits.
func (pb *PromptBuilder) BuildCandidateAnalysisPrompt(job *models.JobPost, expectedSalary int, whyJoinRole, resumeText string) string {
	return fmt.Sprintf(`Analyze the following candidate profile for the job post. Provide a rating out of 10 and key insights.

Job Details:
Title: %s
Description: %s
Skills Required: %s
Location: %s

Candidate Resume (extracted):
%s

Candidate Expected Salary: ₹%d
Why Candidate Wants This Role:
%s

Provide response in JSON format with fields: rating (1-10), summary (brief), strengths (array), weaknesses (array), recommendation (hire/consider/pass)`,
		job.JobTitle,
		job.JobDescription,
		strings.Join(job.SkillsRequired, ", "),
		job.Location,
		resumeText,
		expectedSalary,
		whyJoinRole,
	)
}

// BuildBatchAnalysisPrompt creates the terser per-candidate prompt used in
// batch mode. Only rating, summary and recommendation are requested, so
// strengths and weaknesses legitimately come back empty.
func (pb *PromptBuilder) BuildBatchAnalysisPrompt(job *models.JobPost, expectedSalary int, whyJoinRole, resumeText string) string {
	return fmt.Sprintf(`Analyze the following candidate profile for the job post. Provide a rating out of 10.

Job: %s
Required Skills: %s
Location: %s

Candidate Resume:
%s

Expected Salary: ₹%d
Why They Want This Role:
%s

Respond in JSON: {rating (1-10), summary (brief), recommendation (hire/consider/pass)}`,
		job.JobTitle,
		strings.Join(job.SkillsRequired, ", "),
		job.Location,
		resumeText,
		expectedSalary,
		whyJoinRole,
	)
}
