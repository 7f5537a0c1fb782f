package models

import "github.com/google/uuid"

// AnalysisResult is the normalized outcome of one model analysis call.
type AnalysisResult struct {
	Rating         int      `json:"rating"`
	Summary        string   `json:"summary"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Recommendation string   `json:"recommendation"`
}

// AnalyzedCandidate pairs an AnalysisResult with the candidate's identity
// and original application details for the batch report.
type AnalyzedCandidate struct {
	ApplicationID  uuid.UUID `json:"applicationId"`
	CandidateName  string    `json:"candidateName"`
	CandidateEmail string    `json:"candidateEmail"`
	ExpectedSalary int       `json:"expectedSalary"`
	Rating         int       `json:"rating"`
	Summary        string    `json:"summary"`
	Strengths      []string  `json:"strengths,omitempty"`
	Weaknesses     []string  `json:"weaknesses,omitempty"`
	Recommendation string    `json:"recommendation"`
	WhyJoinRole    string    `json:"whyJoinRole"`
	Status         string    `json:"status"`
}

type FailedAnalysis struct {
	CandidateName string `json:"candidateName"`
	Error         string `json:"error"`
}

// BatchAnalysisReport aggregates per-application results for one job post.
// FailedAnalyses serializes as null when no failures occurred.
type BatchAnalysisReport struct {
	Message                  string              `json:"message"`
	JobPostTitle             string              `json:"jobPostTitle"`
	TotalPendingApplications int                 `json:"totalPendingApplications"`
	AnalyzedCount            int                 `json:"analyzedCount"`
	FailedCount              int                 `json:"failedCount"`
	AnalyzedCandidates       []AnalyzedCandidate `json:"analyzedCandidates"`
	FailedAnalyses           []FailedAnalysis    `json:"failedAnalyses"`
}

type AnalyzeCandidateRequest struct {
	JobPostID      string `json:"jobPostId" validate:"required,uuid"`
	RequesterID    string `json:"requesterId" validate:"required,uuid"`
	ExpectedSalary int    `json:"expectedSalary" validate:"required"`
	WhyJoinRole    string `json:"whyJoinRole" validate:"required"`
	Resume         string `json:"resume" validate:"required"`
}

type AnalyzeCandidateResponse struct {
	Message        string   `json:"message"`
	Rating         int      `json:"rating"`
	Summary        string   `json:"summary"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Recommendation string   `json:"recommendation"`
}

type AnalyzeAllRequest struct {
	JobPostID   string `json:"jobPostId" validate:"required,uuid"`
	RequesterID string `json:"requesterId" validate:"required,uuid"`
}
