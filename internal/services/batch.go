package services

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"hirehub/hirehub-api/internal/models"
	"hirehub/hirehub-api/internal/repositories"
)

// BatchAnalyzer analyzes every pending application for a job post, isolating
// per-candidate failures and ranking the successes.
type BatchAnalyzer interface {
	AnalyzeAllPending(ctx context.Context, jobPostID, requesterID uuid.UUID) (*models.BatchAnalysisReport, error)
}

type batchAnalyzer struct {
	jobPostRepo repositories.JobPostRepository
	appRepo     repositories.JobApplicationRepository
	analyzer    CandidateAnalyzer
	concurrency int
	log         *zap.Logger
}

func NewBatchAnalyzer(
	jobPostRepo repositories.JobPostRepository,
	appRepo repositories.JobApplicationRepository,
	analyzer CandidateAnalyzer,
	concurrency int,
	log *zap.Logger,
) BatchAnalyzer {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &batchAnalyzer{
		jobPostRepo: jobPostRepo,
		appRepo:     appRepo,
		analyzer:    analyzer,
		concurrency: concurrency,
		log:         log,
	}
}

type analysisOutcome struct {
	candidate *models.AnalyzedCandidate
	failure   *models.FailedAnalysis
}

// AnalyzeAllPending implements BatchAnalyzer. A failure of one candidate's
// analysis is recorded and the batch continues; the whole call fails only
// when ownership, lookup or every single analysis fails.
func (b *batchAnalyzer) AnalyzeAllPending(ctx context.Context, jobPostID, requesterID uuid.UUID) (*models.BatchAnalysisReport, error) {
	job, err := b.jobPostRepo.FindByID(jobPostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "job post"}
		}
		return nil, err
	}

	if job.HRID != requesterID {
		return nil, &AuthorizationError{Message: "Not authorized to analyze applications for this job."}
	}

	apps, err := b.appRepo.FindPendingByJobPost(jobPostID)
	if err != nil {
		return nil, err
	}

	if len(apps) == 0 {
		return &models.BatchAnalysisReport{
			Message:            "No pending applications found",
			JobPostTitle:       job.JobTitle,
			AnalyzedCandidates: []models.AnalyzedCandidate{},
		}, nil
	}

	b.log.Info("starting batch analysis",
		zap.String("job_post_id", jobPostID.String()),
		zap.Int("pending", len(apps)),
	)

	// Outcomes are collected by index so ties in the final ranking keep the
	// order in which applications were encountered.
	outcomes := make([]analysisOutcome, len(apps))

	var g errgroup.Group
	g.SetLimit(b.concurrency)

	for i := range apps {
		app := &apps[i]
		g.Go(func() error {
			result, err := b.analyzer.AnalyzeApplication(ctx, job, app)
			if err != nil {
				b.log.Warn("candidate analysis failed",
					zap.String("candidate", app.Candidate.FullName),
					zap.Error(err),
				)
				outcomes[i] = analysisOutcome{failure: &models.FailedAnalysis{
					CandidateName: app.Candidate.FullName,
					Error:         err.Error(),
				}}
				return nil
			}

			outcomes[i] = analysisOutcome{candidate: &models.AnalyzedCandidate{
				ApplicationID:  app.ID,
				CandidateName:  app.Candidate.FullName,
				CandidateEmail: app.Candidate.Email,
				ExpectedSalary: app.ExpectedSalary,
				Rating:         result.Rating,
				Summary:        result.Summary,
				Strengths:      result.Strengths,
				Weaknesses:     result.Weaknesses,
				Recommendation: result.Recommendation,
				WhyJoinRole:    app.WhyJoinRole,
				Status:         "analyzed",
			}}
			return nil
		})
	}
	g.Wait()

	analyzed := make([]models.AnalyzedCandidate, 0, len(apps))
	var failed []models.FailedAnalysis
	for _, outcome := range outcomes {
		if outcome.candidate != nil {
			analyzed = append(analyzed, *outcome.candidate)
		}
		if outcome.failure != nil {
			failed = append(failed, *outcome.failure)
		}
	}

	if len(analyzed) == 0 {
		return nil, &EmptyResultError{FailedCount: len(failed)}
	}

	sort.SliceStable(analyzed, func(i, j int) bool {
		return analyzed[i].Rating > analyzed[j].Rating
	})

	return &models.BatchAnalysisReport{
		Message:                  "Candidates analyzed successfully",
		JobPostTitle:             job.JobTitle,
		TotalPendingApplications: len(apps),
		AnalyzedCount:            len(analyzed),
		FailedCount:              len(failed),
		AnalyzedCandidates:       analyzed,
		FailedAnalyses:           failed,
	}, nil
}
