package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"windfit/domain/core"
	"windfit/domain/wind"
	"windfit/internal"
	"windfit/internal/analysis"
	"windfit/ports"

	"golang.org/x/sync/semaphore"
)

// ErrUnknownStrategy is returned when a request names an estimation
// strategy the service does not provide
var ErrUnknownStrategy = errors.New("unknown estimation strategy")

// Options configures the assessment pipeline
type Options struct {
	// DefaultStrategy is used when a request does not name one
	DefaultStrategy  string
	MLETolerance     float64
	MLEMaxIterations int
	// MaxConcurrent bounds batch fan-out; each pipeline is independent
	MaxConcurrent int64
	Logger        *internal.Logger
}

// AssessmentService runs the full estimation pipeline for one sample:
// statistics, parameter estimation, distribution modeling, characteristic
// speeds, goodness-of-fit validation and energy profiling. Every stage is
// a pure function of its inputs, so concurrent runs need no coordination.
type AssessmentService struct {
	repo            ports.AssessmentRepository
	moment          analysis.MomentEstimator
	mle             *analysis.MLEEstimator
	energy          *analysis.EnergyCalculator
	defaultStrategy string
	sem             *semaphore.Weighted
	logger          *internal.Logger
}

// NewAssessmentService wires the pipeline
func NewAssessmentService(repo ports.AssessmentRepository, energy *analysis.EnergyCalculator, opts Options) *AssessmentService {
	if opts.DefaultStrategy == "" {
		opts.DefaultStrategy = wind.StrategyMoment
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 4
	}
	if opts.Logger == nil {
		opts.Logger = internal.NewDefaultLogger()
	}
	if energy == nil {
		energy = analysis.NewEnergyCalculator(0, 0, nil)
	}
	return &AssessmentService{
		repo:            repo,
		moment:          analysis.NewMomentEstimator(),
		mle:             analysis.NewMLEEstimator(opts.MLETolerance, opts.MLEMaxIterations),
		energy:          energy,
		defaultStrategy: opts.DefaultStrategy,
		sem:             semaphore.NewWeighted(opts.MaxConcurrent),
		logger:          opts.Logger,
	}
}

// Assess runs the pipeline for one sample and persists the result.
// Estimation failures surface unmodified; nothing substitutes a default fit.
func (s *AssessmentService) Assess(ctx context.Context, sample wind.Sample, strategy string) (*wind.Assessment, error) {
	estimator, err := s.estimatorFor(strategy)
	if err != nil {
		return nil, err
	}

	stats, err := analysis.ComputeSampleStats(sample)
	if err != nil {
		return nil, err
	}

	params, err := estimator.Estimate(sample, stats)
	if err != nil {
		return nil, err
	}

	model, err := analysis.NewModel(params)
	if err != nil {
		return nil, err
	}

	speeds, err := analysis.ComputeCharacteristicSpeeds(params)
	if err != nil {
		return nil, err
	}

	fit, err := analysis.Validate(sample, model, stats)
	if err != nil {
		return nil, err
	}

	energy, err := s.energy.Profile(params, speeds)
	if err != nil {
		return nil, err
	}

	assessment := &wind.Assessment{
		ID:            core.NewID(),
		Label:         sample.Label,
		N:             sample.Len(),
		Stats:         stats,
		Parameters:    params,
		Summary:       model.Summary(),
		Speeds:        speeds,
		Fit:           fit,
		Energy:        energy,
		Strategy:      estimator.Name(),
		LowConfidence: stats.LowConfidence,
		CreatedAt:     core.Now(),
	}

	if s.repo != nil {
		if err := s.repo.Save(ctx, assessment); err != nil {
			return nil, fmt.Errorf("save assessment %s: %w", assessment.ID, err)
		}
	}

	s.logger.Info("assessed %q: n=%d k=%.3f c=%.2f class=%s",
		sample.Label, sample.Len(), params.K, params.C, energy.ResourceClass)
	if stats.LowConfidence {
		s.logger.Warn("sample %q has only %d observations, estimate is low-confidence",
			sample.Label, sample.Len())
	}
	if fit.PoorFit {
		s.logger.Warn("sample %q fit is poor: r_squared=%.3f", sample.Label, fit.RSquared)
	}

	return assessment, nil
}

// BatchResult pairs one sample's assessment with its failure, if any
type BatchResult struct {
	Label      string
	Assessment *wind.Assessment
	Err        error
}

// AssessBatch runs independent samples concurrently. One failed region
// never aborts the others; each result carries its own outcome.
func (s *AssessmentService) AssessBatch(ctx context.Context, samples []wind.Sample, strategy string) []BatchResult {
	results := make([]BatchResult, len(samples))

	var wg sync.WaitGroup
	for i, sample := range samples {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			results[i] = BatchResult{Label: sample.Label, Err: err}
			continue
		}
		wg.Add(1)
		go func(i int, sample wind.Sample) {
			defer wg.Done()
			defer s.sem.Release(1)
			a, err := s.Assess(ctx, sample, strategy)
			results[i] = BatchResult{Label: sample.Label, Assessment: a, Err: err}
		}(i, sample)
	}
	wg.Wait()

	return results
}

// Get retrieves a stored assessment by ID
func (s *AssessmentService) Get(ctx context.Context, id core.ID) (*wind.Assessment, error) {
	if s.repo == nil {
		return nil, core.ErrAssessmentNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// List retrieves recent assessments, optionally filtered by region label
func (s *AssessmentService) List(ctx context.Context, label string, limit int) ([]*wind.Assessment, error) {
	if s.repo == nil {
		return nil, nil
	}
	if label != "" {
		return s.repo.ListByLabel(ctx, label, limit)
	}
	return s.repo.List(ctx, limit)
}

func (s *AssessmentService) estimatorFor(strategy string) (analysis.Estimator, error) {
	if strategy == "" {
		strategy = s.defaultStrategy
	}
	switch strategy {
	case wind.StrategyMoment:
		return s.moment, nil
	case wind.StrategyMLE:
		return s.mle, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}
