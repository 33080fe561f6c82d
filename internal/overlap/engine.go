package overlap

import (
	"context"
	"log/slog"
	"time"

	"github.com/ayanbhoumick/Plagiarism/internal/config"
	"github.com/ayanbhoumick/Plagiarism/internal/logging"
	"github.com/ayanbhoumick/Plagiarism/internal/services"
)

// Engine applies configured thresholds to Compare and MatchSentences and
// logs each run.
type Engine struct {
	logger  *slog.Logger
	policy  RiskPolicy
	match   MatchOptions
	workers int
}

// Option customises the Engine.
type Option func(*Engine)

// WithRiskPolicy overrides the configured risk boundaries.
func WithRiskPolicy(policy RiskPolicy) Option {
	return func(e *Engine) {
		e.policy = policy
	}
}

// WithMatchOptions overrides the configured sentence matching options.
func WithMatchOptions(opts MatchOptions) Option {
	return func(e *Engine) {
		e.match = opts
	}
}

// WithWorkers overrides the configured pair scoring concurrency.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// New builds an Engine from cfg. A nil cfg uses config.Default.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Engine {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	minLength := cfg.Analysis.MinSentenceLength
	if minLength == 0 {
		minLength = -1
	}
	e := &Engine{
		logger: logging.NewComponentLogger(logger, component),
		policy: RiskPolicy{
			ModerateAbove: cfg.Risk.ModerateAbove,
			CriticalAbove: cfg.Risk.CriticalAbove,
		},
		match: MatchOptions{
			Threshold:  cfg.Analysis.MatchThreshold,
			MinLength:  minLength,
			MaxResults: cfg.Analysis.MaxMatches,
		},
		workers: cfg.Analysis.Workers,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Policy returns the risk policy in effect.
func (e *Engine) Policy() RiskPolicy {
	return e.policy.orDefault()
}

// MatchOptions returns the sentence matching options in effect.
func (e *Engine) MatchOptions() MatchOptions {
	return e.match.normalized()
}

// Compare scores every unordered pair of docs.
func (e *Engine) Compare(ctx context.Context, docs []Document) ([]ComparisonResult, error) {
	ctx = services.WithStage(ctx, "compare")
	logger := logging.WithContext(ctx, e.logger)
	started := time.Now()

	results, err := Compare(ctx, docs, CompareOptions{Policy: e.policy, Workers: e.workers})
	if err != nil {
		logger.Error("document comparison failed",
			logging.Int("documents", len(docs)),
			logging.Error(err),
			logging.String(logging.FieldEventType, "compare_failed"),
			logging.String(logging.FieldErrorHint, services.Hint(err)),
		)
		return nil, err
	}

	counts := make(map[RiskLevel]int, 3)
	for _, r := range results {
		counts[r.Risk]++
	}
	logger.Info("documents compared",
		logging.Int("documents", len(docs)),
		logging.Int("pairs", len(results)),
		logging.Int("critical", counts[RiskCritical]),
		logging.Int("moderate", counts[RiskModerate]),
		logging.Int("low", counts[RiskLow]),
		logging.Duration("elapsed", time.Since(started)),
	)
	return results, nil
}

// Evidence runs sentence matching for one compared pair. A matching failure
// is logged and yields an empty report.
func (e *Engine) Evidence(ctx context.Context, result ComparisonResult) MatchReport {
	ctx = services.WithStage(ctx, "evidence")
	logger := logging.WithContext(ctx, e.logger)

	report := MatchSentences(result.TextA, result.TextB, e.match)
	if report.Err != nil {
		logging.WarnWithContext(logger, "sentence matching failed",
			"sentence_match_failed",
			logging.String("doc_a", result.DocA),
			logging.String("doc_b", result.DocB),
			logging.Error(report.Err),
			logging.String(logging.FieldImpact, "no sentence evidence for this pair"),
		)
		return report
	}
	logger.Debug("sentence evidence collected",
		logging.String("doc_a", result.DocA),
		logging.String("doc_b", result.DocB),
		logging.Int("sentences_a", report.SentencesA),
		logging.Int("sentences_b", report.SentencesB),
		logging.Int("matches", len(report.Matches)),
		logging.Int("total", report.Total),
	)
	return report
}
