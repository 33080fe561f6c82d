package overlap

import "fmt"

// RiskLevel is the discrete tier attached to a similarity score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskCritical RiskLevel = "CRITICAL"
)

// RiskPolicy holds the score boundaries between tiers. Each boundary is
// exclusive below: a score equal to CriticalAbove is MODERATE.
type RiskPolicy struct {
	ModerateAbove float64
	CriticalAbove float64
}

// DefaultRiskPolicy returns the canonical 0.4 / 0.7 policy.
func DefaultRiskPolicy() RiskPolicy {
	return RiskPolicy{ModerateAbove: 0.4, CriticalAbove: 0.7}
}

// Validate checks that the boundaries split [0,1] into three ordered tiers.
func (p RiskPolicy) Validate() error {
	if p.ModerateAbove < 0 || p.ModerateAbove > 1 {
		return fmt.Errorf("moderate boundary %.4f outside [0,1]", p.ModerateAbove)
	}
	if p.CriticalAbove < 0 || p.CriticalAbove > 1 {
		return fmt.Errorf("critical boundary %.4f outside [0,1]", p.CriticalAbove)
	}
	if p.ModerateAbove >= p.CriticalAbove {
		return fmt.Errorf("moderate boundary %.4f must be below critical boundary %.4f", p.ModerateAbove, p.CriticalAbove)
	}
	return nil
}

// Classify maps a score to its tier.
func (p RiskPolicy) Classify(score float64) RiskLevel {
	switch {
	case score > p.CriticalAbove:
		return RiskCritical
	case score > p.ModerateAbove:
		return RiskModerate
	default:
		return RiskLow
	}
}

// ClassifyRisk applies DefaultRiskPolicy.
func ClassifyRisk(score float64) RiskLevel {
	return DefaultRiskPolicy().Classify(score)
}

func (p RiskPolicy) orDefault() RiskPolicy {
	if p == (RiskPolicy{}) {
		return DefaultRiskPolicy()
	}
	return p
}
