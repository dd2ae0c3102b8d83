package qmitigate

import "fmt"

// TrainingConfig holds the knobs for near-Clifford projection.
type TrainingConfig struct {
	Select       SelectionPolicy
	Replace      ReplacementPolicy
	SigmaSelect  float64
	SigmaReplace float64
	Seed         int64
}

func NewTrainingConfig() *TrainingConfig {
	return &TrainingConfig{
		Select:       SelectRandom,
		Replace:      ReplaceClosest,
		SigmaSelect:  0.5,
		SigmaReplace: 0.5,
		Seed:         1,
	}
}

// validate rejects unrecognized policies before any work is done.
func (cfg *TrainingConfig) validate() error {
	switch cfg.Select {
	case SelectRandom, SelectProbabilistic:
	default:
		return fmt.Errorf("unknown selection policy %v", cfg.Select)
	}
	switch cfg.Replace {
	case ReplaceClosest, ReplaceRandom, ReplaceProbabilistic:
	default:
		return fmt.Errorf("unknown replacement policy %v", cfg.Replace)
	}
	return nil
}
