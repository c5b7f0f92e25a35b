package score

import (
	"fmt"
	"math"

	"github.com/callsift/callsift/internal/model"
	"github.com/callsift/callsift/internal/transcript"
)

// Correction strategy names accepted by ForName.
const (
	CorrectionDuration    = "duration"
	CorrectionLogDuration = "logduration"
	CorrectionWordCount   = "wordcount"
	CorrectionNone        = "none"
)

// Correction computes the normalization divisor that makes scores comparable
// across transcripts of different lengths and durations.
type Correction interface {
	// Name returns the strategy identifier.
	Name() string

	// Factor returns the divisor for a transcript. Strategies that need
	// timing the transcript lacks fail with *model.MissingTimingError;
	// strategies undefined on the transcript's duration fail with
	// *model.InvalidDurationError.
	Factor(t *transcript.Transcript) (float64, error)
}

// ForName returns the correction strategy with the given name.
func ForName(name string) (Correction, error) {
	switch name {
	case CorrectionDuration:
		return durationCorrection{}, nil
	case CorrectionLogDuration:
		return logDurationCorrection{}, nil
	case CorrectionWordCount:
		return wordCountCorrection{}, nil
	case CorrectionNone:
		return noCorrection{}, nil
	default:
		return nil, fmt.Errorf("unknown correction strategy %q (want %s, %s, %s or %s)",
			name, CorrectionDuration, CorrectionLogDuration, CorrectionWordCount, CorrectionNone)
	}
}

// Corrections lists the supported strategy names.
func Corrections() []string {
	return []string{CorrectionDuration, CorrectionLogDuration, CorrectionWordCount, CorrectionNone}
}

type durationCorrection struct{}

func (durationCorrection) Name() string { return CorrectionDuration }

func (durationCorrection) Factor(t *transcript.Transcript) (float64, error) {
	d, err := t.Duration()
	if err != nil {
		return 0, &model.MissingTimingError{Strategy: CorrectionDuration}
	}
	if d <= 0 {
		return 0, &model.InvalidDurationError{Strategy: CorrectionDuration, Duration: d}
	}
	return d, nil
}

type logDurationCorrection struct{}

func (logDurationCorrection) Name() string { return CorrectionLogDuration }

func (logDurationCorrection) Factor(t *transcript.Transcript) (float64, error) {
	d, err := t.Duration()
	if err != nil {
		return 0, &model.MissingTimingError{Strategy: CorrectionLogDuration}
	}
	// log10 is non-positive for durations up to one second, which would
	// divide scores by zero or flip their sign.
	if d <= 1 {
		return 0, &model.InvalidDurationError{Strategy: CorrectionLogDuration, Duration: d}
	}
	return math.Log10(d), nil
}

type wordCountCorrection struct{}

func (wordCountCorrection) Name() string { return CorrectionWordCount }

// Factor counts all tokens, duplicates included.
func (wordCountCorrection) Factor(t *transcript.Transcript) (float64, error) {
	return float64(t.TokenCount()), nil
}

type noCorrection struct{}

func (noCorrection) Name() string { return CorrectionNone }

func (noCorrection) Factor(*transcript.Transcript) (float64, error) {
	return 1, nil
}
