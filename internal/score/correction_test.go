package score

import (
	"errors"
	"math"
	"testing"

	"github.com/callsift/callsift/internal/model"
	"github.com/callsift/callsift/internal/transcript"
)

func TestForName_AllStrategies(t *testing.T) {
	for _, name := range Corrections() {
		corr, err := ForName(name)
		if err != nil {
			t.Errorf("Strategy %q: expected no error, got %v", name, err)
			continue
		}
		if corr.Name() != name {
			t.Errorf("Strategy %q names itself %q", name, corr.Name())
		}
	}
}

func TestForName_Unknown(t *testing.T) {
	if _, err := ForName("bogus"); err == nil {
		t.Error("Expected an error for an unknown strategy name")
	}
}

func TestCorrectionFactors(t *testing.T) {
	tr := transcript.FromTokens([]model.Token{
		model.TimedToken("een", 0.0, 5.0, 1.0),
		model.TimedToken("twee", 5.0, 10.0, 1.0),
		model.TimedToken("twee", 10.0, 100.0, 1.0),
	})

	cases := []struct {
		corr Correction
		want float64
	}{
		{durationCorrection{}, 100.0},
		{logDurationCorrection{}, 2.0}, // log10(100)
		{wordCountCorrection{}, 3.0},
		{noCorrection{}, 1.0},
	}

	for _, tc := range cases {
		got, err := tc.corr.Factor(tr)
		if err != nil {
			t.Errorf("%s: expected no error, got %v", tc.corr.Name(), err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: expected factor %v, got %v", tc.corr.Name(), tc.want, got)
		}
	}
}

func TestLogDuration_RejectsNonPositiveLog(t *testing.T) {
	cases := []struct {
		name  string
		start float64
		end   float64
	}{
		{"one second elapsed gives a zero divisor", 0.0, 1.0},
		{"sub-second elapsed gives a negative divisor", 0.0, 0.5},
	}

	for _, tc := range cases {
		tr := transcript.FromTokens([]model.Token{
			model.TimedToken("hallo", tc.start, tc.end, 1.0),
		})

		_, err := logDurationCorrection{}.Factor(tr)
		var invalid *model.InvalidDurationError
		if !errors.As(err, &invalid) {
			t.Errorf("%s: expected InvalidDurationError, got %v", tc.name, err)
			continue
		}
		if invalid.Strategy != CorrectionLogDuration {
			t.Errorf("%s: expected the error to name %q, got %q", tc.name, CorrectionLogDuration, invalid.Strategy)
		}
	}
}

func TestWordCount_TotalNotUnique(t *testing.T) {
	tr := transcript.FromTokens([]model.Token{
		model.NewToken("loan"),
		model.NewToken("loan"),
		model.NewToken("loan"),
	})

	got, err := wordCountCorrection{}.Factor(tr)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != 3.0 {
		t.Errorf("Expected total token count 3, got %v", got)
	}
}
