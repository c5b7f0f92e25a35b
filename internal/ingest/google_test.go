package ingest

import (
	"errors"
	"testing"

	"github.com/callsift/callsift/internal/model"
)

func TestGoogle_Parse_TopAlternative(t *testing.T) {
	adapter := NewGoogle()

	input := `{
	  "results": [
	    {
	      "alternatives": [
	        {
	          "transcript": "goedemorgen mevrouw",
	          "confidence": 0.91,
	          "words": [
	            {"startTime": "0s", "endTime": "0.700s", "word": "goedemorgen", "confidence": 0.95},
	            {"startTime": "0.700s", "endTime": "1.300s", "word": "mevrouw", "speakerTag": 2}
	          ]
	        },
	        {"transcript": "goede morgen mevrouw", "confidence": 0.44, "words": []}
	      ]
	    },
	    {
	      "alternatives": [
	        {
	          "transcript": "tot ziens",
	          "words": [
	            {"startTime": "5.100s", "endTime": "5.600s", "word": "tot"},
	            {"startTime": "5.600s", "endTime": "6s", "word": "ziens"}
	          ]
	        }
	      ]
	    }
	  ]
	}`

	tokens, err := adapter.Parse(input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{"goedemorgen", "mevrouw", "tot", "ziens"}
	if len(tokens) != len(want) {
		t.Fatalf("Expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, term := range want {
		if tokens[i].Term != term {
			t.Errorf("Token %d: expected %q, got %q", i, term, tokens[i].Term)
		}
	}

	// Per-word confidence wins over the alternative confidence
	if tokens[0].Confidence == nil || *tokens[0].Confidence != 0.95 {
		t.Errorf("Expected word confidence 0.95, got %v", tokens[0].Confidence)
	}
	// No word confidence: fall back to the alternative
	if tokens[1].Confidence == nil || *tokens[1].Confidence != 0.91 {
		t.Errorf("Expected fallback confidence 0.91, got %v", tokens[1].Confidence)
	}
	// Neither: stays absent
	if tokens[2].Confidence != nil {
		t.Errorf("Expected absent confidence, got %v", tokens[2].Confidence)
	}

	if tokens[1].Speaker != "2" {
		t.Errorf("Expected speaker '2', got %q", tokens[1].Speaker)
	}
	if tokens[1].End == nil || *tokens[1].End != 1.3 {
		t.Errorf("Expected end 1.3, got %v", tokens[1].End)
	}
}

func TestGoogle_Parse_InvalidJSON(t *testing.T) {
	adapter := NewGoogle()

	_, err := adapter.Parse("{not json")
	var ferr *model.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("Expected FormatError, got %v", err)
	}
	if ferr.Format != FormatGoogle {
		t.Errorf("Expected format %q, got %q", FormatGoogle, ferr.Format)
	}
}

func TestGoogle_Parse_BadDuration(t *testing.T) {
	adapter := NewGoogle()

	input := `{"results":[{"alternatives":[{"words":[{"startTime":"1.3","endTime":"2s","word":"x"}]}]}]}`
	_, err := adapter.Parse(input)
	var ferr *model.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("Expected FormatError for a duration without suffix, got %v", err)
	}
}
