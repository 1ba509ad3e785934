package entity

import (
	"strconv"
	"strings"
)

// Label is the simplified two-class verdict returned to clients
type Label string

// Label values
const (
	LabelToxic    Label = "Toxic"
	LabelNotToxic Label = "Not Toxic"
)

const (
	// ConfidenceThreshold is the inclusive score a toxicity label must reach to be reported as Toxic
	ConfidenceThreshold = 0.5

	// ToxicityMarker must appear (case-insensitive) in the raw model label for a Toxic verdict
	ToxicityMarker = "toxicity"

	confidenceDecimals = 3
)

// IsToxic reports whether the label is the Toxic class
func (l Label) IsToxic() bool {
	return l == LabelToxic
}

// String implements fmt.Stringer
func (l Label) String() string {
	return string(l)
}

// Prediction is the mapped classification for a single text
type Prediction struct {
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
}

// NewPrediction maps the model's top label and score onto a Prediction.
// Confidence is always the raw score rounded to three decimals, whatever the label.
func NewPrediction(rawLabel string, rawScore float64) *Prediction {
	return &Prediction{
		Label:      MapLabel(rawLabel, rawScore),
		Confidence: RoundConfidence(rawScore),
	}
}

// MapLabel returns Toxic iff rawLabel contains "toxicity" and score >= 0.5
func MapLabel(rawLabel string, score float64) Label {
	if strings.Contains(strings.ToLower(rawLabel), ToxicityMarker) && score >= ConfidenceThreshold {
		return LabelToxic
	}
	return LabelNotToxic
}

// RoundConfidence rounds a score to three decimal places. The exact binary
// value is rounded, with true ties going to the even digit, so 0.0045 (stored
// just below the tie) becomes 0.004 and 0.0625 becomes 0.062.
func RoundConfidence(score float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(score, 'f', confidenceDecimals, 64), 64)
	if err != nil {
		return score
	}
	return rounded
}
