package model

import "errors"

var ErrEmptyOutput = errors.New("model returned no scores")

// Argmax returns the index of the largest score. Ties resolve to the lowest index.
func Argmax(scores []float32) (int, error) {
	if len(scores) == 0 {
		return 0, ErrEmptyOutput
	}

	maxIdx := 0
	maxVal := scores[0]
	for i, val := range scores[1:] {
		if val > maxVal {
			maxVal = val
			maxIdx = i + 1
		}
	}
	return maxIdx, nil
}

// NewPrediction maps an output vector onto the class list. Scores past the
// last class are ignored.
func NewPrediction(output []float32, classes []string) (*Prediction, error) {
	if len(output) > len(classes) {
		output = output[:len(classes)]
	}

	idx, err := Argmax(output)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]float32, len(output))
	for i, val := range output {
		scores[classes[i]] = val
	}

	return &Prediction{
		Index:      idx,
		Class:      classes[idx],
		Confidence: output[idx],
		Scores:     scores,
	}, nil
}
