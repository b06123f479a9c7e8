package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvcluster/clustering"
)

// GroundTruthKey is the object key holding the label array.
const GroundTruthKey = "ground truth"

// ReadGroundTruthFile opens path and parses it with ReadGroundTruth.
func ReadGroundTruthFile(path string) (clustering.Assignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ground truth file '%s': %w", path, err)
	}
	defer f.Close()

	return ReadGroundTruth(f)
}

// ReadGroundTruth parses a ground-truth labeling. Accepted shapes:
//
//	{"ground truth": [0, 0, 1]}
//	{"ground truth": "[0, 0, 1]"}
//	[0, 0, 1]
//
// Errors: ErrMalformed wrapping the decoder error.
func ReadGroundTruth(r io.Reader) (clustering.Assignment, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read ground truth: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		return decodeLabels(raw)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: ground truth: %v", ErrMalformed, err)
	}
	field, ok := doc[GroundTruthKey]
	if !ok {
		return nil, fmt.Errorf("%w: ground truth: missing %q key", ErrMalformed, GroundTruthKey)
	}
	// The labels may be embedded as a JSON string holding the array.
	var embedded string
	if err := json.Unmarshal(field, &embedded); err == nil {
		return decodeLabels([]byte(embedded))
	}

	return decodeLabels(field)
}

func decodeLabels(raw []byte) (clustering.Assignment, error) {
	var labels []int
	if err := json.Unmarshal(raw, &labels); err != nil {
		return nil, fmt.Errorf("%w: ground truth labels: %v", ErrMalformed, err)
	}

	return clustering.Assignment(labels), nil
}
