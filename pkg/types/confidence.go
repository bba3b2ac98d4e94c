package types

import (
	"encoding/json"
	"sort"
)

// ConfidencePart is a single signal that raises or lowers the certainty that
// a junk candidate is safe to remove.
type ConfidencePart struct {
	Change int    `json:"change"`
	Reason string `json:"reason"`
}

var (
	ConfidenceExplicitConnection = ConfidencePart{Change: 4, Reason: "Explicit connection to the uninstalled application"}
	ConfidenceDirectoryStillUsed = ConfidencePart{Change: -7, Reason: "Directory is still used by other applications"}
)

// ConfidenceLevel is a coarse rating derived from a confidence score
type ConfidenceLevel string

const (
	ConfidenceLevelUnknown      ConfidenceLevel = "unknown"
	ConfidenceLevelBad          ConfidenceLevel = "bad"
	ConfidenceLevelQuestionable ConfidenceLevel = "questionable"
	ConfidenceLevelGood         ConfidenceLevel = "good"
	ConfidenceLevelVeryGood     ConfidenceLevel = "very-good"
)

// Confidence is an unordered set of confidence parts. The zero value is an
// empty set. It is never modified after NewConfidence returns.
type Confidence struct {
	parts map[ConfidencePart]struct{}
}

// NewConfidence builds a set from the given parts, collapsing duplicates
func NewConfidence(parts ...ConfidencePart) Confidence {
	set := make(map[ConfidencePart]struct{}, len(parts))
	for _, p := range parts {
		set[p] = struct{}{}
	}
	return Confidence{parts: set}
}

// Has reports whether the part is in the set
func (c Confidence) Has(part ConfidencePart) bool {
	_, ok := c.parts[part]
	return ok
}

// Len returns the number of distinct parts
func (c Confidence) Len() int {
	return len(c.parts)
}

// Parts returns the parts ordered by descending change, then reason
func (c Confidence) Parts() []ConfidencePart {
	out := make([]ConfidencePart, 0, len(c.parts))
	for p := range c.parts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Change != out[j].Change {
			return out[i].Change > out[j].Change
		}
		return out[i].Reason < out[j].Reason
	})
	return out
}

// Score sums the change of every part
func (c Confidence) Score() int {
	total := 0
	for p := range c.parts {
		total += p.Change
	}
	return total
}

// Level maps the score onto a coarse rating. Callers are free to apply their
// own weighting to Parts instead.
func (c Confidence) Level() ConfidenceLevel {
	if len(c.parts) == 0 {
		return ConfidenceLevelUnknown
	}
	switch score := c.Score(); {
	case score < 0:
		return ConfidenceLevelBad
	case score < 2:
		return ConfidenceLevelQuestionable
	case score < 5:
		return ConfidenceLevelGood
	default:
		return ConfidenceLevelVeryGood
	}
}

func (c Confidence) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Parts())
}
