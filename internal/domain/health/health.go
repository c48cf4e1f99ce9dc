// Package health holds per-member health series such as weight and steps.
package health

import (
	"errors"
	"sort"
)

// Metric names a tracked series
type Metric string

const (
	MetricWeight   Metric = "weight"
	MetricActivity Metric = "activity"
)

// Metrics lists the tracked metrics
var Metrics = []Metric{MetricWeight, MetricActivity}

var (
	ErrUnknownMetric = errors.New("unknown health metric")
	ErrUnknownMember = errors.New("no readings for member")
)

// IsValid reports whether m is a tracked metric
func (m Metric) IsValid() bool {
	return m == MetricWeight || m == MetricActivity
}

// Reading is one point of a series: a label such as "Jan 1" and a value per
// member name
type Reading struct {
	Label  string             `json:"label" yaml:"label"`
	Values map[string]float64 `json:"values" yaml:"values"`
}

// Series is the ordered readings of one metric
type Series struct {
	Metric   Metric    `json:"metric"`
	Readings []Reading `json:"readings"`
}

// Members returns the member names that appear in any reading, in order of
// first appearance; names first seen in the same reading are sorted
func (s Series) Members() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range s.Readings {
		for _, name := range sortedKeys(r.Values) {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

// ForMember keeps only member's values. "" and "All" keep everyone.
func (s Series) ForMember(member string) (Series, error) {
	if member == "" || member == "All" {
		return s, nil
	}

	out := Series{Metric: s.Metric, Readings: make([]Reading, 0, len(s.Readings))}
	found := false
	for _, r := range s.Readings {
		v, ok := r.Values[member]
		if !ok {
			continue
		}
		found = true
		out.Readings = append(out.Readings, Reading{Label: r.Label, Values: map[string]float64{member: v}})
	}
	if !found {
		return Series{}, ErrUnknownMember
	}
	return out, nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
