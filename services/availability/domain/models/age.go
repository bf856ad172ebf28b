package models

import "fmt"

// AgeUnit is the granularity an age range is drawn in.
type AgeUnit int

const (
	Months AgeUnit = iota
	Years
)

// AgeEstimateNew is reported for domains that look freshly registered.
const AgeEstimateNew AgeEstimate = "New"

// AgeEstimate renders a domain age as "New", "<N> month(s)" or "<N> year(s)".
type AgeEstimate string

// NewAgeEstimate renders n units. n below 1 is clamped to 1 so the numeric
// component is always positive.
func NewAgeEstimate(n int, unit AgeUnit) AgeEstimate {
	if n < 1 {
		n = 1
	}
	word := "month"
	if unit == Years {
		word = "year"
	}
	if n > 1 {
		word += "s"
	}
	return AgeEstimate(fmt.Sprintf("%d %s", n, word))
}

// String returns the underlying string value.
func (a AgeEstimate) String() string {
	return string(a)
}
