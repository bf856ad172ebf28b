// Package services contains the availability oracle: a rule cascade that
// classifies a domain name into a bucket, and the draws that turn a bucket
// into a verdict or an age estimate. Nothing here performs real I/O.
package services

import (
	"slices"
	"strings"

	"github.com/kenone20/domainogen/services/availability/domain/models"
)

// PopularTLDs are the saturated extensions registrars sell the most.
var PopularTLDs = []string{".com", ".io", ".ai", ".app", ".co", ".dev"}

// TechTerms are substrings common in startup and product names.
var TechTerms = []string{
	"app", "ai", "io", "co", "shop", "store", "crypto", "web3", "tech", "data",
	"cloud", "labs", "dev", "link", "net", "flow", "hub", "sync", "digital", "systems",
}

// DictionaryWords are single words almost certainly registered already.
var DictionaryWords = []string{
	"love", "business", "online", "media", "world", "group", "future", "life", "today",
	"money", "health", "home", "news", "art", "style", "food", "travel", "work", "play",
}

const (
	veryShortMax        = 3
	shortPopularMax     = 4
	techTermMaxLabelLen = 8
)

// Traits are the classification inputs derived from a DomainName.
type Traits struct {
	LabelLen   int
	TLD        string
	Dictionary bool
	Tech       bool
	PopularTLD bool
}

// TraitsOf derives Traits from d. Tech terms only count for labels up to
// eight characters; longer labels read as coined brand names.
func TraitsOf(d models.DomainName) Traits {
	t := Traits{
		LabelLen:   len(d.Label),
		TLD:        d.TLD,
		Dictionary: slices.Contains(DictionaryWords, d.Label),
		PopularTLD: slices.Contains(PopularTLDs, d.TLD),
	}
	if t.LabelLen <= techTermMaxLabelLen {
		t.Tech = slices.ContainsFunc(TechTerms, func(term string) bool {
			return strings.Contains(d.Label, term)
		})
	}
	return t
}

type rule struct {
	bucket models.Bucket
	match  func(Traits) bool
}

// cascade is evaluated top to bottom; the first matching rule wins.
var cascade = []rule{
	{
		bucket: models.Bucket{Name: models.BucketVeryShortPopular, Availability: 0,
			Age: models.AgeRange{Unit: models.Years, Min: 15, Max: 28}},
		match: func(t Traits) bool { return t.LabelLen <= shortPopularMax && t.PopularTLD },
	},
	{
		bucket: models.Bucket{Name: models.BucketVeryShort, Availability: 0,
			Age: models.AgeRange{Unit: models.Years, Min: 10, Max: 25}},
		match: func(t Traits) bool { return t.LabelLen <= veryShortMax },
	},
	{
		bucket: models.Bucket{Name: models.BucketDictionaryCom, Availability: 0,
			Age: models.AgeRange{Unit: models.Years, Min: 18, Max: 28}},
		match: func(t Traits) bool { return t.Dictionary && t.TLD == ".com" },
	},
	{
		bucket: models.Bucket{Name: models.BucketDictionaryPopular, Availability: 0.05,
			Age: models.AgeRange{Unit: models.Years, Min: 10, Max: 20}},
		match: func(t Traits) bool { return t.Dictionary && t.PopularTLD },
	},
	{
		bucket: models.Bucket{Name: models.BucketTechCom, Availability: 0.10,
			Age: models.AgeRange{Unit: models.Years, Min: 10, Max: 22, NewChance: 0.3}},
		match: func(t Traits) bool { return t.Tech && t.TLD == ".com" },
	},
	{
		bucket: models.Bucket{Name: models.BucketTechPopular, Availability: 0.20,
			Age: models.AgeRange{Unit: models.Months, Min: 1, Max: 8, NewChance: 0.5}},
		match: func(t Traits) bool { return t.Tech && t.PopularTLD },
	},
	{
		bucket: models.Bucket{Name: models.BucketTechOther, Availability: 0.40,
			Age: models.AgeRange{Unit: models.Months, Min: 1, Max: 8, NewChance: 0.6}},
		match: func(t Traits) bool { return t.Tech },
	},
	{
		bucket: models.Bucket{Name: models.BucketCom, Availability: 0.30,
			Age: models.AgeRange{Unit: models.Years, Min: 10, Max: 28, NewChance: 0.5}},
		match: func(t Traits) bool { return t.TLD == ".com" },
	},
	{
		bucket: models.Bucket{Name: models.BucketIOAI, Availability: 0.50,
			Age: models.AgeRange{Unit: models.Months, Min: 1, Max: 8, NewChance: 0.5}},
		match: func(t Traits) bool { return t.TLD == ".io" || t.TLD == ".ai" },
	},
}

var fallbackBucket = models.Bucket{Name: models.BucketFallback, Availability: 0.85,
	Age: models.AgeRange{Unit: models.Months, Min: 1, Max: 8, NewChance: 0.7}}

// Classify returns the first bucket whose rule matches d.
func Classify(d models.DomainName) models.Bucket {
	t := TraitsOf(d)
	for _, r := range cascade {
		if r.match(t) {
			return r.bucket
		}
	}
	return fallbackBucket
}

// Buckets lists every bucket in evaluation order, fallback last.
func Buckets() []models.Bucket {
	out := make([]models.Bucket, 0, len(cascade)+1)
	for _, r := range cascade {
		out = append(out, r.bucket)
	}
	return append(out, fallbackBucket)
}
