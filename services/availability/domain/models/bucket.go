package models

// BucketName identifies one rule of the availability cascade.
type BucketName string

const (
	BucketVeryShortPopular  BucketName = "very-short-popular"
	BucketVeryShort         BucketName = "very-short"
	BucketDictionaryCom     BucketName = "dictionary-com"
	BucketDictionaryPopular BucketName = "dictionary-popular"
	BucketTechCom           BucketName = "tech-com"
	BucketTechPopular       BucketName = "tech-popular"
	BucketTechOther         BucketName = "tech-other"
	BucketCom               BucketName = "com"
	BucketIOAI              BucketName = "io-ai"
	BucketFallback          BucketName = "fallback"
)

// AgeRange is the age distribution of a bucket. With probability NewChance
// the domain is reported as "New"; otherwise an age is drawn uniformly from
// [Min, Max] in Unit.
type AgeRange struct {
	Unit      AgeUnit
	Min       int
	Max       int
	NewChance float64
}

// Bucket is one classification of the cascade with its fixed odds.
type Bucket struct {
	Name BucketName
	// Availability is the probability a name in this bucket is available.
	Availability float64
	Age          AgeRange
}

// Deterministic reports whether the verdict needs no random draw.
func (b Bucket) Deterministic() bool {
	return b.Availability <= 0 || b.Availability >= 1
}

// Verdict is one evaluated availability check.
type Verdict struct {
	Name      string     `json:"name"`
	Available bool       `json:"available"`
	Bucket    BucketName `json:"bucket"`
}
