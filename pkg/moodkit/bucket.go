package moodkit

// Bucket classifies a mood value for heatmap coloring.
type Bucket string

const (
	BucketPositive    Bucket = "positive"
	BucketNeutralHigh Bucket = "neutral-high"
	BucketNeutralLow  Bucket = "neutral-low"
	BucketNegative    Bucket = "negative"
	BucketEmpty       Bucket = "empty"
)

// BucketFor maps a mood value to its bucket. Thresholds are at >=4, >=3
// and >=2; callers with integer moods widen before calling.
func BucketFor(mood float64) Bucket {
	switch {
	case mood >= 4:
		return BucketPositive
	case mood >= 3:
		return BucketNeutralHigh
	case mood >= 2:
		return BucketNeutralLow
	default:
		return BucketNegative
	}
}

// ColorHex returns the display color for a bucket.
func (b Bucket) ColorHex() string {
	switch b {
	case BucketPositive:
		return "#22c55e"
	case BucketNeutralHigh:
		return "#3b82f6"
	case BucketNeutralLow:
		return "#facc15"
	case BucketNegative:
		return "#ef4444"
	default:
		return "#e5e7eb"
	}
}
