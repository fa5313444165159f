package moodkit

import "testing"

func TestBucketFor(t *testing.T) {
	tests := []struct {
		mood float64
		want Bucket
	}{
		{5, BucketPositive},
		{4, BucketPositive},
		{3.5, BucketNeutralHigh},
		{3, BucketNeutralHigh},
		{2.5, BucketNeutralLow},
		{2, BucketNeutralLow},
		{1, BucketNegative},
	}
	for _, tt := range tests {
		if got := BucketFor(tt.mood); got != tt.want {
			t.Errorf("BucketFor(%v) = %s, want %s", tt.mood, got, tt.want)
		}
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		bucket Bucket
		want   string
	}{
		{BucketPositive, "#22c55e"},
		{BucketNeutralHigh, "#3b82f6"},
		{BucketNeutralLow, "#facc15"},
		{BucketNegative, "#ef4444"},
		{BucketEmpty, "#e5e7eb"},
	}
	for _, tt := range tests {
		if got := tt.bucket.ColorHex(); got != tt.want {
			t.Errorf("%s color = %s, want %s", tt.bucket, got, tt.want)
		}
	}
}
