// Package emotionscan runs a short burst of still-image emotion samples
// against a detector and reduces them to a single result by majority
// vote. It mirrors the camera "mood mirror" flow of the MindCare client.
package emotionscan

import (
	"context"
	"errors"
	"time"
)

// Defaults for a scan: 5 samples at 600ms cover a 3-second burst.
const (
	DefaultSamples       = 5
	DefaultInterval      = 600 * time.Millisecond
	DefaultMinConfidence = 0.4
)

// ErrNoResult is returned when no sample survived the confidence floor.
// The scan reports "no result" rather than guessing.
var ErrNoResult = errors.New("no emotion detected with sufficient confidence")

// Sample is one detector reading for a single frame.
type Sample struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
	MappedMood int     `json:"mapped_mood"`
}

// Result is the reduced outcome of a scan. Confidence is the mean over
// the samples agreeing with the winning emotion.
type Result struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
	MappedMood int     `json:"mapped_mood"`
	Samples    int     `json:"samples"`
}

// FrameSource yields still frames (JPEG bytes) from a camera or other
// capture device. Close releases the device; the scanner calls it when a
// scan ends or is cancelled.
type FrameSource interface {
	Frame(ctx context.Context) ([]byte, error)
	Close() error
}

// Detector infers an emotion from a single frame.
type Detector interface {
	Detect(ctx context.Context, frame []byte) (Sample, error)
}

// Scanner paces frame sampling and votes on the outcome. Zero-value
// fields fall back to the package defaults.
type Scanner struct {
	Source        FrameSource
	Detector      Detector
	Samples       int
	Interval      time.Duration
	MinConfidence float64

	// Progress, if set, is called after each sampling tick with the
	// number of ticks completed out of the total.
	Progress func(done, total int)
}

// Run captures and analyzes frames at a fixed cadence until the sample
// budget is spent, then reduces the surviving samples. Failed detections
// and samples at or below the confidence floor are silently dropped.
// Cancelling ctx aborts the scan and discards partial samples. The frame
// source is closed in all cases.
func (s *Scanner) Run(ctx context.Context) (Result, error) {
	defer s.Source.Close()

	total := s.Samples
	if total <= 0 {
		total = DefaultSamples
	}
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	floor := s.MinConfidence
	if floor == 0 {
		floor = DefaultMinConfidence
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	kept := make([]Sample, 0, total)
	for done := 0; done < total; {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-ticker.C:
			done++
			if sample, ok := s.sampleOnce(ctx, floor); ok {
				kept = append(kept, sample)
			}
			if s.Progress != nil {
				s.Progress(done, total)
			}
		}
	}

	return Reduce(kept)
}

func (s *Scanner) sampleOnce(ctx context.Context, floor float64) (Sample, bool) {
	frame, err := s.Source.Frame(ctx)
	if err != nil {
		return Sample{}, false
	}
	sample, err := s.Detector.Detect(ctx, frame)
	if err != nil || sample.Confidence <= floor {
		return Sample{}, false
	}
	return sample, true
}

// Reduce votes over surviving samples: the majority emotion wins, ties
// break by first occurrence, and the reported confidence is the mean of
// the winner's samples. The mapped mood comes from the first winning
// sample.
func Reduce(samples []Sample) (Result, error) {
	if len(samples) == 0 {
		return Result{}, ErrNoResult
	}

	counts := make(map[string]int, len(samples))
	order := make([]string, 0, len(samples))
	for _, s := range samples {
		if counts[s.Emotion] == 0 {
			order = append(order, s.Emotion)
		}
		counts[s.Emotion]++
	}

	winner := ""
	maxCount := 0
	for _, emotion := range order {
		if counts[emotion] > maxCount {
			maxCount = counts[emotion]
			winner = emotion
		}
	}

	sum := 0.0
	mood := 0
	for _, s := range samples {
		if s.Emotion != winner {
			continue
		}
		sum += s.Confidence
		if mood == 0 {
			mood = s.MappedMood
		}
	}

	return Result{
		Emotion:    winner,
		Confidence: sum / float64(maxCount),
		MappedMood: mood,
		Samples:    maxCount,
	}, nil
}
