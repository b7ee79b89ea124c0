package wordgen

import (
	"errors"
	"fmt"
)

var (
	// ErrNoWords means the vocabulary has no word of the requested length.
	ErrNoWords = errors.New("no words of requested length")
	// ErrExhausted means every draw was rejected.
	ErrExhausted = errors.New("attempts exhausted")
)

// NoWordsError reports a length no vocabulary word has.
type NoWordsError struct {
	Length int
}

func (e *NoWordsError) Error() string {
	return fmt.Sprintf("No words of length %d found in WordNet", e.Length)
}

func (e *NoWordsError) Is(target error) bool {
	return target == ErrNoWords
}

// ExhaustedError carries the rejection statistics of a failed Generate call.
type ExhaustedError struct {
	MaxAttempts int
	Stats       FilterStats
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("Could not find a valid word after %d attempts", e.MaxAttempts)
}

func (e *ExhaustedError) Is(target error) bool {
	return target == ErrExhausted
}
