// Package rng provides the reproducible 32-bit random word generators used by
// the session engine. Two algorithms are available behind one Source
// capability; callers only ever draw through Next.
package rng

import (
	"errors"
	"fmt"
	"strings"
)

// Source produces a stream of pseudo-random 32-bit words.
// The stream is a pure function of the seed the source was created with.
type Source interface {
	Next() uint32
}

// Algorithm names a Source implementation.
type Algorithm string

const (
	AlgorithmCMWC    Algorithm = "cmwc"
	AlgorithmMT19937 Algorithm = "mt19937"
)

// ErrUnknownAlgorithm is returned by New for unsupported algorithm names.
var ErrUnknownAlgorithm = errors.New("rng: unknown algorithm")

// Algorithms lists the supported algorithm names.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmCMWC, AlgorithmMT19937}
}

// New creates a Source for the named algorithm.
func New(alg Algorithm, seed uint32) (Source, error) {
	switch Algorithm(strings.ToLower(string(alg))) {
	case AlgorithmCMWC:
		return NewCMWC(seed), nil
	case AlgorithmMT19937, "mt", "":
		return NewMT19937(seed), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownAlgorithm, alg)
	}
}

// Between returns a value in [min, max) drawn from src.
// If max <= min, min is returned without consuming a word.
func Between(src Source, min, max uint64) uint64 {
	if max <= min {
		return min
	}
	return min + uint64(src.Next())%(max-min)
}

// RectPosition returns a top-left position for a w x h rectangle inside an
// areaW x areaH area. It draws exactly two words, x first. An axis where the
// rectangle does not fit collapses to 0.
func RectPosition(src Source, areaW, areaH, w, h int) (x, y int) {
	x = reduce(src.Next(), areaW-w)
	y = reduce(src.Next(), areaH-h)
	return x, y
}

func reduce(word uint32, extent int) int {
	if extent <= 0 {
		return 0
	}
	return int(word % uint32(extent))
}
