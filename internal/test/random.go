package test

import (
	"math/rand"
	"sync"
	"time"
)

const flashcodeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	seededMu sync.Mutex
	seeded   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random alphanumeric string whose
// length falls within [minLen, maxLen]. Equal bounds give a fixed
// length.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += intn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = flashcodeAlphabet[intn(len(flashcodeAlphabet))]
	}
	return string(buf)
}

func intn(n int) int {
	seededMu.Lock()
	defer seededMu.Unlock()
	return seeded.Intn(n)
}
