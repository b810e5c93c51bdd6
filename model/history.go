package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"slices"
)

const historySize = 5

// Hash returns an MD5 digest of the set that does not depend on iteration order
func Hash(live LiveSet) string {
	h := md5.New()
	var buf [16]byte
	for _, c := range live.Cells() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// History keeps the hashes of the most recent generations for cycle detection
type History struct {
	hashes []string
}

// Record adds the state to the history, keeping only the last few entries
func (h *History) Record(live LiveSet) {
	h.hashes = append(h.hashes, Hash(live))
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets all recorded states
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether live repeats one of the last three recorded
// states: a still-life or an oscillator of period 1 to 3.
func (h *History) IsStagnant(live LiveSet) bool {
	if len(h.hashes) < 3 {
		return false
	}
	return slices.Contains(h.hashes[len(h.hashes)-3:], Hash(live))
}
