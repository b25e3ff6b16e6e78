// Package daily picks a deterministic answer per calendar day.
package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle/apps/wordle-core/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using a blake2b MAC
// keyed by salt over the date key, modulo answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	key := blake2b.Sum256([]byte(salt))
	h, err := blake2b.New256(key[:])
	if err != nil {
		// Only possible for keys longer than 64 bytes.
		panic(err)
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Picker returns a picker that selects the answer for the day reported by now.
// Its signature matches game.Picker.
func Picker(now func() time.Time, salt string) func(*words.Dictionary) string {
	return func(d *words.Dictionary) string {
		answers := d.AnswerWords()
		return answers[WordIndex(now(), salt, len(answers))]
	}
}
