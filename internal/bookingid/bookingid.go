// Package bookingid generates the public booking identifiers handed back to
// callers, of the form BOOK<unix-millis><5 random uppercase chars>.
package bookingid

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	Prefix = "BOOK"

	suffixLen     = 5
	suffixCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// New returns a fresh identifier. Uniqueness is probabilistic: the millisecond
// timestamp plus a random base36 suffix is collision-free at this domain's
// request rates.
func New() string {
	return NewAt(time.Now())
}

// NewAt builds an identifier for the given creation time.
func NewAt(t time.Time) string {
	suffix := make([]byte, suffixLen)
	for i := range suffix {
		suffix[i] = suffixCharset[rand.Intn(len(suffixCharset))]
	}
	return fmt.Sprintf("%s%d%s", Prefix, t.UnixMilli(), suffix)
}
