package store

import "crypto/rand"

const (
	slugLength      = 7
	slugAlphabet    = "0123456789abcdefghijklmnopqrstuvwxyz"
	maxSlugAttempts = 5
)

// newSlug generates a random lowercase base36 slug. The alphabet must stay
// lowercase: lookups normalize slugs to lowercase, so a generated slug with
// an uppercase letter would never be found again.
func newSlug() string {
	buf := make([]byte, slugLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform RNG is broken; nothing
		// sensible to degrade to.
		panic(err)
	}
	for i, b := range buf {
		buf[i] = slugAlphabet[int(b)%len(slugAlphabet)]
	}
	return string(buf)
}
