package luhn

import (
	"crypto/rand"
	"strings"
)

// DigitSource produces random decimal digits for number generation.
// Implementations must be safe for concurrent use.
type DigitSource interface {
	Digits(n int) (string, error)
}

// CryptoSource draws digits from crypto/rand using rejection sampling:
// only bytes below 250 are accepted before taking mod 10, keeping 0-9
// uniform.
type CryptoSource struct{}

func (CryptoSource) Digits(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	const threshold = 250 // 256 - (256 % 10)
	var sb strings.Builder
	sb.Grow(n)
	buf := make([]byte, 64)
	for sb.Len() < n {
		// read a batch at a time to limit syscalls
		read, err := rand.Read(buf)
		if err != nil {
			return "", err
		}
		for i := 0; i < read && sb.Len() < n; i++ {
			if b := buf[i]; b < threshold {
				sb.WriteByte('0' + b%10)
			}
		}
	}
	return sb.String(), nil
}
