package crypto

import (
	"strconv"
	"unicode/utf16"
)

// LegacyHash reproduces the 32-bit rolling hash older account records were
// stored with: h = h*31 + c over UTF-16 code units with int32 wraparound,
// then the absolute value in base 36.
//
// It is not a password hash. It exists only so old records can be verified
// once and re-hashed with argon2id.
func LegacyHash(password string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(password)) {
		h = (h << 5) - h + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}
