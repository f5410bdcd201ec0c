// Package crypto hashes and verifies account passwords.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns passwords into self-describing encoded hashes and
// checks candidates against them.
type PasswordHasher interface {
	// Hash derives a fresh salted hash of password and returns it in the
	// PHC string format ($argon2id$v=19$m=..,t=..,p=..$salt$hash).
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. needsRehash is true
	// when encoded was produced by an outdated scheme (legacy rolling hash or
	// weaker argon2 parameters) and should be replaced with Hash(password).
	// A malformed encoded value is an error.
	Verify(password, encoded string) (ok bool, needsRehash bool, err error)
}
