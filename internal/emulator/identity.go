package emulator

import (
	"errors"
	"net/mail"
	"strings"
	"sync"

	"github.com/MKhiriev/studytrack/internal/crypto"
	"github.com/MKhiriev/studytrack/internal/utils"
)

var (
	errEmailInUse         = errors.New("email already in use")
	errInvalidEmail       = errors.New("invalid email")
	errWeakPassword       = errors.New("weak password")
	errInvalidCredentials = errors.New("invalid credentials")
)

const minPasswordLength = 6

// emulatorHashParams trade strength for speed; the emulator never holds real
// credentials.
var emulatorHashParams = crypto.Params{
	Time:    1,
	Memory:  8 * 1024,
	Threads: 1,
	KeyLen:  32,
	SaltLen: 16,
}

type identity struct {
	uid          string
	email        string
	displayName  string
	passwordHash string
}

// identityStore is the emulated identity provider.
type identityStore struct {
	mu      sync.RWMutex
	byEmail map[string]*identity
	revoked map[string]struct{}
	hasher  crypto.PasswordHasher
	ids     utils.IDGenerator
}

func newIdentityStore(ids utils.IDGenerator) *identityStore {
	return &identityStore{
		byEmail: make(map[string]*identity),
		revoked: make(map[string]struct{}),
		hasher:  crypto.NewPasswordHasherWithParams(emulatorHashParams),
		ids:     ids,
	}
}

func (s *identityStore) signUp(email, password, displayName string) (identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return identity{}, errInvalidEmail
	}
	if len(password) < minPasswordLength {
		return identity{}, errWeakPassword
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return identity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return identity{}, errEmailInUse
	}
	id := &identity{
		uid:          s.ids.Generate(),
		email:        email,
		displayName:  displayName,
		passwordHash: hash,
	}
	s.byEmail[email] = id
	return *id, nil
}

func (s *identityStore) signIn(email, password string) (identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.RLock()
	id, ok := s.byEmail[email]
	s.mu.RUnlock()
	if !ok {
		return identity{}, errInvalidCredentials
	}

	valid, _, err := s.hasher.Verify(password, id.passwordHash)
	if err != nil || !valid {
		return identity{}, errInvalidCredentials
	}
	return *id, nil
}

func (s *identityStore) revoke(token string) {
	s.mu.Lock()
	s.revoked[token] = struct{}{}
	s.mu.Unlock()
}

func (s *identityStore) isRevoked(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.revoked[token]
	return ok
}
