package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/MKhiriev/studytrack/internal/config"
	"github.com/MKhiriev/studytrack/internal/crypto"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/store"
	"github.com/MKhiriev/studytrack/internal/utils"
	"github.com/MKhiriev/studytrack/models"
)

const (
	minUsernameLength = 2
	minPasswordLength = 6
)

type authManager struct {
	book   accountBook
	kv     store.KeyValueStore
	hasher crypto.PasswordHasher
	ids    utils.IDGenerator
	clock  utils.Clock
	cfg    config.ClientApp

	mu sync.Mutex
	// session is the in-memory session of a login without rememberDevice.
	session *models.AuthSession

	logger *logger.Logger
}

// NewAuthManager constructs the credentialed [AuthManager]. Sessions are
// signed with cfg.SessionSignKey and last cfg.SessionDuration.
func NewAuthManager(kv store.KeyValueStore, hasher crypto.PasswordHasher, ids utils.IDGenerator, clock utils.Clock, cfg config.ClientApp, logger *logger.Logger) AuthManager {
	return &authManager{
		book:   accountBook{kv: kv},
		kv:     kv,
		hasher: hasher,
		ids:    ids,
		clock:  clock,
		cfg:    cfg,
		logger: logger,
	}
}

func validateCredentials(username, password string) error {
	if utf8.RuneCountInString(username) < minUsernameLength {
		return ErrUsernameTooShort
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func (a *authManager) SignUp(ctx context.Context, username, password, avatar string) (models.Account, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return models.Account{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, taken := a.book.findByUsername(ctx, username); taken {
		return models.Account{}, ErrUsernameTaken
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Err(err).Str("func", "authManager.SignUp").Msg("failed to hash password")
		return models.Account{}, fmt.Errorf("error hashing password: %w", err)
	}

	deviceID := a.deviceID(ctx)
	account := newAccount(a.ids.Generate(), username, avatar, a.clock.Now())
	account.PasswordHash = hash
	account.Devices = []string{deviceID}

	if err = a.book.put(ctx, account); err != nil {
		a.logger.Err(err).Str("func", "authManager.SignUp").Msg("failed to store account")
		return models.Account{}, err
	}
	if err = a.startSession(ctx, account.AccountID, deviceID, true); err != nil {
		return models.Account{}, err
	}

	a.logger.Info().Str("func", "authManager.SignUp").Str("account_id", account.AccountID).Msg("account signed up")
	return account, nil
}

func (a *authManager) Login(ctx context.Context, username, password string, rememberDevice bool) (models.Account, error) {
	username = strings.TrimSpace(username)

	a.mu.Lock()
	defer a.mu.Unlock()

	account, ok := a.book.findByUsername(ctx, username)
	if !ok || account.PasswordHash == "" {
		return models.Account{}, ErrInvalidCredentials
	}

	match, needsRehash, err := a.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "authManager.Login").Str("account_id", account.AccountID).Msg("stored password hash is malformed")
		return models.Account{}, ErrInvalidCredentials
	}
	if !match {
		return models.Account{}, ErrInvalidCredentials
	}

	if needsRehash {
		if hash, hashErr := a.hasher.Hash(password); hashErr == nil {
			account.PasswordHash = hash
		} else {
			a.logger.Err(hashErr).Str("func", "authManager.Login").Msg("failed to upgrade password hash")
		}
	}

	deviceID := a.deviceID(ctx)
	if rememberDevice && !account.HasDevice(deviceID) {
		account.Devices = append(account.Devices, deviceID)
	}
	account.LastLogin = utils.Today(a.clock)

	if err = a.book.put(ctx, account); err != nil {
		a.logger.Err(err).Str("func", "authManager.Login").Msg("failed to store account")
		return models.Account{}, err
	}
	if err = a.startSession(ctx, account.AccountID, deviceID, rememberDevice); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (a *authManager) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.logout(ctx)
}

func (a *authManager) logout(ctx context.Context) error {
	a.session = nil
	return a.kv.Remove(ctx, slotAuthSession, store.NamespacePrivate)
}

func (a *authManager) IsAuthenticated(ctx context.Context) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.authenticated(ctx)
	return ok
}

// authenticated returns the account of a valid session. Every failed check
// except a missing session logs the device out.
func (a *authManager) authenticated(ctx context.Context) (models.Account, bool) {
	session, persisted, ok := a.activeSession(ctx)
	if !ok {
		return models.Account{}, false
	}

	now := a.clock.Now()
	reject := func(reason string) (models.Account, bool) {
		a.logger.Info().Str("func", "authManager.IsAuthenticated").Str("account_id", session.UserID).Msg(reason)
		if err := a.logout(ctx); err != nil {
			a.logger.Err(err).Str("func", "authManager.IsAuthenticated").Msg("failed to clear session")
		}
		return models.Account{}, false
	}

	if session.Expired(now) {
		return reject("session expired")
	}
	token, err := utils.ParseSessionToken(session.Token, a.cfg.SessionSignKey, a.cfg.SessionIssuer, now)
	if err != nil || token.UserID() != session.UserID || token.Claims.DeviceID != session.DeviceID {
		return reject("session token rejected")
	}

	account, found := a.book.get(ctx, session.UserID)
	if !found {
		return reject("session account no longer exists")
	}
	// Login registers the device only when it is remembered, so an
	// in-memory session has no Devices entry to check
	if persisted && !account.HasDevice(session.DeviceID) {
		return reject("device is not remembered by the account")
	}
	return account, true
}

// activeSession prefers the in-memory session over the persisted one.
func (a *authManager) activeSession(ctx context.Context) (session models.AuthSession, persisted bool, ok bool) {
	if a.session != nil {
		return *a.session, false, true
	}
	stored, found := store.Load[models.AuthSession](ctx, a.kv, slotAuthSession, store.NamespacePrivate)
	if !found || stored.UserID == "" {
		return models.AuthSession{}, false, false
	}
	return stored, true, true
}

func (a *authManager) CurrentAccount(ctx context.Context) (models.Account, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.authenticated(ctx)
}

func (a *authManager) ChangePassword(ctx context.Context, current, next string) error {
	if utf8.RuneCountInString(next) < minPasswordLength {
		return ErrPasswordTooShort
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	account, ok := a.authenticated(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	match, _, err := a.hasher.Verify(current, account.PasswordHash)
	if err != nil || !match {
		return ErrWrongPassword
	}

	hash, err := a.hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	account.PasswordHash = hash
	return a.book.put(ctx, account)
}

func (a *authManager) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Account, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	account, ok := a.authenticated(ctx)
	if !ok {
		return models.Account{}, ErrNotAuthenticated
	}

	if update.Username != nil {
		username := strings.TrimSpace(*update.Username)
		if utf8.RuneCountInString(username) < minUsernameLength {
			return models.Account{}, ErrUsernameTooShort
		}
		if a.book.usernameTaken(ctx, username, account.AccountID) {
			return models.Account{}, ErrUsernameTaken
		}
		account.Username = username
		account.User.Name = username
	}
	if update.Avatar != nil {
		account.Avatar = *update.Avatar
		account.User.Avatar = *update.Avatar
	}

	if err := a.book.put(ctx, account); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (a *authManager) DeleteAccount(ctx context.Context, password string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	account, ok := a.authenticated(ctx)
	if !ok {
		return ErrNotAuthenticated
	}
	match, _, err := a.hasher.Verify(password, account.PasswordHash)
	if err != nil || !match {
		return ErrWrongPassword
	}

	if err = a.book.remove(ctx, account.AccountID); err != nil {
		a.logger.Err(err).Str("func", "authManager.DeleteAccount").Str("account_id", account.AccountID).Msg("failed to delete account")
		return err
	}
	a.logger.Info().Str("func", "authManager.DeleteAccount").Str("account_id", account.AccountID).Msg("account deleted")
	return a.logout(ctx)
}

func (a *authManager) DeviceID(ctx context.Context) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.deviceID(ctx)
}

func (a *authManager) deviceID(ctx context.Context) string {
	if id, ok := store.Load[string](ctx, a.kv, slotDeviceID, store.NamespacePrivate); ok && id != "" {
		return id
	}
	id := a.ids.Generate()
	if err := a.kv.Set(ctx, slotDeviceID, id, store.NamespacePrivate); err != nil {
		a.logger.Err(err).Str("func", "authManager.deviceID").Msg("failed to persist device id")
	}
	return id
}

func (a *authManager) Account(ctx context.Context, accountID string) (models.Account, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.book.get(ctx, accountID)
}

func (a *authManager) SetAccountData(ctx context.Context, accountID string, key models.StateKey, raw json.RawMessage) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.book.setData(ctx, accountID, key, raw)
}

// startSession issues a signed session for the device. Only remembered
// sessions are persisted; the others live until the process exits.
func (a *authManager) startSession(ctx context.Context, accountID, deviceID string, remember bool) error {
	now := a.clock.Now()
	token, err := utils.GenerateSessionToken(utils.SessionTokenParams{
		Issuer:   a.cfg.SessionIssuer,
		UserID:   accountID,
		DeviceID: deviceID,
		IssuedAt: now,
		Duration: a.cfg.SessionDuration,
		SignKey:  a.cfg.SessionSignKey,
	})
	if err != nil {
		a.logger.Err(err).Str("func", "authManager.startSession").Msg("failed to issue session token")
		return fmt.Errorf("%w: %w", ErrTokenCreation, err)
	}

	session := models.AuthSession{
		UserID:    accountID,
		DeviceID:  deviceID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.cfg.SessionDuration),
		Token:     token.String(),
	}

	if !remember {
		a.session = &session
		return a.kv.Remove(ctx, slotAuthSession, store.NamespacePrivate)
	}

	a.session = nil
	if err = a.kv.Set(ctx, slotAuthSession, session, store.NamespacePrivate); err != nil {
		a.logger.Err(err).Str("func", "authManager.startSession").Msg("failed to persist session")
		return err
	}
	return nil
}
