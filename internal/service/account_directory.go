package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"dario.cat/mergo"

	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/store"
	"github.com/MKhiriev/studytrack/internal/utils"
	"github.com/MKhiriev/studytrack/models"
)

type accountDirectory struct {
	book  accountBook
	kv    store.KeyValueStore
	ids   utils.IDGenerator
	clock utils.Clock

	mu sync.Mutex

	logger *logger.Logger
}

// NewAccountDirectory constructs the password-less [AccountDirectory].
func NewAccountDirectory(kv store.KeyValueStore, ids utils.IDGenerator, clock utils.Clock, logger *logger.Logger) AccountDirectory {
	return &accountDirectory{
		book:   accountBook{kv: kv},
		kv:     kv,
		ids:    ids,
		clock:  clock,
		logger: logger,
	}
}

func (d *accountDirectory) CreateAccount(ctx context.Context, username, avatar string) (models.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.Account{}, ErrInvalidUsername
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, taken := d.book.findByUsername(ctx, username); taken {
		return models.Account{}, ErrDuplicateUsername
	}

	account := newAccount(d.ids.Generate(), username, avatar, d.clock.Now())
	if err := d.book.put(ctx, account); err != nil {
		d.logger.Err(err).Str("func", "accountDirectory.CreateAccount").Msg("failed to store account")
		return models.Account{}, err
	}
	if err := d.setCurrent(ctx, account.AccountID); err != nil {
		return models.Account{}, err
	}

	d.logger.Info().Str("func", "accountDirectory.CreateAccount").Str("account_id", account.AccountID).Msg("account created")
	return account, nil
}

func (d *accountDirectory) LoginAccount(ctx context.Context, accountID string) (models.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	account, ok := d.book.get(ctx, accountID)
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}

	today := utils.Today(d.clock)
	account.LastLogin = today
	if err := d.book.put(ctx, account); err != nil {
		d.logger.Err(err).Str("func", "accountDirectory.LoginAccount").Str("account_id", accountID).Msg("failed to stamp last login")
		return models.Account{}, err
	}
	if err := d.setCurrent(ctx, accountID); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (d *accountDirectory) GetCurrentAccount(ctx context.Context) (models.Account, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current(ctx)
}

func (d *accountDirectory) current(ctx context.Context) (models.Account, bool) {
	accountID, ok := store.Load[string](ctx, d.kv, slotCurrentAccount, store.NamespacePrivate)
	if !ok || accountID == "" {
		return models.Account{}, false
	}
	return d.book.get(ctx, accountID)
}

// UpdateCurrentAccount merges User and Settings field by field: non-zero
// fields of the update win. Fields replaces whole state keys.
func (d *accountDirectory) UpdateCurrentAccount(ctx context.Context, update models.AccountUpdate) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	account, ok := d.current(ctx)
	if !ok {
		return nil
	}

	if update.Avatar != nil {
		account.Avatar = *update.Avatar
		account.User.Avatar = *update.Avatar
	}
	if update.LastLogin != nil {
		account.LastLogin = *update.LastLogin
		account.User.LastLogin = *update.LastLogin
	}
	if update.User != nil {
		if err := mergo.Merge(&account.User, *update.User, mergo.WithOverride); err != nil {
			return fmt.Errorf("error merging user profile: %w", err)
		}
	}
	if update.Settings != nil {
		if err := mergeSettings(&account.Settings, *update.Settings); err != nil {
			return fmt.Errorf("error merging settings: %w", err)
		}
	}
	for key, raw := range update.Fields {
		if err := account.SetField(key, raw); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidData, err)
		}
	}

	return d.book.put(ctx, account)
}

func (d *accountDirectory) Logout(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.kv.Remove(ctx, slotCurrentAccount, store.NamespacePrivate)
}

// GetAllUserProfiles never fails on partially populated accounts: missing
// numbers read as zero and a missing level as 1.
func (d *accountDirectory) GetAllUserProfiles(ctx context.Context) []models.UserSummary {
	d.mu.Lock()
	accounts := d.book.sorted(ctx)
	d.mu.Unlock()

	out := make([]models.UserSummary, 0, len(accounts))
	for _, a := range accounts {
		summary := models.UserSummary{
			UserID:        a.AccountID,
			Username:      a.Username,
			Avatar:        a.Avatar,
			Level:         a.User.Level,
			XP:            a.User.XP,
			Streak:        a.User.Streak,
			SessionsCount: len(a.Sessions),
		}
		if summary.Level < 1 {
			summary.Level = 1
		}
		if summary.Avatar == "" {
			summary.Avatar = a.User.Avatar
		}
		for _, s := range a.Sessions {
			summary.TotalStudyMinutes += s.Duration
		}
		out = append(out, summary)
	}
	return out
}

func (d *accountDirectory) ListAccounts(ctx context.Context) []models.Account {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.book.sorted(ctx)
}

// DeleteAccount removes the account with its local state slots and clears
// the pointer when it was current.
func (d *accountDirectory) DeleteAccount(ctx context.Context, accountID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.book.get(ctx, accountID); !ok {
		return ErrAccountNotFound
	}
	if err := d.book.remove(ctx, accountID); err != nil {
		d.logger.Err(err).Str("func", "accountDirectory.DeleteAccount").Str("account_id", accountID).Msg("failed to delete account")
		return err
	}

	if current, ok := store.Load[string](ctx, d.kv, slotCurrentAccount, store.NamespacePrivate); ok && current == accountID {
		return d.kv.Remove(ctx, slotCurrentAccount, store.NamespacePrivate)
	}
	return nil
}

func (d *accountDirectory) Account(ctx context.Context, accountID string) (models.Account, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.book.get(ctx, accountID)
}

func (d *accountDirectory) SetAccountData(ctx context.Context, accountID string, key models.StateKey, raw json.RawMessage) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.book.setData(ctx, accountID, key, raw)
}

func (d *accountDirectory) setCurrent(ctx context.Context, accountID string) error {
	if err := d.kv.Set(ctx, slotCurrentAccount, accountID, store.NamespacePrivate); err != nil {
		d.logger.Err(err).Str("func", "accountDirectory.setCurrent").Str("account_id", accountID).Msg("failed to set current account")
		return err
	}
	return nil
}
