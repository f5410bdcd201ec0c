package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/studytrack/internal/store"
	"github.com/MKhiriev/studytrack/internal/utils"
	"github.com/MKhiriev/studytrack/models"
)

// Local slots of the private namespace.
const (
	slotAccounts       = "accounts"
	slotCurrentAccount = "current_account"
	slotDeviceID       = "device_id"
	slotAuthSession    = "auth_session"
	slotRemoteSession  = "remote_session"
	slotStatePrefix    = "state/"
)

// Shared namespace slot of the local leaderboard.
const slotLeaderboard = "leaderboard"

// stateSlot names the local slot of one state key of userID.
func stateSlot(userID string, key models.StateKey) string {
	return slotStatePrefix + userID + "/" + string(key)
}

func stateSlotPrefix(userID string) string {
	return slotStatePrefix + userID + "/"
}

// accountBook is the "all accounts" map shared by the account directory and
// the auth manager. Callers serialise access.
type accountBook struct {
	kv store.KeyValueStore
}

func (b accountBook) load(ctx context.Context) map[string]models.Account {
	accounts, ok := store.Load[map[string]models.Account](ctx, b.kv, slotAccounts, store.NamespacePrivate)
	if !ok || accounts == nil {
		return map[string]models.Account{}
	}
	return accounts
}

func (b accountBook) save(ctx context.Context, accounts map[string]models.Account) error {
	if err := b.kv.Set(ctx, slotAccounts, accounts, store.NamespacePrivate); err != nil {
		return fmt.Errorf("error saving accounts: %w", err)
	}
	return nil
}

func (b accountBook) get(ctx context.Context, accountID string) (models.Account, bool) {
	account, ok := b.load(ctx)[accountID]
	return account, ok
}

func (b accountBook) put(ctx context.Context, account models.Account) error {
	accounts := b.load(ctx)
	accounts[account.AccountID] = account
	return b.save(ctx, accounts)
}

// findByUsername matches usernames case-insensitively.
func (b accountBook) findByUsername(ctx context.Context, username string) (models.Account, bool) {
	for _, account := range b.load(ctx) {
		if strings.EqualFold(account.Username, username) {
			return account, true
		}
	}
	return models.Account{}, false
}

// usernameTaken reports whether another account than exceptID uses username.
func (b accountBook) usernameTaken(ctx context.Context, username, exceptID string) bool {
	for id, account := range b.load(ctx) {
		if id != exceptID && strings.EqualFold(account.Username, username) {
			return true
		}
	}
	return false
}

func (b accountBook) remove(ctx context.Context, accountID string) error {
	accounts := b.load(ctx)
	delete(accounts, accountID)
	if err := b.save(ctx, accounts); err != nil {
		return err
	}
	return b.kv.RemovePrefix(ctx, stateSlotPrefix(accountID), store.NamespacePrivate)
}

func (b accountBook) setData(ctx context.Context, accountID string, key models.StateKey, raw json.RawMessage) error {
	accounts := b.load(ctx)
	account, ok := accounts[accountID]
	if !ok {
		return ErrAccountNotFound
	}
	if err := account.SetField(key, raw); err != nil {
		return err
	}
	if key == models.KeyUser {
		account.Avatar = account.User.Avatar
		account.LastLogin = account.User.LastLogin
	}
	accounts[accountID] = account
	return b.save(ctx, accounts)
}

// sorted returns the accounts ordered by creation time.
func (b accountBook) sorted(ctx context.Context) []models.Account {
	accounts := b.load(ctx)
	out := make([]models.Account, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].AccountID < out[j].AccountID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// newAccount builds an account with default state.
func newAccount(id, username, avatar string, now time.Time) models.Account {
	today := utils.FormatDate(now)
	return models.Account{
		AccountID: id,
		Username:  username,
		Avatar:    avatar,
		CreatedAt: now,
		LastLogin: today,
		StudyData: models.DefaultStudyData(id, username, avatar, today),
	}
}
