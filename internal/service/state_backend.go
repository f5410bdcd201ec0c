package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/studytrack/internal/adapter"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/models"
)

// Backend names reported by [StateBackend.Name].
const (
	BackendDirectory = "directory"
	BackendAuth      = "auth"
	BackendRemote    = "remote"
)

// accountStore is the part of the two local identity layers a state
// backend needs.
type accountStore interface {
	Account(ctx context.Context, accountID string) (models.Account, bool)
	SetAccountData(ctx context.Context, accountID string, key models.StateKey, raw json.RawMessage) error
}

// accountBackend keeps the state embedded in a locally stored account.
type accountBackend struct {
	name      string
	accounts  accountStore
	accountID string
}

func (b *accountBackend) Name() string   { return b.name }
func (b *accountBackend) UserID() string { return b.accountID }

func (b *accountBackend) Load(ctx context.Context) (map[models.StateKey]json.RawMessage, error) {
	account, ok := b.accounts.Account(ctx, b.accountID)
	if !ok {
		return nil, ErrAccountNotFound
	}

	out := make(map[models.StateKey]json.RawMessage, len(models.AllStateKeys))
	for _, key := range models.AllStateKeys {
		raw, err := account.MarshalField(key)
		if err != nil {
			return nil, err
		}
		out[key] = raw
	}
	return out, nil
}

func (b *accountBackend) Save(ctx context.Context, key models.StateKey, raw json.RawMessage) error {
	return b.accounts.SetAccountData(ctx, b.accountID, key, raw)
}

// NewDirectoryStateBackend stores state in an account of the directory.
func NewDirectoryStateBackend(directory AccountDirectory, accountID string) StateBackend {
	return &accountBackend{name: BackendDirectory, accounts: directory, accountID: accountID}
}

// NewAuthStateBackend stores state in a credentialed account.
func NewAuthStateBackend(auth AuthManager, accountID string) StateBackend {
	return &accountBackend{name: BackendAuth, accounts: auth, accountID: accountID}
}

type remoteStateBackend struct {
	backend adapter.Backend
	session models.RemoteSession
	logger  *logger.Logger
}

// NewRemoteStateBackend stores state in the hosted user documents of
// session.UserID.
func NewRemoteStateBackend(backend adapter.Backend, session models.RemoteSession, logger *logger.Logger) StateBackend {
	return &remoteStateBackend{backend: backend, session: session, logger: logger}
}

func (b *remoteStateBackend) Name() string   { return BackendRemote }
func (b *remoteStateBackend) UserID() string { return b.session.UserID }

// Load reads the hosted state. A user that never saved a profile gets one
// built from the session.
func (b *remoteStateBackend) Load(ctx context.Context) (map[models.StateKey]json.RawMessage, error) {
	res := b.backend.GetUserState(ctx, b.session.UserID)
	if !res.Success {
		return nil, remoteFailure(res.Message)
	}

	data := res.Data
	if data == nil {
		data = map[models.StateKey]json.RawMessage{}
	}
	if _, ok := data[models.KeyUser]; !ok {
		profile := models.UserProfile{Name: b.session.Username, Level: 1, UserID: b.session.UserID}
		if p := b.backend.GetUserProfile(ctx, b.session.UserID); p.Success {
			profile.Avatar = p.Data.Avatar
		}
		raw, err := json.Marshal(profile)
		if err != nil {
			return nil, fmt.Errorf("marshal profile: %w", err)
		}
		data[models.KeyUser] = raw
	}
	return data, nil
}

func (b *remoteStateBackend) Save(ctx context.Context, key models.StateKey, raw json.RawMessage) error {
	res := b.backend.SetUserData(ctx, b.session.UserID, key, raw)
	if !res.Success {
		return remoteFailure(res.Message)
	}
	return nil
}

// BackendResolver picks the state backend at startup.
type BackendResolver struct {
	Auth      AuthManager
	Remote    RemoteIdentity
	Hosted    adapter.Backend
	Directory AccountDirectory
	Logger    *logger.Logger
}

// Resolve prefers an authenticated credentialed session, then a remembered
// hosted session, then the current directory account. It returns nil when
// no identity is active; the store then runs on transient defaults.
func (r BackendResolver) Resolve(ctx context.Context) StateBackend {
	if r.Auth != nil {
		if account, ok := r.Auth.CurrentAccount(ctx); ok {
			return NewAuthStateBackend(r.Auth, account.AccountID)
		}
	}
	if r.Remote != nil && r.Hosted != nil {
		if session, ok := r.Remote.Restore(ctx); ok {
			return NewRemoteStateBackend(r.Hosted, session, r.Logger)
		}
	}
	if r.Directory != nil {
		if account, ok := r.Directory.GetCurrentAccount(ctx); ok {
			return NewDirectoryStateBackend(r.Directory, account.AccountID)
		}
	}
	return nil
}
