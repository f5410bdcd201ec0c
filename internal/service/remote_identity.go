package service

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/studytrack/internal/adapter"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/store"
	"github.com/MKhiriev/studytrack/models"
)

type remoteIdentity struct {
	backend adapter.Backend
	kv      store.KeyValueStore

	mu      sync.Mutex
	session *models.RemoteSession

	logger *logger.Logger
}

// NewRemoteIdentity constructs the hosted [RemoteIdentity].
func NewRemoteIdentity(backend adapter.Backend, kv store.KeyValueStore, logger *logger.Logger) RemoteIdentity {
	return &remoteIdentity{backend: backend, kv: kv, logger: logger}
}

func (r *remoteIdentity) SignUp(ctx context.Context, username, password, avatar string) (models.RemoteSession, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return models.RemoteSession{}, err
	}

	res := r.backend.SignUp(ctx, username, password, avatar)
	if !res.Success {
		return models.RemoteSession{}, remoteFailure(res.Message)
	}
	return r.remember(ctx, res.Data)
}

func (r *remoteIdentity) SignIn(ctx context.Context, username, password string) (models.RemoteSession, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.RemoteSession{}, ErrInvalidCredentials
	}

	res := r.backend.SignIn(ctx, username, password)
	if !res.Success {
		return models.RemoteSession{}, remoteFailure(res.Message)
	}
	return r.remember(ctx, res.Data)
}

// SignOut always forgets the local session, even when the backend call
// fails.
func (r *remoteIdentity) SignOut(ctx context.Context) error {
	res := r.backend.SignOut(ctx)
	if !res.Success {
		r.logger.Warn().Str("func", "remoteIdentity.SignOut").Str("message", res.Message).Msg("backend sign out failed")
	}

	r.mu.Lock()
	r.session = nil
	r.mu.Unlock()
	r.backend.SetToken("")

	return r.kv.Remove(ctx, slotRemoteSession, store.NamespacePrivate)
}

func (r *remoteIdentity) Restore(ctx context.Context) (models.RemoteSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session != nil {
		return *r.session, true
	}

	session, ok := store.Load[models.RemoteSession](ctx, r.kv, slotRemoteSession, store.NamespacePrivate)
	if !ok || session.UserID == "" || session.Token == "" {
		return models.RemoteSession{}, false
	}
	r.backend.SetToken(session.Token)
	r.session = &session
	return session, true
}

func (r *remoteIdentity) remember(ctx context.Context, session models.RemoteSession) (models.RemoteSession, error) {
	r.mu.Lock()
	r.session = &session
	r.mu.Unlock()

	if err := r.kv.Set(ctx, slotRemoteSession, session, store.NamespacePrivate); err != nil {
		r.logger.Err(err).Str("func", "remoteIdentity.remember").Str("account_id", session.UserID).Msg("failed to persist remote session")
		return session, err
	}
	return session, nil
}
