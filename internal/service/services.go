package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/studytrack/internal/adapter"
	"github.com/MKhiriev/studytrack/internal/config"
	"github.com/MKhiriev/studytrack/internal/crypto"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/store"
	"github.com/MKhiriev/studytrack/internal/utils"
	"github.com/MKhiriev/studytrack/internal/validators"
)

// ClientServices groups the services of the client process.
type ClientServices struct {
	Directory AccountDirectory
	Auth      AuthManager
	Remote    RemoteIdentity
	Groups    GroupService

	kv        store.KeyValueStore
	backend   adapter.Backend
	validator validators.Validator
	ids       utils.IDGenerator
	clock     utils.Clock
	mode      string
	logger    *logger.Logger
}

// Workspace holds the services bound to the active identity.
type Workspace struct {
	Store       *Store
	Leaderboard Leaderboard
	Timer       *FocusTimer
}

func NewClientServices(storages *store.ClientStorages, backend adapter.Backend, cfg config.ClientApp, logger *logger.Logger) (*ClientServices, error) {
	if storages == nil || storages.KV == nil {
		return nil, errors.New("client storages are required")
	}

	kv := storages.KV
	ids := utils.NewUUIDGenerator()
	clock := utils.SystemClock{}

	s := &ClientServices{
		Directory: NewAccountDirectory(kv, ids, clock, logger),
		Auth:      NewAuthManager(kv, crypto.NewPasswordHasher(), ids, clock, cfg, logger),
		kv:        kv,
		backend:   backend,
		validator: validators.NewValidator(),
		ids:       ids,
		clock:     clock,
		mode:      cfg.Mode,
		logger:    logger,
	}
	if backend != nil {
		s.Remote = NewRemoteIdentity(backend, kv, logger)
		s.Groups = NewGroupService(backend, logger)
	}
	return s, nil
}

// Open resolves the active identity and loads its state. Hosted identities
// rank on the hosted leaderboard; every other identity ranks locally.
func (s *ClientServices) Open(ctx context.Context) *Workspace {
	resolver := BackendResolver{Auth: s.Auth, Directory: s.Directory, Logger: s.logger}
	if s.mode == config.ModeRemote {
		resolver.Remote = s.Remote
		resolver.Hosted = s.backend
	}
	backend := resolver.Resolve(ctx)

	var leaderboard Leaderboard
	if backend != nil && backend.Name() == BackendRemote {
		leaderboard = NewRemoteLeaderboard(s.backend, s.clock, s.logger)
	} else {
		leaderboard = NewLocalLeaderboard(s.kv, s.clock, s.logger)
	}

	st := NewStore(StoreDeps{
		KV:          s.kv,
		Backend:     backend,
		Leaderboard: leaderboard,
		Validator:   s.validator,
		IDs:         s.ids,
		Clock:       s.clock,
		Logger:      s.logger,
	})
	st.Init(ctx)

	return &Workspace{
		Store:       st,
		Leaderboard: leaderboard,
		Timer:       NewFocusTimer(st, s.clock, s.logger),
	}
}

// Mode is the configured identity mode.
func (s *ClientServices) Mode() string {
	return s.mode
}

// Logout ends every active identity on the device: the credentialed
// session, the current directory account and the hosted session.
func (s *ClientServices) Logout(ctx context.Context) error {
	errs := []error{s.Auth.Logout(ctx), s.Directory.Logout(ctx)}
	if s.Remote != nil {
		errs = append(errs, s.Remote.SignOut(ctx))
	}
	return errors.Join(errs...)
}
