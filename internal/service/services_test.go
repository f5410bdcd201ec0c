package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/studytrack/internal/config"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/mock"
	"github.com/MKhiriev/studytrack/internal/store"
	"github.com/MKhiriev/studytrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewClientServices_RequiresKV(t *testing.T) {
	_, err := NewClientServices(nil, nil, testAppConfig(), logger.Nop())
	assert.Error(t, err)

	_, err = NewClientServices(&store.ClientStorages{}, nil, testAppConfig(), logger.Nop())
	assert.Error(t, err)
}

func TestClientServices_Open_Local(t *testing.T) {
	ctx := context.Background()
	services, err := NewClientServices(&store.ClientStorages{KV: newTestKV(t)}, nil, testAppConfig(), logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, services.Remote)
	assert.Nil(t, services.Groups)

	guest := services.Open(ctx)
	assert.Equal(t, GuestUserID, guest.Store.UserID())
	assert.Equal(t, "", guest.Store.BackendName())
	assert.False(t, guest.Timer.IsStudySessionActive())

	account, err := services.Directory.CreateAccount(ctx, "alice", "🦊")
	require.NoError(t, err)

	ws := services.Open(ctx)
	assert.Equal(t, account.AccountID, ws.Store.UserID())
	assert.Equal(t, BackendDirectory, ws.Store.BackendName())
	assert.Equal(t, "alice", ws.Store.User().Name)

	entries, err := ws.Leaderboard.GetLeaderboard(ctx, models.CategoryTotalXP, models.TimeFilterAll, "")
	require.NoError(t, err)
	assert.Contains(t, userIDs(entries), account.AccountID)
}

func TestClientServices_Open_RemoteSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	kv := newTestKV(t)
	require.NoError(t, kv.Set(ctx, slotRemoteSession, models.RemoteSession{UserID: "uid-1", Username: "alice", Token: "tok"}, store.NamespacePrivate))

	backend := mock.NewMockBackend(ctrl)
	backend.EXPECT().SetToken("tok")
	backend.EXPECT().GetUserState(gomock.Any(), "uid-1").Return(models.Ok(map[models.StateKey]json.RawMessage{
		models.KeyUser: json.RawMessage(`{"name":"alice","avatar":"🦊","level":2,"xp":40}`),
	}))
	backend.EXPECT().SetUserData(gomock.Any(), "uid-1", gomock.Any(), gomock.Any()).Return(models.Ok(struct{}{})).AnyTimes()
	backend.EXPECT().GetLeaderboard(gomock.Any()).Return(models.Ok([]models.LeaderboardEntry{})).AnyTimes()
	backend.EXPECT().SetLeaderboardEntry(gomock.Any(), gomock.Any()).Return(models.Ok(struct{}{})).AnyTimes()

	cfg := testAppConfig()
	cfg.Mode = config.ModeRemote
	services, err := NewClientServices(&store.ClientStorages{KV: kv}, backend, cfg, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, services.Groups)

	ws := services.Open(ctx)
	assert.Equal(t, "uid-1", ws.Store.UserID())
	assert.Equal(t, BackendRemote, ws.Store.BackendName())
	assert.Equal(t, "alice", ws.Store.User().Name)
	assert.Equal(t, 2, ws.Store.User().Level)
}

func TestClientServices_Logout(t *testing.T) {
	ctx := context.Background()
	services, err := NewClientServices(&store.ClientStorages{KV: newTestKV(t)}, nil, testAppConfig(), logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, config.ModeLocal, services.Mode())

	_, err = services.Directory.CreateAccount(ctx, "alice", "")
	require.NoError(t, err)
	_, err = services.Auth.SignUp(ctx, "bob", "secret1", "")
	require.NoError(t, err)

	require.NoError(t, services.Logout(ctx))

	_, ok := services.Directory.GetCurrentAccount(ctx)
	assert.False(t, ok)
	_, ok = services.Auth.CurrentAccount(ctx)
	assert.False(t, ok)
	assert.Equal(t, GuestUserID, services.Open(ctx).Store.UserID())
}
