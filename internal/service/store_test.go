package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/studytrack/internal/mock"
	"github.com/MKhiriev/studytrack/internal/store"
	"github.com/MKhiriev/studytrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMockStateBackend(ctrl *gomock.Controller, userID string) *mock.MockStateBackend {
	backend := mock.NewMockStateBackend(ctrl)
	backend.EXPECT().UserID().Return(userID).AnyTimes()
	backend.EXPECT().Name().Return(BackendDirectory).AnyTimes()
	return backend
}

func TestStore_Init_Guest(t *testing.T) {
	st := newTestStore(t, newTestKV(t), newTestClock(), nil, nil)
	st.Init(context.Background())

	user := st.User()
	assert.Equal(t, GuestUserID, st.UserID())
	assert.Equal(t, "", st.BackendName())
	assert.Equal(t, guestName, user.Name)
	assert.Equal(t, 1, user.Level)
	assert.Equal(t, 0, user.Streak)
	assert.Equal(t, "2026-03-10", user.LastLogin)
	assert.Equal(t, 10, user.XP, "login challenge pays on init")

	challenges := st.DailyChallenges()
	require.Len(t, challenges, len(dailyChallengeSet))
	for _, c := range challenges {
		assert.Equal(t, c.Type == models.ChallengeLogin, c.Completed, c.ID)
	}
	assert.Equal(t, models.DefaultSettings(), st.Settings())
}

func TestStore_Init_LocalSlotsOverrideBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := newTestKV(t)
	ctx := context.Background()
	backend := newMockStateBackend(ctrl, "acc-1")

	backend.EXPECT().Load(gomock.Any()).Return(map[models.StateKey]json.RawMessage{
		models.KeyUser:     json.RawMessage(`{"name":"alice","avatar":"🦊","level":3,"xp":100,"streak":2,"lastLogin":"2026-03-10"}`),
		models.KeySubjects: json.RawMessage(`[{"id":"s1","name":"Maths","color":"#f00","topics":[]}]`),
		models.KeyNotes:    json.RawMessage(`{"broken":`),
	}, nil)
	backend.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	require.NoError(t, kv.Set(ctx, stateSlot("acc-1", models.KeySubjects),
		json.RawMessage(`[{"id":"s2","name":"Physics","color":"#00f","topics":[]}]`), store.NamespacePrivate))

	st := newTestStore(t, kv, newTestClock(), backend, nil)
	st.Init(ctx)

	assert.Equal(t, "acc-1", st.UserID())
	assert.Equal(t, BackendDirectory, st.BackendName())

	subjects := st.Subjects()
	require.Len(t, subjects, 1)
	assert.Equal(t, "Physics", subjects[0].Name)

	user := st.User()
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, 3, user.Level)
	assert.Equal(t, 2, user.Streak)
	assert.Equal(t, 110, user.XP)
	assert.Equal(t, "acc-1", user.UserID)

	assert.Empty(t, st.Notes(), "malformed values fall back to defaults")
}

func TestStore_Persist_WritesLocalSlotAndBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := newTestKV(t)
	ctx := context.Background()
	backend := newMockStateBackend(ctrl, "acc-1")

	saved := map[models.StateKey]json.RawMessage{}
	backend.EXPECT().Load(gomock.Any()).Return(map[models.StateKey]json.RawMessage{}, nil)
	backend.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key models.StateKey, raw json.RawMessage) error {
			saved[key] = raw
			return nil
		}).AnyTimes()

	st := newTestStore(t, kv, newTestClock(), backend, nil)
	st.Init(ctx)

	subject, err := st.AddSubject(ctx, "Chemistry", "#0f0")
	require.NoError(t, err)

	require.Contains(t, saved, models.KeySubjects)
	var remote []models.Subject
	require.NoError(t, json.Unmarshal(saved[models.KeySubjects], &remote))
	require.Len(t, remote, 1)
	assert.Equal(t, subject.ID, remote[0].ID)

	local, ok := store.Load[[]models.Subject](ctx, kv, stateSlot("acc-1", models.KeySubjects), store.NamespacePrivate)
	require.True(t, ok)
	require.Len(t, local, 1)
	assert.Equal(t, "Chemistry", local[0].Name)
}

func TestStore_BackendFailuresAreTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := newTestKV(t)
	ctx := context.Background()
	backend := newMockStateBackend(ctrl, "acc-1")

	backend.EXPECT().Load(gomock.Any()).Return(nil, errors.New("offline"))
	backend.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("offline")).AnyTimes()

	st := newTestStore(t, kv, newTestClock(), backend, nil)
	st.Init(ctx)
	assert.Equal(t, 10, st.User().XP)

	_, err := st.AddSubject(ctx, "Biology", "")
	require.NoError(t, err)

	assert.True(t, kv.Has(ctx, stateSlot("acc-1", models.KeySubjects), store.NamespacePrivate))
}

func TestStore_Save_ResyncsLeaderboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	lb := mock.NewMockLeaderboard(ctrl)
	lb.EXPECT().InitializeUser(gomock.Any(), GuestUserID, guestName, "").Return(nil)
	lb.EXPECT().UpdateXP(gomock.Any(), GuestUserID, 10).Return(nil)

	st := newTestStore(t, newTestKV(t), newTestClock(), nil, lb)
	st.Init(ctx)

	lb.EXPECT().SyncUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.LeaderboardEntry) error {
			assert.Equal(t, GuestUserID, e.UserID)
			assert.Equal(t, 10, e.TotalXP)
			assert.Equal(t, "2026-03-10", e.LastActive)
			return nil
		})

	st.Save(ctx, models.KeyUser)
}

func TestStore_GettersReturnCopies(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, newTestKV(t), newTestClock(), nil, nil)
	st.Init(ctx)

	_, err := st.AddSubject(ctx, "Maths", "")
	require.NoError(t, err)
	_, err = st.LogSession(ctx, 20, "")
	require.NoError(t, err)

	subjects := st.Subjects()
	subjects[0].Name = "changed"
	sessions := st.Sessions()
	sessions[0].Duration = 999

	snapshot := st.Snapshot()
	snapshot.User.XP = 0

	assert.Equal(t, "Maths", st.Subjects()[0].Name)
	assert.Equal(t, 20, st.Sessions()[0].Duration)
	assert.Equal(t, 10, st.User().XP)
}
