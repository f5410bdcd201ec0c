package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudyData_FieldRoundTripEveryKey(t *testing.T) {
	src := DefaultStudyData("u1", "alice", "🎓", "2026-03-10")
	src.Subjects = []Subject{{ID: "s1", Name: "Maths"}}
	src.DailyActivities = map[string]map[string]int{"2026-03-10": {"quiz": 2}}

	for _, key := range AllStateKeys {
		t.Run(string(key), func(t *testing.T) {
			raw, err := src.MarshalField(key)
			require.NoError(t, err)

			dst := StudyData{}
			require.NoError(t, dst.SetField(key, raw))

			back, err := dst.MarshalField(key)
			require.NoError(t, err)
			assert.JSONEq(t, string(raw), string(back))
		})
	}
}

func TestStudyData_UnknownKey(t *testing.T) {
	d := DefaultStudyData("u1", "alice", "", "")

	_, err := d.MarshalField("streakFreeze")
	assert.ErrorIs(t, err, ErrUnknownStateKey)
	assert.ErrorIs(t, d.SetField("streakFreeze", json.RawMessage(`1`)), ErrUnknownStateKey)
}

func TestStudyData_SetFieldReplacesMaps(t *testing.T) {
	d := DefaultStudyData("u1", "alice", "", "")
	d.DailyXPAwards = map[string]XPAward{"checkin": {Date: "2026-03-09", Amount: 10}}

	require.NoError(t, d.SetField(KeyDailyXPAwards, json.RawMessage(`{"claim":{"date":"2026-03-10","amount":25}}`)))

	assert.Equal(t, map[string]XPAward{"claim": {Date: "2026-03-10", Amount: 25}}, d.DailyXPAwards)
}

func TestStudyData_SetFieldMalformedKeepsValue(t *testing.T) {
	d := DefaultStudyData("u1", "alice", "", "")
	d.Notes = []Note{{ID: "n1"}}

	err := d.SetField(KeyNotes, json.RawMessage(`{"not":"a list"}`))

	require.Error(t, err)
	assert.Equal(t, []Note{{ID: "n1"}}, d.Notes)
}

func TestStudyData_CloneIsDeep(t *testing.T) {
	d := DefaultStudyData("u1", "alice", "", "")
	d.Subjects = []Subject{{ID: "s1", Name: "Maths"}}
	d.TimetableStudyProgress = map[string]map[string]int{"2026-03-10": {"s1": 30}}

	c := d.Clone()
	c.Subjects[0].Name = "Physics"
	c.TimetableStudyProgress["2026-03-10"]["s1"] = 90

	assert.Equal(t, "Maths", d.Subjects[0].Name)
	assert.Equal(t, 30, d.TimetableStudyProgress["2026-03-10"]["s1"])
}

func TestStudyData_Normalize(t *testing.T) {
	var d StudyData
	d.Normalize()

	assert.Equal(t, 1, d.User.Level)
	assert.Equal(t, DefaultSettings(), d.Settings)
	assert.NotNil(t, d.Sessions)
	assert.NotNil(t, d.DailyActivities)

	raw, err := d.MarshalField(KeySessions)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestCard_IsDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	later := now.Add(time.Minute)

	assert.True(t, Card{}.IsDue(now))
	assert.True(t, Card{NextReview: &now}.IsDue(now))
	assert.False(t, Card{NextReview: &later}.IsDue(now))
}

func TestLeaderboardEntry_Stat(t *testing.T) {
	var e LeaderboardEntry
	for i, c := range []LeaderboardCategory{CategoryStudyTime, CategoryStudyStreak, CategoryStudySessions, CategoryFlashcardsCompleted, CategoryTotalXP} {
		require.True(t, e.SetStat(c, i+1))
		assert.Equal(t, i+1, e.Stat(c))
	}

	assert.False(t, e.SetStat("karma", 5))
	assert.Zero(t, e.Stat("karma"))
}

func TestAccount_HasDevice(t *testing.T) {
	a := Account{Devices: []string{"dev-1", "dev-2"}}

	assert.True(t, a.HasDevice("dev-2"))
	assert.False(t, a.HasDevice("dev-3"))
}

func TestAuthSession_Expired(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s := AuthSession{ExpiresAt: now}

	assert.True(t, s.Expired(now))
	assert.False(t, s.Expired(now.Add(-time.Second)))
}

func TestResult(t *testing.T) {
	ok := Ok(42)
	assert.True(t, ok.Success)
	assert.Equal(t, 42, ok.Data)

	fail := Fail[int]("boom")
	assert.False(t, fail.Success)
	assert.Equal(t, "boom", fail.Message)
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "", "3f2a9c1")

	assert.Equal(t, "1.4.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "1.4.0 (N/A, 3f2a9c1)", info.String())
	assert.Equal(t, "N/A (N/A, N/A)", AppBuildInfo{}.String())
}
