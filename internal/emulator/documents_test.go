package emulator

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/studytrack/models"
)

type seqIDs struct{ n int }

func (s *seqIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%03d", s.n)
}

func newTestStore() *documentStore {
	return newDocumentStore(&seqIDs{})
}

func TestDocumentStore_PathValidation(t *testing.T) {
	tests := []struct {
		path       string
		document   bool
		collection bool
	}{
		{path: "users/u1", document: true},
		{path: "/users/u1/", document: true},
		{path: "users", collection: true},
		{path: "users/u1/notes", collection: true},
		{path: "users//notes"},
		{path: ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.document, validDocumentPath(tt.path))
			assert.Equal(t, tt.collection, validCollectionPath(tt.path))
		})
	}
}

func TestDocumentStore_SetGetDelete(t *testing.T) {
	s := newTestStore()

	_, err := s.set("users", map[string]any{"a": 1})
	require.ErrorIs(t, err, errInvalidPath)

	_, err = s.set("users/u1", map[string]any{"username": "ann"})
	require.NoError(t, err)

	doc, ok := s.get("users/u1")
	require.True(t, ok)
	assert.Equal(t, "u1", doc.id)
	assert.Equal(t, "ann", doc.fields["username"])

	// snapshots are detached from the stored document
	doc.fields["username"] = "mutated"
	again, _ := s.get("users/u1")
	assert.Equal(t, "ann", again.fields["username"])

	require.NoError(t, s.delete("users/u1"))
	_, ok = s.get("users/u1")
	assert.False(t, ok)
}

func TestDocumentStore_MergeDeepAndMask(t *testing.T) {
	s := newTestStore()
	_, err := s.set("leaderboards/global", map[string]any{
		"u1": map[string]any{"username": "ann", "totalXP": 10, "subjectBreakdown": map[string]any{"math": 5}},
		"u2": map[string]any{"username": "bob"},
	})
	require.NoError(t, err)

	doc, err := s.merge("leaderboards/global", map[string]any{
		"u1": map[string]any{"totalXP": 20, "subjectBreakdown": map[string]any{"art": 1}},
	}, nil)
	require.NoError(t, err)

	u1 := doc.fields["u1"].(map[string]any)
	assert.Equal(t, "ann", u1["username"])
	assert.Equal(t, 20, u1["totalXP"])
	assert.Equal(t, map[string]any{"math": 5, "art": 1}, u1["subjectBreakdown"])

	doc, err = s.merge("leaderboards/global", map[string]any{
		"u1": map[string]any{"totalXP": 1},
	}, []string{"u1", "u2"})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"totalXP": 1}, doc.fields["u1"])
	_, present := doc.fields["u2"]
	assert.False(t, present)
}

func TestDocumentStore_MergeCreatesMissing(t *testing.T) {
	s := newTestStore()
	doc, err := s.merge("users/u1", map[string]any{"xp": 5}, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, doc.fields["xp"])
}

func TestDocumentStore_List(t *testing.T) {
	s := newTestStore()
	for i, xp := range []string{"50", "200", "10", "50"} {
		_, err := s.set(fmt.Sprintf("scores/s%d", i), map[string]any{
			"xp":   json.Number(xp),
			"team": []string{"red", "blue"}[i%2],
		})
		require.NoError(t, err)
	}
	_, err := s.set("scores/s0/nested/n1", map[string]any{"xp": json.Number("999")})
	require.NoError(t, err)

	ids := func(docs []document) []string {
		out := make([]string, 0, len(docs))
		for _, d := range docs {
			out = append(out, d.id)
		}
		return out
	}

	docs, err := s.list("scores", query{})
	require.NoError(t, err)
	assert.Equal(t, []string{"s0", "s1", "s2", "s3"}, ids(docs))

	docs, err = s.list("scores", query{orderBy: "xp", descending: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s0", "s3", "s2"}, ids(docs))

	docs, err = s.list("scores", query{orderBy: "xp", limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"s2", "s0"}, ids(docs))

	docs, err = s.list("scores", query{whereField: "team", whereValue: "red"})
	require.NoError(t, err)
	assert.Equal(t, []string{"s0", "s2"}, ids(docs))

	docs, err = s.list("scores", query{whereField: "xp", whereValue: "50"})
	require.NoError(t, err)
	assert.Equal(t, []string{"s0", "s3"}, ids(docs))

	_, err = s.list("scores/s0", query{})
	assert.ErrorIs(t, err, errInvalidPath)
}

func TestDocumentStore_Add(t *testing.T) {
	s := newTestStore()
	doc, err := s.add("studyGroups/g1/messages", map[string]any{"text": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "id-001", doc.id)
	assert.Equal(t, "studyGroups/g1/messages/id-001", doc.path)

	_, err = s.add("studyGroups/g1", nil)
	assert.ErrorIs(t, err, errInvalidPath)
}

func TestDocumentStore_ApplyIsAtomic(t *testing.T) {
	s := newTestStore()
	_, err := s.set("groups/g1", map[string]any{"name": "g"})
	require.NoError(t, err)

	err = s.apply([]models.BatchWrite{
		{Op: models.WriteDelete, Path: "groups/g1"},
		{Op: "upsert", Path: "groups/g2"},
	})
	require.ErrorIs(t, err, errUnknownWrite)
	_, ok := s.get("groups/g1")
	assert.True(t, ok, "no write applied when one is invalid")

	err = s.apply([]models.BatchWrite{
		{Op: models.WriteDelete, Path: "groups/g1"},
		{Op: models.WriteSet, Path: "groups/g2", Fields: map[string]any{"name": "two"}},
		{Op: models.WriteMerge, Path: "groups/g2", Fields: map[string]any{"code": "ABC123"}},
	})
	require.NoError(t, err)

	_, ok = s.get("groups/g1")
	assert.False(t, ok)
	g2, ok := s.get("groups/g2")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"name": "two", "code": "ABC123"}, g2.fields)

	assert.ErrorIs(t, s.apply(nil), errEmptyBatch)
	assert.ErrorIs(t, s.apply([]models.BatchWrite{{Op: models.WriteSet, Path: "groups"}}), errInvalidPath)
}

func TestCompareValues(t *testing.T) {
	assert.Equal(t, -1, compareValues(json.Number("9"), json.Number("10")))
	assert.Equal(t, 1, compareValues("b", "a"))
	assert.Equal(t, 0, compareValues(json.Number("1.0"), json.Number("1")))
	assert.Equal(t, -1, compareValues(nil, "a"))
	assert.Equal(t, 1, compareValues("a", nil))
}
