package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/studytrack/internal/app"
	"github.com/MKhiriev/studytrack/models"
)

type layoutKind int

const (
	// stored as a field of users/{uid}
	layoutUserField layoutKind = iota
	// one document per item in a collection
	layoutCollection
	// one field of a fixed document
	layoutSingleDoc
)

type layout struct {
	kind  layoutKind
	path  func(uid string) string
	field string
}

func userDocPath(uid string) string { return "users/" + uid }

func userSub(sub string) func(string) string {
	return func(uid string) string { return "users/" + uid + "/" + sub }
}

var stateLayouts = map[models.StateKey]layout{
	models.KeyUser:                   {kind: layoutUserField, path: userDocPath, field: string(models.KeyUser)},
	models.KeySubjects:               {kind: layoutUserField, path: userDocPath, field: string(models.KeySubjects)},
	models.KeyBadges:                 {kind: layoutUserField, path: userDocPath, field: string(models.KeyBadges)},
	models.KeyDailyChallenges:        {kind: layoutUserField, path: userDocPath, field: string(models.KeyDailyChallenges)},
	models.KeyLastChallengeDate:      {kind: layoutUserField, path: userDocPath, field: string(models.KeyLastChallengeDate)},
	models.KeyTimetableStudyProgress: {kind: layoutUserField, path: userDocPath, field: string(models.KeyTimetableStudyProgress)},
	models.KeyTimetableStudyRewards:  {kind: layoutUserField, path: userDocPath, field: string(models.KeyTimetableStudyRewards)},
	models.KeyDailyXPAwards:          {kind: layoutUserField, path: userDocPath, field: string(models.KeyDailyXPAwards)},
	models.KeyDailyActivities:        {kind: layoutUserField, path: userDocPath, field: string(models.KeyDailyActivities)},
	models.KeyLastCheckIn:            {kind: layoutUserField, path: userDocPath, field: string(models.KeyLastCheckIn)},
	models.KeyLastXPClaim:            {kind: layoutUserField, path: userDocPath, field: string(models.KeyLastXPClaim)},

	models.KeyFlashcards: {kind: layoutCollection, path: userSub("flashcards")},
	models.KeyNotes:      {kind: layoutCollection, path: userSub("notes")},
	models.KeyCountdowns: {kind: layoutCollection, path: userSub("countdowns")},
	models.KeyPapers:     {kind: layoutCollection, path: userSub("papers")},
	models.KeySessions:   {kind: layoutCollection, path: userSub("sessions")},
	models.KeyAchievements: {kind: layoutCollection, path: func(uid string) string {
		return "achievements/" + uid + "/unlocked"
	}},

	models.KeyTimetable:   {kind: layoutSingleDoc, path: userSub("timetable/schedule"), field: "slots"},
	models.KeyVisionBoard: {kind: layoutSingleDoc, path: userSub("visionBoard/items"), field: "items"},
	models.KeySettings:    {kind: layoutSingleDoc, path: userSub("settings/preferences"), field: "preferences"},
}

// collectionItem is the stored shape of one item of a collection-backed key.
type collectionItem struct {
	Data  json.RawMessage `json:"data"`
	Order int             `json:"order"`
}

func (h *httpBackend) GetUserProfile(ctx context.Context, uid string) models.Result[models.RemoteProfile] {
	doc, found, err := h.getDocument(ctx, userDocPath(uid))
	if err != nil {
		return fail[models.RemoteProfile](h.logger, "httpBackend.GetUserProfile", err)
	}
	if !found {
		return fail[models.RemoteProfile](h.logger, "httpBackend.GetUserProfile",
			&BackendError{Code: app.CodeNotFound, Message: "no profile for " + uid})
	}

	profile := models.RemoteProfile{UserID: uid}
	for name, dst := range map[string]any{
		"username":  &profile.Username,
		"avatar":    &profile.Avatar,
		"createdAt": &profile.CreatedAt,
	} {
		if _, err = decodeField(doc, name, dst); err != nil {
			return fail[models.RemoteProfile](h.logger, "httpBackend.GetUserProfile", err)
		}
	}
	return models.Ok(profile)
}

func (h *httpBackend) SetUserProfile(ctx context.Context, profile models.RemoteProfile) models.Result[struct{}] {
	fields := map[string]any{
		"userId":   profile.UserID,
		"username": profile.Username,
		"avatar":   profile.Avatar,
	}
	if !profile.CreatedAt.IsZero() {
		fields["createdAt"] = profile.CreatedAt.Format(time.RFC3339Nano)
	}
	if err := h.mergeDocument(ctx, userDocPath(profile.UserID), fields, nil); err != nil {
		return fail[struct{}](h.logger, "httpBackend.SetUserProfile", err)
	}
	return models.Ok(struct{}{})
}

func (h *httpBackend) GetUserState(ctx context.Context, uid string) models.Result[map[models.StateKey]json.RawMessage] {
	state := make(map[models.StateKey]json.RawMessage)

	userDoc, found, err := h.getDocument(ctx, userDocPath(uid))
	if err != nil {
		return fail[map[models.StateKey]json.RawMessage](h.logger, "httpBackend.GetUserState", err)
	}

	for _, key := range models.AllStateKeys {
		l, ok := stateLayouts[key]
		if !ok {
			continue
		}

		var raw json.RawMessage
		switch l.kind {
		case layoutUserField:
			if found {
				raw = userDoc.Fields[l.field]
			}
		default:
			raw, err = h.readKey(ctx, uid, l)
			if err != nil {
				return fail[map[models.StateKey]json.RawMessage](h.logger, "httpBackend.GetUserState", err)
			}
		}
		if len(raw) > 0 && string(raw) != "null" {
			state[key] = raw
		}
	}
	return models.Ok(state)
}

func (h *httpBackend) GetUserData(ctx context.Context, uid string, key models.StateKey) models.Result[json.RawMessage] {
	l, ok := stateLayouts[key]
	if !ok {
		return fail[json.RawMessage](h.logger, "httpBackend.GetUserData", fmt.Errorf("%w: %q", ErrUnknownDataKey, key))
	}

	raw, err := h.readKey(ctx, uid, l)
	if err != nil {
		return fail[json.RawMessage](h.logger, "httpBackend.GetUserData", err)
	}
	return models.Ok(raw)
}

func (h *httpBackend) SetUserData(ctx context.Context, uid string, key models.StateKey, raw json.RawMessage) models.Result[struct{}] {
	l, ok := stateLayouts[key]
	if !ok {
		return fail[struct{}](h.logger, "httpBackend.SetUserData", fmt.Errorf("%w: %q", ErrUnknownDataKey, key))
	}
	if !json.Valid(raw) {
		return fail[struct{}](h.logger, "httpBackend.SetUserData", &BackendError{Code: app.CodeInvalidArgument, Message: "invalid JSON value"})
	}

	var err error
	switch l.kind {
	case layoutUserField:
		err = h.mergeDocument(ctx, l.path(uid), map[string]any{l.field: raw}, []string{l.field})
	case layoutSingleDoc:
		err = h.setDocument(ctx, l.path(uid), map[string]any{l.field: raw})
	case layoutCollection:
		err = h.replaceCollection(ctx, l.path(uid), raw)
	}
	if err != nil {
		return fail[struct{}](h.logger, "httpBackend.SetUserData", err)
	}
	return models.Ok(struct{}{})
}

// readKey reads a key stored outside users/{uid} or as one of its fields.
// It returns nil when nothing was written.
func (h *httpBackend) readKey(ctx context.Context, uid string, l layout) (json.RawMessage, error) {
	switch l.kind {
	case layoutCollection:
		docs, err := h.listCollection(ctx, l.path(uid), listOptions{orderBy: "order"})
		if err != nil {
			return nil, err
		}
		if len(docs) == 0 {
			return nil, nil
		}
		items := make([]json.RawMessage, 0, len(docs))
		for _, doc := range docs {
			var data json.RawMessage
			if _, err = decodeField(doc, "data", &data); err != nil {
				return nil, err
			}
			if data != nil {
				items = append(items, data)
			}
		}
		return json.Marshal(items)
	default:
		doc, found, err := h.getDocument(ctx, l.path(uid))
		if err != nil || !found {
			return nil, err
		}
		return doc.Fields[l.field], nil
	}
}

// replaceCollection makes the collection hold exactly the items of raw, a
// JSON array. Items keep their "id" as document id; items without one are
// keyed by position.
func (h *httpBackend) replaceCollection(ctx context.Context, path string, raw json.RawMessage) error {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return &BackendError{Code: app.CodeInvalidArgument, Message: "collection value must be an array"}
	}

	existing, err := h.listCollection(ctx, path, listOptions{})
	if err != nil {
		return err
	}

	writes := make([]models.BatchWrite, 0, len(items)+len(existing))
	keep := make(map[string]bool, len(items))
	for i, item := range items {
		id := itemID(item, i)
		keep[id] = true
		writes = append(writes, models.BatchWrite{
			Op:     models.WriteSet,
			Path:   path + "/" + id,
			Fields: map[string]any{"data": item, "order": i},
		})
	}
	for _, doc := range existing {
		if !keep[doc.ID] {
			writes = append(writes, models.BatchWrite{Op: models.WriteDelete, Path: path + "/" + doc.ID})
		}
	}
	if len(writes) == 0 {
		return nil
	}
	return h.commit(ctx, writes)
}

func itemID(item json.RawMessage, index int) string {
	var withID struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(item, &withID); err == nil && validDocID(withID.ID) {
		return withID.ID
	}
	return fmt.Sprintf("%06d", index)
}

func validDocID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	for _, r := range id {
		if r == '/' {
			return false
		}
	}
	return true
}
