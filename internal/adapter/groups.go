package adapter

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/studytrack/internal/app"
	"github.com/MKhiriev/studytrack/models"
)

const (
	// MaxMessages caps a chat history read.
	MaxMessages = 50

	groupCodeLength   = 6
	groupCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeAttempts      = 5
)

func groupPath(groupID string) string { return "studyGroups/" + groupID }

func membersPath(groupID string) string { return groupPath(groupID) + "/members" }

func sharedDecksPath(groupID string) string { return groupPath(groupID) + "/sharedFlashcards" }

func messagesPath(groupID string) string { return groupPath(groupID) + "/messages" }

func userGroupPath(uid, groupID string) string { return "users/" + uid + "/groups/" + groupID }

// generateGroupCode returns a short join code without ambiguous glyphs.
func generateGroupCode() (string, error) {
	var sb strings.Builder
	alphabetLen := big.NewInt(int64(len(groupCodeAlphabet)))
	for i := 0; i < groupCodeLength; i++ {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(groupCodeAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// toFields turns a JSON-tagged struct into document fields.
func toFields(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err = json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	out := make(map[string]any, len(fields))
	for k, f := range fields {
		out[k] = f
	}
	return out, nil
}

// fromFields decodes document fields into a JSON-tagged struct.
func fromFields(doc models.Document, v any) error {
	raw, err := json.Marshal(doc.Fields)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", doc.Path, err)
	}
	return nil
}

func (h *httpBackend) CreateGroup(ctx context.Context, owner models.GroupMember, name, description string) models.Result[models.StudyGroup] {
	code, err := h.uniqueGroupCode(ctx)
	if err != nil {
		return fail[models.StudyGroup](h.logger, "httpBackend.CreateGroup", err)
	}

	now := h.clock.Now().UTC()
	group := models.StudyGroup{
		ID:          h.ids.Generate(),
		Name:        name,
		Description: description,
		Code:        code,
		OwnerID:     owner.UserID,
		CreatedAt:   now,
	}
	owner.Role = models.RoleOwner
	owner.JoinedAt = now

	groupFields, err := toFields(group)
	if err != nil {
		return fail[models.StudyGroup](h.logger, "httpBackend.CreateGroup", err)
	}
	memberFields, err := toFields(owner)
	if err != nil {
		return fail[models.StudyGroup](h.logger, "httpBackend.CreateGroup", err)
	}

	err = h.commit(ctx, []models.BatchWrite{
		{Op: models.WriteSet, Path: groupPath(group.ID), Fields: groupFields},
		{Op: models.WriteSet, Path: membersPath(group.ID) + "/" + owner.UserID, Fields: memberFields},
		{Op: models.WriteSet, Path: userGroupPath(owner.UserID, group.ID), Fields: map[string]any{
			"groupId": group.ID, "joinedAt": now.Format(time.RFC3339Nano),
		}},
	})
	if err != nil {
		return fail[models.StudyGroup](h.logger, "httpBackend.CreateGroup", err)
	}
	return models.Ok(group)
}

func (h *httpBackend) uniqueGroupCode(ctx context.Context) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code, err := generateGroupCode()
		if err != nil {
			return "", err
		}
		docs, err := h.listCollection(ctx, "studyGroups", listOptions{whereField: "code", whereValue: code, limit: 1})
		if err != nil {
			return "", err
		}
		if len(docs) == 0 {
			return code, nil
		}
	}
	return "", &BackendError{Code: app.CodeAlreadyExists, Message: "could not allocate a unique group code"}
}

func (h *httpBackend) GetGroup(ctx context.Context, groupID string) models.Result[models.StudyGroup] {
	group, found, err := h.readGroup(ctx, groupID)
	if err != nil {
		return fail[models.StudyGroup](h.logger, "httpBackend.GetGroup", err)
	}
	if !found {
		return models.Fail[models.StudyGroup](app.MsgGroupNotFound)
	}
	return models.Ok(group)
}

func (h *httpBackend) readGroup(ctx context.Context, groupID string) (models.StudyGroup, bool, error) {
	doc, found, err := h.getDocument(ctx, groupPath(groupID))
	if err != nil || !found {
		return models.StudyGroup{}, false, err
	}
	var group models.StudyGroup
	if err = fromFields(doc, &group); err != nil {
		return models.StudyGroup{}, false, err
	}
	if group.ID == "" {
		group.ID = doc.ID
	}
	return group, true, nil
}

func (h *httpBackend) GetGroupByCode(ctx context.Context, code string) models.Result[models.StudyGroup] {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return models.Fail[models.StudyGroup](app.MsgGroupNotFound)
	}

	docs, err := h.listCollection(ctx, "studyGroups", listOptions{whereField: "code", whereValue: code, limit: 1})
	if err != nil {
		return fail[models.StudyGroup](h.logger, "httpBackend.GetGroupByCode", err)
	}
	if len(docs) == 0 {
		return models.Fail[models.StudyGroup](app.MsgGroupNotFound)
	}

	var group models.StudyGroup
	if err = fromFields(docs[0], &group); err != nil {
		return fail[models.StudyGroup](h.logger, "httpBackend.GetGroupByCode", err)
	}
	return models.Ok(group)
}

func (h *httpBackend) JoinGroup(ctx context.Context, groupID string, member models.GroupMember) models.Result[struct{}] {
	if _, found, err := h.readGroup(ctx, groupID); err != nil {
		return fail[struct{}](h.logger, "httpBackend.JoinGroup", err)
	} else if !found {
		return models.Fail[struct{}](app.MsgGroupNotFound)
	}

	memberDoc := membersPath(groupID) + "/" + member.UserID
	if _, found, err := h.getDocument(ctx, memberDoc); err != nil {
		return fail[struct{}](h.logger, "httpBackend.JoinGroup", err)
	} else if found {
		return models.Ok(struct{}{})
	}

	now := h.clock.Now().UTC()
	member.Role = models.RoleMember
	member.JoinedAt = now
	fields, err := toFields(member)
	if err != nil {
		return fail[struct{}](h.logger, "httpBackend.JoinGroup", err)
	}

	err = h.commit(ctx, []models.BatchWrite{
		{Op: models.WriteSet, Path: memberDoc, Fields: fields},
		{Op: models.WriteSet, Path: userGroupPath(member.UserID, groupID), Fields: map[string]any{
			"groupId": groupID, "joinedAt": now.Format(time.RFC3339Nano),
		}},
	})
	if err != nil {
		return fail[struct{}](h.logger, "httpBackend.JoinGroup", err)
	}
	return models.Ok(struct{}{})
}

func (h *httpBackend) LeaveGroup(ctx context.Context, groupID, userID string) models.Result[struct{}] {
	err := h.commit(ctx, []models.BatchWrite{
		{Op: models.WriteDelete, Path: membersPath(groupID) + "/" + userID},
		{Op: models.WriteDelete, Path: userGroupPath(userID, groupID)},
	})
	if err != nil {
		return fail[struct{}](h.logger, "httpBackend.LeaveGroup", err)
	}
	return models.Ok(struct{}{})
}

func (h *httpBackend) GetGroupMembers(ctx context.Context, groupID string) models.Result[[]models.GroupMember] {
	docs, err := h.listCollection(ctx, membersPath(groupID), listOptions{})
	if err != nil {
		return fail[[]models.GroupMember](h.logger, "httpBackend.GetGroupMembers", err)
	}

	members := make([]models.GroupMember, 0, len(docs))
	for _, doc := range docs {
		var m models.GroupMember
		if err = fromFields(doc, &m); err != nil {
			return fail[[]models.GroupMember](h.logger, "httpBackend.GetGroupMembers", err)
		}
		members = append(members, m)
	}
	return models.Ok(members)
}

func (h *httpBackend) GetUserGroups(ctx context.Context, uid string) models.Result[[]models.StudyGroup] {
	docs, err := h.listCollection(ctx, "users/"+uid+"/groups", listOptions{})
	if err != nil {
		return fail[[]models.StudyGroup](h.logger, "httpBackend.GetUserGroups", err)
	}

	groups := make([]models.StudyGroup, 0, len(docs))
	for _, doc := range docs {
		group, found, err := h.readGroup(ctx, doc.ID)
		if err != nil {
			return fail[[]models.StudyGroup](h.logger, "httpBackend.GetUserGroups", err)
		}
		if found {
			groups = append(groups, group)
		}
	}
	return models.Ok(groups)
}

func (h *httpBackend) ShareDeck(ctx context.Context, groupID, userID string, deck models.Deck) models.Result[models.SharedDeck] {
	shared := models.SharedDeck{Deck: deck, SharedBy: userID, SharedAt: h.clock.Now().UTC()}
	fields, err := toFields(shared)
	if err != nil {
		return fail[models.SharedDeck](h.logger, "httpBackend.ShareDeck", err)
	}
	delete(fields, "id")

	doc, err := h.addDocument(ctx, sharedDecksPath(groupID), fields)
	if err != nil {
		return fail[models.SharedDeck](h.logger, "httpBackend.ShareDeck", err)
	}
	shared.ID = doc.ID
	return models.Ok(shared)
}

func (h *httpBackend) GetSharedDecks(ctx context.Context, groupID string) models.Result[[]models.SharedDeck] {
	docs, err := h.listCollection(ctx, sharedDecksPath(groupID), listOptions{})
	if err != nil {
		return fail[[]models.SharedDeck](h.logger, "httpBackend.GetSharedDecks", err)
	}

	decks := make([]models.SharedDeck, 0, len(docs))
	for _, doc := range docs {
		var d models.SharedDeck
		if err = fromFields(doc, &d); err != nil {
			return fail[[]models.SharedDeck](h.logger, "httpBackend.GetSharedDecks", err)
		}
		d.ID = doc.ID
		decks = append(decks, d)
	}
	return models.Ok(decks)
}

func (h *httpBackend) DeleteGroup(ctx context.Context, groupID, requesterID string) models.Result[struct{}] {
	group, found, err := h.readGroup(ctx, groupID)
	if err != nil {
		return fail[struct{}](h.logger, "httpBackend.DeleteGroup", err)
	}
	if !found {
		return models.Fail[struct{}](app.MsgGroupNotFound)
	}
	if group.OwnerID != requesterID {
		return models.Fail[struct{}](app.MsgNotGroupOwner)
	}

	// the group document goes first so an oversized, split delete never
	// leaves a visible group behind
	writes := []models.BatchWrite{{Op: models.WriteDelete, Path: groupPath(groupID)}}

	members, err := h.listCollection(ctx, membersPath(groupID), listOptions{})
	if err != nil {
		return fail[struct{}](h.logger, "httpBackend.DeleteGroup", err)
	}
	for _, m := range members {
		writes = append(writes,
			models.BatchWrite{Op: models.WriteDelete, Path: membersPath(groupID) + "/" + m.ID},
			models.BatchWrite{Op: models.WriteDelete, Path: userGroupPath(m.ID, groupID)},
		)
	}

	for _, sub := range []string{sharedDecksPath(groupID), messagesPath(groupID)} {
		docs, err := h.listCollection(ctx, sub, listOptions{})
		if err != nil {
			return fail[struct{}](h.logger, "httpBackend.DeleteGroup", err)
		}
		for _, d := range docs {
			writes = append(writes, models.BatchWrite{Op: models.WriteDelete, Path: sub + "/" + d.ID})
		}
	}

	if err = h.commit(ctx, writes); err != nil {
		return fail[struct{}](h.logger, "httpBackend.DeleteGroup", err)
	}
	return models.Ok(struct{}{})
}

type messageDoc struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	SentAt    int64     `json:"sentAt"`
}

func (h *httpBackend) SendMessage(ctx context.Context, groupID string, msg models.GroupMessage) models.Result[models.GroupMessage] {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = h.clock.Now().UTC()
	}
	fields, err := toFields(messageDoc{
		UserID:    msg.UserID,
		Username:  msg.Username,
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
		SentAt:    msg.CreatedAt.UnixMilli(),
	})
	if err != nil {
		return fail[models.GroupMessage](h.logger, "httpBackend.SendMessage", err)
	}

	doc, err := h.addDocument(ctx, messagesPath(groupID), fields)
	if err != nil {
		return fail[models.GroupMessage](h.logger, "httpBackend.SendMessage", err)
	}
	msg.ID = doc.ID
	return models.Ok(msg)
}

func (h *httpBackend) GetMessages(ctx context.Context, groupID string, limit int) models.Result[[]models.GroupMessage] {
	limit = max(1, min(limit, MaxMessages))

	docs, err := h.listCollection(ctx, messagesPath(groupID), listOptions{
		orderBy:    "sentAt",
		descending: true,
		limit:      limit,
	})
	if err != nil {
		return fail[[]models.GroupMessage](h.logger, "httpBackend.GetMessages", err)
	}

	messages := make([]models.GroupMessage, 0, len(docs))
	for _, doc := range docs {
		var m messageDoc
		if err = fromFields(doc, &m); err != nil {
			return fail[[]models.GroupMessage](h.logger, "httpBackend.GetMessages", err)
		}
		messages = append(messages, models.GroupMessage{
			ID:        doc.ID,
			UserID:    m.UserID,
			Username:  m.Username,
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
		})
	}
	slices.Reverse(messages)
	return models.Ok(messages)
}
