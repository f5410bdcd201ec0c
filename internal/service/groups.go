package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/studytrack/internal/adapter"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/models"
)

type groupService struct {
	backend adapter.Backend
	logger  *logger.Logger
}

// NewGroupService constructs a [GroupService] over the hosted backend.
func NewGroupService(backend adapter.Backend, logger *logger.Logger) GroupService {
	return &groupService{backend: backend, logger: logger}
}

func (g *groupService) CreateGroup(ctx context.Context, owner models.GroupMember, name, description string) (models.StudyGroup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.StudyGroup{}, ErrGroupNameRequired
	}

	group, err := unwrap(g.backend.CreateGroup(ctx, owner, name, strings.TrimSpace(description)))
	if err != nil {
		return models.StudyGroup{}, err
	}
	g.logger.Info().Str("func", "groupService.CreateGroup").Str("group_id", group.ID).Msg("study group created")
	return group, nil
}

func (g *groupService) JoinByCode(ctx context.Context, code string, member models.GroupMember) (models.StudyGroup, error) {
	group, err := unwrap(g.backend.GetGroupByCode(ctx, strings.ToUpper(strings.TrimSpace(code))))
	if err != nil {
		return models.StudyGroup{}, err
	}
	member.Role = models.RoleMember
	if _, err = unwrap(g.backend.JoinGroup(ctx, group.ID, member)); err != nil {
		return models.StudyGroup{}, err
	}
	return group, nil
}

func (g *groupService) Leave(ctx context.Context, groupID, userID string) error {
	_, err := unwrap(g.backend.LeaveGroup(ctx, groupID, userID))
	return err
}

func (g *groupService) Delete(ctx context.Context, groupID, requesterID string) error {
	if _, err := unwrap(g.backend.DeleteGroup(ctx, groupID, requesterID)); err != nil {
		return err
	}
	g.logger.Info().Str("func", "groupService.Delete").Str("group_id", groupID).Msg("study group deleted")
	return nil
}

func (g *groupService) Members(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	return unwrap(g.backend.GetGroupMembers(ctx, groupID))
}

func (g *groupService) UserGroups(ctx context.Context, userID string) ([]models.StudyGroup, error) {
	return unwrap(g.backend.GetUserGroups(ctx, userID))
}

func (g *groupService) ShareDeck(ctx context.Context, groupID, userID string, deck models.Deck) (models.SharedDeck, error) {
	return unwrap(g.backend.ShareDeck(ctx, groupID, userID, deck))
}

func (g *groupService) SharedDecks(ctx context.Context, groupID string) ([]models.SharedDeck, error) {
	return unwrap(g.backend.GetSharedDecks(ctx, groupID))
}

func (g *groupService) SendMessage(ctx context.Context, groupID string, author models.GroupMember, text string) (models.GroupMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.GroupMessage{}, ErrMessageRequired
	}
	return unwrap(g.backend.SendMessage(ctx, groupID, models.GroupMessage{
		UserID:   author.UserID,
		Username: author.Username,
		Text:     text,
	}))
}

func (g *groupService) Messages(ctx context.Context, groupID string, limit int) ([]models.GroupMessage, error) {
	return unwrap(g.backend.GetMessages(ctx, groupID, limit))
}
