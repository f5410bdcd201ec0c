package models

import "time"

// StudyGroup is a hosted group users join with a short code.
type StudyGroup struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Code        string    `json:"code"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GroupMember is a membership record of a study group.
type GroupMember struct {
	UserID   string    `json:"userId"`
	Username string    `json:"username"`
	Avatar   string    `json:"avatar"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Group member roles.
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// GroupMessage is an append-only chat message.
type GroupMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// SharedDeck is a flashcard deck shared with a group.
type SharedDeck struct {
	ID       string    `json:"id"`
	Deck     Deck      `json:"deck"`
	SharedBy string    `json:"sharedBy"`
	SharedAt time.Time `json:"sharedAt"`
}
