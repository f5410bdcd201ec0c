package adapter

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/MKhiriev/studytrack/models"
)

const leaderboardPath = "leaderboards/global"

func (h *httpBackend) GetLeaderboard(ctx context.Context) models.Result[[]models.LeaderboardEntry] {
	doc, found, err := h.getDocument(ctx, leaderboardPath)
	if err != nil {
		return fail[[]models.LeaderboardEntry](h.logger, "httpBackend.GetLeaderboard", err)
	}
	entries := make([]models.LeaderboardEntry, 0, len(doc.Fields))
	if !found {
		return models.Ok(entries)
	}

	for uid, raw := range doc.Fields {
		var entry models.LeaderboardEntry
		if err = json.Unmarshal(raw, &entry); err != nil {
			h.logger.Warn().Err(err).Str("func", "httpBackend.GetLeaderboard").Str("user_id", uid).
				Msg("skipping malformed leaderboard entry")
			continue
		}
		if entry.UserID == "" {
			entry.UserID = uid
		}
		entries = append(entries, entry)
	}

	// document fields are unordered; join time restores insertion order
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].JoinedAt.Equal(entries[j].JoinedAt) {
			return entries[i].JoinedAt.Before(entries[j].JoinedAt)
		}
		return entries[i].UserID < entries[j].UserID
	})
	return models.Ok(entries)
}

func (h *httpBackend) UpdateLeaderboardEntry(ctx context.Context, uid string, fields map[string]any) models.Result[struct{}] {
	if uid == "" {
		return fail[struct{}](h.logger, "httpBackend.UpdateLeaderboardEntry", ErrEmptyUserID)
	}
	if err := h.mergeDocument(ctx, leaderboardPath, map[string]any{uid: fields}, nil); err != nil {
		return fail[struct{}](h.logger, "httpBackend.UpdateLeaderboardEntry", err)
	}
	return models.Ok(struct{}{})
}

func (h *httpBackend) SetLeaderboardEntry(ctx context.Context, entry models.LeaderboardEntry) models.Result[struct{}] {
	if entry.UserID == "" {
		return fail[struct{}](h.logger, "httpBackend.SetLeaderboardEntry", ErrEmptyUserID)
	}
	err := h.mergeDocument(ctx, leaderboardPath, map[string]any{entry.UserID: entry}, []string{entry.UserID})
	if err != nil {
		return fail[struct{}](h.logger, "httpBackend.SetLeaderboardEntry", err)
	}
	return models.Ok(struct{}{})
}
