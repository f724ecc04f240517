// file: mappers/leaderboard_mapper.go
package mappers

import (
	"github.com/HelloPy-Korea/hellopy-game/dto"
	"github.com/HelloPy-Korea/hellopy-game/models"
)

func MapScoresToItems(rows []models.Score) []dto.ScoreItem {
	items := make([]dto.ScoreItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ScoreItem{
			Email:     r.UserEmail,
			Score:     r.Score,
			CreatedAt: r.CreatedAt,
		})
	}
	return items
}

func MapSnapshotToEvent(snap dto.LeaderboardSnapshot) dto.LeaderboardEvent {
	return dto.LeaderboardEvent{
		Type:        dto.EventTypeLeaderboard,
		AllTime:     snap.AllTime,
		ThisHour:    snap.ThisHour,
		GeneratedAt: snap.GeneratedAt,
	}
}

func MapUsersToItems(rows []models.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.UserItem{
			Email:     r.Email,
			CreatedAt: r.CreatedAt,
		})
	}
	return items
}

func MapScoresToUserItems(rows []models.Score) []dto.UserScoreItem {
	items := make([]dto.UserScoreItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.UserScoreItem{
			Score:     r.Score,
			CreatedAt: r.CreatedAt,
		})
	}
	return items
}
