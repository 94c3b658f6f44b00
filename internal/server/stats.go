package server

import (
	"encoding/json"
	"time"

	"github.com/buzzkc/dirt/internal/db"
	"github.com/buzzkc/dirt/internal/scoring"
)

type statsSummary struct {
	GamesPlayed int `json:"games_played"`
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	TotalPoints int `json:"total_points"`
}

type statsGame struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	StartedAt time.Time `json:"started_at"`
	Won       bool      `json:"won,omitempty"`
}

type playerStats struct {
	Summary    statsSummary
	Completed  []statsGame
	InProgress []statsGame
}

// playerStats derives a player's record by replaying game progression over
// every persisted game that seats them. Nothing is cached: editing an old
// round changes the stats on the next read.
func (s *Server) playerStats(playerID uint) (playerStats, error) {
	stats := playerStats{
		Completed:  []statsGame{},
		InProgress: []statsGame{},
	}
	var games []db.Game
	if err := s.db.Order("started_at DESC").Find(&games).Error; err != nil {
		return stats, err
	}
	for _, game := range games {
		seat, ok := seatFor(game, playerID)
		if !ok {
			continue
		}
		entry := statsGame{
			ID:        game.ID,
			Title:     game.Title,
			Slug:      game.Slug,
			StartedAt: game.StartedAt,
		}
		if game.Status != scoring.StatusCompleted {
			stats.InProgress = append(stats.InProgress, entry)
			continue
		}
		var records []db.Round
		if err := s.db.Where("game_id = ?", game.ID).Order("round_index ASC").Find(&records).Error; err != nil {
			return stats, err
		}
		rounds, err := scoringRounds(records)
		if err != nil {
			return stats, err
		}
		totals := scoring.FinalTotals(rounds, game.NumPlayers)
		entry.Won = scoring.Winner(totals) == seat
		stats.Summary.GamesPlayed++
		if entry.Won {
			stats.Summary.Wins++
		} else {
			stats.Summary.Losses++
		}
		if seat < len(totals) {
			stats.Summary.TotalPoints += totals[seat]
		}
		stats.Completed = append(stats.Completed, entry)
	}
	return stats, nil
}

// seatFor finds the player's seat index in a game's embedded id array.
func seatFor(game db.Game, playerID uint) (int, bool) {
	var ids []*uint
	if err := json.Unmarshal(game.PlayerIDs, &ids); err != nil {
		return 0, false
	}
	for seat, id := range ids {
		if id != nil && *id == playerID {
			return seat, true
		}
	}
	return 0, false
}
