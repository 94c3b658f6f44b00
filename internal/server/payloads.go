package server

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/buzzkc/dirt/internal/db"
	"github.com/buzzkc/dirt/internal/scoring"
)

type gameJSON struct {
	ID          uint        `json:"id"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	NumPlayers  int         `json:"num_players"`
	NumRounds   int         `json:"num_rounds"`
	PlayerNames []string    `json:"player_names"`
	PlayerIDs   []*uint     `json:"player_ids"`
	Status      string      `json:"status"`
	StartedAt   time.Time   `json:"started_at"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Rounds      []roundJSON `json:"rounds,omitempty"`
}

type roundJSON struct {
	GameID     uint            `json:"game_id"`
	RoundIndex int             `json:"round_index"`
	CardsDealt int             `json:"cards_dealt"`
	Entries    []scoring.Entry `json:"entries"`
	Scores     []int           `json:"scores"`
	Emoji      *string         `json:"emoji"`
}

type playerJSON struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func gameToJSON(record db.Game) (gameJSON, error) {
	out := gameJSON{
		ID:         record.ID,
		Title:      record.Title,
		Slug:       record.Slug,
		NumPlayers: record.NumPlayers,
		NumRounds:  record.NumRounds,
		Status:     record.Status,
		StartedAt:  record.StartedAt,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
	if err := json.Unmarshal(record.PlayerNames, &out.PlayerNames); err != nil {
		return out, fmt.Errorf("game %d player_names: %w", record.ID, err)
	}
	if err := json.Unmarshal(record.PlayerIDs, &out.PlayerIDs); err != nil {
		return out, fmt.Errorf("game %d player_ids: %w", record.ID, err)
	}
	for _, round := range record.Rounds {
		converted, err := roundToJSON(round)
		if err != nil {
			return out, err
		}
		out.Rounds = append(out.Rounds, converted)
	}
	return out, nil
}

func roundToJSON(record db.Round) (roundJSON, error) {
	out := roundJSON{
		GameID:     record.GameID,
		RoundIndex: record.RoundIndex,
		CardsDealt: record.CardsDealt,
		Emoji:      record.Emoji,
	}
	if err := json.Unmarshal(record.Entries, &out.Entries); err != nil {
		return out, fmt.Errorf("round %d entries: %w", record.ID, err)
	}
	if err := json.Unmarshal(record.Scores, &out.Scores); err != nil {
		return out, fmt.Errorf("round %d scores: %w", record.ID, err)
	}
	return out, nil
}

func playerToJSON(record db.Player) playerJSON {
	return playerJSON{ID: record.ID, Name: record.Name, Slug: record.Slug}
}

// scoringRounds converts stored rounds for the progression helpers. Rounds
// are expected in round_index order.
func scoringRounds(records []db.Round) ([]scoring.Round, error) {
	rounds := make([]scoring.Round, 0, len(records))
	for _, record := range records {
		var scores []int
		if err := json.Unmarshal(record.Scores, &scores); err != nil {
			return nil, fmt.Errorf("round %d scores: %w", record.ID, err)
		}
		emoji := ""
		if record.Emoji != nil {
			emoji = *record.Emoji
		}
		rounds = append(rounds, scoring.Round{
			RoundIndex: record.RoundIndex,
			CardsDealt: record.CardsDealt,
			Scores:     scores,
			Emoji:      emoji,
		})
	}
	return rounds, nil
}

func mustJSON(value any) datatypes.JSON {
	data, err := json.Marshal(value)
	if err != nil {
		// Only reachable for unmarshalable Go values, which the payload
		// types above never are.
		panic(err)
	}
	return datatypes.JSON(data)
}
