package server

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/buzzkc/dirt/internal/db"
	"github.com/buzzkc/dirt/internal/scoring"
)

// upsertRoundRequest carries the submitted entries. Scores, emoji, and
// cards_dealt are accepted for compatibility with the existing client but
// ignored: the server recomputes all three from the entries so stored
// rounds are always consistent with the rules.
type upsertRoundRequest struct {
	Entries    []scoring.Entry `json:"entries"`
	Scores     []int           `json:"scores"`
	Emoji      *string         `json:"emoji"`
	CardsDealt *int            `json:"cards_dealt"`
}

// handleUpsertRound validates and stores one round, advancing the game.
// The write is a full overwrite keyed by (game_id, round_index); concurrent
// editors of the same round are last-write-wins, with no version token.
func (s *Server) handleUpsertRound(w http.ResponseWriter, r *http.Request) {
	record, err := s.findGame(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	roundIdx, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || roundIdx < 0 {
		writeError(w, validationError("round index must be a non-negative integer"))
		return
	}
	if roundIdx >= record.NumRounds {
		writeError(w, validationError("round %d is out of range for a %d-round game", roundIdx+1, record.NumRounds))
		return
	}
	var req upsertRoundRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, validationError("invalid request body"))
		return
	}
	if len(req.Entries) != record.NumPlayers {
		writeError(w, validationError("expected %d entries, got %d", record.NumPlayers, len(req.Entries)))
		return
	}
	if err := scoring.ValidateRound(record.NumRounds, roundIdx, req.Entries); err != nil {
		writeError(w, validationError("%s", err.Error()))
		return
	}

	var existing int64
	if err := s.db.Model(&db.Round{}).Where("game_id = ?", record.ID).Count(&existing).Error; err != nil {
		writeError(w, err)
		return
	}
	// Rounds are recorded contiguously: a submission is either an edit of a
	// stored round or the round currently awaited, never a skip ahead.
	if roundIdx > int(existing) {
		writeError(w, validationError("round %d cannot be submitted before round %d", roundIdx+1, int(existing)+1))
		return
	}

	built := scoring.BuildRound(record.NumRounds, roundIdx, req.Entries)
	var emoji *string
	if built.Emoji != "" {
		value := built.Emoji
		emoji = &value
	}
	row := db.Round{
		GameID:     record.ID,
		RoundIndex: roundIdx,
		CardsDealt: built.CardsDealt,
		Entries:    mustJSON(built.Entries),
		Scores:     mustJSON(built.Scores),
		Emoji:      emoji,
	}
	completed := false
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "game_id"}, {Name: "round_index"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"cards_dealt", "entries", "scores", "emoji", "updated_at",
			}),
		}).Create(&row).Error; err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&db.Round{}).Where("game_id = ?", record.ID).Count(&count).Error; err != nil {
			return err
		}
		if int(count) >= record.NumRounds && record.Status != scoring.StatusCompleted {
			completed = true
			return tx.Model(&db.Game{}).Where("id = ?", record.ID).
				Update("status", scoring.StatusCompleted).Error
		}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	if completed {
		log.Info().Uint("game_id", record.ID).Msg("game completed")
	}

	var stored db.Round
	if err := s.db.Where("game_id = ? AND round_index = ?", record.ID, roundIdx).First(&stored).Error; err != nil {
		writeError(w, err)
		return
	}
	round, err := roundToJSON(stored)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, round)
}

func (s *Server) handleListRounds(w http.ResponseWriter, r *http.Request) {
	record, err := s.findGame(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	var records []db.Round
	if err := s.db.Where("game_id = ?", record.ID).Order("round_index ASC").Find(&records).Error; err != nil {
		writeError(w, err)
		return
	}
	rounds := make([]roundJSON, 0, len(records))
	for _, row := range records {
		round, err := roundToJSON(row)
		if err != nil {
			writeError(w, err)
			return
		}
		rounds = append(rounds, round)
	}
	writeJSON(w, http.StatusOK, rounds)
}
