package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/buzzkc/dirt/internal/db"
	"github.com/buzzkc/dirt/internal/scoring"
)

type createGameRequest struct {
	Title       string     `json:"title" validate:"required"`
	NumPlayers  int        `json:"num_players" validate:"required,min=2,max=10"`
	NumRounds   int        `json:"num_rounds" validate:"required,min=1"`
	PlayerNames []string   `json:"player_names" validate:"required"`
	PlayerIDs   []*uint    `json:"player_ids"`
	StartedAt   *time.Time `json:"started_at"`
}

type updateGameRequest struct {
	Title       *string   `json:"title"`
	PlayerNames *[]string `json:"player_names"`
	Status      *string   `json:"status"`
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	var records []db.Game
	if err := s.db.Order("created_at DESC").Find(&records).Error; err != nil {
		writeError(w, err)
		return
	}
	games := make([]gameJSON, 0, len(records))
	for _, record := range records {
		game, err := gameToJSON(record)
		if err != nil {
			writeError(w, err)
			return
		}
		games = append(games, game)
	}
	writeJSON(w, http.StatusOK, games)
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, validationError("invalid request body"))
		return
	}
	if err := validateStruct(&req); err != nil {
		writeError(w, err)
		return
	}
	title, err := validateTitle(req.Title)
	if err != nil {
		writeError(w, err)
		return
	}
	if !scoring.ValidRoundCount(req.NumPlayers, req.NumRounds) {
		writeError(w, validationError("rounds must be between 1 and %d for %d players",
			scoring.MaxRounds(req.NumPlayers), req.NumPlayers))
		return
	}
	if len(req.PlayerNames) != req.NumPlayers {
		writeError(w, validationError("expected %d player names, got %d", req.NumPlayers, len(req.PlayerNames)))
		return
	}
	if req.PlayerIDs == nil {
		req.PlayerIDs = make([]*uint, req.NumPlayers)
	}
	if len(req.PlayerIDs) != req.NumPlayers {
		writeError(w, validationError("expected %d player ids, got %d", req.NumPlayers, len(req.PlayerIDs)))
		return
	}
	names := make([]string, len(req.PlayerNames))
	for i, name := range req.PlayerNames {
		cleaned, err := validateName(name)
		if err != nil {
			writeError(w, err)
			return
		}
		names[i] = cleaned
	}
	seen := make(map[uint]struct{}, len(req.PlayerIDs))
	for _, id := range req.PlayerIDs {
		if id == nil {
			continue
		}
		if _, dup := seen[*id]; dup {
			writeError(w, validationError("each player can only appear once"))
			return
		}
		seen[*id] = struct{}{}
	}

	startedAt := time.Now().UTC()
	if req.StartedAt != nil {
		startedAt = req.StartedAt.UTC()
	}
	record := db.Game{
		Title:       title,
		NumPlayers:  req.NumPlayers,
		NumRounds:   req.NumRounds,
		PlayerNames: mustJSON(names),
		PlayerIDs:   mustJSON(req.PlayerIDs),
		Status:      scoring.StatusInProgress,
		StartedAt:   startedAt,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// The slug embeds the row id, so it is assigned after insert.
		record.Slug = slugFor(title, 0)
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		record.Slug = slugFor(title, record.ID)
		return tx.Model(&record).Update("slug", record.Slug).Error
	})
	if err != nil {
		writeError(w, err)
		return
	}
	game, err := gameToJSON(record)
	if err != nil {
		writeError(w, err)
		return
	}
	log.Info().Uint("game_id", record.ID).Str("slug", record.Slug).Msg("game created")
	writeJSON(w, http.StatusCreated, game)
}

// findGame resolves a path reference that is either a numeric id or a slug.
func (s *Server) findGame(ref string) (db.Game, error) {
	var record db.Game
	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		err := s.db.First(&record, uint(id)).Error
		return record, err
	}
	err := s.db.Where("slug = ?", ref).First(&record).Error
	return record, err
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	record, err := s.findGame(r.PathValue("ref"))
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.db.Where("game_id = ?", record.ID).Order("round_index ASC").Find(&record.Rounds).Error; err != nil {
		writeError(w, err)
		return
	}
	game, err := gameToJSON(record)
	if err != nil {
		writeError(w, err)
		return
	}
	if game.Rounds == nil {
		game.Rounds = []roundJSON{}
	}
	writeJSON(w, http.StatusOK, game)
}

func (s *Server) handleUpdateGame(w http.ResponseWriter, r *http.Request) {
	record, err := s.findGame(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateGameRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, validationError("invalid request body"))
		return
	}
	updates := map[string]any{}
	if req.Title != nil {
		title, err := validateTitle(*req.Title)
		if err != nil {
			writeError(w, err)
			return
		}
		updates["title"] = title
	}
	if req.PlayerNames != nil {
		if len(*req.PlayerNames) != record.NumPlayers {
			writeError(w, validationError("expected %d player names, got %d", record.NumPlayers, len(*req.PlayerNames)))
			return
		}
		names := make([]string, len(*req.PlayerNames))
		for i, name := range *req.PlayerNames {
			cleaned, err := validateName(name)
			if err != nil {
				writeError(w, err)
				return
			}
			names[i] = cleaned
		}
		updates["player_names"] = mustJSON(names)
	}
	if req.Status != nil {
		if *req.Status != scoring.StatusInProgress && *req.Status != scoring.StatusCompleted {
			writeError(w, validationError("status must be %q or %q", scoring.StatusInProgress, scoring.StatusCompleted))
			return
		}
		updates["status"] = *req.Status
	}
	if len(updates) == 0 {
		writeError(w, validationError("nothing to update"))
		return
	}
	if err := s.db.Model(&record).Updates(updates).Error; err != nil {
		writeError(w, err)
		return
	}
	if err := s.db.First(&record, record.ID).Error; err != nil {
		writeError(w, err)
		return
	}
	game, err := gameToJSON(record)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	record, err := s.findGame(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", record.ID).Delete(&db.Round{}).Error; err != nil {
			return err
		}
		return tx.Delete(&record).Error
	})
	if err != nil {
		writeError(w, err)
		return
	}
	log.Info().Uint("game_id", record.ID).Msg("game deleted")
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
