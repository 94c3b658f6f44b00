package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/buzzkc/dirt/internal/db"
)

type playerRequest struct {
	Name string `json:"name" validate:"required"`
}

func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	var records []db.Player
	if err := s.db.Order("name ASC").Find(&records).Error; err != nil {
		writeError(w, err)
		return
	}
	players := make([]playerJSON, 0, len(records))
	for _, record := range records {
		players = append(players, playerToJSON(record))
	}
	writeJSON(w, http.StatusOK, players)
}

func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, validationError("invalid request body"))
		return
	}
	name, err := validateName(req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	record := db.Player{Name: name}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		record.Slug = slugFor(name, 0)
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		record.Slug = slugFor(name, record.ID)
		return tx.Model(&record).Update("slug", record.Slug).Error
	})
	if err != nil {
		writeError(w, err)
		return
	}
	log.Info().Uint("player_id", record.ID).Str("slug", record.Slug).Msg("player created")
	writeJSON(w, http.StatusCreated, playerToJSON(record))
}

// handleRenamePlayer renames a roster player. The slug is derived from the
// name, so renaming moves the player's permalink.
func (s *Server) handleRenamePlayer(w http.ResponseWriter, r *http.Request) {
	var record db.Player
	if err := s.db.First(&record, "id = ?", r.PathValue("id")).Error; err != nil {
		writeError(w, err)
		return
	}
	var req playerRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, validationError("invalid request body"))
		return
	}
	name, err := validateName(req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	record.Name = name
	record.Slug = slugFor(name, record.ID)
	if err := s.db.Save(&record).Error; err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, playerToJSON(record))
}

// handleDeletePlayer removes a player from the roster. Historical games
// keep the embedded names and ids; nothing cascades.
func (s *Server) handleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	var record db.Player
	if err := s.db.First(&record, "id = ?", r.PathValue("id")).Error; err != nil {
		writeError(w, err)
		return
	}
	if err := s.db.Delete(&record).Error; err != nil {
		writeError(w, err)
		return
	}
	log.Info().Uint("player_id", record.ID).Msg("player deleted")
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	var record db.Player
	if err := s.db.Where("slug = ?", r.PathValue("slug")).First(&record).Error; err != nil {
		writeError(w, err)
		return
	}
	stats, err := s.playerStats(record.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":                record.ID,
		"name":              record.Name,
		"slug":              record.Slug,
		"stats":             stats.Summary,
		"games":             stats.Completed,
		"games_in_progress": stats.InProgress,
	})
}
