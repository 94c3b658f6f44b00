package server

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/log"

	"github.com/buzzkc/dirt/internal/db"
	"github.com/buzzkc/dirt/internal/scoring"
	"github.com/buzzkc/dirt/internal/web"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	var records []db.Game
	if err := s.db.Order("created_at DESC").Limit(20).Find(&records).Error; err != nil {
		writeError(w, err)
		return
	}
	summaries := make([]web.GameSummary, 0, len(records))
	for _, record := range records {
		game, err := gameToJSON(record)
		if err != nil {
			log.Warn().Err(err).Uint("game_id", record.ID).Msg("skipping undecodable game")
			continue
		}
		summaries = append(summaries, web.GameSummary{
			Title:     game.Title,
			Slug:      game.Slug,
			Players:   game.PlayerNames,
			Rounds:    game.NumRounds,
			Status:    game.Status,
			StartedAt: game.StartedAt.Format("Jan 2, 2006"),
		})
	}
	templ.Handler(web.Home(summaries)).ServeHTTP(w, r)
}

func (s *Server) handleGameView(w http.ResponseWriter, r *http.Request) {
	record, err := s.findGame(r.PathValue("slug"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	var rows []db.Round
	if err := s.db.Where("game_id = ?", record.ID).Order("round_index ASC").Find(&rows).Error; err != nil {
		writeError(w, err)
		return
	}
	game, err := gameToJSON(record)
	if err != nil {
		writeError(w, err)
		return
	}
	rounds, err := scoringRounds(rows)
	if err != nil {
		writeError(w, err)
		return
	}

	data := web.ScorecardData{
		Title:       game.Title,
		Slug:        game.Slug,
		StartedAt:   game.StartedAt.Format("Jan 2, 2006 15:04"),
		PlayerNames: game.PlayerNames,
		NumRounds:   game.NumRounds,
		Completed:   game.Status == scoring.StatusCompleted,
	}
	for _, round := range rounds {
		row := web.ScoreRow{
			Label: "R" + itoa(round.RoundIndex+1),
			Emoji: emojiLabel(round.Emoji),
		}
		for seat := range game.PlayerNames {
			score := 0
			if seat < len(round.Scores) {
				score = round.Scores[seat]
			}
			row.Cells = append(row.Cells, web.ScoreCell{
				Score:   score,
				Running: scoring.TotalThrough(rounds, seat, round.RoundIndex) + score,
			})
		}
		data.Rows = append(data.Rows, row)
	}
	data.Totals = scoring.FinalTotals(rounds, game.NumPlayers)
	if data.Completed {
		if seat := scoring.Winner(data.Totals); seat >= 0 && seat < len(game.PlayerNames) {
			data.WinnerName = game.PlayerNames[seat]
			data.WinnerTotal = data.Totals[seat]
		}
	}
	templ.Handler(web.Scorecard(data)).ServeHTTP(w, r)
}

func (s *Server) handlePlayerView(w http.ResponseWriter, r *http.Request) {
	var record db.Player
	if err := s.db.Where("slug = ?", r.PathValue("slug")).First(&record).Error; err != nil {
		http.NotFound(w, r)
		return
	}
	stats, err := s.playerStats(record.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	data := web.PlayerData{
		Name:        record.Name,
		Slug:        record.Slug,
		GamesPlayed: stats.Summary.GamesPlayed,
		Wins:        stats.Summary.Wins,
		Losses:      stats.Summary.Losses,
		TotalPoints: stats.Summary.TotalPoints,
	}
	for _, game := range stats.InProgress {
		data.InProgress = append(data.InProgress, playerGameLink(game))
	}
	for _, game := range stats.Completed {
		data.Completed = append(data.Completed, playerGameLink(game))
	}
	templ.Handler(web.PlayerPage(data)).ServeHTTP(w, r)
}

func playerGameLink(game statsGame) web.PlayerGameLink {
	return web.PlayerGameLink{
		Title:     game.Title,
		Slug:      game.Slug,
		StartedAt: game.StartedAt.Format("Jan 2, 2006"),
		Won:       game.Won,
	}
}

func (s *Server) handleRulesView(w http.ResponseWriter, r *http.Request) {
	templ.Handler(web.Rules()).ServeHTTP(w, r)
}

func (s *Server) handleUnlockView(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Passcode == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	templ.Handler(web.Unlock()).ServeHTTP(w, r)
}

func emojiLabel(emoji string) string {
	switch emoji {
	case scoring.EmojiHappy:
		return ":-)"
	case scoring.EmojiSad:
		return ":-("
	default:
		return ""
	}
}

func itoa(value int) string {
	return strconv.Itoa(value)
}
