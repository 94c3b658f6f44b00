package server

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/buzzkc/dirt/internal/config"
)

type Server struct {
	db       *gorm.DB
	cfg      config.Config
	sessions *sessionStore
}

func New(conn *gorm.DB, cfg config.Config) *Server {
	return &Server{
		db:       conn,
		cfg:      cfg,
		sessions: newSessionStore(),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/auth", s.handleAuth)

	mux.HandleFunc("GET /api/games", s.gated(s.handleListGames))
	mux.HandleFunc("POST /api/games", s.gated(s.handleCreateGame))
	mux.HandleFunc("GET /api/games/{ref}", s.gated(s.handleGetGame))
	mux.HandleFunc("PATCH /api/games/{id}", s.gated(s.handleUpdateGame))
	mux.HandleFunc("DELETE /api/games/{id}", s.gated(s.handleDeleteGame))
	mux.HandleFunc("PUT /api/games/{id}/rounds/{index}", s.gated(s.handleUpsertRound))
	mux.HandleFunc("GET /api/games/{id}/rounds", s.gated(s.handleListRounds))

	mux.HandleFunc("GET /api/players", s.gated(s.handleListPlayers))
	mux.HandleFunc("POST /api/players", s.gated(s.handleCreatePlayer))
	mux.HandleFunc("GET /api/players/{slug}", s.gated(s.handleGetPlayer))
	mux.HandleFunc("PUT /api/players/{id}", s.gated(s.handleRenamePlayer))
	mux.HandleFunc("DELETE /api/players/{id}", s.gated(s.handleDeletePlayer))

	mux.HandleFunc("GET /{$}", s.gated(s.handleHome))
	mux.HandleFunc("GET /rules", s.gated(s.handleRulesView))
	mux.HandleFunc("GET /games/{slug}", s.gated(s.handleGameView))
	mux.HandleFunc("GET /players/{slug}", s.gated(s.handlePlayerView))
	mux.HandleFunc("GET /unlock", s.handleUnlockView)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"status":  "error",
				"message": err.Error(),
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
