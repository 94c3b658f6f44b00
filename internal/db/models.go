package db

import (
	"time"

	"gorm.io/datatypes"
)

// Player is a roster entry. Deleting a player never touches historical
// games; game records embed the names and ids they were created with.
type Player struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:64;not null"`
	Slug      string    `gorm:"size:80;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Game stores the table setup plus its rounds. PlayerNames and PlayerIDs are
// parallel seat-ordered jsonb arrays of length NumPlayers; seat order indexes
// into every round's entries and scores. PlayerIDs entries may be null for
// seats that were never linked to a roster player.
type Game struct {
	ID          uint           `gorm:"primaryKey"`
	Title       string         `gorm:"size:120;not null"`
	Slug        string         `gorm:"size:140;uniqueIndex;not null"`
	NumPlayers  int            `gorm:"not null"`
	NumRounds   int            `gorm:"not null"`
	PlayerNames datatypes.JSON `gorm:"type:jsonb;not null"`
	PlayerIDs   datatypes.JSON `gorm:"type:jsonb;not null"`
	Status      string         `gorm:"size:32;not null"`
	StartedAt   time.Time      `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
	Rounds      []Round        `gorm:"constraint:OnDelete:CASCADE"`
}

// Round is one scored round, unique per (game, round_index). Entries and
// Scores are seat-ordered jsonb arrays aligned with the game's player list.
// Emoji is "happy", "sad", or null.
type Round struct {
	ID         uint           `gorm:"primaryKey"`
	GameID     uint           `gorm:"index;not null;uniqueIndex:idx_rounds_game_index"`
	RoundIndex int            `gorm:"not null;uniqueIndex:idx_rounds_game_index"`
	CardsDealt int            `gorm:"not null"`
	Entries    datatypes.JSON `gorm:"type:jsonb;not null"`
	Scores     datatypes.JSON `gorm:"type:jsonb;not null"`
	Emoji      *string        `gorm:"size:16"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
}
