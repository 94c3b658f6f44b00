package web

type GameSummary struct {
	Title     string
	Slug      string
	Players   []string
	Rounds    int
	Status    string
	StartedAt string
}

type ScoreCell struct {
	Score   int
	Running int
}

type ScoreRow struct {
	Label string
	Emoji string
	Cells []ScoreCell
}

type ScorecardData struct {
	Title       string
	Slug        string
	StartedAt   string
	PlayerNames []string
	NumRounds   int
	Rows        []ScoreRow
	Totals      []int
	Completed   bool
	WinnerName  string
	WinnerTotal int
}

type PlayerGameLink struct {
	Title     string
	Slug      string
	StartedAt string
	Won       bool
}

type PlayerData struct {
	Name        string
	Slug        string
	GamesPlayed int
	Wins        int
	Losses      int
	TotalPoints int
	InProgress  []PlayerGameLink
	Completed   []PlayerGameLink
}
