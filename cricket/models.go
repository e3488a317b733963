package cricket

// TeamLine is one side of a match card. Score is left as displayed.
type TeamLine struct {
	Name  string `json:"name"`
	Score string `json:"score"`
}

type MatchSummary struct {
	Tournament string   `json:"tournament"`
	Format     string   `json:"format"`
	MatchID    string   `json:"matchId"`
	MatchSlug  string   `json:"matchSlug"`
	Team1      TeamLine `json:"team1"`
	Team2      TeamLine `json:"team2"`
	Status     string   `json:"status"`
}

type BattingLine struct {
	Name       string `json:"name"`
	Runs       string `json:"runs"`
	Balls      string `json:"balls"`
	Fours      string `json:"fours"`
	Sixes      string `json:"sixes"`
	StrikeRate string `json:"strikeRate"`
}

type BowlingLine struct {
	Name    string `json:"name"`
	Overs   string `json:"overs"`
	Maidens string `json:"maidens"`
	Runs    string `json:"runs"`
	Wickets string `json:"wickets"`
	Economy string `json:"economy"`
}

type LiveScoreSnapshot struct {
	Batting string        `json:"batting"`
	Bowling string        `json:"bowling"`
	Batsmen []BattingLine `json:"batsmen"`
	Bowlers []BowlingLine `json:"bowlers"`
}

// ScorecardBatter is a full scorecard row, including how the batter got out.
type ScorecardBatter struct {
	Batsman       string `json:"batsman"`
	DismissalInfo string `json:"dismissalInfo"`
	Runs          string `json:"runs"`
	Balls         string `json:"balls"`
	Fours         string `json:"fours"`
	Sixes         string `json:"sixes"`
	StrikeRate    string `json:"strikeRate"`
}

// InningsRecord carries extras and total as [label, value] pairs.
type InningsRecord struct {
	InningsData []ScorecardBatter `json:"inningsData"`
	Extras      [2]string         `json:"extras"`
	Total       [2]string         `json:"total"`
	YetToBat    []string          `json:"yetToBat"`
}

type Wicket struct {
	Score      string `json:"score"`
	Player     string `json:"player"`
	BallsFaced string `json:"ballsFaced"`
}

type WicketList struct {
	Wickets []Wicket `json:"wickets"`
}

// ScorecardBowler is the bowling scorecard row with no-balls and wides.
type ScorecardBowler struct {
	Name    string `json:"name"`
	Overs   string `json:"overs"`
	Maidens string `json:"maidens"`
	Runs    string `json:"runs"`
	Wickets string `json:"wickets"`
	NoBalls string `json:"noBalls"`
	Wides   string `json:"wides"`
	Economy string `json:"economy"`
}

type BowlerList struct {
	Bowlers []ScorecardBowler `json:"bowlers"`
}

// MatchInfo is the free-form label -> value table of a match.
type MatchInfo struct {
	MatchInfo map[string]string `json:"matchInfo"`
}

// MatchFacts is the fixed projection of the match facts table. A nil field
// means its label never appeared verbatim; a matched label with an empty
// value is kept as "".
type MatchFacts struct {
	Match        *string `json:"match,omitempty"`
	Date         *string `json:"date,omitempty"`
	Toss         *string `json:"toss,omitempty"`
	Time         *string `json:"time,omitempty"`
	Venue        *string `json:"venue,omitempty"`
	Umpires      *string `json:"umpires,omitempty"`
	ThirdUmpire  *string `json:"thirdUmpire,omitempty"`
	MatchReferee *string `json:"matchReferee,omitempty"`
}

type PlayerEntry struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	IsSubstitute *bool  `json:"isSubstitute,omitempty"`
}

type SquadRoster struct {
	PlayingXI    []PlayerEntry `json:"playingXI"`
	Bench        []PlayerEntry `json:"bench"`
	SupportStaff []PlayerEntry `json:"supportStaff"`
}
