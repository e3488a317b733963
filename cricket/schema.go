package cricket

import (
	"strconv"

	"cricketscrapper/dom"

	"github.com/cockroachdb/errors"
)

// PageSchema isolates the upstream markup of one page type. When the site
// changes, only the selectors of the affected schema need updating.
type PageSchema interface {
	Page() string
	Selectors() map[string]string
}

type MatchListSchema struct {
	Cards           string `yaml:"cards"`
	Header          string `yaml:"header"`
	HeaderSeparator string `yaml:"header_separator"`
	Link            string `yaml:"link"`
	IDSegment       int    `yaml:"id_segment"`
	SlugSegment     int    `yaml:"slug_segment"`
	Team1Block      string `yaml:"team1_block"`
	Team2Block      string `yaml:"team2_block"`
	TeamName        string `yaml:"team_name"`
	TeamScore       string `yaml:"team_score"`
	TeamScoreIndex  int    `yaml:"team_score_index"`
	Status          string `yaml:"status"`
}

func (s MatchListSchema) Page() string { return "matches" }

func (s MatchListSchema) Selectors() map[string]string {
	return map[string]string{
		"cards": s.Cards, "header": s.Header, "link": s.Link,
		"team1_block": s.Team1Block, "team2_block": s.Team2Block,
		"team_name": s.TeamName, "team_score": s.TeamScore, "status": s.Status,
	}
}

// LiveScoreSchema reads the mini scorecard. StatColumns are the five stat
// cells of a row, in model field order after the name.
type LiveScoreSchema struct {
	Headline     string   `yaml:"headline"`
	BattingTeam  string   `yaml:"batting_team"`
	BowlingTeam  string   `yaml:"bowling_team"`
	Panels       string   `yaml:"panels"`
	BattersPanel int      `yaml:"batters_panel"`
	BowlersPanel int      `yaml:"bowlers_panel"`
	Rows         string   `yaml:"rows"`
	Name         string   `yaml:"name"`
	StatColumns  []string `yaml:"stat_columns"`
}

func (s LiveScoreSchema) Page() string { return "live-score" }

func (s LiveScoreSchema) Selectors() map[string]string {
	out := map[string]string{
		"headline": s.Headline, "batting_team": s.BattingTeam, "bowling_team": s.BowlingTeam,
		"panels": s.Panels, "rows": s.Rows, "name": s.Name,
	}
	addColumns(out, "stat_columns", s.StatColumns, 5)
	return out
}

type BattingScorecardSchema struct {
	Rows          string `yaml:"rows"`
	Batsman       string `yaml:"batsman"`
	Dismissal     string `yaml:"dismissal"`
	Runs          string `yaml:"runs"`
	Stat          string `yaml:"stat"`
	SummaryLabel  string `yaml:"summary_label"`
	ExtrasValue   string `yaml:"extras_value"`
	TotalValue    string `yaml:"total_value"`
	YetToBat      string `yaml:"yet_to_bat"`
	YetToBatNames string `yaml:"yet_to_bat_names"`
	YetToBatSep   string `yaml:"yet_to_bat_separator"`
}

func (s BattingScorecardSchema) Page() string { return "scorecard-batting" }

func (s BattingScorecardSchema) Selectors() map[string]string {
	return map[string]string{
		"rows": s.Rows, "batsman": s.Batsman, "dismissal": s.Dismissal, "runs": s.Runs,
		"stat": s.Stat, "summary_label": s.SummaryLabel, "extras_value": s.ExtrasValue,
		"total_value": s.TotalValue, "yet_to_bat": s.YetToBat, "yet_to_bat_names": s.YetToBatNames,
	}
}

// WicketsSchema reads fall-of-wicket entries shaped "<score> (<player>, <balls>)".
type WicketsSchema struct {
	Entries   string `yaml:"entries"`
	Open      string `yaml:"open"`
	Separator string `yaml:"separator"`
	Close     string `yaml:"close"`
}

func (s WicketsSchema) Page() string { return "scorecard-wickets" }

func (s WicketsSchema) Selectors() map[string]string {
	return map[string]string{"entries": s.Entries}
}

// BowlingScorecardSchema columns: overs, maidens, runs, wickets, no-balls,
// wides, economy.
type BowlingScorecardSchema struct {
	Rows    string   `yaml:"rows"`
	Name    string   `yaml:"name"`
	Columns []string `yaml:"columns"`
}

func (s BowlingScorecardSchema) Page() string { return "scorecard-bowling" }

func (s BowlingScorecardSchema) Selectors() map[string]string {
	out := map[string]string{"rows": s.Rows, "name": s.Name}
	addColumns(out, "columns", s.Columns, 7)
	return out
}

type MatchInfoSchema struct {
	Rows  string `yaml:"rows"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

func (s MatchInfoSchema) Page() string { return "match-info" }

func (s MatchInfoSchema) Selectors() map[string]string {
	return map[string]string{"rows": s.Rows, "label": s.Label, "value": s.Value}
}

type SquadsSchema struct {
	PlayingXI        string `yaml:"playing_xi"`
	PlayerName       string `yaml:"player_name"`
	Role             string `yaml:"role"`
	SubstituteMarker string `yaml:"substitute_marker"`
	Bench            string `yaml:"bench"`
	BenchName        string `yaml:"bench_name"`
	Staff            string `yaml:"staff"`
	StaffName        string `yaml:"staff_name"`
}

func (s SquadsSchema) Page() string { return "squads" }

func (s SquadsSchema) Selectors() map[string]string {
	return map[string]string{
		"playing_xi": s.PlayingXI, "player_name": s.PlayerName, "role": s.Role,
		"substitute_marker": s.SubstituteMarker, "bench": s.Bench, "bench_name": s.BenchName,
		"staff": s.Staff, "staff_name": s.StaffName,
	}
}

// FactLabels are matched verbatim, trailing colon included. A label that
// changes punctuation or casing upstream is dropped from MatchFacts.
type FactLabels struct {
	Match        string `yaml:"match"`
	Date         string `yaml:"date"`
	Toss         string `yaml:"toss"`
	Time         string `yaml:"time"`
	Venue        string `yaml:"venue"`
	Umpires      string `yaml:"umpires"`
	ThirdUmpire  string `yaml:"third_umpire"`
	MatchReferee string `yaml:"match_referee"`
}

type MatchFactsSchema struct {
	Rows   string     `yaml:"rows"`
	Item   string     `yaml:"item"`
	Labels FactLabels `yaml:"labels"`
}

func (s MatchFactsSchema) Page() string { return "match-facts" }

func (s MatchFactsSchema) Selectors() map[string]string {
	return map[string]string{"rows": s.Rows, "item": s.Item}
}

// Schemas bundles one schema per page type.
type Schemas struct {
	Matches          MatchListSchema        `yaml:"matches"`
	LiveScore        LiveScoreSchema        `yaml:"live_score"`
	BattingScorecard BattingScorecardSchema `yaml:"batting_scorecard"`
	Wickets          WicketsSchema          `yaml:"wickets"`
	BowlingScorecard BowlingScorecardSchema `yaml:"bowling_scorecard"`
	MatchInfo        MatchInfoSchema        `yaml:"match_info"`
	Squads           SquadsSchema           `yaml:"squads"`
	MatchFacts       MatchFactsSchema       `yaml:"match_facts"`
}

func (s Schemas) All() []PageSchema {
	return []PageSchema{
		s.Matches, s.LiveScore, s.BattingScorecard, s.Wickets,
		s.BowlingScorecard, s.MatchInfo, s.Squads, s.MatchFacts,
	}
}

// Validate compiles every selector and checks the column counts.
func (s Schemas) Validate() error {
	for _, page := range s.All() {
		for name, selector := range page.Selectors() {
			if err := dom.ValidSelector(selector); err != nil {
				return errors.Wrapf(err, "schema %s.%s", page.Page(), name)
			}
		}
	}
	if s.Wickets.Open == "" || s.Wickets.Separator == "" {
		return errors.New("schema scorecard-wickets: open and separator are required")
	}
	if s.BattingScorecard.YetToBatSep == "" {
		return errors.New("schema scorecard-batting: yet_to_bat_separator is required")
	}
	return nil
}

// addColumns records each column selector and poisons the map with an empty
// selector when the count is wrong, so Validate rejects it.
func addColumns(out map[string]string, key string, columns []string, want int) {
	if len(columns) != want {
		out[key] = ""
		return
	}
	for i, col := range columns {
		out[key+"["+strconv.Itoa(i)+"]"] = col
	}
}

// DefaultSchemas returns the selectors for the current Cricbuzz markup.
func DefaultSchemas() Schemas {
	return Schemas{
		Matches: MatchListSchema{
			Cards:           "ul.cb-col.cb-col-100.videos-carousal-wrapper.cb-mtch-crd-rt-itm .cb-view-all-ga.cb-match-card.cb-bg-white",
			Header:          ".cb-mtch-crd-hdr",
			HeaderSeparator: " • ",
			Link:            "a",
			IDSegment:       2,
			SlugSegment:     3,
			Team1Block:      ".cb-hmscg-tm-bat-scr",
			Team2Block:      ".cb-hmscg-tm-bwl-scr",
			TeamName:        ".text-normal",
			TeamScore:       ".cb-col-50",
			TeamScoreIndex:  1,
			Status:          ".cb-mtch-crd-state",
		},
		LiveScore: LiveScoreSchema{
			Headline:     ".cb-min-bat-rw",
			BattingTeam:  ".cb-font-20",
			BowlingTeam:  ".cb-text-gray",
			Panels:       ".cb-min-inf",
			BattersPanel: 0,
			BowlersPanel: 1,
			Rows:         ".cb-min-itm-rw",
			Name:         ".cb-text-link",
			StatColumns: []string{
				".cb-col:nth-child(2)",
				".cb-col:nth-child(3)",
				".cb-col:nth-child(4)",
				".cb-col:nth-child(5)",
				".cb-col:nth-child(6)",
			},
		},
		BattingScorecard: BattingScorecardSchema{
			Rows:          ".cb-col-100.cb-scrd-itms",
			Batsman:       ".cb-col.cb-col-25 a",
			Dismissal:     ".cb-col.cb-col-33 span",
			Runs:          ".cb-col.cb-col-8.text-right.text-bold",
			Stat:          ".cb-col.cb-col-8.text-right",
			SummaryLabel:  ".cb-col-32.cb-col",
			ExtrasValue:   ".cb-col.cb-col-8.text-bold.cb-text-black.text-right",
			TotalValue:    ".cb-col.cb-col-8.text-bold.text-black.text-right",
			YetToBat:      ".cb-col.cb-col-100.cb-scrd-itms",
			YetToBatNames: ".cb-col-73.cb-col",
			YetToBatSep:   ",",
		},
		Wickets: WicketsSchema{
			Entries:   ".cb-col.cb-col-100.cb-col-rt.cb-font-13 span",
			Open:      "(",
			Separator: ",",
			Close:     ")",
		},
		BowlingScorecard: BowlingScorecardSchema{
			Rows: ".cb-col-100.cb-scrd-itms",
			Name: ".cb-col.cb-col-38 a",
			Columns: []string{
				".cb-col.cb-col-8:nth-child(2)",
				".cb-col.cb-col-8:nth-child(3)",
				".cb-col.cb-col-10:nth-child(4)",
				".cb-col.cb-col-8:nth-child(5)",
				".cb-col.cb-col-8:nth-child(6)",
				".cb-col.cb-col-8:nth-child(7)",
				".cb-col.cb-col-10:nth-child(8)",
			},
		},
		MatchInfo: MatchInfoSchema{
			Rows:  ".cb-col-100.cb-mtch-info-itm",
			Label: ".cb-col-27",
			Value: ".cb-col-73",
		},
		Squads: SquadsSchema{
			PlayingXI:        ".cb-col-100.ng-scope",
			PlayerName:       ".cb-player-name-left, .cb-player-name-right",
			Role:             ".text-gray",
			SubstituteMarker: ".cbPlusIco",
			Bench:            ".cb-col.cb-play11-lft-col + div",
			BenchName:        ".cb-player-name-left",
			Staff:            ".cb-play-staff > div",
			StaffName:        ".cb-player-name-left, .cb-player-name-right",
		},
		MatchFacts: MatchFactsSchema{
			Rows: ".cb-col",
			Item: ".cb-mat-fct-itm",
			Labels: FactLabels{
				Match:        "Match:",
				Date:         "Date:",
				Toss:         "Toss:",
				Time:         "Time:",
				Venue:        "Venue:",
				Umpires:      "Umpires:",
				ThirdUmpire:  "Third Umpire:",
				MatchReferee: "Match Referee:",
			},
		},
	}
}
