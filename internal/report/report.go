package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/hoopmetrics/internal/filter"
	"github.com/pable/hoopmetrics/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// QuarterLabel renders a period number: 1st..4th, then OT, 2OT, ...
func QuarterLabel(q int) string {
	switch {
	case q <= 0:
		return "?"
	case q <= 4:
		return humanize.Ordinal(q)
	case q == 5:
		return "OT"
	default:
		return strconv.Itoa(q-4) + "OT"
	}
}

func shotLine(made, attempted, pct int) string {
	return fmt.Sprintf("%d-%d (%d%%)", made, attempted, pct)
}

// PrintGameHeader prints a one-line summary header for the game.
func PrintGameHeader(w io.Writer, g model.Game, teams [2]model.TeamAggregate) {
	fmt.Fprintf(w, "\n%s %d – %d %s  |  Played: %s  |  Game: %s\n\n",
		g.HomeTeamName, teams[0].Points, teams[1].Points, g.AwayTeamName, g.PlayedAt, short(g.ID))
}

// PrintTeamTable prints the team box score, home side first.
func PrintTeamTable(w io.Writer, teams [2]model.TeamAggregate) {
	table := newTable(w)
	table.Header(
		"TEAM", "PTS", "FG", "3PT", "FT", "REB", "OREB", "DREB",
		"AST", "STL", "BLK", "TOV", "PF", "FBP", "PITP", "2ND", "PPP",
	)
	for _, t := range teams {
		table.Append(
			t.TeamName,
			strconv.Itoa(t.Points),
			shotLine(t.FGMade, t.FGAttempted, t.FGPct()),
			shotLine(t.ThreeMade, t.ThreeAttempted, t.ThreePct()),
			shotLine(t.FTMade, t.FTAttempted, t.FTPct()),
			strconv.Itoa(t.Rebounds),
			strconv.Itoa(t.ReboundsOffensive),
			strconv.Itoa(t.ReboundsDefensive),
			strconv.Itoa(t.Assists),
			strconv.Itoa(t.Steals),
			strconv.Itoa(t.Blocks),
			strconv.Itoa(t.Turnovers),
			strconv.Itoa(t.Fouls),
			strconv.Itoa(t.FastBreakPoints),
			strconv.Itoa(t.PointsInPaint),
			strconv.Itoa(t.SecondChancePoints),
			fmt.Sprintf("%.2f", t.PPP()),
		)
	}
	table.Render()
}

// PrintPlayerTable prints the player box score.
// If focus is non-empty, the row of the player with that id or name is marked with ">".
func PrintPlayerTable(w io.Writer, stats []model.PlayerAggregate, teamNames map[string]string, focus string) {
	table := newTable(w)
	table.Header(" ", "#", "NAME", "TEAM", "PTS", "FG", "3PT", "FT", "AST", "STL", "BLK", "PF")

	for _, s := range stats {
		marker := " "
		if focus != "" && (s.PlayerID == focus || s.Name() == focus) {
			marker = ">"
		}
		num := "—"
		if s.Number > 0 {
			num = strconv.Itoa(s.Number)
		}
		team := teamNames[s.TeamID]
		if team == "" {
			team = s.TeamID
		}
		table.Append(
			marker,
			num,
			s.Name(),
			team,
			strconv.Itoa(s.Points),
			shotLine(s.FGMade, s.FGAttempted, s.FGPct()),
			shotLine(s.ThreeMade, s.ThreeAttempted, s.ThreePct()),
			shotLine(s.FTMade, s.FTAttempted, s.FTPct()),
			strconv.Itoa(s.Assists),
			strconv.Itoa(s.Steals),
			strconv.Itoa(s.Blocks),
			strconv.Itoa(s.Fouls),
		)
	}
	table.Render()
}

// PrintSeasonTable prints per-game rates across stored games.
func PrintSeasonTable(w io.Writer, rows []model.SeasonRow) {
	table := newTable(w)
	table.Header("NAME", "TEAM", "GP", "PTS", "PPG", "APG", "SPG", "BPG", "FG%", "3P%", "FT%")
	for _, r := range rows {
		table.Append(
			r.Name,
			r.TeamID,
			strconv.Itoa(r.Games),
			strconv.Itoa(r.Points),
			fmt.Sprintf("%.1f", r.PPG()),
			fmt.Sprintf("%.1f", r.APG()),
			fmt.Sprintf("%.1f", r.SPG()),
			fmt.Sprintf("%.1f", r.BPG()),
			fmt.Sprintf("%d%%", r.FGPct()),
			fmt.Sprintf("%d%%", r.ThreePct()),
			fmt.Sprintf("%d%%", r.FTPct()),
		)
	}
	table.Render()
}

// PrintPossessions prints a possession log.
func PrintPossessions(w io.Writer, possessions []model.Possession, teamNames map[string]string) {
	table := newTable(w)
	table.Header("QTR", "CLOCK", "TEAM", "OUTCOME", "PTS", "SCORER", "AST", "BLK", "STL", "OFF SET", "DEF SET", "RECORDED")
	for _, p := range possessions {
		team := teamNames[p.Team]
		if team == "" {
			team = p.Team
		}
		table.Append(
			QuarterLabel(p.Quarter),
			p.StartTimeInGame,
			team,
			string(p.Outcome),
			strconv.Itoa(p.PointsScored),
			orDash(p.Scorer.FullName()),
			orDash(p.AssistedBy.FullName()),
			orDash(p.BlockedBy.FullName()),
			orDash(p.StolenBy.FullName()),
			orDash(p.OffensiveSet),
			orDash(p.DefensiveSet),
			recorded(p),
		)
	}
	table.Render()
}

// PrintFilterSummary prints the active filter count line shown above a filtered log.
func PrintFilterSummary(w io.Writer, state filter.State, matched, total int) {
	if n := state.ActiveCount(); n > 0 {
		fmt.Fprintf(w, "%d of %d possessions  |  %d active filter(s)\n\n", matched, total, n)
		return
	}
	fmt.Fprintf(w, "%d possessions\n\n", total)
}

// PrintFacets prints the distinct values available for each filter.
func PrintFacets(w io.Writer, opts filter.Options) {
	quarters := opts.QuarterValues()
	for i, q := range opts.Quarters {
		quarters[i] += " (" + QuarterLabel(q) + ")"
	}
	outcomes := make([]string, len(opts.Outcomes))
	for i, o := range opts.Outcomes {
		outcomes[i] = string(o)
	}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("FACET", "COUNT", "VALUES")
	for _, row := range []struct {
		name   string
		values []string
	}{
		{"quarter", quarters},
		{"outcome", outcomes},
		{"offensive-set", opts.OffensiveSets},
		{"defensive-set", opts.DefensiveSets},
		{"player", opts.Players},
	} {
		table.Append(row.name, strconv.Itoa(len(row.values)), orDash(strings.Join(row.values, ", ")))
	}
	table.Render()
}

// PrintQueryResult prints the result of a raw query with a row count footer.
func PrintQueryResult(w io.Writer, cols []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "(no rows)")
		return
	}
	table := newTable(w)
	table.Header(cells(cols)...)
	for _, row := range rows {
		table.Append(cells(row)...)
	}
	table.Render()
	fmt.Fprintf(w, "\n(%s rows)\n", humanize.Comma(int64(len(rows))))
}

func cells(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// TeamNames maps both team ids of g to their display names.
func TeamNames(g model.Game) map[string]string {
	return map[string]string{
		g.HomeTeamID: g.HomeTeamName,
		g.AwayTeamID: g.AwayTeamName,
	}
}

func recorded(p model.Possession) string {
	if p.CreatedAt.IsZero() {
		return "—"
	}
	return humanize.Time(p.CreatedAt)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func short(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
