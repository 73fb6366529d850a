package matchday

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	excelize "github.com/xuri/excelize/v2"

	"github.com/sportsynz/scorectl/internal/scoreboard"
)

// History lists completed matches, newest returned first by the backend.
// With an export path set the table is written as an Excel workbook instead
// of rendered to the console.
func History(ctx *Context) error {
	token, err := ctx.Store.Token()
	if err != nil {
		return fmt.Errorf("History: %w", err)
	}

	matches, err := ctx.Client.GetCompletedMatches(ctx, token)
	if err != nil {
		return fmt.Errorf("History: %w", err)
	}

	if ctx.Export != "" {
		if err := exportHistory(matches, ctx.Export); err != nil {
			return fmt.Errorf("History: %w", err)
		}
		fmt.Fprintf(ctx.Out, "Exported %d matches to %s\n", len(matches), ctx.Export)
		return nil
	}

	if len(matches) == 0 {
		fmt.Fprintln(ctx.Out, "No completed matches yet.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(ctx.Out)
	t.AppendHeader(table.Row{"Code", "Type", "Team A", "Team B", "Result"})
	for _, m := range matches {
		t.AppendRow(table.Row{
			m.MatchCode,
			matchType(m),
			fmt.Sprintf("%s (%d)", m.TeamName("A"), m.ScoreA),
			fmt.Sprintf("%s (%d)", m.TeamName("B"), m.ScoreB),
			winnerLine(m),
		})
	}
	t.Render()
	return nil
}

func matchType(m scoreboard.Match) string {
	if m.Type != "" {
		return m.Type
	}
	return "Friendly Match"
}

// winnerLine derives the result string from the two scores.
func winnerLine(m scoreboard.Match) string {
	switch {
	case m.ScoreA == m.ScoreB:
		return "Match Drawn"
	case m.ScoreA > m.ScoreB:
		return fmt.Sprintf("Won %s by %d goals", m.TeamName("A"), m.ScoreA-m.ScoreB)
	default:
		return fmt.Sprintf("Won %s by %d goals", m.TeamName("B"), m.ScoreB-m.ScoreA)
	}
}

// exportHistory writes the completed matches to an Excel workbook, one row
// per match under a header row.
func exportHistory(matches []scoreboard.Match, path string) error {
	xl := excelize.NewFile()
	sheet := xl.GetSheetName(xl.GetActiveSheetIndex())

	header := []string{"Code", "Type", "Team A", "Score A", "Team B", "Score B", "Result"}
	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		xl.SetCellStr(sheet, cell, name)
	}

	for row, m := range matches {
		values := []string{
			m.MatchCode,
			matchType(m),
			m.TeamName("A"),
			fmt.Sprint(m.ScoreA),
			m.TeamName("B"),
			fmt.Sprint(m.ScoreB),
			winnerLine(m),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			xl.SetCellStr(sheet, cell, v)
		}
	}

	if err := xl.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}
