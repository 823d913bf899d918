// Package report renders evaluation results as console tables.
package report

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	diagonalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
)

// PerClassTable renders per-class accuracy derived from a confusion matrix:
// one row per class with its correct count, true-instance total and
// accuracy percentage, plus an overall summary row.
func PerClassTable(names []string, cm [][]int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == 0 {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers("CLASS", "CORRECT", "TOTAL", "ACCURACY")

	totalCorrect, total := 0, 0
	for i, name := range names {
		rowSum := 0
		for _, v := range cm[i] {
			rowSum += v
		}
		totalCorrect += cm[i][i]
		total += rowSum
		t.Row(name, strconv.Itoa(cm[i][i]), strconv.Itoa(rowSum), pct(cm[i][i], rowSum))
	}
	t.Row("overall", strconv.Itoa(totalCorrect), strconv.Itoa(total), pct(totalCorrect, total))
	return t.String()
}

// ConfusionTable renders the confusion matrix: rows are true classes,
// columns predicted classes (headed by class number to keep the table
// narrow), with the diagonal emphasized.
func ConfusionTable(names []string, cm [][]int) string {
	headers := make([]string, len(names)+1)
	headers[0] = "TRUE \\ PRED"
	for i := range names {
		headers[i+1] = strconv.Itoa(i)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return headerStyle.Padding(0, 1)
			}
			if col == row { // col 0 is the label column, so this is cm[row-1][row-1]
				return diagonalStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers(headers...)

	for i, name := range names {
		row := make([]string, len(cm[i])+1)
		row[0] = fmt.Sprintf("%d %s", i, name)
		for j, v := range cm[i] {
			row[j+1] = strconv.Itoa(v)
		}
		t.Row(row...)
	}
	return t.String()
}

func pct(num, den int) string {
	if den == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", float64(num)/float64(den)*100)
}
