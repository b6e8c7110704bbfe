package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"studywise-client/internal/dto"

	"github.com/montanaflynn/stats"
)

// HistorySummary aggregates quiz percentages.
type HistorySummary struct {
	Count  int
	Mean   float64
	Median float64
	Best   float64
}

func SummarizeHistory(entries []dto.QuizHistoryEntry) HistorySummary {
	if len(entries) == 0 {
		return HistorySummary{}
	}
	data := make(stats.Float64Data, 0, len(entries))
	for _, e := range entries {
		data = append(data, e.Percentage)
	}

	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	best, _ := stats.Max(data)
	mean, _ = stats.Round(mean, 1)

	return HistorySummary{Count: len(entries), Mean: mean, Median: median, Best: best}
}

func QuizHistory(w io.Writer, entries []dto.QuizHistoryEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No quizzes taken yet.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "QUIZ\tSCORE\tPERCENT\tDATE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%d/%d\t%s\t%s\n", e.QuizTitle, e.Score, e.Total, Percent(e.Percentage), FormatDate(e.CompletedAt))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := SummarizeHistory(entries)
	_, err := fmt.Fprintf(w, "\n%d quizzes, average %s, median %s, best %s\n",
		s.Count, Percent(s.Mean), Percent(s.Median), Percent(s.Best))
	return err
}
