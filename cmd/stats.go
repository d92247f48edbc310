package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/brainydate/internal/session"
	"github.com/abhisek/brainydate/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show IQ test history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		st, err := s.EventRepo().SessionStats(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}
		if st.Started == 0 {
			fmt.Println("No tests taken yet.")
			return nil
		}

		fmt.Println("IQ Tests")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("%-18s %d\n", "Started", st.Started)
		fmt.Printf("%-18s %d\n", "Finished", st.Finished)
		fmt.Printf("%-18s %d\n", "Abandoned", st.Abandoned)
		if st.Finished > 0 {
			fmt.Printf("%-18s %d (%s)\n", "Best score", st.BestScore, session.Tier(st.BestScore))
			fmt.Printf("%-18s %.1f\n", "Average score", st.AvgScore)
		}
		fmt.Printf("%-18s %.0f%%\n", "Live questions", st.LiveShare*100)

		events, err := s.EventRepo().QuerySessionEvents(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		var finished []store.SessionEvent
		for _, e := range events {
			if e.Action == store.SessionFinish {
				finished = append(finished, e)
			}
		}
		if len(finished) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Printf("%-19s  %-9s  %8s  %7s  %5s\n", "Finished", "Source", "Answered", "Correct", "Score")
		fmt.Println(strings.Repeat("─", 60))
		for _, e := range finished {
			fmt.Printf("%-19s  %-9s  %5d/%-2d  %7d  %5d\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Source,
				e.QuestionsAnswered,
				e.TotalQuestions,
				e.CorrectAnswers,
				e.Score,
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of recent events to scan")
}
