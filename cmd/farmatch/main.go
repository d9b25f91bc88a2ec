package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"farmatch-backend/internal/client"
	"farmatch-backend/internal/domain"
	"farmatch-backend/internal/questionnaire"
	"farmatch-backend/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	server  string
	timeout time.Duration

	// quiz flags
	identity string
	fid      uint64

	// admin flags
	adminSecret string
)

var rootCmd = &cobra.Command{
	Use:   "farmatch",
	Short: "FarMatch builder matchmaking client",
	Long: `farmatch talks to a FarMatch API server.

Take the questionnaire interactively with "farmatch quiz", list the
questions with "farmatch questions", or dump submissions with "farmatch admin".`,
	SilenceUsage: true,
}

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer the questionnaire and see your matches",
	RunE:  runQuiz,
}

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the questionnaire served by the API",
	RunE:  runQuestions,
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "List every stored submission as JSON",
	RunE:  runAdmin,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&server, "server", envOr("FARMATCH_SERVER", client.DefaultServer), "API server base URL (env FARMATCH_SERVER)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "HTTP request timeout")

	quizCmd.Flags().StringVar(&identity, "identity", "", "identity to store answers under (wallet address or username)")
	quizCmd.Flags().Uint64Var(&fid, "fid", 0, "Farcaster FID; enables the profile-created notification")

	adminCmd.Flags().StringVar(&adminSecret, "secret", os.Getenv("ADMIN_SECRET"), "admin secret (env ADMIN_SECRET)")

	rootCmd.AddCommand(quizCmd, questionsCmd, adminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func runQuiz(cmd *cobra.Command, _ []string) error {
	api := client.New(server, timeout)

	// A bare FID is enough to identify the user, mirroring the server's resolution order
	gateIdentity := identity
	if gateIdentity == "" && fid != 0 {
		gateIdentity = strconv.FormatUint(fid, 10)
	}

	submit := func(ctx context.Context, answers domain.Answers) (*domain.MatchResult, error) {
		return api.Match(ctx, &domain.MatchRequest{Identity: identity, FID: fid, Answers: answers})
	}

	model := tui.New(questionnaire.New(questionnaire.IdentityGate(gateIdentity)), submit)
	_, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
	return err
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	questions, err := client.New(server, timeout).Questions(cmd.Context())
	if err != nil {
		return err
	}
	printQuestions(cmd.OutOrStdout(), questions)
	return nil
}

func printQuestions(w io.Writer, questions []domain.Question) {
	for i, q := range questions {
		fmt.Fprintf(w, "%d. %s [%s]\n", i+1, q.Title, q.Field)
		for _, opt := range q.Options {
			fmt.Fprintf(w, "   - %s\n", opt)
		}
	}
}

func runAdmin(cmd *cobra.Command, _ []string) error {
	if adminSecret == "" {
		return fmt.Errorf("--secret is required")
	}
	list, err := client.New(server, timeout).AdminSubmissions(cmd.Context(), adminSecret)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
