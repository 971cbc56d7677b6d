// Command mindease is the terminal front-end: it drives the session store
// against either the remote API or the on-device store.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mindease/mindease/internal"
	"github.com/mindease/mindease/internal/chat"
	"github.com/mindease/mindease/internal/config"
	"github.com/mindease/mindease/internal/exercise"
	"github.com/mindease/mindease/internal/gateway"
	"github.com/mindease/mindease/internal/insight"
	"github.com/mindease/mindease/internal/session"
)

var (
	apiURL   string
	dataDir  string
	userName string
)

func main() {
	home, _ := os.UserHomeDir()
	defaultData := filepath.Join(home, ".mindease")

	rootCmd := &cobra.Command{
		Use:   "mindease",
		Short: "Mood journal and wellness toolkit",
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "backend base URL (empty: use on-device storage)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", defaultData, "on-device data directory")
	rootCmd.PersistentFlags().StringVar(&userName, "user", "", "display name to sign in with")

	rootCmd.AddCommand(logCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(insightsCmd())
	rootCmd.AddCommand(profileCmd())
	rootCmd.AddCommand(breatheCmd())
	rootCmd.AddCommand(groundCmd())
	rootCmd.AddCommand(relaxCmd())
	rootCmd.AddCommand(chatCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newStore(logger internal.Logger) (*session.Store, error) {
	var gw gateway.Gateway
	if apiURL != "" {
		gw = gateway.NewHTTPGateway(apiURL, logger)
	} else {
		local, err := gateway.NewLocalGateway(dataDir, logger)
		if err != nil {
			return nil, fmt.Errorf("open local storage: %w", err)
		}
		gw = local
	}
	return session.NewStore(gw, config.Load().EmailDomain, logger), nil
}

// signIn logs the session in with the --user name, prompting when absent.
func signIn(ctx context.Context, store *session.Store) error {
	name := userName
	if name == "" {
		fmt.Print("Your name: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		name = strings.TrimSpace(line)
	}
	if name == "" {
		return fmt.Errorf("a name is required to sign in")
	}
	if err := store.Login(ctx, name); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return nil
}

func logCmd() *cobra.Command {
	var note string
	var tags []string
	var sleep, water, mindful float64
	var steps int

	cmd := &cobra.Command{
		Use:   "log [mood]",
		Short: "Record how you feel right now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore(internal.NopLogger{})
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := signIn(ctx, store); err != nil {
				return err
			}

			entry := internal.MoodEntry{
				Date: time.Now().Format(time.RFC3339),
				Mood: args[0],
				Note: note,
				Tags: tags,
			}
			if cmd.Flags().Changed("sleep") || cmd.Flags().Changed("water") ||
				cmd.Flags().Changed("mindful") || cmd.Flags().Changed("steps") {
				entry.Lifestyle = &internal.LifestyleStats{
					SleepHours:     sleep,
					WaterOunces:    water,
					MindfulMinutes: mindful,
					Steps:          steps,
				}
			}

			if err := store.AddMood(ctx, entry); err != nil {
				return fmt.Errorf("log mood: %w", err)
			}
			fmt.Println("Moment recorded. Your insights are updating.")
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "optional note (500 chars max)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "context tags, e.g. '#Work,#Sleep'")
	cmd.Flags().Float64Var(&sleep, "sleep", 0, "hours slept")
	cmd.Flags().Float64Var(&water, "water", 0, "ounces of water")
	cmd.Flags().Float64Var(&mindful, "mindful", 0, "mindful minutes")
	cmd.Flags().IntVar(&steps, "steps", 0, "step count")
	return cmd
}

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show your most recent moments",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore(internal.NopLogger{})
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := signIn(ctx, store); err != nil {
				return err
			}

			moods := store.Moods()
			if len(moods) == 0 {
				fmt.Println("No moments logged yet.")
				return nil
			}
			if limit > 0 && len(moods) > limit {
				moods = moods[:limit]
			}
			for _, m := range moods {
				line := fmt.Sprintf("%s  %-10s", m.Date, m.Mood)
				if len(m.Tags) > 0 {
					line += "  " + strings.Join(m.Tags, " ")
				}
				if m.Note != "" {
					line += "  " + m.Note
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "entries to show (0: all)")
	return cmd
}

func insightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Aggregate stats and observations",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore(internal.NopLogger{})
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := signIn(ctx, store); err != nil {
				return err
			}

			moods := store.Moods()
			stats := insight.Averages(moods)
			fmt.Printf("Logged moments: %d\n", stats.TotalEntries)
			fmt.Printf("Avg sleep:      %.1f hrs\n", stats.AvgSleepHours)
			fmt.Printf("Avg hydration:  %.0f oz\n", stats.AvgWaterOunces)
			fmt.Println()
			for _, s := range insight.Sentences(moods) {
				fmt.Println("- " + s)
			}
			return nil
		},
	}
}

func profileCmd() *cobra.Command {
	var bio string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore(internal.NopLogger{})
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := signIn(ctx, store); err != nil {
				return err
			}

			if cmd.Flags().Changed("bio") {
				user := *store.User()
				user.Bio = bio
				if err := store.UpdateUser(ctx, user); err != nil {
					return fmt.Errorf("update profile: %w", err)
				}
			}

			u := store.User()
			fmt.Printf("Name:  %s\nEmail: %s\nBio:   %s\n", u.Name, u.Email, u.Bio)
			return nil
		},
	}

	cmd.Flags().StringVar(&bio, "bio", "", "replace your bio")
	return cmd
}

func breatheCmd() *cobra.Command {
	var name string
	var seconds int

	cmd := &cobra.Command{
		Use:   "breathe",
		Short: "Run a guided breathing or timed exercise",
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := exercise.LoadCatalog(config.Load().ExerciseCatalog)
			if err != nil {
				return err
			}
			var def *exercise.Definition
			for i := range defs {
				if strings.EqualFold(defs[i].Name, name) {
					def = &defs[i]
					break
				}
			}
			if def == nil {
				names := make([]string, len(defs))
				for i, d := range defs {
					names[i] = d.Name
				}
				return fmt.Errorf("unknown exercise %q (have: %s)", name, strings.Join(names, ", "))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if seconds > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, time.Duration(seconds)*time.Second)
				defer cancel()
			}

			fmt.Printf("%s: follow the rhythm. Ctrl-C to finish.\n\n", def.Name)
			runner := exercise.NewRunner(def.Engine(), time.Second, func(s exercise.Snapshot) {
				fmt.Printf("\r%-12s %2d  ", s.Label, s.Remaining)
			})
			runner.Start(ctx)
			defer runner.Stop()

			select {
			case <-ctx.Done():
			case <-runner.Finished():
			}
			fmt.Println("\n\nWell done.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "4-7-8 Breathing", "exercise name from the catalog")
	cmd.Flags().IntVar(&seconds, "seconds", 0, "stop after this many seconds (0: until done or Ctrl-C)")
	return cmd
}

func groundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ground",
		Short: "5-4-3-2-1 grounding, one sense at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			stepper := exercise.NewStepper(exercise.GroundingSteps, func() {
				fmt.Println("I am grounded.")
			})

			reader := bufio.NewReader(os.Stdin)
			for !stepper.Done() {
				fmt.Printf("[%d/%d] %s. Press Enter when ready. ",
					stepper.Index()+1, stepper.Total(), stepper.Step())
				if _, err := reader.ReadString('\n'); err != nil {
					return nil
				}
				stepper.Advance()
			}
			return nil
		},
	}
}

func relaxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relax",
		Short: "Progressive muscle relaxation, region by region",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			r := exercise.NewRelaxation(exercise.RelaxationRegions, exercise.TenseSeconds, exercise.ReleaseSeconds)
			fmt.Println("Find a comfortable position. Ctrl-C to finish early.")
			runner := exercise.NewRunner(r.Engine, time.Second, func(s exercise.Snapshot) {
				fmt.Printf("\r%-18s %2d  ", s.Label, s.Remaining)
			})
			runner.Start(ctx)
			defer runner.Stop()

			select {
			case <-ctx.Done():
			case <-runner.Finished():
			}
			fmt.Println("\n\nNotice how your body feels now.")
			return nil
		},
	}
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk with SerenAI",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var responder chat.Responder
			if key := config.Load().GeminiAPIKey; key != "" {
				g, err := chat.NewGemini(ctx, key)
				if err != nil {
					return err
				}
				responder = g
			} else {
				responder = chat.Scripted{}
			}

			companion := chat.NewCompanion(responder, internal.NopLogger{})
			fmt.Println("SerenAI: " + chat.Greeting)
			fmt.Println("(try: " + strings.Join(chat.SuggestionChips, " | ") + ")")

			reader := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("\nyou: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return nil
				}
				text := strings.TrimSpace(line)
				if text == "" || text == "exit" {
					return nil
				}
				msg, _ := companion.Send(ctx, text)
				fmt.Println("SerenAI: " + msg.Text)
			}
		},
	}
}
