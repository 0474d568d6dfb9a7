package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"ai-adib/internal/app"
	"ai-adib/internal/tui"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

func loadApplication(ctx context.Context, mockFlag bool) (*app.Application, error) {
	cfg, err := app.LoadConfig(app.DefaultConfigPath())
	if err != nil {
		return nil, err
	}
	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.StorageRoot == "" {
		cfg.StorageRoot = app.DefaultStorageRoot()
	}

	mockMode := mockFlag || cfg.GeminiAPIKey == ""
	return app.NewApplication(ctx, cfg, mockMode)
}

func generateCompletion(root *cobra.Command, shell string) error {
	switch shell {
	case "bash":
		return root.GenBashCompletion(os.Stdout)
	case "zsh":
		return root.GenZshCompletion(os.Stdout)
	case "fish":
		return root.GenFishCompletion(os.Stdout, true)
	default:
		return fmt.Errorf("unsupported shell: %s", shell)
	}
}

func main() {
	var mockMode bool

	root := &cobra.Command{
		Use:     "adib",
		Short:   "AI-ADIB - O'zbek adabiyoti mentori",
		Long:    "AI-ADIB is an interactive literary mentor for Uzbek and world literature.\n\nRun without arguments for the chat interface, or use 'ask' for a one-shot question.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if comp, _ := cmd.Flags().GetString("completion"); comp != "" {
				return generateCompletion(cmd, comp)
			}

			application, err := loadApplication(cmd.Context(), mockMode)
			if err != nil {
				return err
			}
			return tui.Run(application)
		},
	}

	root.PersistentFlags().BoolVar(&mockMode, "mock", false, "Use canned replies instead of the Gemini API")
	root.Flags().String("completion", "", "Generate shell completion (bash|zsh|fish)")

	var askMood string
	var askAttach string

	askCmd := &cobra.Command{
		Use:   "ask [prompt]",
		Short: "Ask a single question and print the reply",
		Long:  "Ask sends one prompt through the same routing and persona as the chat interface and prints the reply to stdout.\n\nExamples:\n  - adib ask \"Navoiy haqida qisqacha\"\n  - adib ask --mood Izlanish \"Menga kitob tavsiya qiling\"\n  - adib ask --attach gazal.png \"Ushbu she'rni tahlil qiling\"",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := loadApplication(cmd.Context(), mockMode)
			if err != nil {
				return err
			}

			prompt := ""
			if len(args) > 0 {
				prompt = args[0]
			} else {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("error reading input: %w", err)
				}
				prompt = strings.TrimSpace(string(data))
			}

			var attachment *app.Attachment
			if askAttach != "" {
				attachment, err = tui.LoadImageAttachment(askAttach)
				if err != nil {
					return err
				}
			}

			var mood app.Mood
			if askMood != "" {
				parsed, ok := app.ParseMood(askMood)
				if !ok {
					return fmt.Errorf("unknown mood %q", askMood)
				}
				mood = parsed
			}

			reply, ok := application.Store.SendMessage(cmd.Context(), prompt, attachment, mood)
			if !ok {
				return fmt.Errorf("no prompt provided")
			}

			fmt.Println(reply.Content)
			if reply.ImageURL != "" {
				fmt.Println("\n[tasvir data URI]")
				fmt.Println(reply.ImageURL)
			}
			if len(reply.GroundingSources) > 0 {
				fmt.Println("\nManbalar:")
				for _, src := range reply.GroundingSources {
					fmt.Printf("  - %s %s\n", src.Title, src.URI)
				}
			}
			return nil
		},
	}
	askCmd.Flags().StringVar(&askMood, "mood", "", "Mood context: "+moodNames())
	askCmd.Flags().StringVar(&askAttach, "attach", "", "Path to an image to analyze")
	root.AddCommand(askCmd)

	starsCmd := &cobra.Command{
		Use:   "stars",
		Short: "Print the earned star count",
		RunE: func(cmd *cobra.Command, args []string) error {
			storage := app.NewFileStateStore(app.DefaultStorageRoot())
			stars, err := storage.LoadStars()
			if err != nil {
				return err
			}
			fmt.Printf("★ %d\n", stars)
			return nil
		},
	}
	root.AddCommand(starsCmd)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func moodNames() string {
	moods := app.Moods()
	parts := make([]string, len(moods))
	for i, mood := range moods {
		parts[i] = string(mood)
	}
	return strings.Join(parts, "|")
}
