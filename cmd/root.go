package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wordtree/internal/app"
	"wordtree/internal/config"
)

// NewRootCmd builds the wordtree command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordtree",
		Short: "Wordtree CLI App",
		Long: `Wordtree counts how many words of a phrase fall under each category of a
hierarchical word taxonomy at a chosen depth.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, args []string) {
			// If no subcommand is given, print help.
			cmd.Help()
		},
		// PersistentPreRunE runs before any subcommand's RunE. Commands that parse
		// their own flags (analyze) call initApp once their arguments check out.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "wordtree" || cmd.DisableFlagParsing {
				return nil
			}
			return initApp(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default ./config.yaml or ~/.config/wordtree/config.yaml)")
	rootCmd.PersistentFlags().String("taxonomy", "", "JSON or YAML taxonomy file (default: bundled dicts/tree.json)")
	rootCmd.PersistentFlags().String("log-level", "", "Diagnostic log level (debug, info, warn, error)")

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newDoctorCmd())
	return rootCmd
}

// initApp loads the configuration and stores the initialized app in the command's context.
func initApp(cmd *cobra.Command) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(configFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	appInstance, err := app.NewApp(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}

	ctx := context.WithValue(cmd.Context(), appKey, appInstance)
	cmd.SetContext(ctx)
	return nil
}

var rootCmd = NewRootCmd()

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// Helper function to retrieve the app instance from context
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		// This should not happen if PersistentPreRunE ran successfully
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}
