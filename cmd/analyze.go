package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wordtree/internal/clix"
	"wordtree/internal/models"
)

const (
	usageMessage       = `Usage: wordtree analyze --depth <n> "{phrase}"`
	invalidArgsMessage = "Invalid arguments. " + usageMessage
)

func newAnalyzeCmd() *cobra.Command {
	analyzeCmd := &cobra.Command{
		Use:   `analyze --depth <n> "{phrase}"`,
		Short: "Count the phrase's words under each category at a given depth",
		Long: `Walks the taxonomy down to the requested depth and, for every category at
depth-1 whose subtree contains words of the phrase, prints how many of the
phrase's words matched beneath it. Matching ignores case; repeated words count
every time they occur.`,
		Args: cobra.ArbitraryArgs,
		// Flags are split by clix so that a dash-led phrase or a malformed flag
		// still ends in the usage or invalid-arguments message.
		DisableFlagParsing: true,
		RunE:               runAnalyze,
	}

	// depth is a string flag so a non-integer value reaches the invalid-arguments message
	analyzeCmd.Flags().String("depth", "", "Target depth (1 = top-level categories)")
	analyzeCmd.Flags().Bool("verbose", false, "Print load and analysis timings")
	analyzeCmd.Flags().String("format", "", "Output format: text or table")
	analyzeCmd.Flags().String("locale", "", "Message locale, e.g. pt-BR or en")
	return analyzeCmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	params, err := clix.ParseAnalyzeArgs(cmd.Flags(), args)
	switch {
	case errors.Is(err, models.ErrUsage):
		fmt.Fprintln(out, usageMessage)
		return nil
	case errors.Is(err, models.ErrInvalidArgument):
		fmt.Fprintln(out, invalidArgsMessage)
		return nil
	case err != nil:
		return err
	case params.Help:
		return cmd.Help()
	}

	if err := initApp(cmd); err != nil {
		return err
	}
	appInstance, err := GetAppFromContext(cmd.Context())
	if err != nil {
		return err
	}
	if params.Verbose {
		appInstance.SetVerbose()
	}

	result, err := appInstance.Analyze(params.Phrase, params.Depth)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}

	renderer := appInstance.NewRenderer(out)
	if err := renderer.Render(result.Report, params.Depth); err != nil {
		return err
	}
	if params.Verbose {
		return renderer.Timings(result.LoadTime, result.AnalyzeTime)
	}
	return nil
}
