package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jensneuse/graphql-frontend/pkg/roundtrip"
)

// corpusCmd represents the corpus command
var corpusCmd = &cobra.Command{
	Use:     "corpus",
	Short:   "corpus round trips every graphql file under a directory and verifies the output",
	Example: "graphql-frontend corpus ./schemas ./formatted",
	RunE: func(cmd *cobra.Command, args []string) error {

		if len(args) != 2 {
			return fmt.Errorf("corpus: must provide 2 args (sourceDir, destDir)")
		}

		runner := roundtrip.NewRunner(
			roundtrip.WithLogger(logger()),
			roundtrip.WithConcurrency(viper.GetInt("concurrency")),
			roundtrip.WithMaxDepth(viper.GetInt("maxDepth")),
		)

		stats, err := runner.RunCorpus(args[0], args[1])
		fmt.Fprintf(cmd.OutOrStdout(), "processed: %d, failed: %d\n", stats.Processed, stats.Failed)
		return err
	},
}

func init() {
	rootCmd.AddCommand(corpusCmd)
}
