package cmd

import (
	"fmt"
	"os"

	log "github.com/jensneuse/abstractlogger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jensneuse/graphql-frontend/pkg/astparser"
	"github.com/jensneuse/graphql-frontend/pkg/roundtrip"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "graphql-frontend",
	Short: "graphql-frontend parses GraphQL documents and prints them in canonical form",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().Int("concurrency", roundtrip.DefaultConcurrency, "number of files processed in parallel")
	rootCmd.PersistentFlags().Int("maxDepth", astparser.DefaultMaxDepth, "maximum nesting depth accepted by the parser")
	_ = viper.BindPFlag("concurrency", rootCmd.PersistentFlags().Lookup("concurrency"))
	_ = viper.BindPFlag("maxDepth", rootCmd.PersistentFlags().Lookup("maxDepth"))
}

func logger() log.Logger {
	if !verbose {
		return log.NoopLogger
	}
	zapLogger, err := zap.NewProduction()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return log.NewZapLogger(zapLogger, log.DebugLevel)
}
