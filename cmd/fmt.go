package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jensneuse/graphql-frontend/pkg/astparser"
	"github.com/jensneuse/graphql-frontend/pkg/astprinter"
)

// fmtCmd represents the fmt command
var fmtCmd = &cobra.Command{
	Use:     "fmt",
	Short:   "fmt prints a graphql file in canonical form to std out",
	Example: "graphql-frontend fmt starwars.graphqls > formatted.graphqls",
	RunE: func(cmd *cobra.Command, args []string) error {

		if len(args) != 1 {
			return fmt.Errorf("fmt: must provide 1 arg (fileName)")
		}

		fileName := args[0]

		data, err := os.ReadFile(fileName)
		if err != nil {
			return err
		}

		parser := astparser.NewParser(astparser.WithMaxDepth(viper.GetInt("maxDepth")))
		document, err := parser.Parse(data, fileName)
		if err != nil {
			return err
		}

		return astprinter.Print(document, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
