package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/jsphweid/chordsheet/logging"
	"github.com/jsphweid/chordsheet/parser"
	"github.com/jsphweid/chordsheet/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Prints parsed lines as JSON",
	Long:  `Parses a sheet (or stdin) line by line and prints the line records as JSON.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text, err := util.ReadInput(inputPath(args))
		cobra.CheckErr(err)
		cobra.CheckErr(Parse(os.Stdout, text))
	},
}

func Parse(w io.Writer, text string) error {
	lines := parser.ParseDocument(text)
	logging.Debug("parsed sheet", "lines", len(lines))

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(lines)
}
