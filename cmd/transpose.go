package cmd

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/jsphweid/chordsheet/logging"
	"github.com/jsphweid/chordsheet/transpose"
	"github.com/jsphweid/chordsheet/util"
	"github.com/spf13/cobra"
)

var (
	fromKey string
	toKey   string
)

func init() {
	transposeCmd.Flags().StringVar(&fromKey, "from", "C", "key the sheet is written in")
	transposeCmd.Flags().StringVar(&toKey, "to", "C", "key to move the sheet to")
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose [file]",
	Short: "Transposes a sheet",
	Long: `Moves every chord in a sheet (or stdin) from one key to another and
rewrites the {key: ...} directive. Unknown keys leave the sheet unchanged.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text, err := util.ReadInput(inputPath(args))
		cobra.CheckErr(err)
		cobra.CheckErr(Transpose(os.Stdout, text, fromKey, toKey))
	},
}

// Transpose writes the transposed sheet to w. A key outside the twelve
// known ones is only a warning; the sheet is written back as it came.
func Transpose(w io.Writer, text, from, to string) error {
	out, err := transpose.Document(text, from, to)
	switch {
	case errors.Is(err, transpose.ErrUnknownKey):
		logging.Warn("transpose skipped", "from", from, "to", to, "error", err)
	case err != nil:
		return err
	default:
		logging.Info("transposed sheet", "from", from, "to", to)
	}

	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = io.WriteString(w, out)
	return err
}
