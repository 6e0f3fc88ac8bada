package cmd

import (
	"io"
	"os"

	"github.com/jsphweid/chordsheet/parser"
	"github.com/jsphweid/chordsheet/sheet"
	"github.com/jsphweid/chordsheet/util"
	"github.com/spf13/cobra"
)

var chorusIndent string

func init() {
	renderCmd.Flags().StringVar(&chorusIndent, "chorus-indent", "  ", "prefix for chorus lines")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Lays a sheet out as text",
	Long:  `Prints a sheet (or stdin) with each chord row above its lyric row.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text, err := util.ReadInput(inputPath(args))
		cobra.CheckErr(err)

		opts := sheet.DefaultRenderOptions()
		opts.ChorusIndent = chorusIndent
		cobra.CheckErr(Render(os.Stdout, text, opts))
	},
}

func Render(w io.Writer, text string, opts sheet.RenderOptions) error {
	s := sheet.Fold(parser.ParseDocument(text))
	return sheet.Render(w, s, opts)
}
