package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/parser"
	"github.com/jsphweid/chordsheet/sheet"
	"github.com/jsphweid/chordsheet/util"
	"github.com/spf13/cobra"
)

var tags []string

func init() {
	infoCmd.Flags().StringSliceVar(&tags, "tag", nil, "tag to attach (repeatable)")
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Prints the song record for a sheet",
	Long: `Builds the song record a store would keep for a sheet (or stdin) from its
{title}, {artist} and {key} directives and prints it as JSON.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text, err := util.ReadInput(inputPath(args))
		cobra.CheckErr(err)
		cobra.CheckErr(Info(os.Stdout, text, tags))
	},
}

func Info(w io.Writer, text string, tags []string) error {
	s := sheet.Fold(parser.ParseDocument(text))
	artist, _ := s.Lookup("artist")

	song, err := model.NewSong(s.Title, artist, s.Key, text, tags)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(song)
}
