package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/chordsheet/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Lists the keys a sheet can be transposed between",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(Keys(os.Stdout))
	},
}

func Keys(w io.Writer) error {
	for _, key := range note.Keys {
		spelling := "sharps"
		if note.PrefersFlats(key) {
			spelling = "flats"
		}
		if _, err := fmt.Fprintf(w, "%-3s%s\n", key, spelling); err != nil {
			return err
		}
	}
	return nil
}
