package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/jsphweid/chordsheet/constants"
	"github.com/jsphweid/chordsheet/logging"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "chordsheet",
	Short: "ChordPro-style chord sheet tool",
	Long:  `Parses, transposes and lays out chord sheets written in a simplified ChordPro format.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (env CHORDSHEET_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "text or json (env CHORDSHEET_LOG_FORMAT)")
}

func initConfig() {
	// a missing .env is fine
	_ = godotenv.Load()

	if logLevel == "" {
		logLevel = constants.GetLogLevel()
	}
	if logFormat == "" {
		logFormat = constants.GetLogFormat()
	}
	logging.InitLogger(os.Stderr, logging.ParseLevel(logLevel), logging.ParseFormat(logFormat))
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func inputPath(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return ""
}
