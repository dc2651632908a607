package commands

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/battlesnakeio/snek/version"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "snek",
	Short:             "snek is a single player snake game for the terminal",
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

var (
	apiAddr  = "localhost:3005"
	logLevel = "info"
	logFile  string
)

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVar(&apiAddr, "api-addr", apiAddr, "address of the watch server of a running game")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file, terminal games discard logs otherwise")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statusCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setupLogging(c *cobra.Command, args []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	log.SetLevel(level)

	if logFile == "" {
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return errors.Wrap(err, "unable to open log file")
	}
	log.SetOutput(f)
	return nil
}

// quietLogs keeps log lines from drawing over a terminal ui when no log file
// was given.
func quietLogs() {
	if logFile == "" {
		log.SetOutput(ioutil.Discard)
	}
}
