package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "aerolog",
	Short: "AeroChat conversation logger CLI",
	Long: `aerolog is the command-line interface for the AeroChat conversation logger.

Send conversation events to the logging endpoint, seed a collector with
fake conversations, and browse recently received events.`,
	Version: "0.1.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not load config: %v\n", err)
		cfg = &config.Config{}
	}
}

// dispatcherSettings resolves endpoint and token from flag overrides with
// the loaded config as fallback.
func dispatcherSettings(endpoint, token string) (string, string) {
	if endpoint == "" {
		endpoint = cfg.Dispatcher.Endpoint
	}
	if token == "" {
		token = cfg.Dispatcher.Token
	}
	return endpoint, token
}
