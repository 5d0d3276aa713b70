// Command tennis runs self-play tennis experiments and inspects the
// environment parameters shared by every court
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/tennisrl/environment/envconfig"
	"github.com/samuelfneumann/tennisrl/environment/tennis"
)

// envFiles are tried in order when no env file is given
var envFiles = []string{
	".env",
	"../.env",
	"../../.env",
}

// parameterKeys are the environment parameters read by agents
var parameterKeys = []string{
	tennis.AngleKey,
	tennis.ScaleKey,
	tennis.BallTouchKey,
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:          "tennis",
		Short:        "Run two tennis rackets against each other",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					return fmt.Errorf("could not load %v: %w", envFile, err)
				}
				return nil
			}
			for _, f := range envFiles {
				if err := godotenv.Load(f); err == nil {
					break
				}
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "",
		"file of environment variables to load, e.g. TENNIS_ANGLE=40")

	rootCmd.AddCommand(newRunCmd(), newParamsCmd())
	return rootCmd
}

// loadParameters returns the parameters of c overridden by any set
// environment variables
func loadParameters(c envconfig.Config) (*envconfig.Parameters, error) {
	params := c.NewParameters()
	if err := params.FromEnv(parameterKeys...); err != nil {
		return nil, err
	}
	return params, nil
}

// loadConfig returns the config at path, or the default config if path
// is empty
func loadConfig(path string) (envconfig.Config, error) {
	if path == "" {
		return envconfig.Default(), nil
	}
	return envconfig.Load(path)
}
