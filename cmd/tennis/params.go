package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/tennisrl/environment/tennis"
)

func newParamsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print the effective environment parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			params, err := loadParameters(c)
			if err != nil {
				return err
			}

			defaults := map[string]float64{
				tennis.AngleKey:     tennis.DefaultAngle,
				tennis.ScaleKey:     tennis.DefaultScale,
				tennis.BallTouchKey: tennis.DefaultBallTouch,
			}
			for _, key := range parameterKeys {
				fmt.Fprintf(cmd.OutOrStdout(), "%v=%v\n", key,
					params.Parameter(key, defaults[key]))
			}

			// Parameters no agent reads are still shown
			for _, key := range params.Keys() {
				if _, ok := defaults[key]; !ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%v=%v\n", key,
						params.Parameter(key, 0))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "",
		"run config (.json, .yaml, or .yml)")

	return cmd
}
