package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seyyedshah/blueprints/conformance"
)

func newFeaturesCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "Print the effective features as a YAML profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(v)
			if err != nil {
				return err
			}
			p, err := s.resolve()
			if err != nil {
				return err
			}

			return conformance.WriteProfile(cmd.OutOrStdout(), p.Profile)
		},
	}
}
