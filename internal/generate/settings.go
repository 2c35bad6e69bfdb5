package generate

import (
	"fmt"
	"strings"

	"github.com/phravins/landinggen/internal/config"
	"github.com/phravins/landinggen/pkg/utils"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var writeSetting = config.Write

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change ~/.landinggen.yaml",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Save a setting, e.g. hero.font mono",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])
			if !knownKey(key) {
				return unknownKeyError(key)
			}
			if err := writeSetting(key, args[1]); err != nil {
				return fmt.Errorf("save %s: %w", key, err)
			}
			utils.FprintSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s = %s", key, args[1]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "keys",
		Short: "List setting names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range config.Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
		},
	})
	return cmd
}

func knownKey(key string) bool {
	for _, k := range config.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

func unknownKeyError(key string) error {
	matches := fuzzy.Find(key, config.Keys())
	if len(matches) == 0 {
		return fmt.Errorf("unknown setting %q", key)
	}
	return fmt.Errorf("unknown setting %q (did you mean %s?)", key, matches[0].Str)
}
