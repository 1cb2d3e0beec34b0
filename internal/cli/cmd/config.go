package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnema/dockspace/internal/infrastructure/config"
)

var (
	configSchemaWrite bool
	configShowYAML    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the config file location, the effective configuration and its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, the config file and DOCKSPACE_*
environment variables have been merged. The output is TOML, the config file
format, unless --yaml is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the configuration JSON schema",
	Long: `Print the JSON schema of the configuration file.

With --write the schema is saved next to the config file instead, for
editors that offer completion from a schema.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configShowCmd.Flags().BoolVar(&configShowYAML, "yaml", false, "print YAML instead of TOML")
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write the schema file next to the config")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	path := a.ConfigFile()
	if path == "" {
		if path, err = config.GetConfigFile(); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	var out []byte
	if configShowYAML {
		out, err = yaml.Marshal(a.Config)
	} else {
		out, err = config.EncodeTOML(a.Config)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configSchemaWrite {
		path, err := config.GenerateSchemaFile()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
