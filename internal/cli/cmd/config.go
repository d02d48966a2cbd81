package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumber-mobile/internal/cli/styles"
	"github.com/bnema/dumber-mobile/internal/infrastructure/config"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage the configuration file",
	Long: `Inspect and manage config.toml.

Without a subcommand, shows where the config and schema files live.`,
	RunE: runConfigPath,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config and schema file locations",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after defaults, file and environment are merged.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE:  runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema next to the config file",
	Long: `Write config.schema.json next to config.toml.

Editors that understand taplo directives use it for completion and validation.`,
	RunE: runConfigSchema,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configPathCmd, configShowCmd, configInitCmd, configSchemaCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	configFile := app.ConfigManager.ConfigFile()
	_, statErr := os.Stat(configFile)

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderPaths(configFile, app.ConfigManager.SchemaFile(), statErr == nil))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	content, err := config.EncodeConfig(app.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderTOML(string(content)))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path, err := app.ConfigManager.InitDefault(configInitForce)
	if err != nil {
		if _, statErr := os.Stat(path); statErr == nil && !configInitForce {
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderExists(path))
			return nil
		}
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderWritten("config", path))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	path := app.ConfigManager.SchemaFile()
	if err := config.GenerateSchemaFile(path); err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderWritten("schema", path))
	return nil
}
