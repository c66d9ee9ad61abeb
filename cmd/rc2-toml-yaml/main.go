// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the rc2-toml-yaml CLI, which converts
// RC2 daemon configurations from TOML to the daemon's YAML format.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/rc2-toml-yaml/internal/convert"
	"github.com/pdiddy/rc2-toml-yaml/internal/logging"
	"github.com/pdiddy/rc2-toml-yaml/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// errLogged marks a failure that the converter has already reported through
// the logger, so main must not print it again.
var errLogged = errors.New("conversion failed")

// rootCmd is the base command for the rc2-toml-yaml CLI.
var rootCmd = &cobra.Command{
	Use:   "rc2-toml-yaml -i <file.toml>... [-o out.yml | -d outdir]",
	Short: "Convert RC2 TOML configs to daemon YAML",
	Long: `rc2-toml-yaml converts RC2 radio configuration files written in TOML
(info, network, radio, audio and softkeys sections, plus optional sb9600 and
lookups) into the YAML configuration read by the RC2 daemon.

Each input is written next to itself with a .yml extension unless -d/--outdir
or -o/--outfile is given. -o/--outfile is only valid with a single input.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./rc2-toml-yaml.yaml or ~/.config/rc2-toml-yaml/rc2-toml-yaml.yaml)")

	rootCmd.Flags().StringArrayP("input", "i", nil, "input .toml file to parse and convert (repeatable)")
	rootCmd.Flags().StringP("outfile", "o", "", "output file to save YAML to (single input only)")
	rootCmd.Flags().StringP("outdir", "d", "", "output directory to save YAML files to")
	rootCmd.Flags().BoolP("debug", "v", false, "debug logging")
	rootCmd.Flags().Int("indent", types.DefaultIndent, "YAML indentation width")
	rootCmd.Flags().String("log-format", string(types.LogText), "log format: text or json")

	_ = viper.BindPFlag("outdir", rootCmd.Flags().Lookup("outdir"))
	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
	_ = viper.BindPFlag("indent", rootCmd.Flags().Lookup("indent"))
	_ = viper.BindPFlag("log_format", rootCmd.Flags().Lookup("log-format"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("rc2-toml-yaml")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "rc2-toml-yaml"))
		}
	}

	viper.SetEnvPrefix("RC2_TOML_YAML")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the run configuration from viper (config file, env and
// bound flags) plus the flags that are never read from a file.
func loadConfig(cmd *cobra.Command) types.ConversionConfig {
	outFile, _ := cmd.Flags().GetString("outfile")
	return types.ConversionConfig{
		LogConfig: types.LogConfig{
			Debug:  viper.GetBool("debug"),
			Format: types.LogFormat(viper.GetString("log_format")),
		},
		OutDir:  viper.GetString("outdir"),
		OutFile: outFile,
		Indent:  viper.GetInt("indent"),
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputs, _ := cmd.Flags().GetStringArray("input")
	inputs = append(inputs, args...)

	cfg := loadConfig(cmd)
	log := logging.New(os.Stderr, cfg.LogConfig)

	result, err := convert.New(cfg, log).Run(inputs)
	if err != nil {
		return fmt.Errorf("%w: %w", errLogged, err)
	}
	if result.HasFailures() {
		return fmt.Errorf("%w: %d of %d conversion(s) failed", errLogged, result.Failed, result.Total())
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errLogged) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
