// Package cmd provides the runnable commands of the ninepack CLI.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arloliu/ninepack/cmd/ninepack/pkg/conf"
)

const helpBase = "Pack small integers (0-511) into 9-bit buffers and back"

// Execute is the main entrypoint and runs the CLI tool
func Execute() error {
	return New(viper.New()).Execute()
}

// New assembles the command tree. All settings are resolved through v, which
// merges flags, NINEPACK_* environment variables and the optional config file.
func New(v *viper.Viper) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "ninepack",
		Short: helpBase,
		Long: helpBase + `

Values are read from the arguments or, if none are given, from stdin. They may be
separated by commas and/or whitespace.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}

			return initLogger(v)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String(conf.LogLevel, conf.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String(conf.TextEncoding, conf.DefaultTextEncoding,
		"text encoding of packed buffers (base64, base64url, base32, base36, base58, hex)")

	rootCmd.AddCommand(encodeCommand(v), decodeCommand(v), compareCommand(v))

	return rootCmd
}

// initConfig reads in the config file, if any, and ENV variables.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(conf.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}

	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file %s does not exist", cfgFile)
		}

		return fmt.Errorf("failed to read config from file %s: %w", cfgFile, err)
	}

	return nil
}

// initLogger configures the global logger. Since this is a command line tool, logs go
// to stderr so they never mix with the command output.
func initLogger(v *viper.Viper) error {
	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString(conf.LogLevel)))
	if err != nil {
		return fmt.Errorf("%s: %w", conf.LogLevel, err)
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	log.Debug().
		Str("level", level.String()).
		Str("config", v.ConfigFileUsed()).
		Msg("logger initialized")

	return nil
}
