package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "POPO"
	configName = ".popo"

	keyConfig  = "config"
	keyDebug   = "debug"
	keyDir     = "dir"
	keyPackage = "package"
	keyFactory = "factory"
	keyForce   = "force"
)

// newRootCmd - popo command tree; fs is where config is read and files are generated.
func newRootCmd(fs afero.Fs, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "popo",
		Short:        "Plain data objects toolkit",
		Long:         "Scaffolding for Popo types: plain data objects with explicit serialization schemas",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(fs, v)
		},
	}

	cmd.PersistentFlags().String(keyConfig, "", "config file (default is ./"+configName+".yaml)")
	cmd.PersistentFlags().Bool(keyDebug, false, "development logging")
	_ = v.BindPFlag(keyConfig, cmd.PersistentFlags().Lookup(keyConfig))
	_ = v.BindPFlag(keyDebug, cmd.PersistentFlags().Lookup(keyDebug))

	cmd.AddCommand(newMakeCmd(fs, v))

	return cmd
}

func loadConfig(fs afero.Fs, v *viper.Viper) error {
	v.SetFs(fs)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString(keyConfig); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && v.GetString(keyConfig) == "" {
			return nil
		}

		return errors.Wrap(err, "v.ReadInConfig")
	}

	return nil
}
