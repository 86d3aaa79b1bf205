package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/imperiuse/popo/logger"
	"github.com/imperiuse/popo/scaffold"
)

func newMakeCmd(fs afero.Fs, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "make <Name>",
		Aliases: []string{"make:popo"},
		Short:   "Create a new Popo source file",
		Long:    "Create a new Popo type with an empty schema; the file name is the snake_case type name",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMake(cmd, fs, v, args[0])
		},
	}

	cmd.Flags().String(keyDir, ".", "target directory")
	cmd.Flags().String(keyPackage, "", "package name (default is the base name of --dir)")
	cmd.Flags().Bool(keyFactory, false, "add a fixture factory and the PopoFactory association")
	cmd.Flags().Bool(keyForce, false, "overwrite existing file")

	for _, key := range []string{keyDir, keyPackage, keyFactory, keyForce} {
		_ = v.BindPFlag(key, cmd.Flags().Lookup(key))
	}

	return cmd
}

func runMake(cmd *cobra.Command, fs afero.Fs, v *viper.Viper, name string) error {
	log := logger.New(v.GetBool(keyDebug))
	defer func() { _ = log.Sync() }()

	opts := scaffold.Options{
		Name:        name,
		Dir:         v.GetString(keyDir),
		Package:     v.GetString(keyPackage),
		WithFactory: v.GetBool(keyFactory),
		Force:       v.GetBool(keyForce),
	}

	log.Debug("[make] scaffold", zap.Any("options", opts), zap.String("config", v.ConfigFileUsed()))

	path, err := scaffold.Generate(fs, opts)
	if err != nil {
		log.Error("[make] scaffold", zap.String("name", name), zap.Error(err))

		return err
	}

	log.Info("[make] popo created", zap.String("path", path))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), path)

	return err
}
