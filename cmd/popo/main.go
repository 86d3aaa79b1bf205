package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(afero.NewOsFs(), viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}
