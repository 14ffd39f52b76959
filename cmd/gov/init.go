package main

import (
	"fmt"
	"os"

	app_config "github.com/calehh/gov-core/config"
	"github.com/spf13/cobra"
)

type initArguments struct {
	Home      string
	Overwrite bool
}

var initArgs initArguments

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the service home and write the default configuration",
	Long:  ``,
	RunE:  initRun,
}

func init() {
	initCmd.Flags().StringVarP(&initArgs.Home, "homedir", "d", "", "home directory")
	initCmd.Flags().BoolVarP(&initArgs.Overwrite, "overwrite", "o", false, "overwrite an existing config file")
}

func initRun(cmd *cobra.Command, args []string) error {
	cfg := app_config.DefaultConfig(initArgs.Home)
	if err := os.MkdirAll(cfg.Home+"/config", app_config.DefaultDirPerm); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.DataDir(), app_config.DefaultDirPerm); err != nil {
		return err
	}
	cfgFile := cfg.ConfigFile()
	if _, err := os.Stat(cfgFile); err == nil && !initArgs.Overwrite {
		return fmt.Errorf("config file already exists: %v", cfgFile)
	}
	app_config.WriteConfigFile(cfgFile, cfg)
	fmt.Printf("config written to %v\n", cfgFile)
	return nil
}
