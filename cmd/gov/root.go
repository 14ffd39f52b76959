package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	app_config "github.com/calehh/gov-core/config"
	"github.com/calehh/gov-core/handler"
	"github.com/calehh/gov-core/indexer"
	"github.com/calehh/gov-core/notify"
	"github.com/calehh/gov-core/registry"
	"github.com/calehh/gov-core/service"
	cmtflags "github.com/cometbft/cometbft/libs/cli/flags"
	cmtlog "github.com/cometbft/cometbft/libs/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var homeDir string

var govCmd = &cobra.Command{
	Use:   "gov",
	Short: "gov runs the governance proposal execution service",
	Long: `A unified proposal-handling service: registers proposals,
tracks approval and execution, and drains the execution queue.`,
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, args)
	},
}

func init() {
	govCmd.Flags().StringVarP(&homeDir, "homedir", "d", "", "home directory")
}

func run(cmd *cobra.Command, args []string) {
	if homeDir == "" {
		homeDir = os.ExpandEnv("$HOME/.gov")
	}

	appConfig := app_config.DefaultConfig(homeDir)
	viper.SetConfigFile(fmt.Sprintf("%s/%s", homeDir, "config/config.toml"))

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Reading config: %v", err)
	}
	if err := viper.Unmarshal(appConfig); err != nil {
		log.Fatalf("Decoding config: %v", err)
	}
	if err := appConfig.ValidateBasic(); err != nil {
		log.Fatalf("Invalid configuration data: %v", err)
	}
	appConfig.Home = homeDir

	logger := cmtlog.NewTMLogger(cmtlog.NewSyncWriter(os.Stdout))
	logger, err := cmtflags.ParseLogLevel(appConfig.LogLevel, logger, "info")
	if err != nil {
		log.Fatalf("failed to parse log level: %v", err)
	}

	store, err := registry.NewStore(appConfig.DataDir(), logger)
	if err != nil {
		log.Fatalf("open registry store: %v", err)
	}

	sinks := notify.MultiSink{notify.NewLogSink(logger)}
	var ix *indexer.Indexer
	if appConfig.IndexerDB != "" {
		ix, err = indexer.NewIndexer(logger, appConfig.IndexerDB)
		if err != nil {
			log.Fatalf("new indexer: %v", err)
		}
		sinks = append(sinks, ix)
	}

	dispatcher := handler.NewDispatcher(logger)
	reg := registry.NewRegistry(logger, dispatcher, sinks)
	if err := store.Load(reg); err != nil {
		log.Fatalf("load registry snapshot: %v", err)
	}

	cap := registry.NewCapability()
	for _, e := range appConfig.Executors {
		cap.AddExecutor(e)
	}

	svc := service.NewService(appConfig.ListenAddr, reg, cap, ix)
	go svc.Start()

	snapshotTicker := time.NewTicker(time.Minute)
	stop := make(chan struct{})
	snapshotDone := make(chan struct{})
	go func() {
		defer close(snapshotDone)
		for {
			select {
			case <-snapshotTicker.C:
				if _, err := store.Save(reg); err != nil {
					logger.Error("save registry snapshot fail", "err", err)
				}
			case <-stop:
				return
			}
		}
	}()

	defer func() {
		log.Println("shut down...")
		snapshotTicker.Stop()
		close(stop)
		// the tree is not safe for concurrent Save calls; wait out any
		// in-flight ticker snapshot before the final one
		<-snapshotDone
		if _, err := store.Save(reg); err != nil {
			logger.Error("save registry snapshot fail", "err", err)
		}
		if err := store.Close(); err != nil {
			logger.Error("close store fail", "err", err)
		}
		if ix != nil {
			if err := ix.Close(); err != nil {
				logger.Error("close indexer fail", "err", err)
			}
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}
