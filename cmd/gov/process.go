package main

import (
	"fmt"

	"github.com/calehh/gov-core/service"
	"github.com/spf13/cobra"
)

type processArguments struct {
	Url      string
	Max      uint64
	Executor string
}

var processArgs processArguments

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Drain up to max proposals from the execution queue",
	Long:  ``,
	Run:   processRun,
}

func init() {
	urlFlag(processCmd, &processArgs.Url)
	processCmd.Flags().Uint64VarP(&processArgs.Max, "max", "m", 10, "max proposals to process")
	processCmd.Flags().StringVarP(&processArgs.Executor, "executor", "e", "", "authorized executor identity")
}

func processRun(cmd *cobra.Command, args []string) {
	var resp map[string]any
	err := postJSON(processArgs.Url, "/processQueue", service.ProcessQueueReq{
		Max:      processArgs.Max,
		Executor: processArgs.Executor,
	}, &resp)
	if err != nil {
		fmt.Printf("process queue err:%v\n", err)
		return
	}
	printJSON(resp)
}
