package main

import (
	"fmt"

	"github.com/calehh/gov-core/service"
	"github.com/spf13/cobra"
)

type addExecutorArguments struct {
	Url      string
	Executor string
}

var addExecutorArgs addExecutorArguments

var addExecutorCmd = &cobra.Command{
	Use:   "add-executor",
	Short: "Add an identity to the execution capability",
	Long:  ``,
	Run:   addExecutorRun,
}

func init() {
	urlFlag(addExecutorCmd, &addExecutorArgs.Url)
	addExecutorCmd.Flags().StringVarP(&addExecutorArgs.Executor, "executor", "e", "", "executor identity")
}

func addExecutorRun(cmd *cobra.Command, args []string) {
	var resp map[string]any
	err := postJSON(addExecutorArgs.Url, "/addExecutor", service.AddExecutorReq{Executor: addExecutorArgs.Executor}, &resp)
	if err != nil {
		fmt.Printf("add executor err:%v\n", err)
		return
	}
	printJSON(resp)
}
