package main

import (
	"fmt"

	"github.com/calehh/gov-core/service"
	"github.com/spf13/cobra"
)

type executeArguments struct {
	Url      string
	Id       uint64
	Executor string
}

var executeArgs executeArguments

var executeCmd = &cobra.Command{
	Use:   "execute",
	Short: "Execute one approved proposal",
	Long:  ``,
	Run:   executeRun,
}

func init() {
	urlFlag(executeCmd, &executeArgs.Url)
	executeCmd.Flags().Uint64VarP(&executeArgs.Id, "id", "i", 0, "proposal id")
	executeCmd.Flags().StringVarP(&executeArgs.Executor, "executor", "e", "", "authorized executor identity")
}

func executeRun(cmd *cobra.Command, args []string) {
	var resp map[string]any
	err := postJSON(executeArgs.Url, "/execute", service.ExecuteReq{
		Id:       executeArgs.Id,
		Executor: executeArgs.Executor,
	}, &resp)
	if err != nil {
		fmt.Printf("execute proposal err:%v\n", err)
		return
	}
	printJSON(resp)
}
