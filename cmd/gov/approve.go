package main

import (
	"fmt"

	"github.com/calehh/gov-core/service"
	"github.com/spf13/cobra"
)

type approveArguments struct {
	Url string
	Id  uint64
}

var approveArgs approveArguments

var approveCmd = &cobra.Command{
	Use:   "approve",
	Short: "Approve a proposal and enqueue it for execution",
	Long:  ``,
	Run:   approveRun,
}

func init() {
	urlFlag(approveCmd, &approveArgs.Url)
	approveCmd.Flags().Uint64VarP(&approveArgs.Id, "id", "i", 0, "proposal id")
}

func approveRun(cmd *cobra.Command, args []string) {
	var resp map[string]any
	err := postJSON(approveArgs.Url, "/approve", service.ApproveReq{Id: approveArgs.Id}, &resp)
	if err != nil {
		fmt.Printf("approve proposal err:%v\n", err)
		return
	}
	printJSON(resp)
}
