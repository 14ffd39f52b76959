package main

import (
	"fmt"

	"github.com/calehh/gov-core/service"
	"github.com/spf13/cobra"
)

type proposalArguments struct {
	Url string
	Id  uint64
}

var proposalArgs proposalArguments

var proposalCmd = &cobra.Command{
	Use:   "proposal",
	Short: "Fetch a proposal's record",
	Long:  ``,
	Run:   proposalRun,
}

func init() {
	urlFlag(proposalCmd, &proposalArgs.Url)
	proposalCmd.Flags().Uint64VarP(&proposalArgs.Id, "id", "i", 0, "proposal id")
}

func proposalRun(cmd *cobra.Command, args []string) {
	var resp map[string]any
	err := postJSON(proposalArgs.Url, "/getProposal", service.GetProposalReq{Id: proposalArgs.Id}, &resp)
	if err != nil {
		fmt.Printf("get proposal err:%v\n", err)
		return
	}
	printJSON(resp)
}
