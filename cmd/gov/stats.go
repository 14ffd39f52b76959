package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type statsArguments struct {
	Url string
}

var statsArgs statsArguments

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show queue length and execution statistics",
	Long:  ``,
	Run:   statsRun,
}

func init() {
	urlFlag(statsCmd, &statsArgs.Url)
}

func statsRun(cmd *cobra.Command, args []string) {
	var resp map[string]any
	err := postJSON(statsArgs.Url, "/getStats", struct{}{}, &resp)
	if err != nil {
		fmt.Printf("get stats err:%v\n", err)
		return
	}
	printJSON(resp)
}
