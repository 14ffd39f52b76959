package main

import (
	"fmt"
	"os"
)

func main() {
	govCmd.AddCommand(initCmd)
	govCmd.AddCommand(versionCmd)
	govCmd.AddCommand(registerCmd)
	govCmd.AddCommand(approveCmd)
	govCmd.AddCommand(executeCmd)
	govCmd.AddCommand(processCmd)
	govCmd.AddCommand(proposalCmd)
	govCmd.AddCommand(statsCmd)
	govCmd.AddCommand(addExecutorCmd)
	if err := govCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
