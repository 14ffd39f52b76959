package main

import (
	"fmt"

	"github.com/calehh/gov-core/service"
	"github.com/spf13/cobra"
)

type registerArguments struct {
	Url         string
	Id          uint64
	Type        uint64
	Creator     string
	Description string
}

var registerArgs registerArguments

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new proposal",
	Long:  ``,
	Run:   registerRun,
}

func init() {
	urlFlag(registerCmd, &registerArgs.Url)
	registerCmd.Flags().Uint64VarP(&registerArgs.Id, "id", "i", 0, "proposal id")
	registerCmd.Flags().Uint64VarP(&registerArgs.Type, "type", "t", 0, "proposal type (0 general, 1 parameter, 2 critical, 3 funding, 4 emergency)")
	registerCmd.Flags().StringVarP(&registerArgs.Creator, "creator", "c", "", "creator identity")
	registerCmd.Flags().StringVarP(&registerArgs.Description, "data", "d", "", "proposal description, hashed before storage")
}

func registerRun(cmd *cobra.Command, args []string) {
	var resp map[string]any
	err := postJSON(registerArgs.Url, "/register", service.RegisterReq{
		Id:          registerArgs.Id,
		Type:        registerArgs.Type,
		Creator:     registerArgs.Creator,
		Description: registerArgs.Description,
	}, &resp)
	if err != nil {
		fmt.Printf("register proposal err:%v\n", err)
		return
	}
	printJSON(resp)
}
