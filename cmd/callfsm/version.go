package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	callfsm "github.com/myg844/call-fsm"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of callfsm",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("callfsm version %s\n", strings.TrimSpace(callfsm.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
