package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/myg844/call-fsm/internal/validator"
	"github.com/myg844/call-fsm/pkg/definition"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a machine definition for consistency",
	Long:  `Loads a definition and reports unknown states, duplicate cells, unreachable states and other structural defects.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Definition is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	def, err := definition.Load(path)
	if err != nil {
		return err
	}
	if err := def.Validate(); err != nil {
		return err
	}
	return validator.CheckReachability(def)
}
