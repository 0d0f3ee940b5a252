package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/myg844/call-fsm/internal/presentation/graph"
	"github.com/myg844/call-fsm/pkg/definition"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Export the machine graph visualization",
	Long:  `Loads a definition and outputs a Mermaid diagram (graph TD) representing the machine topology.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		def, err := definition.Load(args[0])
		if err != nil {
			fmt.Printf("Error loading definition: %v\n", err)
			os.Exit(1)
		}

		var overlay *graph.Overlay
		active, _ := cmd.Flags().GetString("active")
		visited, _ := cmd.Flags().GetStringSlice("visited")
		if active != "" || len(visited) > 0 {
			overlay = &graph.Overlay{VisitedStates: visited, ActiveState: active}
		}

		fmt.Print(graph.GenerateMermaid(def, overlay))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().String("active", "", "Highlight this state as the active one")
	graphCmd.Flags().StringSlice("visited", nil, "Mark these states as visited")
}
