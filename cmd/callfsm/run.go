package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/spf13/cobra"

	callfsm "github.com/myg844/call-fsm"
	"github.com/myg844/call-fsm/internal/logging"
	"github.com/myg844/call-fsm/pkg/definition"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Host a machine from a definition in a simulated tick loop",
	Long: `Builds a machine from the definition over the built-in simulation hooks and
polls it for a fixed number of ticks. The machine never schedules itself, the
cadence belongs entirely to this host loop. Data lives in a key/value map
seeded with --set.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ticks, _ := cmd.Flags().GetInt("ticks")
		interval, _ := cmd.Flags().GetDuration("interval")
		seeds, _ := cmd.Flags().GetStringArray("set")
		logLevel, _ := cmd.Flags().GetString("log-level")
		logFormat, _ := cmd.Flags().GetString("log-format")

		if err := runSimulation(args[0], ticks, interval, seeds, logFormat, logLevel); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("ticks", 10, "Number of ticks to drive the machine")
	runCmd.Flags().Duration("interval", 0, "Delay between ticks (0 runs them back to back)")
	runCmd.Flags().StringArray("set", nil, "Seed data entry (key=value), repeatable")
}

func runSimulation(path string, ticks int, interval time.Duration, seeds []string, logFormat, logLevel string) error {
	logger := logging.New(logFormat, logLevel)

	def, err := definition.Load(path)
	if err != nil {
		return err
	}

	data, err := parseSeeds(seeds)
	if err != nil {
		return err
	}

	machine, err := definition.Build(def, data, simRegistry(def, logger), callfsm.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

	loop:
		for i := 0; i < ticks; i++ {
			select {
			case <-ctx.Done():
				logger.Info("interrupted", "ticks", i)
				break loop
			case <-ticker.C:
				machine.Run()
			}
		}
	} else {
		for i := 0; i < ticks; i++ {
			machine.Run()
		}
	}

	printSummary(machine, data)
	return nil
}

func printSummary(m *callfsm.Machine[simData], data simData) {
	name := "<none>"
	if idx, ok := m.ActiveState(); ok {
		if s, err := m.State(idx); err == nil {
			name = s.Name
		}
	}
	fmt.Printf("Final state: %s\n", name)

	if len(data) == 0 {
		return
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s = %v\n", k, data[k])
	}
}
