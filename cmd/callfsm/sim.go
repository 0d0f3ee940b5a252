package main

import (
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	callfsm "github.com/myg844/call-fsm"
	"github.com/myg844/call-fsm/pkg/definition"
	"github.com/myg844/call-fsm/pkg/registry"
)

// simData is the mutable context the simulator threads through every hook.
type simData = map[string]any

// simRegistry assembles the built-in hooks available to definitions hosted by
// the run command. Stateless hooks register directly, parameterized ones as
// factories.
func simRegistry(def *definition.Definition, logger *slog.Logger) *registry.Registry[simData] {
	reg := registry.NewRegistry[simData]()

	reg.RegisterStateHook("log", func(s *callfsm.State[simData], data *simData) error {
		logger.Info("state tick", "state", s.Name)
		return nil
	})
	reg.RegisterStateHook("noop", func(s *callfsm.State[simData], data *simData) error {
		return nil
	})

	reg.RegisterCheck("always", func(t *callfsm.Transition[simData], data *simData) bool {
		return true
	})
	reg.RegisterCheck("never", func(t *callfsm.Transition[simData], data *simData) bool {
		return false
	})

	// after_ticks passes permanently once the guard has been polled n times.
	reg.RegisterCheckFactory("after_ticks", func(args map[string]any) (callfsm.CheckHook[simData], error) {
		var a struct {
			N int `mapstructure:"n"`
		}
		if err := registry.DecodeArgs(args, &a); err != nil {
			return nil, err
		}
		if a.N < 1 {
			return nil, fmt.Errorf("after_ticks needs n >= 1, got %d", a.N)
		}
		seen := 0
		return func(t *callfsm.Transition[simData], data *simData) bool {
			seen++
			return seen >= a.N
		}, nil
	})

	reg.RegisterCheckFactory("key_equals", func(args map[string]any) (callfsm.CheckHook[simData], error) {
		var a struct {
			Key   string
			Value any
		}
		if err := registry.DecodeArgs(args, &a); err != nil {
			return nil, err
		}
		return func(t *callfsm.Transition[simData], data *simData) bool {
			return valuesEqual((*data)[a.Key], a.Value)
		}, nil
	})

	reg.RegisterCheckFactory("key_at_least", func(args map[string]any) (callfsm.CheckHook[simData], error) {
		var a struct {
			Key   string
			Value float64
		}
		if err := registry.DecodeArgs(args, &a); err != nil {
			return nil, err
		}
		return func(t *callfsm.Transition[simData], data *simData) bool {
			v, ok := toFloat((*data)[a.Key])
			return ok && v >= a.Value
		}, nil
	})

	reg.RegisterDone("noop", func(t *callfsm.Transition[simData], data *simData) error {
		return nil
	})
	reg.RegisterDone("log", func(t *callfsm.Transition[simData], data *simData) error {
		logger.Info("transition done", "transition", t.Name)
		return nil
	})

	reg.RegisterDoneFactory("set", func(args map[string]any) (callfsm.DoneHook[simData], error) {
		var a struct {
			Key   string
			Value any
		}
		if err := registry.DecodeArgs(args, &a); err != nil {
			return nil, err
		}
		return func(t *callfsm.Transition[simData], data *simData) error {
			(*data)[a.Key] = a.Value
			return nil
		}, nil
	})

	reg.RegisterDoneFactory("incr", func(args map[string]any) (callfsm.DoneHook[simData], error) {
		var a struct {
			Key string
			By  int
		}
		if err := registry.DecodeArgs(args, &a); err != nil {
			return nil, err
		}
		if a.By == 0 {
			a.By = 1
		}
		return func(t *callfsm.Transition[simData], data *simData) error {
			cur, _ := toInt((*data)[a.Key])
			(*data)[a.Key] = cur + a.By
			return nil
		}, nil
	})

	reg.RegisterErrorHook("log", func(err error, data *simData) *callfsm.Destination {
		logger.Error("hook failed, staying put", "err", err)
		return nil
	})
	reg.RegisterErrorHook("restart", func(err error, data *simData) *callfsm.Destination {
		if def.Initial == "" {
			return nil
		}
		logger.Warn("hook failed, restarting machine", "err", err, "state", def.Initial)
		return callfsm.DestinationName(def.Initial)
	})

	return reg
}

// parseSeeds turns repeated --set key=value flags into the simulation data map.
func parseSeeds(entries []string) (simData, error) {
	data := make(simData, len(entries))
	for _, entry := range entries {
		key, raw, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set entry %q, want key=value", entry)
		}
		data[key] = parseScalar(raw)
	}
	return data, nil
}

// parseScalar guesses the narrowest type for a flag value. Ints win over
// bools so that "1" stays numeric.
func parseScalar(raw string) any {
	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseBool(raw); err == nil {
		return v
	}
	return raw
}

func valuesEqual(got, want any) bool {
	gf, gok := toFloat(got)
	wf, wok := toFloat(want)
	if gok && wok {
		return gf == wf
	}
	return reflect.DeepEqual(got, want)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
