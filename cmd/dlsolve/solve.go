package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/autotaker/csisat/difflog"
	"github.com/autotaker/csisat/internal/config"
)

func newSolveCmd() *cobra.Command {
	var sharedFlag []string
	cmd := &cobra.Command{
		Use:   "solve <scenario.yaml>",
		Short: "load a scenario and replay its push/pop/core/propagate script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(args[0], sharedFlag)
		},
	}
	cmd.Flags().StringSliceVar(&sharedFlag, "shared", nil, "additional shared terms for equality propagation, beyond the scenario's own")
	return cmd
}

func runSolve(path string, extraShared []string) error {
	id := runID()
	log := logger.With(zap.String("run_id", id), zap.String("scenario", path))
	log.Info("loading scenario")

	sc, err := config.Load(path)
	if err != nil {
		return err
	}
	atoms, err := sc.ToAtoms()
	if err != nil {
		return err
	}
	e, err := difflog.Create(sc.ResolvedDomain(), atoms)
	if err != nil {
		return fmt.Errorf("dlsolve: creating engine: %w", err)
	}
	log.Info("engine created", zap.Int("atoms", len(atoms)), zap.String("domain", sc.ResolvedDomain().String()))

	shared := append(append([]string{}, sc.Shared...), extraShared...)

	sayOK := color.New(color.FgGreen).SprintFunc()
	sayBad := color.New(color.FgRed).SprintFunc()
	color.NoColor = noColor

	for i, step := range sc.Script {
		switch {
		case step.Push != "":
			lit, err := parsePushSpec(step.Push)
			if err != nil {
				return fmt.Errorf("dlsolve: script step %d: %w", i, err)
			}
			ok, err := e.Push(lit)
			if err != nil {
				return fmt.Errorf("dlsolve: script step %d: push: %w", i, err)
			}
			if ok {
				fmt.Printf("push %s -> %s\n", step.Push, sayOK("Sat"))
			} else {
				fmt.Printf("push %s -> %s\n", step.Push, sayBad("UnSat"))
			}
		case step.Pop:
			if err := e.Pop(); err != nil {
				return fmt.Errorf("dlsolve: script step %d: pop: %w", i, err)
			}
			fmt.Println("pop -> Sat")
		case step.Core:
			core, err := e.UnsatCore()
			if err != nil {
				return fmt.Errorf("dlsolve: script step %d: core: %w", i, err)
			}
			fmt.Printf("core: %v\n", core)
		case step.Propagate:
			eqs := e.Propagations(shared)
			fmt.Printf("propagations: %v\n", eqs)
		}
	}
	log.Info("scenario replay complete", zap.Bool("sat", e.IsSat()))
	return nil
}

// parsePushSpec parses an atom index, optionally "~"-prefixed for negation,
// into a difflog.Literal.
func parsePushSpec(s string) (difflog.Literal, error) {
	neg := strings.HasPrefix(s, "~")
	s = strings.TrimPrefix(s, "~")
	idx, err := strconv.Atoi(s)
	if err != nil {
		return difflog.Literal{}, fmt.Errorf("invalid push spec %q: %w", s, err)
	}
	return difflog.Literal{Atom: difflog.AtomID(idx), Neg: neg}, nil
}
