// Command z80run is a demonstration harness for pkg/z80: load a raw
// binary into a flat 64KB bus, step the core, and optionally trace
// execution or sweep conformance properties. Structured the way the
// teacher's cmd/z80opt/main.go builds its cobra command tree — one
// root command, one subcommand per mode, flags bound with
// cobra/pflag's Flags().XVar.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/retrostack/z80core/pkg/bus"
	"github.com/retrostack/z80core/pkg/conformance"
	"github.com/retrostack/z80core/pkg/trace"
	"github.com/retrostack/z80core/pkg/z80"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "z80run",
		Short: "Z80 core demonstration harness",
	}

	rootCmd.AddCommand(runCmd(), sweepCmd(), snapshotCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var loadPath string
	var originStr string
	var maxCycles uint64
	var traceExec bool
	var disasm bool
	var snapshotOut string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a raw binary and step the core until max-cycles is reached or it halts",
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := parseUint16(originStr)
			if err != nil {
				return fmt.Errorf("--origin: %w", err)
			}

			program, err := os.ReadFile(loadPath)
			if err != nil {
				return err
			}

			b := bus.NewFlat()
			b.Load(origin, program)
			c := z80.New(b, z80.StdLogger{})
			c.PC = origin

			rec := trace.NewRecorder(1024)
			var total uint64
			for total < maxCycles {
				pc := c.PC
				start := c.CycleTimestamp
				opcode := b.RAM[pc]
				if disasm {
					text, _ := c.Disassemble(pc)
					fmt.Println(text)
				}
				cost := c.Step()
				total += uint64(cost)
				if traceExec {
					rec.Record(trace.Event{PC: pc, Opcode: opcode, Cycles: cost, Tag: start})
				}
				if c.Halted {
					break
				}
			}

			fmt.Printf("Stopped at PC=0x%04X after %d T-states (halted=%v)\n", c.PC, total, c.Halted)
			if traceExec {
				for _, e := range rec.Events() {
					fmt.Printf("  PC=0x%04X opcode=0x%02X cycles=%d\n", e.PC, e.Opcode, e.Cycles)
				}
			}
			if snapshotOut != "" {
				if err := trace.SaveSnapshot(snapshotOut, c.Snapshot()); err != nil {
					return err
				}
				fmt.Printf("Snapshot written to %s\n", snapshotOut)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&loadPath, "load", "", "Path to a raw binary to load into RAM")
	cmd.Flags().StringVar(&originStr, "origin", "0x0000", "Load address and initial PC (hex or decimal)")
	cmd.Flags().Uint64Var(&maxCycles, "max-cycles", 1_000_000, "Stop after this many T-states")
	cmd.Flags().BoolVar(&traceExec, "trace", false, "Record and print each executed instruction")
	cmd.Flags().BoolVar(&disasm, "disasm", false, "Print a mnemonic line before executing each instruction")
	cmd.Flags().StringVar(&snapshotOut, "snapshot-out", "", "Write a gob register snapshot to this path on exit")
	cmd.MarkFlagRequired("load")
	return cmd
}

func sweepCmd() *cobra.Command {
	var tasks int
	var iterations int
	var workers int
	var verbose bool
	var seedBase int64

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run a concurrent property sweep against random instruction streams",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool := conformance.NewWorkerPool(workers)
			taskList := make([]conformance.Task, tasks)
			for i := range taskList {
				taskList[i] = conformance.Task{Seed: seedBase + int64(i), Iterations: iterations}
			}

			violations := pool.Run(taskList, conformance.StandardProperties, verbose)
			checked, _ := pool.Stats()
			fmt.Printf("\n%d steps checked, %d violations\n", checked, len(violations))
			for _, v := range violations {
				fmt.Printf("  [%s] %s (seed=%d, PC 0x%04X -> 0x%04X)\n", v.Property, v.Detail, v.Seed, v.Before.PC, v.After.PC)
			}
			if len(violations) > 0 {
				return fmt.Errorf("%d conformance violations", len(violations))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&tasks, "tasks", 16, "Number of independent sweep tasks")
	cmd.Flags().IntVar(&iterations, "iterations", 10000, "Random steps per task")
	cmd.Flags().IntVar(&workers, "workers", 0, "Number of workers (0 = NumCPU)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print progress every 10s")
	cmd.Flags().Int64Var(&seedBase, "seed", 1, "Base seed; task i uses seed+i")
	return cmd
}

func snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot [file]",
		Short: "Print a gob register snapshot written by `run --snapshot-out`",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := trace.LoadSnapshot(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%+v\n", snap)
			return nil
		},
	}
	return cmd
}

func parseUint16(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(strings.ToLower(s), "0x") {
		s = s[2:]
		base = 16
	}
	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
