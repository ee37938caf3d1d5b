// Command mosey is the host shell around the emulator core: it loads a
// program image into memory, runs the Cpu for a cycle budget (or steps it
// interactively), and pumps the memory-mapped graphics register into the
// adapter.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mosey/cpu"
	"mosey/gfx"
	"mosey/mem"
)

// The reference programs park their graphics instruction word here. Nothing
// in the core enforces this; it is host convention.
const defaultGfxRegister = 0xFF00

func main() {
	rootCmd := &cobra.Command{
		Use:   "mosey",
		Short: "mosey — a cycle-accurate MOS 6502 emulator",
	}

	var (
		raw     bool
		addr    uint16
		budget  int
		slice   int
		gfxAddr uint16
	)

	setup := func(file string) (*cpu.Cpu, error) {
		image, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		c := cpu.New(&mem.Memory{})
		start := addr
		if raw {
			c.Bus.Load(addr, image)
		} else {
			if len(image) < 2 {
				return nil, fmt.Errorf("%s: too short for a prg header", file)
			}
			start = c.LoadProgram(image)
		}
		c.ResetTo(start)
		return c, nil
	}

	runCmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run a program for a cycle budget and print the final state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := setup(args[0])
			if err != nil {
				return err
			}
			adapter := gfx.New(gfx.Pixel{A: 0xFF})

			total := 0
			for total < budget {
				n := min(slice, budget-total)
				consumed, err := c.Execute(n)
				total += consumed

				// host half of the memory-mapped convention
				if word := c.Bus.ReadWord(gfxAddr); word != 0 {
					adapter.Submit(word)
					c.Bus.WriteWord(gfxAddr, 0)
				}

				if err != nil {
					fmt.Printf("halted after %d cycles: %v\n", total, err)
					break
				}
			}

			fmt.Printf("PC: %04x  SP: %02x  A: %02x  X: %02x  Y: %02x\n",
				c.ProgramCounter, c.Stack, c.Accumulator, c.X, c.Y)
			fmt.Printf("flags: %+v\n", c.Flags)
			fmt.Printf("cycles: %d\n", total)
			return nil
		},
	}
	runCmd.Flags().IntVar(&budget, "cycles", 1_000_000, "total cycle budget")
	runCmd.Flags().IntVar(&slice, "slice", 1000, "cycles per execute slice between graphics pumps")

	debugCmd := &cobra.Command{
		Use:   "debug FILE",
		Short: "Step through a program in an interactive TUI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := setup(args[0])
			if err != nil {
				return err
			}
			d := &cpu.Debugger{
				Cpu:         c,
				Adapter:     gfx.New(gfx.Pixel{A: 0xFF}),
				GfxRegister: gfxAddr,
			}
			return d.Run()
		},
	}

	for _, cmd := range []*cobra.Command{runCmd, debugCmd} {
		cmd.Flags().BoolVar(&raw, "raw", false, "image has no load-address header; use --addr")
		cmd.Flags().Uint16Var(&addr, "addr", 0x8000, "load address for --raw images")
		cmd.Flags().Uint16Var(&gfxAddr, "gfx", defaultGfxRegister, "address of the graphics instruction word")
		rootCmd.AddCommand(cmd)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
