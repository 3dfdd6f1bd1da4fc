package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"mipsjit/internal/cpustate"
	"mipsjit/internal/engine"
	"mipsjit/internal/loader"
	"mipsjit/internal/membus"
	"mipsjit/internal/tbcache"
)

const (
	ramBase  = 0x0000_0000
	ramSize  = 32 << 20
	uartBase = 0x1FD0_03F8
	uartSize = 0x10
)

func main() {
	var (
		mode    string
		memory  uint32
		verbose bool
		rawTTY  bool
	)

	root := &cobra.Command{
		Use:   "mipsjit <elf>",
		Short: "MIPS-I/R3000A dynamic-translation emulator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], mode, memory, verbose, rawTTY)
		},
	}
	root.Flags().StringVarP(&mode, "mode", "m", "jit", "execution engine: int|thr|jit")
	root.Flags().Uint32Var(&memory, "memory", ramSize, "memory size in bytes")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().BoolVar(&rawTTY, "raw-tty", false, "put stdin into raw mode for interactive UART use")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path, mode string, memory uint32, verbose, rawTTY bool) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("mipsjit: logger: %w", err)
	}
	defer logger.Sync()

	eng, err := selectEngine(mode)
	if err != nil {
		return err
	}

	logger.Sugar().Infow("allocating memory", "bytes", memory)
	bus := membus.New()
	bus.Map(ramBase, memory, membus.NewRAM(memory))
	bus.Map(uartBase, uartSize, membus.NewUART(os.Stdout))

	s := cpustate.New(0)
	logger.Sugar().Infow("loading ELF", "path", path)
	if err := loader.Load(path, bus, s); err != nil {
		return fmt.Errorf("mipsjit: %w", err)
	}
	logger.Sugar().Infow("entry point resolved", "pc", fmt.Sprintf("%#08x", s.PC))

	if rawTTY {
		oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("mipsjit: raw tty: %w", err)
		}
		defer term.Restore(int(os.Stdin.Fd()), oldState)
	}

	cache := tbcache.New()

	done := make(chan engine.Stats, 1)
	logger.Sugar().Infow("running", "mode", mode)
	start := time.Now()

	go func() {
		done <- engine.Run(eng, s, bus, cache)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	var stats engine.Stats
	select {
	case <-sigCh:
		logger.Sugar().Infow("signal received, stopping")
		os.Exit(130)
	case stats = <-done:
	}

	elapsed := time.Since(start)
	logger.Sugar().Infow("halted",
		"instructions", stats.InstrCount,
		"elapsed", elapsed,
		"pc", fmt.Sprintf("%#08x", s.PC),
	)
	return nil
}

func selectEngine(mode string) (engine.Engine, error) {
	switch mode {
	case "int":
		return engine.Interpreter{}, nil
	case "thr":
		return engine.Threaded{}, nil
	case "jit":
		return engine.JIT{}, nil
	default:
		return nil, fmt.Errorf("mipsjit: unknown mode %q (want int|thr|jit)", mode)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	return cfg.Build()
}
