package main

import (
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/vskvj3/sequences/internal/core"
	"github.com/vskvj3/sequences/internal/datastructures"
	"github.com/vskvj3/sequences/internal/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Parse command-line arguments
	configPtr := flag.String("config", "", "Path to a YAML scenario file")
	debugPtr := flag.Bool("debug", false, "Log every step at debug level")
	logPtr := flag.String("log", "", "Also append logs to this file")
	flag.Parse()

	config, err := utils.LoadConfig(*configPtr)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if *debugPtr {
		config.Debug = true
	}
	if *logPtr != "" {
		config.LogFile = *logPtr
	}

	logger, err := utils.NewLogger(config.LogFile, config.Debug)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logger.Close()
	if *configPtr != "" {
		logger.Info("Loaded configurations from " + *configPtr)
	}

	runner := core.NewRunner(config, logger)
	containers := []struct {
		name string
		seq  datastructures.Sequence[int]
	}{
		{"array", datastructures.NewArray[int]()},
		{"list", datastructures.NewList[int]()},
		{"forward_list", datastructures.NewForwardList[int]()},
	}
	for _, c := range containers {
		report, err := runner.Run(c.name, c.seq)
		if err != nil {
			return err
		}
		printReport(report)
	}

	moves := []func() (*core.MoveReport, error){
		func() (*core.MoveReport, error) { return core.RunMove(runner, "array", datastructures.NewArray[int]()) },
		func() (*core.MoveReport, error) { return core.RunMove(runner, "list", datastructures.NewList[int]()) },
		func() (*core.MoveReport, error) {
			return core.RunMove(runner, "forward_list", datastructures.NewForwardList[int]())
		},
	}
	for _, move := range moves {
		report, err := move()
		if err != nil {
			return err
		}
		printMove(report)
	}
	return nil
}

func printReport(report *core.Report) {
	fmt.Println(report.Container + ":")
	for _, step := range report.Steps {
		fmt.Printf("%s %s: %s (size %d)\n", report.Container, step.Name, join(step.Values), step.Size)
	}
	fmt.Println()
}

func printMove(report *core.MoveReport) {
	fmt.Printf("%s move: source before: %s\n", report.Container, join(report.Before))
	fmt.Printf("%s move: destination: %s\n", report.Container, join(report.Moved))
	fmt.Printf("%s move: source after: %s (size %d)\n", report.Container, join(report.SourceAfter), report.SourceSize)
	fmt.Println()
}

func join(values []int) string {
	return datastructures.Format(slices.Values(values))
}
