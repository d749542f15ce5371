package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"CPUSched-go/metrics"
	"CPUSched-go/schedulers"
	"CPUSched-go/schedulers/types"
	"CPUSched-go/simulator"
)

var (
	flagPolicy     string
	flagQuantum    int
	flagRosterCSV  string
	flagConfigPath string
	flagLogDir     string
	flagReportDir  string
	flagNoLog      bool
	flagPrintLevel int
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cpusched",
		Short: "CPUSched — discrete-time CPU-scheduling simulator",
		Long: "CPUSched runs one scheduling policy (rr, spn, srt, hrrn) over a process\n" +
			"roster, prints the Gantt schedule and per-process statistics, and writes a\n" +
			"JSON report.",
		RunE:         runSimulation,
		SilenceUsage: true,
	}

	root.Flags().StringVar(&flagPolicy, "policy", "rr", "Scheduling policy: rr, spn, srt, hrrn")
	root.Flags().IntVar(&flagQuantum, "quantum", 2, "Round Robin time quantum in ticks")
	root.Flags().StringVar(&flagRosterCSV, "roster", "", "Path to the roster CSV (process_name, arrival_time, service_time)")
	root.Flags().StringVar(&flagConfigPath, "config", "", "Optional YAML config file; flags set on the command line win")
	root.Flags().StringVar(&flagLogDir, "log-dir", "", "Directory for the run log (default: system temp dir)")
	root.Flags().StringVar(&flagReportDir, "report-dir", "", "Directory for the JSON report (default: system temp dir)")
	root.Flags().BoolVar(&flagNoLog, "no-log", false, "Disable the run log file")
	root.Flags().IntVar(&flagPrintLevel, "print-level", int(simulator.ShortMsgPrint), "Console print level: 0 none, 1 short, 2 all")

	return root
}

func runSimulation(cmd *cobra.Command, args []string) error {
	policy := flagPolicy
	quantum := flagQuantum
	reportDir := flagReportDir

	setOpts := make([]simulator.SetOption, 0)
	if flagConfigPath != "" {
		config, err := simulator.LoadConfigYAML(flagConfigPath)
		if err != nil {
			return err
		}
		setOpts = append(setOpts, config.SetOptions()...)
		if config.Policy != "" && !cmd.Flags().Changed("policy") {
			policy = config.Policy
		}
		if config.Quantum != 0 && !cmd.Flags().Changed("quantum") {
			quantum = config.Quantum
		}
		if config.ReportDirPath != "" && reportDir == "" {
			reportDir = config.ReportDirPath
		}
	}
	if flagRosterCSV != "" {
		setOpts = append(setOpts, simulator.WithOptionDataSourceCSVPath(flagRosterCSV))
	}
	if flagLogDir != "" {
		setOpts = append(setOpts, simulator.WithOptionLogPath(flagLogDir))
	}
	if flagNoLog {
		setOpts = append(setOpts, simulator.WithOptionLogEnabled(false))
	}
	if cmd.Flags().Changed("print-level") {
		setOpts = append(setOpts, simulator.WithOptionFormatPrintLevel(simulator.LogPrintLevel(flagPrintLevel)))
	}

	scheduler, err := buildScheduler(policy, quantum)
	if err != nil {
		return err
	}

	simu, err := simulator.NewSimulator(scheduler, setOpts...)
	if err != nil {
		return err
	}
	record, err := simu.Start()
	if err != nil {
		return err
	}

	metrics.RenderGanttTable(os.Stdout, record)
	metrics.RenderProcessTable(os.Stdout, record)

	if reportDir == "" {
		reportDir = os.TempDir()
	}
	report := metrics.GenerateSingleSimulationReport(record)
	reportPath, err := metrics.SaveSimulationReport(reportDir, []*metrics.Report{report}, &metrics.SimulationMetaConfig{
		CaseFileName: record.CaseFileName,
	})
	if err != nil {
		return err
	}
	fmt.Printf("generate report to %s\n", reportPath)
	return nil
}

func buildScheduler(policy string, quantum int) (types.Scheduler, error) {
	switch policy {
	case "rr":
		if quantum <= 0 {
			return nil, fmt.Errorf("round robin requires --quantum > 0, got %d", quantum)
		}
		return schedulers.NewRoundRobinScheduler(types.Tick(quantum)), nil
	case "spn":
		return schedulers.NewSPNScheduler(), nil
	case "srt":
		return schedulers.NewSRTScheduler(), nil
	case "hrrn":
		return schedulers.NewHRRNScheduler(), nil
	}
	return nil, fmt.Errorf("unknown policy %q (want rr, spn, srt or hrrn)", policy)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
