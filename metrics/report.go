package metrics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"CPUSched-go/simulator"
	"CPUSched-go/util"
)

type Reports struct {
	RunID    string    `json:"run_id"`
	CaseName string    `json:"case_name"`
	Reports  []*Report `json:"reports"`
}

type Report struct {
	SchedulerName string            `json:"scheduler_name"`
	SchedulerInfo interface{}       `json:"scheduler_info"`
	Execution     *Execution        `json:"execution"`
	Processes     []*ProcessSummary `json:"processes"`
}

type ProcessSummary struct {
	Name              string `json:"name"`
	ArrivalTick       int    `json:"arrival_tick"`
	ServiceTicks      int    `json:"service_ticks"`
	FirstRunTick      int    `json:"first_run_tick"`
	FinishTick        int    `json:"finish_tick"`
	TurnaroundTicks   int    `json:"turnaround_ticks"`
	WaitingTicks      int    `json:"waiting_ticks"`
	ResponseTicks     int    `json:"response_ticks"`
}

type Execution struct {
	TotalTicks                    int         `json:"total_ticks"`
	FinishedProcessCount          int         `json:"finished_process_count"`
	AvgTurnaroundTicks            float64     `json:"avg_turnaround_ticks"`
	AvgWaitingTicks               float64     `json:"avg_waiting_ticks"`
	AvgResponseTicks              float64     `json:"avg_response_ticks"`
	ThroughputPerTick             float64     `json:"throughput_per_tick"`
	StepCount                     int         `json:"step_count"`
	MaxStepDurationMicros         int         `json:"max_step_duration_micros"`
	AvgStepDurationMicros         int         `json:"avg_step_duration_micros"`
	SchedulerExecutionRecordExtra interface{} `json:"scheduler_execution_record_extra"`
}

type SimulationMetaConfig struct {
	CaseFileName string
}

// GenerateSingleSimulationReport 把一次模拟的运行记录转换为报告。
func GenerateSingleSimulationReport(record *simulator.Record) *Report {
	report := &Report{
		SchedulerName: record.SchedulerName,
		SchedulerInfo: record.SchedulerInfo,
	}
	processes := make([]*ProcessSummary, 0, len(record.Processes))
	for _, p := range record.Processes {
		processes = append(processes, &ProcessSummary{
			Name:            p.Name(),
			ArrivalTick:     int(p.ArrivalTime()),
			ServiceTicks:    int(p.ServiceTimeNeeded()),
			FirstRunTick:    int(p.FirstRunTick()),
			FinishTick:      int(p.FinishTick()),
			TurnaroundTicks: int(p.TurnaroundTicks()),
			WaitingTicks:    int(p.WaitingTicks()),
			ResponseTicks:   int(p.ResponseTicks()),
		})
	}
	report.Processes = processes

	schedulerRecord := record.SchedulerRecord
	stepDurations := make([]time.Duration, 0, len(schedulerRecord.StepRecords))
	for _, stepRecord := range schedulerRecord.StepRecords {
		stepDurations = append(stepDurations, stepRecord.Duration)
	}
	report.Execution = &Execution{
		TotalTicks:                    int(record.TotalTicks),
		FinishedProcessCount:          len(record.Processes),
		AvgTurnaroundTicks:            avgTurnaround(record.Processes),
		AvgWaitingTicks:               avgWaiting(record.Processes),
		AvgResponseTicks:              avgResponse(record.Processes),
		ThroughputPerTick:             simulator.Throughput(record.Processes, record.TotalTicks),
		StepCount:                     len(schedulerRecord.StepRecords),
		MaxStepDurationMicros:         int(util.MaxDuration(stepDurations...).Microseconds()),
		AvgStepDurationMicros:         int(util.AvgDuration(stepDurations...).Microseconds()),
		SchedulerExecutionRecordExtra: schedulerRecord.Extra,
	}
	return report
}

// SaveSimulationReport 把一批报告以JSON写入folder，返回生成的文件路径。
func SaveSimulationReport(folder string, reports []*Report, config *SimulationMetaConfig) (string, error) {
	caseName := strings.Split(config.CaseFileName, ".")[0]
	combined := &Reports{
		RunID:    uuid.NewString(),
		CaseName: caseName,
		Reports:  reports,
	}
	fileName := generateFileName(combined)
	filePath := filepath.Join(folder, fileName)
	bs, err := json.MarshalIndent(combined, "", "\t")
	if err != nil {
		return "", errors.Wrap(err, "save report json marshal")
	}
	if err := os.WriteFile(filePath, bs, os.ModePerm); err != nil {
		return "", errors.Wrapf(err, "save report write %s", filePath)
	}
	return filePath, nil
}

func generateFileName(reports *Reports) string {
	datetime := time.Now().Format("01-02_15-04-05")
	schedulerNames := make([]string, 0, len(reports.Reports))
	for _, report := range reports.Reports {
		schedulerNames = append(schedulerNames, report.SchedulerName)
	}
	schedulersCombined := util.StringSliceJoinWith(schedulerNames, "_")
	shortRunID := reports.RunID[:8]
	return schedulersCombined + "_" + reports.CaseName + "_" + datetime + "_" + shortRunID + ".json"
}
