package metrics

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"CPUSched-go/simulator"
)

type ganttSegment struct {
	label     string
	startTick int
	endTick   int
}

// compressTimeline 把逐Tick的时间线压缩成连续的运行/空闲段。
func compressTimeline(record *simulator.Record) []ganttSegment {
	segments := make([]ganttSegment, 0)
	labelOf := func(idx int) string {
		if idx < 0 {
			return "(idle)"
		}
		return record.Processes[idx].Name()
	}
	for tick, idx := range record.Timeline {
		label := labelOf(idx)
		if len(segments) > 0 && segments[len(segments)-1].label == label {
			segments[len(segments)-1].endTick = tick
			continue
		}
		segments = append(segments, ganttSegment{label: label, startTick: tick, endTick: tick})
	}
	return segments
}

// RenderGanttTable 输出Gantt形式的调度时间线。
func RenderGanttTable(w io.Writer, record *simulator.Record) {
	_, _ = fmt.Fprintf(w, "Gantt schedule, scheduler = [%s]\n", record.SchedulerName)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Start Tick", "End Tick", "Ticks"})
	for _, segment := range compressTimeline(record) {
		table.Append([]string{
			segment.label,
			strconv.Itoa(segment.startTick),
			strconv.Itoa(segment.endTick),
			strconv.Itoa(segment.endTick - segment.startTick + 1),
		})
	}
	table.Render()
}

// RenderProcessTable 输出逐进程的统计表，表尾带均值。
func RenderProcessTable(w io.Writer, record *simulator.Record) {
	_, _ = fmt.Fprintf(w, "Schedule table, scheduler = [%s]\n", record.SchedulerName)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Arrival", "Service", "First Run", "Finish", "Turnaround", "Waiting", "Response"})
	for _, p := range record.Processes {
		table.Append([]string{
			p.Name(),
			strconv.Itoa(int(p.ArrivalTime())),
			strconv.Itoa(int(p.ServiceTimeNeeded())),
			strconv.Itoa(int(p.FirstRunTick())),
			strconv.Itoa(int(p.FinishTick())),
			strconv.Itoa(int(p.TurnaroundTicks())),
			strconv.Itoa(int(p.WaitingTicks())),
			strconv.Itoa(int(p.ResponseTicks())),
		})
	}
	table.SetFooter([]string{
		"", "", "", "",
		fmt.Sprintf("Throughput\n%.2f/t", simulator.Throughput(record.Processes, record.TotalTicks)),
		fmt.Sprintf("Average\n%.2f", avgTurnaround(record.Processes)),
		fmt.Sprintf("Average\n%.2f", avgWaiting(record.Processes)),
		fmt.Sprintf("Average\n%.2f", avgResponse(record.Processes)),
	})
	table.Render()
}
