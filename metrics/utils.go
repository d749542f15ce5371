package metrics

import (
	"CPUSched-go/schedulers/types"
	"CPUSched-go/simulator"
)

// avgTurnaround 计算一批已完成进程的平均周转时间
func avgTurnaround(processes []*simulator.Process) float64 {
	if len(processes) == 0 {
		return 0
	}
	sum := types.Tick(0)
	for _, p := range processes {
		sum += p.TurnaroundTicks()
	}
	return float64(sum) / float64(len(processes))
}

// avgWaiting 计算一批已完成进程的平均等待时间
func avgWaiting(processes []*simulator.Process) float64 {
	if len(processes) == 0 {
		return 0
	}
	sum := types.Tick(0)
	for _, p := range processes {
		sum += p.WaitingTicks()
	}
	return float64(sum) / float64(len(processes))
}

// avgResponse 计算一批已完成进程的平均响应时间
func avgResponse(processes []*simulator.Process) float64 {
	if len(processes) == 0 {
		return 0
	}
	sum := types.Tick(0)
	for _, p := range processes {
		sum += p.ResponseTicks()
	}
	return float64(sum) / float64(len(processes))
}
