package simulator

import "CPUSched-go/schedulers/types"

// AvgTurnaround 计算一批已完成进程的平均周转时间
func AvgTurnaround(processes []*Process) float64 {
	if len(processes) == 0 {
		return 0
	}
	sum := types.Tick(0)
	for _, p := range processes {
		sum += p.TurnaroundTicks()
	}
	return float64(sum) / float64(len(processes))
}

// AvgWaiting 计算一批已完成进程的平均等待时间
func AvgWaiting(processes []*Process) float64 {
	if len(processes) == 0 {
		return 0
	}
	sum := types.Tick(0)
	for _, p := range processes {
		sum += p.WaitingTicks()
	}
	return float64(sum) / float64(len(processes))
}

// AvgResponse 计算一批已完成进程的平均响应时间（到达至首次运行）
func AvgResponse(processes []*Process) float64 {
	if len(processes) == 0 {
		return 0
	}
	sum := types.Tick(0)
	for _, p := range processes {
		sum += p.ResponseTicks()
	}
	return float64(sum) / float64(len(processes))
}

// Throughput 单位Tick完成的进程数
func Throughput(processes []*Process, totalTicks types.Tick) float64 {
	if totalTicks <= 0 {
		return 0
	}
	return float64(len(processes)) / float64(totalTicks)
}
