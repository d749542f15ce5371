package simulator

import (
	"encoding/json"
	"fmt"

	"CPUSched-go/schedulers/types"
)

// Process 进程记录的具体实现。由Simulator持有并在两次调度之间更新，
// 通过 types.Process 接口以只读视图暴露给调度器。
// 不变式：0 <= timeScheduled <= serviceTimeNeeded；isDone <=> timeScheduled == serviceTimeNeeded。
type Process struct {
	name              string
	arrivalTime       types.Tick
	serviceTimeNeeded types.Tick
	timeScheduled     types.Tick
	isDone            bool

	// firstRunTick / finishTick 供统计使用，未发生时为-1
	firstRunTick types.Tick
	finishTick   types.Tick
}

func NewProcess(name string, arrivalTime types.Tick, serviceTimeNeeded types.Tick) *Process {
	return &Process{
		name:              name,
		arrivalTime:       arrivalTime,
		serviceTimeNeeded: serviceTimeNeeded,
		firstRunTick:      types.Tick(-1),
		finishTick:        types.Tick(-1),
	}
}

func (p *Process) Name() string {
	return p.name
}

func (p *Process) ArrivalTime() types.Tick {
	return p.arrivalTime
}

func (p *Process) ServiceTimeNeeded() types.Tick {
	return p.serviceTimeNeeded
}

func (p *Process) TimeScheduled() types.Tick {
	return p.timeScheduled
}

func (p *Process) IsDone() bool {
	return p.isDone
}

func (p *Process) FirstRunTick() types.Tick {
	return p.firstRunTick
}

func (p *Process) FinishTick() types.Tick {
	return p.finishTick
}

// runFor 由Simulator在应用一个Run决策时调用，让进程在currentTick消耗一个Tick的
// 处理器时间。调度器绝不会调用它。
func (p *Process) runFor(currentTick types.Tick) {
	if p.isDone {
		panic(fmt.Sprintf("Process[%s].runFor called after process is done", p.name))
	}
	if p.firstRunTick == -1 {
		p.firstRunTick = currentTick
	}
	p.timeScheduled++
	if p.timeScheduled == p.serviceTimeNeeded {
		p.isDone = true
		p.finishTick = currentTick
	}
}

// TurnaroundTicks 周转时间：从到达到完成（含完成的那个Tick）。未完成时返回-1。
func (p *Process) TurnaroundTicks() types.Tick {
	if !p.isDone {
		return -1
	}
	return p.finishTick - p.arrivalTime + 1
}

// WaitingTicks 在就绪状态等待的Tick数。未完成时返回-1。
func (p *Process) WaitingTicks() types.Tick {
	if !p.isDone {
		return -1
	}
	return p.TurnaroundTicks() - p.serviceTimeNeeded
}

// ResponseTicks 从到达到第一次占用处理器之间的Tick数。尚未运行过时返回-1。
func (p *Process) ResponseTicks() types.Tick {
	if p.firstRunTick == -1 {
		return -1
	}
	return p.firstRunTick - p.arrivalTime
}

// clone 返回一份全新的、未运行过的副本，同一个case可以被多个调度器分别模拟。
func (p *Process) clone() *Process {
	return NewProcess(p.name, p.arrivalTime, p.serviceTimeNeeded)
}

func (p *Process) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name              string     `json:"name"`
		ArrivalTime       types.Tick `json:"arrival_time"`
		ServiceTimeNeeded types.Tick `json:"service_time_needed"`
		TimeScheduled     types.Tick `json:"time_scheduled"`
		IsDone            bool       `json:"is_done"`
		FirstRunTick      types.Tick `json:"first_run_tick"`
		FinishTick        types.Tick `json:"finish_tick"`
	}{p.name, p.arrivalTime, p.serviceTimeNeeded, p.timeScheduled, p.isDone, p.firstRunTick, p.finishTick})
}

func (p *Process) String() string {
	return fmt.Sprintf("Process[%s arrival=%d service=%d scheduled=%d done=%v]",
		p.name, p.arrivalTime, p.serviceTimeNeeded, p.timeScheduled, p.isDone)
}

// PrettyExpose 供util.Pretty打印时展开未导出字段。
func (p *Process) PrettyExpose() interface{} {
	return struct {
		Name              string
		ArrivalTime       types.Tick
		ServiceTimeNeeded types.Tick
		TimeScheduled     types.Tick
		IsDone            bool
	}{p.name, p.arrivalTime, p.serviceTimeNeeded, p.timeScheduled, p.isDone}
}
