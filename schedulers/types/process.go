package types

import (
	"github.com/pkg/errors"
)

// Tick 表示一个离散的模拟时间单位。模拟时钟从0开始，逐Tick递增。
type Tick int

// Process 调度器所能看到的进程记录视图。
// 进程记录由外部的驱动器（Simulator）持有并在两次调度之间更新，
// 调度器只读不写。
type Process interface {
	// ArrivalTime 进程到达（变为可调度）的时刻。
	ArrivalTime() Tick

	// ServiceTimeNeeded 进程完成所需要的处理器时间总量。
	ServiceTimeNeeded() Tick

	// TimeScheduled 进程已经消耗的处理器时间。
	// 不变式：0 <= TimeScheduled <= ServiceTimeNeeded。
	TimeScheduled() Tick

	// IsDone 进程是否已经完成。
	// 不变式：IsDone <=> TimeScheduled == ServiceTimeNeeded。
	IsDone() bool
}

// Roster 全部被模拟进程的定长集合。进程的身份就是它在Roster中的下标，
// 模拟过程中下标保持稳定（不会中途插入或删除）。
type Roster []Process

// AllDone 判断是否全部进程都已完成。
func (r Roster) AllDone() bool {
	for _, p := range r {
		if !p.IsDone() {
			return false
		}
	}
	return true
}

// Eligible 判断下标为i的进程在currentTick时是否可被调度。
func (r Roster) Eligible(i int, currentTick Tick) bool {
	return r[i].ArrivalTime() <= currentTick && !r[i].IsDone()
}

// Validate 在模拟开始前校验Roster的合法性。
// 非法的记录（ServiceTimeNeeded <= 0，TimeScheduled越界，负的到达时刻）
// 直接fail fast，调度器不对非法输入做任何静默修正。
func (r Roster) Validate() error {
	if len(r) == 0 {
		return errors.New("roster is empty")
	}
	for i, p := range r {
		if p.ArrivalTime() < 0 {
			return errors.Errorf("roster[%d]: arrivalTime = %d is negative", i, p.ArrivalTime())
		}
		if p.ServiceTimeNeeded() <= 0 {
			return errors.Errorf("roster[%d]: serviceTimeNeeded = %d, must be positive", i, p.ServiceTimeNeeded())
		}
		if p.TimeScheduled() < 0 || p.TimeScheduled() > p.ServiceTimeNeeded() {
			return errors.Errorf("roster[%d]: timeScheduled = %d out of range [0, %d]", i, p.TimeScheduled(), p.ServiceTimeNeeded())
		}
		if p.IsDone() != (p.TimeScheduled() == p.ServiceTimeNeeded()) {
			return errors.Errorf("roster[%d]: isDone = %v contradicts timeScheduled = %d / serviceTimeNeeded = %d",
				i, p.IsDone(), p.TimeScheduled(), p.ServiceTimeNeeded())
		}
	}
	return nil
}
