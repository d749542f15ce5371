package types

import "fmt"

// DecisionKind 调度决策的种类。
type DecisionKind int

const (
	// DecisionRun 让下标为Index的进程占用处理器一个Tick。
	DecisionRun = DecisionKind(0)
	// DecisionIdle 当前没有任何进程可被调度（还没有进程到达）。
	DecisionIdle = DecisionKind(1)
	// DecisionAllDone 全部进程都已完成，模拟可以结束。
	DecisionAllDone = DecisionKind(2)
)

// Decision 调度器每个Tick返回的决策。
// 它只是一个小的枚举结果，不携带任何调度器内部状态。
type Decision struct {
	kind  DecisionKind
	index int
}

func NewRunDecision(index int) Decision {
	if index < 0 {
		panic(fmt.Sprintf("NewRunDecision index = %d is negative", index))
	}
	return Decision{kind: DecisionRun, index: index}
}

func NewIdleDecision() Decision {
	return Decision{kind: DecisionIdle, index: -1}
}

func NewAllDoneDecision() Decision {
	return Decision{kind: DecisionAllDone, index: -1}
}

func (d Decision) Kind() DecisionKind {
	return d.kind
}

// Index 被调度进程的下标。只在Kind为DecisionRun时有意义。
func (d Decision) Index() int {
	if d.kind != DecisionRun {
		panic(fmt.Sprintf("Decision.Index called on kind = %v", d.kind))
	}
	return d.index
}

func (d Decision) IsRun() bool {
	return d.kind == DecisionRun
}

func (d Decision) String() string {
	switch d.kind {
	case DecisionRun:
		return fmt.Sprintf("Run(%d)", d.index)
	case DecisionIdle:
		return "Idle"
	case DecisionAllDone:
		return "AllDone"
	}
	panic(fmt.Sprintf("unknown decision kind %d", d.kind))
}
