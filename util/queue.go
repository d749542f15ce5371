package util

// IndexQueue 进程下标的FIFO队列，RoundRobin的就绪队列使用它。
// Pop与Front在空队列上调用是调用方的契约违反，直接panic。
type IndexQueue struct {
	items []int
}

func NewIndexQueue() *IndexQueue {
	return &IndexQueue{items: make([]int, 0)}
}

func (q *IndexQueue) Push(idx int) {
	q.items = append(q.items, idx)
}

func (q *IndexQueue) Pop() int {
	if q.Empty() {
		panic("IndexQueue.Pop on empty queue")
	}
	item := q.items[0]
	q.items = q.items[1:len(q.items)]
	return item
}

func (q *IndexQueue) Front() int {
	if q.Empty() {
		panic("IndexQueue.Front on empty queue")
	}
	return q.items[0]
}

func (q *IndexQueue) Empty() bool {
	return len(q.items) == 0
}

func (q *IndexQueue) Size() int {
	return len(q.items)
}

// Items 返回队列内容的快照，仅用于测试与日志。
func (q *IndexQueue) Items() []int {
	snapshot := make([]int, len(q.items))
	copy(snapshot, q.items)
	return snapshot
}
