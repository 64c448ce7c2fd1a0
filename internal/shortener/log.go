package shortener

// EventStore 持久化事件的可插拔接口。Append 在事件写入内存日志之前被调用，
// Load 在启动时按追加顺序返回全部历史事件。实现可以是数据库、文件，
// 或者干脆不提供（纯内存运行）。
type EventStore interface {
	Append(event Event) error
	Load() ([]Event, error)
}

// EventLog 追加专用（append-only）的事件日志。
// 日志本身不加锁，由拥有它的 Service 聚合负责串行化写入。
type EventLog struct {
	events []Event
	store  EventStore
}

// NewEventLog 创建事件日志，store 可以为 nil
func NewEventLog(store EventStore) *EventLog {
	return &EventLog{store: store}
}

// Append 为事件分配序号并追加到日志末尾。
// 先写持久化层再写内存，持久化失败时内存日志保持不变。
func (l *EventLog) Append(event Event) (uint64, error) {
	event.Seq = uint64(len(l.events)) + 1
	if l.store != nil {
		if err := l.store.Append(event); err != nil {
			return 0, err
		}
	}
	l.events = append(l.events, event)
	return event.Seq, nil
}

// ReadAll 返回全部事件的有序副本，每次调用都可以从头完整遍历
func (l *EventLog) ReadAll() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Len 当前日志长度
func (l *EventLog) Len() int {
	return len(l.events)
}

// last 返回最近追加的事件，调用前日志必须非空
func (l *EventLog) last() Event {
	return l.events[len(l.events)-1]
}

// restore 用历史事件初始化内存日志，仅供启动回放使用。
// 序号按原始追加顺序重新编号，保证后续追加单调递增。
func (l *EventLog) restore(events []Event) {
	l.events = make([]Event, 0, len(events))
	for _, e := range events {
		e.Seq = uint64(len(l.events)) + 1
		l.events = append(l.events, e)
	}
}
