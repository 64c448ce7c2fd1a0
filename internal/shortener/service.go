package shortener

import "sync"

// Service CQRS + 事件溯源的短链接聚合，统一持有事件日志和投影。
// 聚合由 main 构造后以句柄传入各处理器，不存在包级单例。
//
// 并发约定：命令（创建、跳转）持写锁，整个"校验 → 追加 → 折叠"窗口内
// 只允许一个写入者，避免两个并发创建选中同一个空闲短码；
// 查询持读锁，互相之间可以并发，但不会观察到折叠到一半的事件。
type Service struct {
	mu   sync.RWMutex
	log  *EventLog
	proj *Projection
}

// NewService 创建聚合。store 非 nil 时先加载历史事件并整体回放：
// 回放是投影唯一的初始化路径，日志因此成为可验证的事实来源。
// 回放失败说明持久化日志已损坏，调用方应当终止启动。
func NewService(store EventStore) (*Service, error) {
	s := &Service{
		log:  NewEventLog(store),
		proj: NewProjection(),
	}

	if store != nil {
		history, err := store.Load()
		if err != nil {
			return nil, err
		}
		s.log.restore(history)
	}
	if err := s.proj.Replay(s.log.ReadAll()); err != nil {
		return nil, err
	}
	return s, nil
}

// Events 返回事件日志的有序副本，供外部重建或调试使用
func (s *Service) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.log.ReadAll()
}
