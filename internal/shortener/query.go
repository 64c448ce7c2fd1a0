package shortener

// GetStats 查询短链接的统计信息。查询只读投影，从不追加事件。
func (s *Service) GetStats(slug string) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.proj.Stats(slug)
	if !ok {
		return Stats{}, ErrSlugNotFound
	}
	return st, nil
}

// Links 返回当前全部短链接
func (s *Service) Links() []ShortLink {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.proj.Links()
}
