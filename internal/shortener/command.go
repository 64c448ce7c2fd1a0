package shortener

import (
	"errors"
	"net/url"

	"shortlink-cqrs/internal/shortcode"
)

// CreateShortLink 创建短链接命令。slug 为空时由分配器生成随机短码。
// 校验、短码分配、事件追加和折叠在同一把写锁内完成。
func (s *Service) CreateShortLink(rawURL, slug string) (ShortLink, error) {
	if err := validateURL(rawURL); err != nil {
		return ShortLink{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	allocated, err := shortcode.Allocate(slug, func(candidate string) bool {
		_, ok := s.proj.Link(candidate)
		return ok
	})
	if err != nil {
		if errors.Is(err, shortcode.ErrCodeTaken) {
			return ShortLink{}, ErrSlugAlreadyInUse
		}
		return ShortLink{}, err
	}

	event := Event{Type: EventLinkCreated, Slug: allocated, URL: rawURL}
	if _, err := s.log.Append(event); err != nil {
		return ShortLink{}, err
	}
	if err := s.proj.Fold(s.log.last()); err != nil {
		// 事件在追加前已通过校验，折叠失败意味着不变量被破坏
		return ShortLink{}, err
	}

	link, _ := s.proj.Link(allocated)
	return link, nil
}

// Redirect 跳转命令：短码存在时追加跳转事件并累加计数，返回对应链接。
// 计数器的自增只通过折叠事件发生，命令层从不直接改写投影。
func (s *Service) Redirect(slug string) (ShortLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	link, ok := s.proj.Link(slug)
	if !ok {
		return ShortLink{}, ErrSlugNotFound
	}

	if _, err := s.log.Append(Event{Type: EventLinkRedirected, Slug: slug}); err != nil {
		return ShortLink{}, err
	}
	if err := s.proj.Fold(s.log.last()); err != nil {
		return ShortLink{}, err
	}
	return link, nil
}

// validateURL 目标地址必须非空、可解析，且为带主机名的 http/https 地址
func validateURL(rawURL string) error {
	if rawURL == "" {
		return ErrInvalidURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURL
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}
