package shortener

import "fmt"

// Projection 读侧投影：把事件日志折叠成链接表和统计表。
// 折叠是确定性的纯函数，同一事件序列折叠出的状态完全一致，
// 因此投影可以随时丢弃并从日志整体重建。
type Projection struct {
	links map[string]ShortLink
	stats map[string]Stats
}

// NewProjection 创建空投影
func NewProjection() *Projection {
	return &Projection{
		links: make(map[string]ShortLink),
		stats: make(map[string]Stats),
	}
}

// Fold 将单个事件折叠进投影。
// 命令层追加的事件都经过校验，这里再次发现冲突说明日志已经损坏，
// 返回 ErrCorruptLog 而不是静默忽略。
func (p *Projection) Fold(event Event) error {
	switch event.Type {
	case EventLinkCreated:
		if _, ok := p.links[event.Slug]; ok {
			return fmt.Errorf("%w: 短码 %q 的创建事件重复 (seq=%d)", ErrCorruptLog, event.Slug, event.Seq)
		}
		link := ShortLink{Slug: event.Slug, URL: event.URL}
		p.links[event.Slug] = link
		p.stats[event.Slug] = Stats{Link: link}
	case EventLinkRedirected:
		st, ok := p.stats[event.Slug]
		if !ok {
			return fmt.Errorf("%w: 跳转事件引用了不存在的短码 %q (seq=%d)", ErrCorruptLog, event.Slug, event.Seq)
		}
		st.Redirects++
		p.stats[event.Slug] = st
	default:
		return fmt.Errorf("%w: 未知事件类型 %q (seq=%d)", ErrCorruptLog, event.Type, event.Seq)
	}
	return nil
}

// Replay 从空状态按顺序折叠全部事件，重建投影
func (p *Projection) Replay(events []Event) error {
	p.links = make(map[string]ShortLink)
	p.stats = make(map[string]Stats)
	for _, e := range events {
		if err := p.Fold(e); err != nil {
			return err
		}
	}
	return nil
}

// Link 按短码查找链接
func (p *Projection) Link(slug string) (ShortLink, bool) {
	link, ok := p.links[slug]
	return link, ok
}

// Stats 按短码查找统计
func (p *Projection) Stats(slug string) (Stats, bool) {
	st, ok := p.stats[slug]
	return st, ok
}

// Links 返回当前全部链接
func (p *Projection) Links() []ShortLink {
	out := make([]ShortLink, 0, len(p.links))
	for _, link := range p.links {
		out = append(out, link)
	}
	return out
}
