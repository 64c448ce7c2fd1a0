package shortener

// EventType 事件类型
type EventType string

const (
	// EventLinkCreated 短链接创建事件
	EventLinkCreated EventType = "link_created"
	// EventLinkRedirected 短链接跳转事件
	EventLinkRedirected EventType = "link_redirected"
)

// Event 领域事件。事件一经追加即不可变，事件日志是系统唯一的事实来源，
// 链接表和统计表都只是可以随时从日志重建的缓存。
type Event struct {
	// Seq 追加序号，从 1 开始单调递增，决定回放顺序
	Seq uint64 `json:"seq"`
	// Type 事件类型
	Type EventType `json:"type"`
	// Slug 事件关联的短码
	Slug string `json:"slug"`
	// URL 目标地址，仅 link_created 事件携带
	URL string `json:"url,omitempty"`
}

// ShortLink 短链接：短码与目标地址的配对，创建后不可变
type ShortLink struct {
	Slug string `json:"slug"`
	URL  string `json:"url"`
}

// Stats 短链接的统计信息，由跳转事件折叠而来
type Stats struct {
	Link      ShortLink `json:"link"`
	Redirects uint64    `json:"redirects"`
}
