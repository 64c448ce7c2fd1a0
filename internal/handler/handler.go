package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"shortlink-cqrs/internal/shortener"
)

// statsCacheTTL 统计缓存的过期时间
const statsCacheTTL = 5 * time.Minute

// ShortLinkHandler 短链接处理器：把 HTTP 请求映射到核心聚合的命令/查询，
// 并把封闭的业务错误集合映射到状态码。
type ShortLinkHandler struct {
	svc   *shortener.Service
	redis *redis.Client
}

// NewShortLinkHandler 创建处理器实例，redis 可以为 nil
func NewShortLinkHandler(svc *shortener.Service, redisClient *redis.Client) *ShortLinkHandler {
	return &ShortLinkHandler{svc: svc, redis: redisClient}
}

// IndexPage 首页
func (h *ShortLinkHandler) IndexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// HealthCheck 健康检查
func (h *ShortLinkHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now()})
}

// CreateShortLinkRequest 创建短链接的请求体，slug 可选
type CreateShortLinkRequest struct {
	URL  string `json:"url" binding:"required" example:"https://github.com/gin-gonic/gin"`
	Slug string `json:"slug" example:"my-link"`
}

// CreateShortLink godoc
// @Summary 创建短链接
// @Description 为一个长 URL 创建短链接，可携带自定义短码
// @Tags ShortLink
// @Security ApiKeyAuth
// @Accept  json
// @Produce  json
// @Param   link  body   CreateShortLinkRequest  true  "目标 URL 与可选短码"
// @Success 201 {object} shortener.ShortLink "创建成功"
// @Failure 400 {object} gin.H "URL 非法"
// @Failure 409 {object} gin.H "短码已被占用"
// @Failure 500 {object} gin.H "服务器内部错误"
// @Router /api/shorten [post]
func (h *ShortLinkHandler) CreateShortLink(c *gin.Context) {
	var req CreateShortLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据: " + err.Error()})
		return
	}

	link, err := h.svc.CreateShortLink(req.URL, req.Slug)
	if err != nil {
		switch {
		case errors.Is(err, shortener.ErrInvalidURL):
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的目标 URL"})
		case errors.Is(err, shortener.ErrSlugAlreadyInUse):
			c.JSON(http.StatusConflict, gin.H{"error": "短码已被占用"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "创建短链接失败"})
		}
		return
	}

	c.JSON(http.StatusCreated, link)
}

// RedirectToOriginal godoc
// @Summary 短链接跳转
// @Description 按短码 302 跳转到目标地址并累加计数
// @Tags ShortLink
// @Param   code  path  string  true  "短码"
// @Success 302 "跳转"
// @Failure 404 {object} gin.H "短码不存在"
// @Router /{code} [get]
func (h *ShortLinkHandler) RedirectToOriginal(c *gin.Context) {
	code := c.Param("code")

	link, err := h.svc.Redirect(code)
	if err != nil {
		if errors.Is(err, shortener.ErrSlugNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "短码不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "跳转失败"})
		return
	}

	// 计数变了，读侧缓存失效
	if h.redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()
		h.redis.Del(ctx, "stats:"+code)
	}

	c.Redirect(http.StatusFound, link.URL)
}

// GetLinkStats godoc
// @Summary 查询短链接统计
// @Description 返回短链接及其跳转次数
// @Tags ShortLink
// @Security ApiKeyAuth
// @Produce  json
// @Param   code  path  string  true  "短码"
// @Success 200 {object} shortener.Stats "统计信息"
// @Failure 404 {object} gin.H "短码不存在"
// @Router /api/stats/{code} [get]
func (h *ShortLinkHandler) GetLinkStats(c *gin.Context) {
	code := c.Param("code")

	// 查询走读侧缓存，未命中再读投影
	if h.redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()
		if cached, err := h.redis.Get(ctx, "stats:"+code).Result(); err == nil {
			var st shortener.Stats
			if json.Unmarshal([]byte(cached), &st) == nil {
				c.JSON(http.StatusOK, st)
				return
			}
		}
	}

	st, err := h.svc.GetStats(code)
	if err != nil {
		if errors.Is(err, shortener.ErrSlugNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "短码不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询统计失败"})
		return
	}

	if h.redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()
		if data, err := json.Marshal(st); err == nil {
			h.redis.Set(ctx, "stats:"+code, data, statsCacheTTL)
		}
	}

	c.JSON(http.StatusOK, st)
}

// GetAllLinks godoc
// @Summary 列出全部短链接
// @Tags ShortLink
// @Security ApiKeyAuth
// @Produce  json
// @Success 200 {array} shortener.ShortLink "链接列表"
// @Router /api/links [get]
func (h *ShortLinkHandler) GetAllLinks(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Links())
}

// GetEvents godoc
// @Summary 导出事件日志
// @Description 按追加顺序返回全部领域事件，供外部重建或排障
// @Tags Admin
// @Security ApiKeyAuth
// @Produce  json
// @Success 200 {array} shortener.Event "事件序列"
// @Router /api/events [get]
func (h *ShortLinkHandler) GetEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Events())
}
