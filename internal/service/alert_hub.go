package service

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"learner_insights_backend/internal/model"
	"learner_insights_backend/pkg/logger"
	"learner_insights_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512

	MessageTypeAtRiskAlerts = "AT_RISK_ALERTS"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type staffClient struct {
	hub     *AlertHub
	conn    *websocket.Conn
	send    chan []byte
	userID  string
	limiter *rate.Limiter
}

// readPump 教职工端只接收推送，读循环用于维持心跳和发现断开
func (c *staffClient) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Warn("Alert websocket unexpected close", zap.Error(err), zap.String("userId", c.userID))
			}
			return
		}
		// 客户端消息直接丢弃，超过频率说明客户端异常
		if !c.limiter.Allow() {
			logger.Log.Warn("Alert websocket client flooding, closing", zap.String("userId", c.userID))
			return
		}
	}
}

func (c *staffClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// AlertHub 把新预警推送给在线的教师/管理员。
// 配置了 Redis 时经 pub/sub 广播，多实例部署下每个实例只推送给自己的连接。
type AlertHub struct {
	Redis   *redis.Client
	Channel string

	upgrader   websocket.Upgrader
	register   chan *staffClient
	unregister chan *staffClient
	done       chan struct{}

	mu      sync.RWMutex
	clients map[*staffClient]bool
}

func NewAlertHub(rdb *redis.Client, channel string, allowedOrigins []string) *AlertHub {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return &AlertHub{
		Redis:   rdb,
		Channel: channel,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || len(origins) == 0 || origins[origin]
			},
		},
		register:   make(chan *staffClient),
		unregister: make(chan *staffClient),
		done:       make(chan struct{}),
		clients:    make(map[*staffClient]bool),
	}
}

// Run 阻塞直到 ctx 取消
func (h *AlertHub) Run(ctx context.Context) {
	if h.Redis != nil {
		pubsub := h.Redis.Subscribe(ctx, h.Channel)
		defer pubsub.Close()
		go func() {
			for msg := range pubsub.Channel() {
				h.broadcastLocal([]byte(msg.Payload))
			}
		}()
	}

	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			monitoring.AlertWSConnections.Inc()
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				monitoring.AlertWSConnections.Dec()
			}
			h.mu.Unlock()
		}
	}
}

func (h *AlertHub) closeAll() {
	h.mu.Lock()
	n := len(h.clients)
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
	h.mu.Unlock()
	monitoring.AlertWSConnections.Set(0)
	logger.Log.Info("AlertHub stopped", zap.Int("closedConnections", n))
}

func (h *AlertHub) ConnectedCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// NotifyAlerts 实现 AlertNotifier
func (h *AlertHub) NotifyAlerts(ctx context.Context, alerts []model.AtRiskAlert) {
	if len(alerts) == 0 {
		return
	}
	payload, err := json.Marshal(WSMessage{Type: MessageTypeAtRiskAlerts, Data: alerts})
	if err != nil {
		logger.Log.Error("Marshal alert notification failed", zap.Error(err))
		return
	}

	if h.Redis == nil {
		h.broadcastLocal(payload)
		return
	}
	if err := h.Redis.Publish(ctx, h.Channel, payload).Err(); err != nil {
		logger.Log.Error("Publish alert notification failed", zap.Error(err))
	}
}

func (h *AlertHub) broadcastLocal(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			// 发送缓冲已满，丢弃这条推送，客户端可以通过列表接口补齐
		}
	}
}

func (h *AlertHub) ServeWs(w http.ResponseWriter, r *http.Request, userID string) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("WebSocket upgrade failed", zap.Error(err), zap.String("userId", userID))
		return
	}
	client := &staffClient{
		hub:     h,
		conn:    conn,
		send:    make(chan []byte, 64),
		userID:  userID,
		limiter: rate.NewLimiter(rate.Limit(5), 10),
	}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
