package service

import (
	"context"
	"encoding/json"
	"errors"
	"mindset_backend/internal/model"
	"mindset_backend/pkg/logger"
	"mindset_backend/pkg/monitoring"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// ErrNoSubscribers 没有已连接的推送客户端
var ErrNoSubscribers = errors.New("no push clients connected")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	MsgNotification = "NOTIFICATION"
	MsgVisibility   = "VISIBILITY"
	MsgHello        = "HELLO"
)

type WSMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// visibilityEvent 客户端上报的页面可见性，用于暂停阅读计时
type visibilityEvent struct {
	SessionID string `json:"sessionId"`
	Visible   bool   `json:"visible"`
}

type PushClient struct {
	Hub     *PushHub
	Conn    *websocket.Conn
	Send    chan []byte
	Device  string
	Limiter *rate.Limiter
}

func (c *PushClient) readPump() {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.done:
		}
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Error("WebSocket unexpected close", zap.Error(err), zap.String("device", c.Device))
			}
			break
		}

		// 每秒最多 5 条，允许突发 10 条
		if !c.Limiter.Allow() {
			continue
		}

		var msg WSMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		if msg.Type == MsgVisibility && c.Hub.OnVisibility != nil {
			var ev visibilityEvent
			if err := json.Unmarshal(msg.Data, &ev); err == nil && ev.SessionID != "" {
				c.Hub.OnVisibility(ev.SessionID, ev.Visible)
			}
		}
	}
}

func (c *PushClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// PushHub 向已连接的页面推送通知，也是 Notifier 的一种实现
type PushHub struct {
	clients    map[*PushClient]bool
	mu         sync.RWMutex
	register   chan *PushClient
	unregister chan *PushClient

	// done 在 Run 退出时关闭，之后的注册和注销不再阻塞
	done     chan struct{}
	doneOnce sync.Once

	// OnVisibility 收到可见性事件时回调
	OnVisibility func(sessionID string, visible bool)
}

func NewPushHub() *PushHub {
	return &PushHub{
		clients:    make(map[*PushClient]bool),
		register:   make(chan *PushClient),
		unregister: make(chan *PushClient),
		done:       make(chan struct{}),
	}
}

func (h *PushHub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			monitoring.PushClients.Inc()
			logger.Log.Debug("Push client connected", zap.String("device", client.Device))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				monitoring.PushClients.Dec()
			}
			h.mu.Unlock()

		case <-ctx.Done():
			h.doneOnce.Do(func() { close(h.done) })
			h.Stop()
			return
		}
	}
}

// Stop 关闭所有连接
func (h *PushHub) Stop() {
	h.mu.Lock()
	n := len(h.clients)
	for client := range h.clients {
		close(client.Send)
		delete(h.clients, client)
	}
	h.mu.Unlock()

	monitoring.PushClients.Set(0)
	logger.Log.Info("PushHub stopped", zap.Int("closedConnections", n))
}

func (h *PushHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast 发给全部客户端，返回送达数量。发送缓冲满的客户端被跳过。
func (h *PushHub) Broadcast(msgType string, data interface{}) (int, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return 0, err
	}
	payload, err := json.Marshal(WSMessage{Type: msgType, Data: raw})
	if err != nil {
		return 0, err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	sent := 0
	for client := range h.clients {
		select {
		case client.Send <- payload:
			sent++
		default:
		}
	}
	return sent, nil
}

func (h *PushHub) Name() string { return "websocket" }

// RequestPermission 页面连接即视为授权
func (h *PushHub) RequestPermission(ctx context.Context) model.NotificationPermission {
	if h.ClientCount() == 0 {
		return model.PermissionDefault
	}
	return model.PermissionGranted
}

func (h *PushHub) Show(ctx context.Context, n model.Notification) error {
	sent, err := h.Broadcast(MsgNotification, n)
	if err != nil {
		return err
	}
	if sent == 0 {
		return ErrNoSubscribers
	}
	return nil
}

func ServeWs(hub *PushHub, w http.ResponseWriter, r *http.Request, device string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("WebSocket upgrade failed", zap.Error(err), zap.String("device", device))
		return
	}
	client := &PushClient{
		Hub:     hub,
		Conn:    conn,
		Send:    make(chan []byte, 32),
		Device:  device,
		Limiter: rate.NewLimiter(rate.Limit(5), 10),
	}
	hello, _ := json.Marshal(map[string]string{"device": device})
	msg, _ := json.Marshal(WSMessage{Type: MsgHello, Data: hello})
	client.Send <- msg
	select {
	case hub.register <- client:
	case <-hub.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
