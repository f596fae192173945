package service

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushHubShutdownReleasesClients(t *testing.T) {
	hub := NewPushHub()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r, "phone")
	}))
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var hello WSMessage
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, MsgHello, hello.Type)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	<-stopped
	assert.Equal(t, 0, hub.ClientCount())

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)

	// 停止后的连接直接关闭，处理函数不会阻塞
	done := make(chan struct{})
	go func() {
		defer close(done)
		late, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			return
		}
		defer late.Close()
		late.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, _, err = late.ReadMessage()
		if !assert.Error(t, err) {
			return
		}
		var ne net.Error
		assert.False(t, errors.As(err, &ne) && ne.Timeout(), "connection should be closed, not time out")
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("late client was not released after shutdown")
	}
	assert.Equal(t, 0, hub.ClientCount())
}
