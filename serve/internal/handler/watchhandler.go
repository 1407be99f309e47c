package handler

import (
	"net/http"
	"time"

	"github.com/HuXin0817/dots-chain/serve/internal/logic"
	"github.com/HuXin0817/dots-chain/serve/internal/svc"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/zeromicro/go-zero/core/logx"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func WatchHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		l := logic.NewWatchLogic(c.Request.Context(), svcCtx)
		current, events, cancel, err := l.Watch(c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		defer cancel()

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			l.Errorf("upgrade watcher: %v", err)
			return
		}
		defer conn.Close()

		// Reading is only needed to notice the watcher going away.
		gone := make(chan struct{})
		go func() {
			defer close(gone)
			for {
				if _, _, err := conn.NextReader(); err != nil {
					return
				}
			}
		}()

		send := func(b []byte) bool {
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
				logx.WithContext(c.Request.Context()).Infof("watcher left: %v", err)
				return false
			}
			return true
		}

		if !send(current.Bytes()) {
			return
		}

		for {
			select {
			case b, open := <-events:
				if !open {
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game over"),
						time.Now().Add(writeWait))
					return
				}
				if !send(b) {
					return
				}
			case <-gone:
				return
			}
		}
	}
}
