package handler

import (
	"net/http"

	"AgriMind_FarmAssistant/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleChatConnection godoc
// @Summary      AI 채팅 WebSocket 연결
// @Description  텍스트 프레임 하나가 질문 하나입니다. 답변은 JSON 텍스트 프레임으로 돌아옵니다.
// @Description  <br>
// @Description  **참고: 이것은 표준 HTTP API가 아닙니다.**
// @Description  브라우저에서는 헤더를 넣을 수 없으므로 **쿼리 파라미터('token')** 로 인증합니다.
// @Tags         WebSocket (Chat)
// @Param        token    query     string  true  "Kisan 카드 인증 시 발급받은 토큰"
// @Success      101      {string}  string  "101 Switching Protocols"
// @Failure      401      {object}  handler.ErrorResponse "토큰 누락 또는 로그인 필요"
// @Router       /ws/chat [get]
func (h *Handler) HandleChatConnection(c *gin.Context) {
	s := middleware.CurrentSession(c)
	username := s.Snapshot().Username

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.Logger.Warn("HandleChatConnection(): failed to upgrade", zap.String("username", username), zap.Error(err))
		return
	}
	h.Logger.Info("HandleChatConnection(): connection established", zap.String("username", username))

	h.manageChatSession(c.Request.Context(), conn, s)
}
