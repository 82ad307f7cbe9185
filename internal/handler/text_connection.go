package handler

import (
	"context"
	"errors"
	"strings"

	"AgriMind_FarmAssistant/internal/llm"
	"AgriMind_FarmAssistant/internal/session"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type ChatFrame struct {
	Question string `json:"question,omitempty"`
	Reply    string `json:"reply,omitempty"`
	Error    string `json:"error,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

// 한 번에 질문 하나씩 순서대로 처리 (동시 호출 없음)
func (h *Handler) manageChatSession(ctx context.Context, conn *websocket.Conn, s *session.Session) {
	defer conn.Close()
	username := s.Snapshot().Username

ReadLoop:
	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.Logger.Info("manageChatSession(): read ended", zap.String("username", username), zap.Error(err))
			}
			break ReadLoop
		}
		if messageType != websocket.TextMessage {
			h.Logger.Debug("manageChatSession(): unsupported message type", zap.Int("type", messageType))
			continue
		}

		question := strings.TrimSpace(string(message))
		if question == "" {
			continue
		}

		// Logout 후에도 열린 연결이 남을 수 있음
		if !s.LoggedIn() {
			break ReadLoop
		}

		frame := ChatFrame{Question: question}
		reply, err := h.Composer.Compose(ctx, question, "")
		if err != nil {
			var serviceErr *llm.ServiceError
			frame.Error = err.Error()
			frame.Kind = "internal"
			if errors.As(err, &serviceErr) {
				frame.Kind = "advice_service"
			}
		} else {
			s.AppendChat(question, reply)
			frame.Reply = reply
		}

		if err := conn.WriteJSON(frame); err != nil {
			h.Logger.Info("manageChatSession(): write failed", zap.String("username", username), zap.Error(err))
			break ReadLoop
		}
	}
	h.Logger.Info("manageChatSession(): session ended", zap.String("username", username))
}
