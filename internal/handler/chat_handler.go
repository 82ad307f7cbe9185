package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"AgriMind_FarmAssistant/internal/llm"
	"AgriMind_FarmAssistant/internal/middleware"
	"AgriMind_FarmAssistant/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxAudioBytes = 10 << 20

type ChatRequest struct {
	Question string `json:"question" example:"How often should I water tomato seedlings?"`
	Speak    bool   `json:"speak" example:"false"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
	Audio []byte `json:"audio,omitempty" swaggertype:"string" format:"base64"`
}

type VoiceResponse struct {
	Transcript string `json:"transcript"`
	Reply      string `json:"reply"`
	Audio      []byte `json:"audio,omitempty" swaggertype:"string" format:"base64"`
}

type ChatLogResponse struct {
	Chat []models.ChatExchange `json:"chat"`
}

// Chat godoc
// @Summary      AI 채팅
// @Description  질문을 AI 에게 보내고 답변을 반환합니다. speak=true 이면 MP3 음성(base64)도 포함합니다.
// @Tags         Menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.ChatRequest true "질문"
// @Success      200 {object} handler.ChatResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      502 {object} handler.ErrorResponse "AI 서비스 오류 (kind=advice_service)"
// @Router       /api/chat [post]
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Kind: "invalid_input"})
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "question is required", Kind: "invalid_input"})
		return
	}

	reply, err := h.Composer.Compose(c.Request.Context(), question, "")
	if err != nil {
		h.respondError(c, err)
		return
	}
	middleware.CurrentSession(c).AppendChat(question, reply)

	resp := ChatResponse{Reply: reply}
	if req.Speak {
		resp.Audio = h.speak(c, reply)
	}
	c.JSON(http.StatusOK, resp)
}

// ChatLog godoc
// @Summary      세션 채팅 기록
// @Tags         Menu
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.ChatLogResponse
// @Router       /api/chat [get]
func (h *Handler) ChatLog(c *gin.Context) {
	c.JSON(http.StatusOK, ChatLogResponse{Chat: middleware.CurrentSession(c).ChatLog()})
}

// Voice godoc
// @Summary      음성 질문 (Voice Bot)
// @Description  16kHz mono LINEAR16 녹음을 받아 STT -> AI -> TTS 순서로 처리합니다.
// @Tags         Menu
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        audio formData file true "녹음 파일"
// @Success      200 {object} handler.VoiceResponse
// @Failure      422 {object} handler.ErrorResponse "음성을 인식하지 못함"
// @Failure      503 {object} handler.ErrorResponse "음성 기능 비활성화"
// @Router       /api/voice [post]
func (h *Handler) Voice(c *gin.Context) {
	if h.Transcriber == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Voice bot is disabled", Kind: "unavailable"})
		return
	}

	audio, err := readUpload(c, "audio", maxAudioBytes)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "invalid_input"})
		return
	}

	transcript, err := h.Transcriber.Transcribe(c.Request.Context(), audio)
	if err != nil {
		if !errors.Is(err, llm.ErrNoSpeech) {
			h.Logger.Warn("Voice(): transcription failed", zap.Error(err))
		}
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: llm.NoSpeechReply, Kind: "no_speech"})
		return
	}

	reply, err := h.Composer.Compose(c.Request.Context(), transcript, "")
	if err != nil {
		h.respondError(c, err)
		return
	}
	middleware.CurrentSession(c).AppendChat(transcript, reply)

	c.JSON(http.StatusOK, VoiceResponse{
		Transcript: transcript,
		Reply:      reply,
		Audio:      h.speak(c, reply),
	})
}

// TTS 실패는 답변 자체를 막지 않음
func (h *Handler) speak(c *gin.Context, text string) []byte {
	if h.Speaker == nil {
		return nil
	}
	audio, err := h.Speaker.Synthesize(c.Request.Context(), text)
	if err != nil {
		h.Logger.Warn("speak(): synthesis failed", zap.Error(err))
		return nil
	}
	return audio
}

func readUpload(c *gin.Context, field string, limit int64) ([]byte, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, errors.New(field + " file is required")
	}
	if fh.Size > limit {
		return nil, errors.New(field + " file is too large")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, limit))
}
