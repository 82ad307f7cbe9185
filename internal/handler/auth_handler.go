package handler

import (
	"net/http"
	"strings"

	"AgriMind_FarmAssistant/internal/menu"
	"AgriMind_FarmAssistant/internal/middleware"
	"AgriMind_FarmAssistant/internal/models"
	"AgriMind_FarmAssistant/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// /kisan/verify 요청 바디
type VerifyRequest struct {
	CardNumber string `json:"card_number" example:"123456789123"`
}

type VerifyResponse struct {
	Message string `json:"message" example:"Kisan Card Verified Successfully"`
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// /signup 요청 바디
type SignupRequest struct {
	Username        string `json:"username" example:"ramesh"`
	Password        string `json:"password" example:"password123"`
	ConfirmPassword string `json:"confirm_password" example:"password123"`
	Role            string `json:"role" example:"seller"`
}

// /login 요청 바디
type LoginRequest struct {
	Username string `json:"username" example:"ramesh"`
	Password string `json:"password" example:"password123"`
}

type LoginResponse struct {
	Message string           `json:"message" example:"Logged in"`
	Session session.Snapshot `json:"session"`
}

type HomeResponse struct {
	Message string           `json:"message" example:"Welcome, Ramesh (Seller)"`
	Session session.Snapshot `json:"session"`
	Menu    []menu.Item      `json:"menu"`
}

// VerifyKisan godoc
// @Summary      Kisan 카드 인증
// @Description  12자리 Kisan 카드 번호를 확인하고 세션 토큰을 발급합니다. 실패 시 다시 시도해야 합니다.
// @Tags         Gate
// @Accept       json
// @Produce      json
// @Param        request body handler.VerifyRequest true "카드 번호"
// @Success      200 {object} handler.VerifyResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      403 {object} handler.ErrorResponse "잘못된 카드 번호"
// @Router       /kisan/verify [post]
func (h *Handler) VerifyKisan(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Kind: "invalid_input"})
		return
	}

	if err := h.Kisan.Verify(req.CardNumber); err != nil {
		h.Logger.Info("VerifyKisan(): rejected card", zap.String("ip", c.ClientIP()))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Invalid Kisan Card Number", Kind: "invalid_card"})
		return
	}

	s := h.Sessions.Create()
	s.MarkVerified()
	token, err := h.Tokens.GenerateToken(s.ID)
	if err != nil {
		h.Sessions.Delete(s.ID)
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, VerifyResponse{Message: "Kisan Card Verified Successfully", Token: token})
}

// Signup godoc
// @Summary      회원가입 (Signup)
// @Description  구매자(buyer) 또는 판매자(seller) 계정을 생성합니다. Kisan 카드 인증 토큰이 필요합니다.
// @Tags         User
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.SignupRequest true "회원가입 요청 정보"
// @Success      200 {object} handler.SuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      409 {object} handler.ErrorResponse "이미 존재하는 사용자명"
// @Router       /signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Kind: "invalid_input"})
		return
	}

	// " "으로 입력되는 케이스 방지
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Username and Password cannot be empty", Kind: "invalid_input"})
		return
	}
	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Passwords do not match.", Kind: "invalid_input"})
		return
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Role must be buyer or seller", Kind: "invalid_input"})
		return
	}

	if err := h.Accounts.Register(req.Username, req.Password, role); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Registered successfully."})
}

// Login godoc
// @Summary      로그인 (Login)
// @Description  현재 세션에 사용자를 로그인시킵니다. 세션 토큰은 그대로 사용합니다.
// @Tags         User
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.LoginRequest true "로그인 요청 정보"
// @Success      200 {object} handler.LoginResponse
// @Failure      401 {object} handler.ErrorResponse "인증 실패 (자격 증명 오류)"
// @Failure      409 {object} handler.ErrorResponse "이미 로그인된 세션"
// @Router       /login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Kind: "invalid_input"})
		return
	}

	// 다른 사용자가 이전 사용자의 세션 기록을 이어받지 않도록 로그아웃을 먼저 요구
	s := middleware.CurrentSession(c)
	if s.LoggedIn() {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Already logged in, log out first", Kind: "already_logged_in"})
		return
	}

	acc, err := h.Accounts.Authenticate(req.Username, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	s.Login(acc)
	h.Logger.Info("Login(): user logged in", zap.String("username", acc.Username), zap.String("session", s.ID))
	c.JSON(http.StatusOK, LoginResponse{Message: "Logged in", Session: s.Snapshot()})
}

// Logout godoc
// @Summary      로그아웃
// @Description  세션 전체(채팅/토양/대여 기록, Kisan 인증 포함)를 삭제합니다.
// @Tags         Menu
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.SuccessResponse
// @Router       /api/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	s := middleware.CurrentSession(c)
	h.Sessions.Delete(s.ID)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Logged out. Verify your Kisan card to start again."})
}

// Home godoc
// @Summary      홈
// @Tags         Menu
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.HomeResponse
// @Router       /api/home [get]
func (h *Handler) Home(c *gin.Context) {
	snap := middleware.CurrentSession(c).Snapshot()
	c.JSON(http.StatusOK, HomeResponse{
		Message: "Welcome, " + titleCase(snap.Username) + " (" + titleCase(string(snap.Role)) + ")",
		Session: snap,
		Menu:    menu.Items(),
	})
}

// Menu godoc
// @Summary      메뉴 목록
// @Tags         Menu
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} menu.Item
// @Router       /api/menu [get]
func (h *Handler) Menu(c *gin.Context) {
	if choice := c.Query("choice"); choice != "" {
		item, ok := menu.Lookup(choice)
		if !ok {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Unknown menu item", Kind: "invalid_input"})
			return
		}
		c.JSON(http.StatusOK, []menu.Item{item})
		return
	}
	c.JSON(http.StatusOK, menu.Items())
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}
