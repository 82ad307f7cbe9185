package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"AgriMind_FarmAssistant/internal/advice"
	"AgriMind_FarmAssistant/internal/auth"
	"AgriMind_FarmAssistant/internal/crop"
	"AgriMind_FarmAssistant/internal/kisan"
	"AgriMind_FarmAssistant/internal/llm"
	"AgriMind_FarmAssistant/internal/models"
	"AgriMind_FarmAssistant/internal/session"
	"AgriMind_FarmAssistant/internal/storage"
	"AgriMind_FarmAssistant/internal/weather"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testCard = "123456789123"

type stubWeather struct {
	snap models.WeatherSnapshot
	err  error
}

func (s *stubWeather) Fetch(context.Context, string) (models.WeatherSnapshot, error) {
	return s.snap, s.err
}

type stubChat struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubChat) Complete(_ context.Context, _, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

type stubTranscriber struct {
	text string
	err  error
}

func (s *stubTranscriber) Transcribe(context.Context, []byte) (string, error) {
	return s.text, s.err
}

type stubSpeaker struct{}

func (stubSpeaker) Synthesize(_ context.Context, text string) ([]byte, error) {
	return []byte("mp3:" + text), nil
}

type HandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	handler  *Handler
	weather  *stubWeather
	chat     *stubChat
	sessions *session.Store
	db       *storage.DB
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	t := suite.T()

	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	db, err := storage.NewDB(":memory:")
	require.NoError(t, err)
	model, err := crop.Train(crop.DefaultDataset())
	require.NoError(t, err)

	suite.db = db
	suite.weather = &stubWeather{snap: models.WeatherSnapshot{Temperature: 28, Humidity: 60, WindSpeed: 10.8, Sky: "Clear"}}
	suite.chat = &stubChat{reply: "Yes, plant today."}
	suite.sessions = session.NewStore(0)

	suite.handler = New(Deps{
		Kisan:              kisan.NewVerifier(testCard),
		Tokens:             tokens,
		Sessions:           suite.sessions,
		Accounts:           storage.NewCredentialStore(filepath.Join(t.TempDir(), "users.json"), auth.SHA256Hasher{}, nil),
		Weather:            suite.weather,
		Composer:           advice.NewComposer(suite.weather, suite.chat, nil),
		History:            db,
		Crops:              model,
		RateLimitPerMinute: 1000,
	})
	suite.router = gin.New()
	suite.handler.RegisterRoutes(suite.router)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.db.Close()
}

func (suite *HandlerTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(suite.T(), err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) upload(path, token, field, filename string, content []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(suite.T(), err)
	fw.Write(content)
	require.NoError(suite.T(), mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (suite *HandlerTestSuite) verify() string {
	w := suite.do(http.MethodPost, "/kisan/verify", "", VerifyRequest{CardNumber: testCard})
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())
	return decode[VerifyResponse](suite.T(), w).Token
}

// verify + signup + login
func (suite *HandlerTestSuite) loggedIn(username string) string {
	token := suite.verify()
	w := suite.do(http.MethodPost, "/signup", token, SignupRequest{Username: username, Password: "pw", ConfirmPassword: "pw", Role: "Seller"})
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())
	w = suite.do(http.MethodPost, "/login", token, LoginRequest{Username: username, Password: "pw"})
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())
	return token
}

func (suite *HandlerTestSuite) TestKisanGate() {
	t := suite.T()

	w := suite.do(http.MethodPost, "/signup", "", SignupRequest{Username: "a", Password: "b", ConfirmPassword: "b", Role: "buyer"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodPost, "/kisan/verify", "", VerifyRequest{CardNumber: "000000000000"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "invalid_card", decode[ErrorResponse](t, w).Kind)
	assert.Equal(t, 0, suite.sessions.Len(), "rejected card must not open a session")

	// 재시도 가능
	token := suite.verify()
	assert.NotEmpty(t, token)
	assert.Equal(t, 1, suite.sessions.Len())
}

func (suite *HandlerTestSuite) TestMenuRequiresLogin() {
	token := suite.verify()
	w := suite.do(http.MethodGet, "/api/home", token, nil)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(suite.T(), "login_required", decode[ErrorResponse](suite.T(), w).Kind)
}

func (suite *HandlerTestSuite) TestSignupValidation() {
	t := suite.T()
	token := suite.verify()

	w := suite.do(http.MethodPost, "/signup", token, SignupRequest{Username: "ramesh", Password: "a", ConfirmPassword: "b", Role: "buyer"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/signup", token, SignupRequest{Username: "ramesh", Password: "a", ConfirmPassword: "a", Role: "farmer"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/signup", token, SignupRequest{Username: "  ", Password: "a", ConfirmPassword: "a", Role: "buyer"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/signup", token, SignupRequest{Username: "ramesh", Password: "a", ConfirmPassword: "a", Role: "buyer"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = suite.do(http.MethodPost, "/signup", token, SignupRequest{Username: "ramesh", Password: "z", ConfirmPassword: "z", Role: "seller"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "duplicate_username", decode[ErrorResponse](t, w).Kind)

	w = suite.do(http.MethodPost, "/login", token, LoginRequest{Username: "ramesh", Password: "z"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decode[ErrorResponse](t, w).Kind)
}

func (suite *HandlerTestSuite) TestLoginWhileLoggedInIsRejected() {
	t := suite.T()
	token := suite.loggedIn("ramesh")
	suite.do(http.MethodPost, "/api/soil", token, models.SoilReading{PH: 6.5, Moisture: 40})

	w := suite.do(http.MethodPost, "/signup", token, SignupRequest{Username: "sita", Password: "pw", ConfirmPassword: "pw", Role: "buyer"})
	require.Equal(t, http.StatusOK, w.Code)
	w = suite.do(http.MethodPost, "/login", token, LoginRequest{Username: "sita", Password: "pw"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "already_logged_in", decode[ErrorResponse](t, w).Kind)

	w = suite.do(http.MethodGet, "/api/home", token, nil)
	assert.Equal(t, "ramesh", decode[HomeResponse](t, w).Session.Username)

	// 새 세션의 sita 는 빈 기록으로 시작
	fresh := suite.verify()
	w = suite.do(http.MethodPost, "/login", fresh, LoginRequest{Username: "sita", Password: "pw"})
	require.Equal(t, http.StatusOK, w.Code)
	w = suite.do(http.MethodGet, "/api/soil", fresh, nil)
	assert.Empty(t, decode[SoilLogResponse](t, w).Soil)
}

func (suite *HandlerTestSuite) TestHomeAndMenu() {
	t := suite.T()
	token := suite.loggedIn("ramesh")

	w := suite.do(http.MethodGet, "/api/home", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	home := decode[HomeResponse](t, w)
	assert.Equal(t, "Welcome, Ramesh (Seller)", home.Message)
	assert.Equal(t, models.RoleSeller, home.Session.Role)
	assert.Len(t, home.Menu, 8)

	w = suite.do(http.MethodGet, "/api/menu?choice=Rentals", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/rentals")

	w = suite.do(http.MethodGet, "/api/menu?choice=Market", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestSoilAndRentalsAppendDuplicates() {
	t := suite.T()
	token := suite.loggedIn("ramesh")
	reading := models.SoilReading{PH: 6.5, Moisture: 40, N: 90, P: 40, K: 40}

	suite.do(http.MethodPost, "/api/soil", token, reading)
	w := suite.do(http.MethodPost, "/api/soil", token, reading)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []models.SoilReading{reading, reading}, decode[SoilLogResponse](t, w).Soil)

	w = suite.do(http.MethodPost, "/api/soil", token, models.SoilReading{PH: 15})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 메뉴 재방문은 부작용 없음
	suite.do(http.MethodGet, "/api/soil", token, nil)
	w = suite.do(http.MethodGet, "/api/soil", token, nil)
	assert.Len(t, decode[SoilLogResponse](t, w).Soil, 2)

	rental := models.RentalListing{Equipment: "Tractor", Owner: "Ramesh", Location: "Pune", Mobile: "9876543210"}
	w = suite.do(http.MethodPost, "/api/rentals", token, rental)
	require.Equal(t, http.StatusOK, w.Code)
	w = suite.do(http.MethodPost, "/api/rentals", token, models.RentalListing{Equipment: "Plough"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = suite.do(http.MethodGet, "/api/rentals", token, nil)
	assert.Equal(t, []models.RentalListing{rental}, decode[RentalLogResponse](t, w).Rentals)
}

func (suite *HandlerTestSuite) TestLogoutClearsSessionAndGate() {
	t := suite.T()
	token := suite.loggedIn("ramesh")
	suite.do(http.MethodPost, "/api/soil", token, models.SoilReading{PH: 7})
	suite.do(http.MethodPost, "/api/chat", token, ChatRequest{Question: "hi"})

	w := suite.do(http.MethodPost, "/api/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/soil", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "session_required", decode[ErrorResponse](t, w).Kind)
	w = suite.do(http.MethodPost, "/login", token, LoginRequest{Username: "ramesh", Password: "pw"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	fresh := suite.verify()
	w = suite.do(http.MethodPost, "/login", fresh, LoginRequest{Username: "ramesh", Password: "pw"})
	require.Equal(t, http.StatusOK, w.Code)
	w = suite.do(http.MethodGet, "/api/soil", fresh, nil)
	assert.Empty(t, decode[SoilLogResponse](t, w).Soil)
	w = suite.do(http.MethodGet, "/api/chat", fresh, nil)
	assert.Empty(t, decode[ChatLogResponse](t, w).Chat)
}

func (suite *HandlerTestSuite) TestCropAdviceAndHistory() {
	t := suite.T()
	token := suite.loggedIn("ramesh")

	w := suite.do(http.MethodPost, "/api/advice", token, advice.CropRequest{City: "Pune", Crop: "Tomato", Soil: "Loamy"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[CropAdviceResponse](t, w)
	assert.Equal(t, "Yes, plant today.", got.Advice)
	assert.Equal(t, 28.0, got.Weather.Temperature)
	require.Len(t, suite.chat.prompts, 1)
	assert.Contains(t, suite.chat.prompts[0], "Loamy")

	w = suite.do(http.MethodGet, "/api/history", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	history := decode[HistoryResponse](t, w).History
	require.Len(t, history, 1)
	assert.Equal(t, "Tomato", history[0].Crop)
	assert.Equal(t, "ramesh", history[0].Username)
}

func (suite *HandlerTestSuite) TestCropAdviceServiceError() {
	t := suite.T()
	token := suite.loggedIn("ramesh")
	suite.chat.err = &llm.ServiceError{StatusCode: 500, Err: errors.New("upstream down")}

	w := suite.do(http.MethodPost, "/api/advice", token, advice.CropRequest{City: "Pune", Crop: "Tomato", Soil: "Loamy"})
	require.Equal(t, http.StatusBadGateway, w.Code)
	got := decode[CropAdviceResponse](t, w)
	assert.Equal(t, "advice_service", got.Kind)
	assert.Equal(t, "Clear", got.Weather.Sky)
	assert.Empty(t, got.Advice)

	w = suite.do(http.MethodGet, "/api/history", token, nil)
	assert.Empty(t, decode[HistoryResponse](t, w).History)
}

func (suite *HandlerTestSuite) TestWeatherErrors() {
	t := suite.T()
	token := suite.loggedIn("ramesh")

	suite.weather.err = &weather.ProviderError{Code: 404, Message: "city not found"}
	w := suite.do(http.MethodGet, "/api/weather?city=Atlantis", token, nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, "weather_provider", resp.Kind)
	assert.Equal(t, "city not found", resp.Error)

	suite.weather.err = &weather.TransportError{Err: errors.New("dial tcp: timeout")}
	w = suite.do(http.MethodPost, "/api/advice", token, advice.CropRequest{City: "Pune", Crop: "Tomato", Soil: "Loamy"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "weather_transport", decode[ErrorResponse](t, w).Kind)
	assert.Empty(t, suite.chat.prompts)
}

func (suite *HandlerTestSuite) TestChatWithSpeech() {
	t := suite.T()
	suite.handler.Speaker = stubSpeaker{}
	token := suite.loggedIn("ramesh")

	w := suite.do(http.MethodPost, "/api/chat", token, ChatRequest{Question: "When to sow wheat?", Speak: true})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[ChatResponse](t, w)
	assert.Equal(t, "Yes, plant today.", resp.Reply)
	assert.Equal(t, []byte("mp3:Yes, plant today."), resp.Audio)

	w = suite.do(http.MethodGet, "/api/chat", token, nil)
	assert.Equal(t, []models.ChatExchange{{Prompt: "When to sow wheat?", Reply: "Yes, plant today."}}, decode[ChatLogResponse](t, w).Chat)

	suite.chat.err = &llm.ServiceError{Err: errors.New("boom")}
	w = suite.do(http.MethodPost, "/api/chat", token, ChatRequest{Question: "again"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.True(t, strings.HasPrefix(decode[ErrorResponse](t, w).Error, "AI Error: "))
	w = suite.do(http.MethodGet, "/api/chat", token, nil)
	assert.Len(t, decode[ChatLogResponse](t, w).Chat, 1, "failed answers are not logged")
}

func (suite *HandlerTestSuite) TestVoice() {
	t := suite.T()
	token := suite.loggedIn("ramesh")

	w := suite.upload("/api/voice", token, "audio", "q.wav", []byte("pcm"))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	suite.handler.Transcriber = &stubTranscriber{err: llm.ErrNoSpeech}
	w = suite.upload("/api/voice", token, "audio", "q.wav", []byte("pcm"))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, llm.NoSpeechReply, decode[ErrorResponse](t, w).Error)

	suite.handler.Transcriber = &stubTranscriber{text: "will it rain"}
	suite.handler.Speaker = stubSpeaker{}
	w = suite.upload("/api/voice", token, "audio", "q.wav", []byte("pcm"))
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[VoiceResponse](t, w)
	assert.Equal(t, "will it rain", resp.Transcript)
	assert.Equal(t, "Yes, plant today.", resp.Reply)
	assert.NotEmpty(t, resp.Audio)
}

func (suite *HandlerTestSuite) TestDiseaseCheck() {
	t := suite.T()
	token := suite.loggedIn("ramesh")

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	w := suite.upload("/api/disease", token, "image", "leaf.png", buf.Bytes())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Early Blight")

	w = suite.upload("/api/disease", token, "image", "leaf.txt", []byte("hello"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRecommendCrop() {
	token := suite.loggedIn("ramesh")
	w := suite.do(http.MethodPost, "/api/crop/recommend", token, crop.Features{N: 80, P: 60, K: 80, Temperature: 28, Humidity: 60, PH: 6.8, Rainfall: 210})
	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "onion", decode[crop.Prediction](suite.T(), w).Crop)
}

func (suite *HandlerTestSuite) TestChatWebSocket() {
	t := suite.T()
	token := suite.loggedIn("ramesh")

	srv := httptest.NewServer(suite.router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("Best fertiliser for paddy?")))
	var frame ChatFrame
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "Best fertiliser for paddy?", frame.Question)
	assert.Equal(t, "Yes, plant today.", frame.Reply)

	w := suite.do(http.MethodGet, "/api/chat", token, nil)
	assert.Len(t, decode[ChatLogResponse](t, w).Chat, 1)
}

func (suite *HandlerTestSuite) TestChatWebSocketStopsAfterLogout() {
	t := suite.T()
	token := suite.loggedIn("ramesh")

	srv := httptest.NewServer(suite.router)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/chat?token="+token, nil)
	require.NoError(t, err)
	defer conn.Close()

	w := suite.do(http.MethodPost, "/api/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("still there?")))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var frame ChatFrame
	err = conn.ReadJSON(&frame)
	require.Error(t, err, "server should close the connection without answering")
	assert.Empty(t, suite.chat.prompts)
}

func (suite *HandlerTestSuite) TestWebSocketRequiresToken() {
	srv := httptest.NewServer(suite.router)
	defer srv.Close()

	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/chat", nil)
	require.Error(suite.T(), err)
	assert.Equal(suite.T(), http.StatusUnauthorized, resp.StatusCode)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
