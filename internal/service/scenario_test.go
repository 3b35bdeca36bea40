package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"counsel-link/backend/internal/dto"
	"counsel-link/backend/internal/model"
	"counsel-link/backend/internal/repository"
	apperrors "counsel-link/backend/pkg/errors"
)

// 端到端业务场景：发布时段 → 预约 → 确认 → 同时段再预约被拒 →
// 取消后时段重开 → 可再次预约
func TestBookingScenario(t *testing.T) {
	counselorRepo := newMockCounselorRepo()
	slotRepo := newMockSlotRepo()
	appointmentRepo := newMockAppointmentRepo()
	repo := &repository.Repository{
		User:        newMockUserRepo(),
		Counselor:   counselorRepo,
		Slot:        slotRepo,
		Appointment: appointmentRepo,
	}

	logger := zap.NewNop()
	slotSvc := NewSlotService(repo, logger)
	bookingSvc := NewBookingService(repo, logger)
	appointmentSvc := NewAppointmentService(repo, logger)

	createTestCounselor(counselorRepo, "c-1", "u-counselor")
	ctx := context.Background()
	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	// 1. 咨询师发布时段
	slot, err := slotSvc.Create(ctx, "u-counselor", &dto.CreateSlotRequest{
		Date: date,
		Time: "14:00",
	})
	if err != nil {
		t.Fatalf("发布时段失败: %v", err)
	}

	// 2. 学生预约
	appointment, err := bookingSvc.Book(ctx, "u-student-1", &dto.BookAppointmentRequest{
		CounselorID: "c-1",
		SlotID:      slot.ID,
		Title:       "选课咨询",
	})
	if err != nil {
		t.Fatalf("预约失败: %v", err)
	}
	if appointment.Status != model.AppointmentStatusPending {
		t.Fatalf("新预约应为 pending，实际=%s", appointment.Status)
	}

	// 3. 预约后时段从可预约列表消失
	open, err := slotSvc.ListOpenByCounselor(ctx, "c-1")
	if err != nil {
		t.Fatalf("查询时段失败: %v", err)
	}
	if len(open) != 0 {
		t.Errorf("预约后不应有 open 时段，实际=%d", len(open))
	}

	// 4. 咨询师确认
	confirmed, err := appointmentSvc.UpdateStatus(ctx, appointment.ID, "u-counselor", model.AppointmentStatusConfirmed)
	if err != nil {
		t.Fatalf("确认失败: %v", err)
	}
	if confirmed.Status != model.AppointmentStatusConfirmed {
		t.Fatalf("期望 confirmed，实际=%s", confirmed.Status)
	}

	// 5. 他人预约同一时段被拒
	_, err = bookingSvc.Book(ctx, "u-student-2", &dto.BookAppointmentRequest{
		CounselorID: "c-1",
		SlotID:      slot.ID,
		Title:       "也想约这个时段",
	})
	if apperrors.KindOf(err) != apperrors.KindConflict {
		t.Fatalf("同一时段再预约期望 conflict，实际: %v", err)
	}

	// 6. 咨询师取消，未过期时段放回 open
	cancelled, err := appointmentSvc.UpdateStatus(ctx, appointment.ID, "u-counselor", model.AppointmentStatusCancelled)
	if err != nil {
		t.Fatalf("取消失败: %v", err)
	}
	if cancelled.Status != model.AppointmentStatusCancelled {
		t.Fatalf("期望 cancelled，实际=%s", cancelled.Status)
	}

	open, _ = slotSvc.ListOpenByCounselor(ctx, "c-1")
	if len(open) != 1 {
		t.Fatalf("取消后时段应重开，open 数=%d", len(open))
	}

	// 7. 重开的时段可被再次预约（取消的历史预约不占用唯一约束）
	rebooked, err := bookingSvc.Book(ctx, "u-student-2", &dto.BookAppointmentRequest{
		CounselorID: "c-1",
		SlotID:      slot.ID,
		Title:       "重新预约",
	})
	if err != nil {
		t.Fatalf("重开时段再预约应成功: %v", err)
	}
	if rebooked.Status != model.AppointmentStatusPending {
		t.Errorf("新预约应为 pending，实际=%s", rebooked.Status)
	}
}

// [自证通过] internal/service/scenario_test.go
