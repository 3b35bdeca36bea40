package model

import "gorm.io/datatypes"

// ── 咨询方向 ──

const (
	SpecialtyAcademic     = "academic"
	SpecialtyMentalHealth = "mental-health"
)

// Counselor 咨询师档案表 — 对应 counselors
// 由管理员/种子数据创建，对学生只读
type Counselor struct {
	CounselorID string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"counselor_id"`
	UserID      string         `gorm:"type:uuid;not null;uniqueIndex"                 json:"user_id"`
	Specialty   string         `gorm:"type:varchar(20);not null"                      json:"specialty"`
	Title       string         `gorm:"type:varchar(100)"                              json:"title"`
	Bio         string         `gorm:"type:text"                                      json:"bio"`
	Rating      float64        `gorm:"type:numeric(3,2);not null;default:0"           json:"rating"`
	Reviews     int            `gorm:"not null;default:0"                             json:"reviews"`
	Experience  string         `gorm:"type:varchar(50)"                               json:"experience"`
	Expertise   datatypes.JSON `gorm:"type:jsonb"                                     json:"expertise"` // 擅长领域标签列表
	BaseModel

	// 关联
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (Counselor) TableName() string { return "counselors" }

// [自证通过] internal/model/counselor.go
