package dto

// ── 用户模块 DTO ──

// CreateStudentRequest 学生注册请求（管理员操作）
type CreateStudentRequest struct {
	Username      string `json:"username" binding:"required"`
	Email         string `json:"email"    binding:"omitempty,email"`
	Password      string `json:"password" binding:"required"`
	Name          string `json:"name"     binding:"required"`
	Batch         string `json:"batch"    binding:"required"`
	ParentName    string `json:"parent_name"`
	School        string `json:"school"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	AdmissionDate string `json:"admission_date"`
}

// UpdateStudentRequest 学生资料更新请求
// password 为空时不覆盖原密码
type UpdateStudentRequest struct {
	Email         string `json:"email" binding:"omitempty,email"`
	Password      string `json:"password"`
	Name          string `json:"name"`
	Batch         string `json:"batch"`
	ParentName    string `json:"parent_name"`
	School        string `json:"school"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	AdmissionDate string `json:"admission_date"`
}

// UserResponse 用户信息响应（脱敏）
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Batch    string `json:"batch,omitempty"`
	Email    string `json:"email,omitempty"`
}

// BatchResponse 班次汇总（名称 + 学生数）
type BatchResponse struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
