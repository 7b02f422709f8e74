package dto

// ── 成绩模块 DTO ──

// CreateResultRequest 录入成绩请求
type CreateResultRequest struct {
	StudentID     string  `json:"student_id"     binding:"required"`
	Subject       string  `json:"subject"        binding:"required"`
	MarksObtained float64 `json:"marks_obtained" binding:"min=0"`
	TotalMarks    float64 `json:"total_marks"    binding:"required,gt=0"`
	ExamType      string  `json:"exam_type"`
}

// UpdateResultRequest 修改成绩请求
type UpdateResultRequest struct {
	Subject       string  `json:"subject"`
	MarksObtained float64 `json:"marks_obtained" binding:"min=0"`
	TotalMarks    float64 `json:"total_marks"    binding:"omitempty,gt=0"`
	ExamType      string  `json:"exam_type"`
}
