// File: internal/dto/user.go
package dto

// CreateUserRequest 新增讀者的請求格式
// swagger:model dto.CreateUserRequest
type CreateUserRequest struct {
	// 讀者姓名
	// required: true
	Name string `json:"name" validate:"required" example:"Alice"`

	// 讀者 Email (會自動轉為小寫)
	// required: true
	Email string `json:"email" validate:"required,email" example:"alice@example.com"`
}

// UpdateUserRequest 更新讀者的請求格式，欄位皆為選填
// swagger:model dto.UpdateUserRequest
type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// UserResponse 讀者資訊回應
// swagger:model dto.UserResponse
type UserResponse struct {
	ID    int    `json:"id" example:"1"`
	Name  string `json:"name" example:"Alice"`
	Email string `json:"email" example:"alice@example.com"`
}

// UserStatusResponse 讀者寫入操作成功回應
// swagger:model dto.UserStatusResponse
type UserStatusResponse struct {
	Status string `json:"status" example:"success"`
	Email  string `json:"email" example:"alice@example.com"`
}
