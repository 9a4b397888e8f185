// File: internal/dto/auth.go
package dto

// CredentialsRequest 館員註冊與登入共用的憑證格式
// swagger:model dto.CredentialsRequest
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email" example:"librarian@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}

// RegisterResponse 註冊成功回應
// swagger:model dto.RegisterResponse
type RegisterResponse struct {
	Status string `json:"status" example:"success"`
	Email  string `json:"email" example:"librarian@example.com"`
}

// TokensResponse 令牌配對回應
// swagger:model dto.TokensResponse
type TokensResponse struct {
	AccessToken  string `json:"access_token" example:"..."`
	RefreshToken string `json:"refresh_token" example:"..."`
	TokenType    string `json:"token_type" example:"bearer"`
}
