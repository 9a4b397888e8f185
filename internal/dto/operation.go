// File: internal/dto/operation.go
package dto

import "time"

// OperationRequest 借書與還書共用的請求格式
// swagger:model dto.OperationRequest
type OperationRequest struct {
	// 書籍 ID
	// required: true
	BookID int `json:"book_id" validate:"required,gte=1" example:"1"`

	// 讀者 ID
	// required: true
	UserID int `json:"user_id" validate:"required,gte=1" example:"1"`
}

// OperationResponse 借還書成功回應
// swagger:model dto.OperationResponse
type OperationResponse struct {
	Status     string     `json:"status" example:"success"`
	Book       string     `json:"book" example:"The Go Programming Language"`
	BookID     int        `json:"book_id" example:"1"`
	User       string     `json:"user" example:"Alice"`
	UserID     int        `json:"user_id" example:"1"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
}

// LoanResponse 借閱紀錄回應
// swagger:model dto.LoanResponse
type LoanResponse struct {
	ID         int        `json:"id" example:"1"`
	UserID     int        `json:"user_id" example:"1"`
	BookID     int        `json:"book_id" example:"1"`
	BorrowDate time.Time  `json:"borrow_date"`
	ReturnDate *time.Time `json:"return_date"`
}

// UnreturnedResponse 未歸還查詢回應
// swagger:model dto.UnreturnedResponse
type UnreturnedResponse struct {
	Operation       string         `json:"operation" example:"success"`
	UnreturnedBooks []LoanResponse `json:"unreturned_books"`
}
