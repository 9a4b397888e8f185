// File: internal/dto/book.go
package dto

// CreateBookRequest 新增書籍的請求格式
// swagger:model dto.CreateBookRequest
type CreateBookRequest struct {
	// 書名
	// required: true
	Title string `json:"title" validate:"required" example:"The Go Programming Language"`

	// 作者
	// required: true
	Author string `json:"author" validate:"required" example:"Alan Donovan"`

	// 出版日期 (YYYY-MM-DD)
	Date *string `json:"date" validate:"omitempty,max=10" example:"2015-10-26"`

	// ISBN
	ISBN *string `json:"isbn" validate:"omitempty,max=13" example:"9780134190440"`

	// 館藏數量 (0-100)
	Amount int `json:"amount" validate:"gte=0,lte=100" example:"3"`
}

// UpdateBookRequest 更新書籍的請求格式，所有欄位皆為選填
// swagger:model dto.UpdateBookRequest
type UpdateBookRequest struct {
	Title  *string `json:"title" validate:"omitempty,min=1"`
	Author *string `json:"author" validate:"omitempty,min=1"`
	Date   *string `json:"date" validate:"omitempty,max=10"`
	ISBN   *string `json:"isbn" validate:"omitempty,max=13"`
	Amount *int    `json:"amount" validate:"omitempty,gte=0,lte=100"`
}

// BookResponse 書籍資訊回應
// swagger:model dto.BookResponse
type BookResponse struct {
	ID     int     `json:"id" example:"1"`
	Title  string  `json:"title" example:"The Go Programming Language"`
	Author string  `json:"author" example:"Alan Donovan"`
	Date   *string `json:"date" example:"2015-10-26"`
	ISBN   *string `json:"isbn" example:"9780134190440"`
	Amount int     `json:"amount" example:"3"`
}

// CreateBookResponse 新增書籍成功回應
// swagger:model dto.CreateBookResponse
type CreateBookResponse struct {
	Status string `json:"status" example:"success"`
	Book   string `json:"book" example:"The Go Programming Language"`
}

// UpdateBookResponse 更新書籍成功回應
// swagger:model dto.UpdateBookResponse
type UpdateBookResponse struct {
	Status string `json:"status" example:"success"`
	BookID int    `json:"book_id" example:"1"`
}
