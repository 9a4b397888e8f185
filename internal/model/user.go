// File: internal/model/user.go
package model

// User 圖書館讀者（借閱人），與 Librarian 帳號無關
type User struct {
	ID    int    `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}
