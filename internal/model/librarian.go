// File: internal/model/librarian.go
package model

import "time"

// Librarian 圖書館員帳號，僅用於登入發行令牌
type Librarian struct {
	ID           int       `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
