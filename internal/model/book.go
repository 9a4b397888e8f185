// File: internal/model/book.go
package model

type Book struct {
	ID     int     `db:"id" json:"id"`
	Title  string  `db:"title" json:"title"`
	Author string  `db:"author" json:"author"`
	Date   *string `db:"date" json:"date,omitempty"`
	ISBN   *string `db:"isbn" json:"isbn,omitempty"`
	Amount int     `db:"amount" json:"amount"`
}
