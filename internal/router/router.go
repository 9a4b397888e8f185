// File: internal/router/router.go
package router

import (
	"library-api/internal/cache"
	"library-api/internal/database"
	"library-api/internal/handler"
	"library-api/internal/handler/auth"
	"library-api/internal/handler/books"
	"library-api/internal/handler/operations"
	"library-api/internal/handler/users"
	"library-api/internal/middleware"
	"library-api/internal/service"
	"library-api/internal/snapshot"

	"github.com/labstack/echo/v4"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, ts *service.TokenService, snaps snapshot.Store) {
	// 館員註冊與登入（無需認證）
	e.POST("/librarians_registration", auth.RegisterHandler(db))
	e.POST("/librarians_login", auth.LoginHandler(db, ts, snaps))

	// 以 refresh 令牌換發 access 令牌
	e.POST("/refresh_token", auth.RefreshHandler(ts, snaps), middleware.RequireRefresh(ts))

	requireAccess := middleware.RequireAuth(ts)

	// 健康檢查（需登入）
	e.GET("/ping", handler.PingHandler(db, cch), requireAccess)

	// 館藏管理
	book := e.Group("/book", requireAccess)
	book.POST("/create", books.CreateBookHandler(db))
	book.GET("/get", books.GetBooksHandler(db))
	book.PUT("/update/:book_id", books.UpdateBookHandler(db))
	book.DELETE("/delete/:book_id", books.DeleteBookHandler(db))

	// 讀者管理
	user := e.Group("/user", requireAccess)
	user.POST("/create", users.CreateUserHandler(db))
	user.GET("/get", users.GetUsersHandler(db))
	user.PUT("/update/:user_id", users.UpdateUserHandler(db))
	user.DELETE("/delete/:user_id", users.DeleteUserHandler(db))

	// 借還書操作
	op := e.Group("/operation", requireAccess)
	op.POST("/borrow", operations.BorrowHandler(db))
	op.POST("/return", operations.ReturnHandler(db))
	op.GET("/get_all_borrowed_books", operations.ListBorrowedHandler(db, snaps))
	op.GET("/get_unreturned_books/:user_id", operations.ListUnreturnedHandler(db, snaps))
}
