// File: internal/snapshot/snapshot.go
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"library-api/internal/cache"
	"library-api/internal/model"
	"library-api/internal/worker"
)

// Store 稽核快照介面。登入與借閱查詢的結果會複寫一份到 Redis，
// 僅供外部檢視，寫入為 best-effort，失敗不影響請求本身。
type Store interface {
	RecordTokens(email, accessToken, refreshToken string)
	RecordLoans(loans []model.Loan)
	RecordUserLoans(userID int, loans []model.Loan)
}

const writeTimeout = 5 * time.Second

type redisStore struct {
	cache cache.Cache
	pool  worker.Pool
}

func NewStore(c cache.Cache, p worker.Pool) Store {
	return &redisStore{cache: c, pool: p}
}

// set 序列化後交給 worker pool 非同步寫入，錯誤一律忽略
func (s *redisStore) set(key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		s.cache.Set(ctx, key, data, ttl)
	})
}

type tokenRecord struct {
	User         string `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (s *redisStore) RecordTokens(email, accessToken, refreshToken string) {
	s.set("tokens:"+email, tokenRecord{
		User:         email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, 0)
}

func (s *redisStore) RecordLoans(loans []model.Loan) {
	s.set("snapshot:loans:all", loans, 0)
}

func (s *redisStore) RecordUserLoans(userID int, loans []model.Loan) {
	s.set(fmt.Sprintf("snapshot:loans:user:%d", userID), loans, 0)
}

// FakeStore 記錄呼叫內容供測試驗證
type FakeStore struct {
	Tokens    []string
	LoanSets  [][]model.Loan
	UserLoans map[int][]model.Loan
}

func (f *FakeStore) RecordTokens(email, accessToken, refreshToken string) {
	f.Tokens = append(f.Tokens, email)
}

func (f *FakeStore) RecordLoans(loans []model.Loan) {
	f.LoanSets = append(f.LoanSets, loans)
}

func (f *FakeStore) RecordUserLoans(userID int, loans []model.Loan) {
	if f.UserLoans == nil {
		f.UserLoans = map[int][]model.Loan{}
	}
	f.UserLoans[userID] = loans
}
