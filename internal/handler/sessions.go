package handler

import (
	"sync"

	"worktime/internal/service"
)

// Sessions привязка чата к вошедшему пользователю, не больше одного на чат
type Sessions struct {
	mu    sync.RWMutex
	chats map[int64]*service.Principal
}

func NewSessions() *Sessions {
	return &Sessions{chats: make(map[int64]*service.Principal)}
}

func (s *Sessions) Get(chatID int64) (*service.Principal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.chats[chatID]
	return p, ok
}

func (s *Sessions) Bind(chatID int64, p *service.Principal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats[chatID] = p
}

// Drop возвращает false, если чат не был привязан
func (s *Sessions) Drop(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.chats[chatID]
	delete(s.chats, chatID)
	return ok
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chats)
}
