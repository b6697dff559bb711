package handler

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"worktime/internal/models"
	"worktime/internal/service"
)

func TestSessions_ConcurrentBind(t *testing.T) {
	s := NewSessions()

	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			s.Bind(chatID, &service.Principal{
				Account: &models.UserAccount{ID: uint(chatID)},
				Roles:   models.NewRoleSet(models.RoleEmployee),
			})
		}(i % 10)
	}
	wg.Wait()

	assert.Equal(t, 10, s.Len())

	p, ok := s.Get(3)
	assert.True(t, ok)
	assert.Equal(t, uint(3), p.Account.ID)

	assert.True(t, s.Drop(3))
	assert.False(t, s.Drop(3))
	_, ok = s.Get(3)
	assert.False(t, ok)
}
