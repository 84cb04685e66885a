package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemWarningsService_AddAndGet(t *testing.T) {
	svc := NewSystemWarningsService()

	id := svc.AddWarning(WarningCategoryCalendarAuth, "토큰 갱신 실패", "token endpoint returned HTTP 400", "user-1")
	assert.NotEmpty(t, id)

	warnings := svc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningCategoryCalendarAuth, warnings[0].Category)
	assert.Equal(t, "토큰 갱신 실패", warnings[0].Message)
	assert.Equal(t, "token endpoint returned HTTP 400", warnings[0].Details)
	assert.Equal(t, "user-1", warnings[0].UserID)
	assert.False(t, warnings[0].CreatedAt.IsZero())
}

func TestSystemWarningsService_ClearByUserID(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.AddWarning(WarningCategoryCalendarAuth, "토큰 갱신 실패", "", "user-1")
	svc.AddWarning(WarningCategoryCalendarAuth, "토큰 갱신 실패", "", "user-2")

	assert.Len(t, svc.GetWarnings(), 2)

	// user-1 refreshed successfully
	cleared := svc.ClearByUserID(WarningCategoryCalendarAuth, "user-1")
	assert.True(t, cleared)
	assert.Len(t, svc.GetWarnings(), 1)
	assert.Equal(t, "user-2", svc.GetWarnings()[0].UserID)

	// Clear non-existent
	cleared = svc.ClearByUserID(WarningCategoryCalendarAuth, "user-9")
	assert.False(t, cleared)
}

func TestSystemWarningsService_ReplacesDuplicate(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.AddWarning(WarningCategoryCalendarAuth, "First error", "err1", "user-1")
	svc.AddWarning(WarningCategoryCalendarAuth, "Second error", "err2", "user-1")

	// Should have replaced the first warning, not added a second
	warnings := svc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Second error", warnings[0].Message)
	assert.Equal(t, "err2", warnings[0].Details)
}

func TestSystemWarningsService_Empty(t *testing.T) {
	svc := NewSystemWarningsService()
	assert.Empty(t, svc.GetWarnings())
}

func TestSystemWarningsService_ThreadSafety(t *testing.T) {
	svc := NewSystemWarningsService()
	var wg sync.WaitGroup

	// Concurrent adds
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.AddWarning("test", "msg", "", "")
		}()
	}

	// Concurrent reads
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.GetWarnings()
		}()
	}

	wg.Wait()
	// Just ensure no panics — exact count doesn't matter for concurrency test
	assert.NotNil(t, svc.GetWarnings())
}
