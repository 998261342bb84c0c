// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	domainerror "github.com/budget-bot/backend/internal/domain/error"
	"github.com/budget-bot/backend/internal/integration/entrypoint/dto"
)

// userIDKey is the context key under which the parsed user ID is stored.
const userIDKey = "userID"

// TurnLock serializes dialogue requests per user. Concurrent turns for the
// same user would race on the stored session, so each user holds at most
// one in-flight request at a time.
type TurnLock struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewTurnLock creates a new per-user turn lock.
func NewTurnLock() *TurnLock {
	return &TurnLock{
		locks: make(map[int64]*sync.Mutex),
	}
}

// Middleware returns a Gin handler that parses the :userID path parameter,
// stores it in the request context and holds the user's lock for the
// duration of the request.
func (tl *TurnLock) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid user ID format",
				Code:  string(domainerror.ErrCodeUserNotFound),
			})
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)

		lock := tl.lockFor(userID)
		lock.Lock()
		defer lock.Unlock()

		c.Next()
	}
}

// lockFor returns the mutex for the given user, creating it on first use.
func (tl *TurnLock) lockFor(userID int64) *sync.Mutex {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	lock, exists := tl.locks[userID]
	if !exists {
		lock = &sync.Mutex{}
		tl.locks[userID] = lock
	}
	return lock
}

// GetUserIDFromContext retrieves the parsed user ID stored by the turn lock.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(int64)
	return userID, ok
}
