package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lmnpbooks/backend/internal/httputil"
)

const userIDKey = "userID"

// RequireUserID reads the authenticated user from the X-User-ID header.
// Authentication itself happens upstream of this service, the backend only
// trusts the forwarded identity and scopes every query by it.
func RequireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader("X-User-ID"))
		if err != nil || id == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: httputil.ErrUserIDMissing.Error()})
			return
		}

		c.Set(userIDKey, id)
		c.Next()
	}
}

func userID(c *gin.Context) uuid.UUID {
	return c.MustGet(userIDKey).(uuid.UUID)
}
