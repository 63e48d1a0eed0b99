package v1

import (
	"github.com/gin-gonic/gin"
	google_uuid "github.com/google/uuid"

	"github.com/lmnpbooks/backend/internal/httputil"
	"github.com/lmnpbooks/backend/internal/uuid"
)

// URIID binds the id path parameter of a request.
type URIID struct {
	ID uuid.UUID `uri:"id"`
}

func parseID(c *gin.Context) (google_uuid.UUID, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return google_uuid.Nil, httputil.ErrInvalidUUID
	}

	return uri.ID.UUID, nil
}
