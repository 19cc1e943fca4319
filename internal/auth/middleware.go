package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moneyflow-app/backend/internal/models"
	"gorm.io/gorm"
)

const userIDKey = "mf-user-id"

// Middleware rejects requests without a valid bearer token for an existing user.
//
// The user ID is available to handlers with UserID.
func Middleware(db *gorm.DB, issuer Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearer(c.GetHeader("Authorization"))
		if err != nil {
			abort(c, err)
			return
		}

		id, err := issuer.Verify(token)
		if err != nil {
			abort(c, ErrInvalidToken)
			return
		}

		var user models.User
		err = db.WithContext(c).Select("id").First(&user, "id = ?", id).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			abort(c, ErrInvalidToken)
			return
		} else if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": models.ErrGeneral.Error()})
			return
		}

		c.Set(userIDKey, user.ID)
		c.Next()
	}
}

// UserID returns the ID of the authenticated user.
func UserID(c *gin.Context) uuid.UUID {
	id, _ := c.Get(userIDKey)
	userID, _ := id.(uuid.UUID)
	return userID
}

func bearer(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" || strings.Contains(token, " ") {
		return "", ErrMalformedToken
	}

	return token, nil
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
}
