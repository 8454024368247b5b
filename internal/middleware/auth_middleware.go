package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TokenHeader is the request header carrying the bearer token. The API
// predates Authorization-header conventions and clients send the raw token
// in a header literally named "token".
const TokenHeader = "token"

const ctxSubjectIDKey = "auth.subjectID"

// TokenVerifier is kept small so tests can fake it easily.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthRequired verifies the token header against one role scope and stashes
// the subject id on the context. Missing, malformed and expired tokens all
// get the same generic 401.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(TokenHeader)
		if raw == "" {
			abortUnauthorized(c)
			return
		}

		subjectID, err := verifier.Verify(raw)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(ctxSubjectIDKey, subjectID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "unauthorized",
			"message": "Invalid token",
		},
	})
}

// SubjectIDFromContext returns the authenticated subject id as an ObjectID.
// Only meaningful on routes behind AuthRequired.
func SubjectIDFromContext(c *gin.Context) (primitive.ObjectID, bool) {
	v, ok := c.Get(ctxSubjectIDKey)
	if !ok {
		return primitive.NilObjectID, false
	}
	s, ok := v.(string)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
