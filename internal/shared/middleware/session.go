package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	user "library-backend/internal/domains/user"
	"library-backend/internal/shared/auth"
	"library-backend/pkg/jwt"
)

// Session builds the per-request session identity from the Authorization
// header. A missing, malformed or unverifiable bearer token degrades to an
// anonymous request; it never aborts the request and never resolves to a
// different identity. Mutations that need an identity fail later at the
// authorization gate.
func Session(jwtManager *jwt.Manager, users user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			log.Debug().Str("request_id", c.GetString("request_id")).Msg("authorization header is not a bearer token")
			c.Next()
			return
		}

		claims, err := jwtManager.Validate(token)
		if err != nil {
			log.Debug().Err(err).Str("request_id", c.GetString("request_id")).Msg("invalid session token")
			c.Next()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			log.Debug().Err(err).Str("request_id", c.GetString("request_id")).Msg("invalid user id in token")
			c.Next()
			return
		}

		// The token is self-verifying, but the referenced user must still
		// exist: a valid signature for a deleted user is no session.
		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			log.Debug().Err(err).Str("request_id", c.GetString("request_id")).Msg("session user not found")
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(auth.WithUser(c.Request.Context(), u))
		c.Next()
	}
}
