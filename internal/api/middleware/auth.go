// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"care-shift-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	authorizationHeader = "Authorization"
	actorIDCtx          = "actorID"
	actorRoleCtx        = "actorRole"
)

// AuthClaims are the token claims the platform issues: the subject is the
// facility or worker ID, the role says which side it is.
type AuthClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuthMiddleware creates a Gin middleware for JWT authentication. The
// authenticated caller's ID and role are stored in the request context.
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			log.Println("Auth middleware: Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			log.Println("Auth middleware: Invalid Authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		tokenString := headerParts[1]

		// Parse and validate the token
		token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
			// Validate the alg is what you expect:
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		claims, ok := token.Claims.(*AuthClaims)
		if !ok || !token.Valid {
			log.Println("Auth middleware: Invalid token claims or token is not valid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		actorID, err := uuid.Parse(claims.Subject)
		if err != nil {
			log.Printf("Auth middleware: Error parsing actor ID from token subject '%s': %v", claims.Subject, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid actor identifier in token"})
			return
		}

		role := models.Actor(claims.Role)
		if role != models.ActorFacility && role != models.ActorWorker {
			log.Printf("Auth middleware: Unknown role %q in token for %s", claims.Role, actorID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid role in token"})
			return
		}

		c.Set(actorIDCtx, actorID)
		c.Set(actorRoleCtx, role)
		c.Next()
	}
}

// RequireRole rejects callers whose token carries a different role. Mount it
// after JWTAuthMiddleware.
func RequireRole(role models.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		actual, err := GetActorRoleFromContext(c)
		if err != nil || actual != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": fmt.Sprintf("Requires %s role", role)})
			return
		}
		c.Next()
	}
}

// GetActorIDFromContext returns the authenticated caller's ID.
func GetActorIDFromContext(c *gin.Context) (uuid.UUID, error) {
	actorIDAny, exists := c.Get(actorIDCtx)
	if !exists {
		return uuid.Nil, errors.New("actor ID not found in context")
	}

	actorID, ok := actorIDAny.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("actor ID in context is of invalid type")
	}

	return actorID, nil
}

// GetActorRoleFromContext returns the authenticated caller's role.
func GetActorRoleFromContext(c *gin.Context) (models.Actor, error) {
	roleAny, exists := c.Get(actorRoleCtx)
	if !exists {
		return "", errors.New("actor role not found in context")
	}

	role, ok := roleAny.(models.Actor)
	if !ok {
		return "", errors.New("actor role in context is of invalid type")
	}

	return role, nil
}
