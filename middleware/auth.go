package middleware

import (
	"net/http"
	"strings"

	userRepo "travelogue/database/repository/user"
	"travelogue/models"
	"travelogue/utils"

	"github.com/gin-gonic/gin"
)

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": message})
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// JWTAuthUserMiddleware authenticates a request with a user JWT and loads the
// account into the request context.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c, "No token provided")
			return
		}

		claims, err := utils.ClaimsFromToken(tokenString)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		userRec, err := repo.GetByID(claims.UserID)
		if err != nil {
			utils.GetLogger().Error("auth: failed to load user: " + err.Error())
			abortUnauthorized(c, "Invalid token")
			return
		}
		if userRec == nil {
			abortUnauthorized(c, "User not found")
			return
		}

		c.Set("userID", userRec.ID)
		c.Set("currentUser", userRec)
	}
}

// JWTAuthAdminMiddleware authenticates a request and requires the admin role
// on the loaded account.
func JWTAuthAdminMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	auth := JWTAuthUserMiddleware(repo)
	return func(c *gin.Context) {
		auth(c)
		if c.IsAborted() {
			return
		}

		userRec := CurrentUser(c)
		if userRec == nil || userRec.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "Admin access required"})
			return
		}
	}
}

// CurrentUser returns the account loaded by JWTAuthUserMiddleware, or nil.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get("currentUser")
	if !exists {
		return nil
	}
	userRec, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return userRec
}
