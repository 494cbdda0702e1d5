package api_test

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/court-booking-backend/access"
	"github.com/hanksha/court-booking-backend/auth"
)

var (
	club   = time.FixedZone("CET", 3600)
	member = auth.User{ID: "u1", Email: "ada@club.fr", FirstName: "Ada", LastName: "Martin", Rights: access.Rights{}}
	admin  = auth.User{ID: "a1", Email: "admin@club.fr", Rights: access.Rights{access.RightAdmin}}
)

func setUserInContext(user auth.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", user)
		c.Set("credential", "provider-token")
		c.Next()
	}
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
