package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/requestdata"
)

func Healthcheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Me reports the identity behind the presented access token.
func Me(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	role := "employee"
	if rd.IsAdmin {
		role = "admin"
	}
	c.JSON(http.StatusOK, gin.H{"employee_id": rd.EmployeeID, "role": role})
}
