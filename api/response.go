package api

import "github.com/gin-gonic/gin"

// respond wraps the payload in the success envelope the front end
// expects. Extra keys are merged alongside "success".
func respond(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}
