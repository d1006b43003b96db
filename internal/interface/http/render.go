package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-shop-server/internal/session"
)

// render pops the flash slots into the template data and renders the
// named view. Popping here is what gives flash its read-once semantics.
func render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	sess := session.FromContext(c)
	flash := sess.PopFlash()
	data["Errors"] = flash.Errors
	data["Success"] = flash.Success
	data["LoggedIn"] = sess.UserID() != ""
	c.HTML(http.StatusOK, name, data)
}

// redirectBack sends the browser to the referring page, mirroring
// res.redirect('back'). fallback is used for direct requests.
func redirectBack(c *gin.Context, fallback string) {
	ref := c.Request.Referer()
	if ref == "" {
		ref = fallback
	}
	c.Redirect(http.StatusFound, ref)
}
