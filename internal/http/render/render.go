package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brewhaus.com/app/internal/http/flash"
	"brewhaus.com/app/internal/http/middleware"
	"brewhaus.com/app/pkg/view"
)

// HTML renders a named template, injecting the flash (unless the handler set
// one explicitly) and the request id available to every layout.
func HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = middleware.GetFlash(c)
	}
	data["RequestID"] = middleware.GetRequestID(c)
	c.HTML(status, name, data)
}

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
