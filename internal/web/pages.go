// Package web serves the static pages and the probe endpoints.
package web

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

const htmlContentType = "text/html; charset=utf-8"

var (
	//go:embed pages/index.html
	indexPage []byte

	//go:embed pages/callback.html
	callbackPage []byte
)

// Home renders the landing page.
func Home(c *gin.Context) {
	c.Data(http.StatusOK, htmlContentType, indexPage)
}

// CallbackPage renders the post-login confirmation page.
func CallbackPage(c *gin.Context) {
	c.Data(http.StatusOK, htmlContentType, callbackPage)
}
