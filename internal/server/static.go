package server

import (
	"embed"
	"fmt"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

//go:embed web
var webFS embed.FS

// setupStatic serves the embedded front end. Requests for paths with no
// matching file fall through to the API routes.
func setupStatic(router *gin.Engine) error {
	webRoot, err := static.EmbedFolder(webFS, "web")
	if err != nil {
		return fmt.Errorf("failed to open embedded web assets: %w", err)
	}

	router.Use(static.Serve("/", webRoot))

	return nil
}
