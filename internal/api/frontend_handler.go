package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// FrontendHandler serves the bundled single-page frontend.
type FrontendHandler struct {
	indexPath string
}

// NewFrontendHandler creates a FrontendHandler reading the page at the
// given path.
func NewFrontendHandler(indexPath string) *FrontendHandler {
	return &FrontendHandler{indexPath: indexPath}
}

// fallbackPage is served when the frontend bundle has not been deployed
// next to the binary.
const fallbackPage = `<!DOCTYPE html>
<html>
<head>
    <title>Everytime Fitness - Setup Required</title>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: Arial, sans-serif; padding: 20px; text-align: center;">
    <h1>🏋️‍♂️ Everytime Fitness</h1>
    <p>Backend is running! Please set up the frontend files.</p>
    <p>API endpoint available at: <code>/api/generate-diet-plan</code></p>
</body>
</html>
`

// Index serves the frontend page, falling back to a minimal setup page
// when the file is absent. The file is read per request so a deploy does
// not require a restart.
func (h *FrontendHandler) Index(c *gin.Context) {
	page, err := os.ReadFile(h.indexPath)
	if err != nil {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fallbackPage))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
