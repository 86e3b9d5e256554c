package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	ucLogo "github.com/BruksfildServices01/barberpro/internal/usecase/logo"
)

const logoFormField = "logo"

type LogoHandler struct {
	upload *ucLogo.UploadLogo
	get    *ucLogo.GetLogo
}

func NewLogoHandler(upload *ucLogo.UploadLogo, get *ucLogo.GetLogo) *LogoHandler {
	return &LogoHandler{upload: upload, get: get}
}

// Upload recebe multipart com o campo "logo".
func (h *LogoHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile(logoFormField)
	if err != nil {
		invalidRequest(c, err)
		return
	}
	if fh.Size > ucLogo.MaxUploadBytes {
		writeError(c, httperr.ErrBusiness("image_too_large"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, ucLogo.MaxUploadBytes+1))
	if err != nil {
		writeError(c, err)
		return
	}

	key, err := h.upload.Execute(c.Request.Context(), middleware.CurrentSession(c), data)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key})
}

func (h *LogoHandler) Get(c *gin.Context) {
	obj, err := h.get.Execute(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Cache-Control", "private, max-age=300")
	c.Data(http.StatusOK, obj.ContentType, obj.Data)
}
