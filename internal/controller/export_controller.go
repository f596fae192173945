package controller

import (
	"io"
	"mindset_backend/internal/service"
	"mindset_backend/internal/util"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const maxImportSize = 5 << 20

// ExportController 备份导出、导入与归档
type ExportController struct {
	Export *service.ExportService
}

func NewExportController(export *service.ExportService) *ExportController {
	return &ExportController{Export: export}
}

// @Summary 导出备份
// @Description 下载 {version, exportedAt, data} 格式的 JSON 文件
// @Tags 备份
// @Produce json
// @Success 200 {object} model.ExportFile
// @Security BearerAuth
// @Router /export [get]
func (ctrl *ExportController) Download(c *gin.Context) {
	raw, filename, err := ctrl.Export.ExportJSON(c.Request.Context())
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, util.MimeJSON, raw)
}

// readImport 支持 multipart 的 file 字段或直接提交 JSON
func readImport(c *gin.Context) ([]byte, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("file")
		if err != nil {
			return nil, err
		}
		if fh.Size > maxImportSize {
			return nil, util.ErrInvalidImportFile
		}
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if _, err := util.ValidateMimeType(f, util.AllowedImportTypes); err != nil {
			return nil, util.ErrInvalidImportFile
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		return io.ReadAll(io.LimitReader(f, maxImportSize))
	}
	return io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize))
}

// @Summary 导入备份
// @Description 校验通过后覆盖全部数据，校验失败不做任何修改
// @Tags 备份
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param file formData file false "备份文件"
// @Success 200 {object} util.Response{data=model.UserState}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /import [post]
func (ctrl *ExportController) Import(c *gin.Context) {
	raw, err := readImport(c)
	if err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	state, err := ctrl.Export.Import(c.Request.Context(), raw)
	if err != nil {
		respondError(c, err)
		return
	}
	respondState(c, state)
}

// @Summary 归档备份
// @Description 导出并上传到配置的存储（本地目录、MinIO 或 OSS）
// @Tags 备份
// @Produce json
// @Success 201 {object} util.Response{data=service.ArchiveResult}
// @Security BearerAuth
// @Router /export/archives [post]
func (ctrl *ExportController) Archive(c *gin.Context) {
	res, err := ctrl.Export.Archive(c.Request.Context())
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Created(c, res)
}

// @Summary 下载归档
// @Tags 备份
// @Produce json
// @Param name path string true "文件名"
// @Success 200 {object} model.ExportFile
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /export/archives/{name} [get]
func (ctrl *ExportController) GetArchive(c *gin.Context) {
	name := filepath.Base(c.Param("name"))
	raw, err := ctrl.Export.Storage.Get(c.Request.Context(), name)
	if err != nil {
		util.NotFound(c)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, util.MimeJSON, raw)
}

// @Summary 从归档恢复
// @Tags 备份
// @Produce json
// @Param name path string true "文件名"
// @Success 200 {object} util.Response{data=model.UserState}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /export/archives/{name}/restore [post]
func (ctrl *ExportController) RestoreArchive(c *gin.Context) {
	state, err := ctrl.Export.RestoreArchive(c.Request.Context(), filepath.Base(c.Param("name")))
	if err != nil {
		respondError(c, err)
		return
	}
	respondState(c, state)
}
