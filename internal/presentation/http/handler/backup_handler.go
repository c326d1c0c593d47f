package handler

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prasetia/cetakindo-api/internal/application/service"
	"github.com/prasetia/cetakindo-api/internal/presentation/http/dto/response"
)

// maxBackupSize caps the accepted backup upload at 50 MB.
const maxBackupSize = 50 << 20

// BackupHandler handles backup export and restore HTTP requests
type BackupHandler struct {
	backupService *service.BackupService
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService *service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Export handles downloading the full dataset as a JSON file
func (h *BackupHandler) Export(c *gin.Context) {
	data, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := "backup-" + time.Now().Format("20060102-150405") + ".json"
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(200, "application/json", data)
}

// Import handles restoring the dataset from an uploaded JSON snapshot
func (h *BackupHandler) Import(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBackupSize))
	if err != nil {
		response.BadRequest(c, "Failed to read backup payload")
		return
	}
	if len(data) == 0 {
		response.BadRequest(c, "Backup payload is empty")
		return
	}

	if err := h.backupService.Import(c.Request.Context(), data); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Backup restored successfully", nil)
}
