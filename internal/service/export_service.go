package service

import (
	"context"
	"encoding/json"
	"fmt"
	"mindset_backend/internal/model"
	"mindset_backend/internal/repository"
	"mindset_backend/internal/util"
	"mindset_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
)

// ExportService 备份导出与整体导入
type ExportService struct {
	Repo    *repository.StateRepository
	Storage *StorageService
	Loc     *time.Location
	Now     func() time.Time
}

func NewExportService(repo *repository.StateRepository, storage *StorageService, loc *time.Location) *ExportService {
	return &ExportService{
		Repo:    repo,
		Storage: storage,
		Loc:     loc,
		Now:     time.Now,
	}
}

func (s *ExportService) Export(ctx context.Context) *model.ExportFile {
	return &model.ExportFile{
		Version:    model.ExportVersion,
		ExportedAt: s.Now().In(s.Loc),
		Data:       s.Repo.Load(ctx),
	}
}

// ExportJSON 导出内容及建议的文件名
func (s *ExportService) ExportJSON(ctx context.Context) ([]byte, string, error) {
	file := s.Export(ctx)
	raw, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, "", err
	}
	return raw, BackupFilename(file.ExportedAt), nil
}

func BackupFilename(t time.Time) string {
	return fmt.Sprintf("mindset-backup-%s.json", t.Format(util.DateFormat))
}

// ParseImport 校验备份文件，必须有 version 和 data
func ParseImport(raw []byte) (*model.ExportFile, error) {
	var file model.ExportFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrInvalidImportFile, err)
	}
	if file.Version == 0 {
		return nil, fmt.Errorf("%w: missing version", util.ErrInvalidImportFile)
	}
	if file.Version < 0 || file.Version > model.ExportVersion {
		return nil, fmt.Errorf("%w: %d", util.ErrUnsupportedVersion, file.Version)
	}
	if file.Data == nil {
		return nil, fmt.Errorf("%w: missing data", util.ErrInvalidImportFile)
	}
	return &file, nil
}

// Import 校验通过后整体覆盖当前状态，不做合并
func (s *ExportService) Import(ctx context.Context, raw []byte) (*model.UserState, error) {
	file, err := ParseImport(raw)
	if err != nil {
		logger.Log.Warn("Import rejected", zap.Error(err))
		return nil, err
	}
	state, err := s.Repo.Replace(ctx, file.Data)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("State imported",
		zap.Int("version", file.Version),
		zap.Time("exportedAt", file.ExportedAt),
		zap.Int64("revision", state.Revision))
	return state, nil
}

// ArchiveResult 备份上传结果
type ArchiveResult struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Provider string `json:"provider"`
}

// Archive 导出并上传到配置的存储
func (s *ExportService) Archive(ctx context.Context) (*ArchiveResult, error) {
	raw, _, err := s.ExportJSON(ctx)
	if err != nil {
		return nil, err
	}
	filename := fmt.Sprintf("mindset-backup-%s.json", s.Now().In(s.Loc).Format("20060102-150405"))
	url, err := s.Storage.Put(ctx, filename, raw, util.MimeJSON)
	if err != nil {
		logger.Log.Error("Failed to upload backup", zap.Error(err), zap.String("provider", s.Storage.Provider.Name()))
		return nil, err
	}
	return &ArchiveResult{Filename: filename, URL: url, Provider: s.Storage.Provider.Name()}, nil
}

// RestoreArchive 从存储中的备份文件恢复
func (s *ExportService) RestoreArchive(ctx context.Context, filename string) (*model.UserState, error) {
	raw, err := s.Storage.Get(ctx, filename)
	if err != nil {
		return nil, err
	}
	return s.Import(ctx, raw)
}
