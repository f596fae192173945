package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mindset_backend/internal/config"
	"mindset_backend/internal/util"
	"mindset_backend/pkg/logger"
	"os"
	"path/filepath"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// ArchiveProvider 保存导出备份文件的位置
type ArchiveProvider interface {
	Name() string
	Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error)
	Download(ctx context.Context, filename string) ([]byte, error)
	Delete(ctx context.Context, filename string) error
	GetURL(filename string) string
}

// LocalArchiveProvider 本地目录
type LocalArchiveProvider struct {
	Config *config.ArchiveConfig
}

func (p *LocalArchiveProvider) Name() string { return util.StorageLocal }

func (p *LocalArchiveProvider) path(filename string) string {
	return filepath.Join(p.Config.LocalPath, filepath.Base(filename))
}

func (p *LocalArchiveProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	dst := p.path(filename)
	dir := filepath.Dir(dst)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err = io.Copy(out, reader); err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *LocalArchiveProvider) Download(ctx context.Context, filename string) ([]byte, error) {
	return os.ReadFile(p.path(filename))
}

func (p *LocalArchiveProvider) Delete(ctx context.Context, filename string) error {
	return os.Remove(p.path(filename))
}

func (p *LocalArchiveProvider) GetURL(filename string) string {
	return "/api/export/archives/" + filepath.Base(filename)
}

// MinioArchiveProvider MinIO 存储
type MinioArchiveProvider struct {
	Config *config.ArchiveConfig
	Client *minio.Client
}

func NewMinioArchiveProvider(cfg *config.ArchiveConfig) (*MinioArchiveProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &MinioArchiveProvider{Config: cfg, Client: client}, nil
}

func (p *MinioArchiveProvider) Name() string { return util.StorageMinio }

func (p *MinioArchiveProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, filename, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *MinioArchiveProvider) Download(ctx context.Context, filename string) ([]byte, error) {
	obj, err := p.Client.GetObject(ctx, p.Config.MinioBucket, filename, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

func (p *MinioArchiveProvider) Delete(ctx context.Context, filename string) error {
	return p.Client.RemoveObject(ctx, p.Config.MinioBucket, filename, minio.RemoveObjectOptions{})
}

func (p *MinioArchiveProvider) GetURL(filename string) string {
	return "/" + p.Config.MinioBucket + "/" + filename
}

// OSSArchiveProvider 阿里云 OSS
type OSSArchiveProvider struct {
	Config *config.ArchiveConfig
	Client *oss.Client
}

func NewOSSArchiveProvider(cfg *config.ArchiveConfig) (*OSSArchiveProvider, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	return &OSSArchiveProvider{Config: cfg, Client: client}, nil
}

func (p *OSSArchiveProvider) Name() string { return util.StorageOSS }

func (p *OSSArchiveProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	bucket, err := p.Client.Bucket(p.Config.OSSBucket)
	if err != nil {
		return "", err
	}
	if err = bucket.PutObject(filename, reader, oss.ContentType(contentType)); err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *OSSArchiveProvider) Download(ctx context.Context, filename string) ([]byte, error) {
	bucket, err := p.Client.Bucket(p.Config.OSSBucket)
	if err != nil {
		return nil, err
	}
	body, err := bucket.GetObject(filename)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return io.ReadAll(body)
}

func (p *OSSArchiveProvider) Delete(ctx context.Context, filename string) error {
	bucket, err := p.Client.Bucket(p.Config.OSSBucket)
	if err != nil {
		return err
	}
	return bucket.DeleteObject(filename)
}

func (p *OSSArchiveProvider) GetURL(filename string) string {
	return fmt.Sprintf("https://%s.%s/%s", p.Config.OSSBucket, p.Config.OSSEndpoint, filename)
}

// StorageService 备份文件存储，远端初始化失败时退回本地目录
type StorageService struct {
	Provider ArchiveProvider
}

func NewStorageService(cfg *config.Config) *StorageService {
	var provider ArchiveProvider
	switch cfg.Archive.Type {
	case util.StorageMinio:
		p, err := NewMinioArchiveProvider(&cfg.Archive)
		if err != nil {
			logger.Log.Warn("MinIO archive unavailable, using local directory", zap.Error(err))
		} else {
			provider = p
		}
	case util.StorageOSS:
		p, err := NewOSSArchiveProvider(&cfg.Archive)
		if err != nil {
			logger.Log.Warn("OSS archive unavailable, using local directory", zap.Error(err))
		} else {
			provider = p
		}
	}

	if provider == nil {
		provider = &LocalArchiveProvider{Config: &cfg.Archive}
	}
	return &StorageService{Provider: provider}
}

func (s *StorageService) Put(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	return s.Provider.Upload(ctx, filename, bytes.NewReader(data), int64(len(data)), contentType)
}

func (s *StorageService) Get(ctx context.Context, filename string) ([]byte, error) {
	return s.Provider.Download(ctx, filename)
}

func (s *StorageService) Delete(ctx context.Context, filename string) error {
	return s.Provider.Delete(ctx, filename)
}

func (s *StorageService) GetURL(filename string) string {
	return s.Provider.GetURL(filename)
}
