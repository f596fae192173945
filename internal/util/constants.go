package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
	HourMinute = "15:04"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	StoreBadger = "badger"
	StoreSQL    = "sql"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// 导入文件允许的 MIME 类型
const (
	MimeJSON        = "application/json"
	MimeText        = "text/plain"
	MimeOctetStream = "application/octet-stream"
)

var AllowedImportTypes = []string{MimeJSON, MimeText, MimeOctetStream}
