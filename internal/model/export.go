package model

import "time"

// ExportVersion 当前导出文件格式版本
const ExportVersion = 1

// ExportFile 备份文件格式
// swagger:model ExportFile
type ExportFile struct {
	Version    int        `json:"version"`
	ExportedAt time.Time  `json:"exportedAt"`
	Data       *UserState `json:"data"`
}
