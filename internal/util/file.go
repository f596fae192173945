package util

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

// ValidateMimeType 校验上传文件的 MIME 类型
// allowedTypes: 允许的 MIME 前缀或完整类型，如 "application/json", "text/plain"
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}
