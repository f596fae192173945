package database

import (
	"fmt"
	"mindset_backend/pkg/logger"
	"os"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// badgerLogger 将 badger 的日志转到 zap
type badgerLogger struct {
	log *zap.SugaredLogger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

// InitBadger 打开本地 badger 数据库，path 为空时使用内存模式
func InitBadger(path string) (*badger.DB, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(path, 0755); err != nil {
			return nil, fmt.Errorf("create badger dir: %w", err)
		}
		opts = badger.DefaultOptions(path).WithSyncWrites(true)
	}
	opts = opts.WithLogger(&badgerLogger{log: logger.Log.Sugar().Named("badger")})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	logger.Log.Info("Badger store opened", zap.String("path", path), zap.Bool("inMemory", path == ""))
	return db, nil
}
