package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DocumentStore 文档存储接口
// 报告提交时同步上传附件,上传失败则整个提交中止
type DocumentStore interface {
	// Upload 保存文档,返回可对外引用的 documentRef
	Upload(content io.Reader, filename string) (string, error)
}

// LocalDocumentStore 本地磁盘文档存储
type LocalDocumentStore struct {
	baseDir string
	baseURL string
	maxSize int64 // 字节
}

// NewLocalDocumentStore 创建本地文档存储
func NewLocalDocumentStore(baseDir string, baseURL string, maxSizeMB int) (*LocalDocumentStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalDocumentStore{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
		maxSize: int64(maxSizeMB) * 1024 * 1024,
	}, nil
}

// Upload 保存文档到磁盘
// 存储名用随机 UUID 前缀,避免上传文件名冲突与路径穿越
func (s *LocalDocumentStore) Upload(content io.Reader, filename string) (string, error) {
	if filename == "" {
		return "", errors.New("filename is required")
	}

	ext := filepath.Ext(filepath.Base(filename))
	storedName := uuid.New().String() + ext
	path := filepath.Join(s.baseDir, storedName)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create document file: %w", err)
	}
	defer file.Close()

	limited := io.LimitReader(content, s.maxSize+1)
	written, err := io.Copy(file, limited)
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write document: %w", err)
	}
	if written > s.maxSize {
		os.Remove(path)
		return "", fmt.Errorf("document exceeds maximum size of %d bytes", s.maxSize)
	}

	return s.baseURL + "/" + storedName, nil
}

// BaseDir 返回文档存放目录(静态路由挂载用)
func (s *LocalDocumentStore) BaseDir() string {
	return s.baseDir
}

// BaseURL 返回文档访问前缀
func (s *LocalDocumentStore) BaseURL() string {
	return s.baseURL
}
