package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mautops/employee-gin/internal/storage"
)

// TestLocalDocumentStore_Upload 测试文档上传
func TestLocalDocumentStore_Upload(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalDocumentStore(dir, "/documents/", 1)
	require.NoError(t, err)

	ref, err := store.Upload(strings.NewReader("hello"), "report.pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "/documents/"))
	assert.True(t, strings.HasSuffix(ref, ".pdf"))

	// 文件落盘且内容完整
	storedName := strings.TrimPrefix(ref, "/documents/")
	data, err := os.ReadFile(filepath.Join(dir, storedName))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

// TestLocalDocumentStore_UniqueNames 测试同名上传不冲突
func TestLocalDocumentStore_UniqueNames(t *testing.T) {
	store, err := storage.NewLocalDocumentStore(t.TempDir(), "/documents", 1)
	require.NoError(t, err)

	first, err := store.Upload(strings.NewReader("one"), "same.txt")
	require.NoError(t, err)
	second, err := store.Upload(strings.NewReader("two"), "same.txt")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

// TestLocalDocumentStore_SizeLimit 测试超限文档被拒绝且不留残片
func TestLocalDocumentStore_SizeLimit(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalDocumentStore(dir, "/documents", 1)
	require.NoError(t, err)

	tooBig := strings.NewReader(strings.Repeat("x", 1024*1024+1))
	_, err = store.Upload(tooBig, "big.bin")
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "oversized upload must not leave a partial file")
}

// TestLocalDocumentStore_EmptyFilename 测试空文件名被拒绝
func TestLocalDocumentStore_EmptyFilename(t *testing.T) {
	store, err := storage.NewLocalDocumentStore(t.TempDir(), "/documents", 1)
	require.NoError(t, err)

	_, err = store.Upload(strings.NewReader("data"), "")
	assert.Error(t, err)
}

// TestLocalDocumentStore_PathTraversal 测试路径穿越文件名被中和
func TestLocalDocumentStore_PathTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalDocumentStore(dir, "/documents", 1)
	require.NoError(t, err)

	ref, err := store.Upload(strings.NewReader("data"), "../../etc/passwd")
	require.NoError(t, err)
	// 存储名只保留扩展名,上传内容落在 baseDir 内
	assert.NotContains(t, ref, "..")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
