package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mautops/employee-gin/internal/database"
	"github.com/mautops/employee-gin/internal/model"
	"github.com/mautops/employee-gin/internal/repository"
)

// setupTestDB 创建测试数据库
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.Migrate(db)
	require.NoError(t, err)

	return db
}

// newAccount 构造测试账户
func newAccount(email string, requestedAt time.Time) *model.Account {
	return &model.Account{
		FullName:     "Test User",
		Email:        model.NormalizeEmail(email),
		PasswordHash: "hash",
		Role:         model.RoleEmployee,
		IsApproved:   false,
		RequestedAt:  requestedAt,
	}
}

// TestAccountRepository_FindPendingOrder 测试待审批队列按申请时间升序
func TestAccountRepository_FindPendingOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewAccountRepository(db)

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	second := newAccount("second@example.com", base.Add(time.Hour))
	first := newAccount("first@example.com", base)
	require.NoError(t, repo.Create(second))
	require.NoError(t, repo.Create(first))

	pending, err := repo.FindPending()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "first@example.com", pending[0].Email)
	assert.Equal(t, "second@example.com", pending[1].Email)
}

// TestAccountRepository_FindPendingExcludesApprovedAndAdmins 测试待审批队列的过滤条件
func TestAccountRepository_FindPendingExcludesApprovedAndAdmins(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewAccountRepository(db)

	now := time.Now()
	pending := newAccount("pending@example.com", now)
	require.NoError(t, repo.Create(pending))

	approved := newAccount("approved@example.com", now)
	approved.IsApproved = true
	require.NoError(t, repo.Create(approved))

	admin := newAccount("admin@example.com", now)
	admin.Role = model.RoleAdmin
	require.NoError(t, repo.Create(admin))

	got, err := repo.FindPending()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "pending@example.com", got[0].Email)
}

// TestAccountRepository_EmailCaseInsensitive 测试邮箱大小写不敏感查询
func TestAccountRepository_EmailCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewAccountRepository(db)

	require.NoError(t, repo.Create(newAccount("Alice@Example.com", time.Now())))

	exists, err := repo.ExistsByEmail("ALICE@EXAMPLE.COM")
	require.NoError(t, err)
	assert.True(t, exists)

	account, err := repo.FindByEmail("alice@example.COM")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", account.Email)
}

// TestAccountRepository_DeleteMissing 测试删除不存在的账户
func TestAccountRepository_DeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewAccountRepository(db)

	err := repo.Delete(12345)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// TestAccountRepository_WithTx 测试事务绑定的仓储在回滚后不留数据
func TestAccountRepository_WithTx(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewAccountRepository(db)

	tx := db.Begin()
	require.NoError(t, tx.Error)
	require.NoError(t, repo.WithTx(tx).Create(newAccount("tx@example.com", time.Now())))
	require.NoError(t, tx.Rollback().Error)

	exists, err := repo.ExistsByEmail("tx@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
