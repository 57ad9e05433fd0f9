package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mautops/employee-gin/internal/config"
	"github.com/mautops/employee-gin/internal/database"
	"github.com/mautops/employee-gin/internal/model"
)

// openTestDB 打开内存数据库
func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

// TestMigrate_CreatesSchemaAndSeeds 测试迁移建表并播种部门
func TestMigrate_CreatesSchemaAndSeeds(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, database.Migrate(db))

	for _, table := range []string{"accounts", "employees", "departments", "reports", "contact_messages", "audit_logs"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}

	var count int64
	require.NoError(t, db.Model(&model.Department{}).Count(&count).Error)
	assert.Equal(t, int64(11), count)
}

// TestMigrate_Idempotent 测试重复迁移不产生重复种子
func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Migrate(db))

	var count int64
	require.NoError(t, db.Model(&model.Department{}).Count(&count).Error)
	assert.Equal(t, int64(11), count)
}

// TestMigrate_EmailUnique 测试邮箱唯一索引生效
func TestMigrate_EmailUnique(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, database.Migrate(db))

	account := &model.Account{
		FullName: "A", Email: "dup@example.com", PasswordHash: "h",
		Role: model.RoleEmployee,
	}
	require.NoError(t, db.Create(account).Error)

	clone := &model.Account{
		FullName: "B", Email: "dup@example.com", PasswordHash: "h",
		Role: model.RoleEmployee,
	}
	assert.Error(t, db.Create(clone).Error)
}

// TestBuildDSN 测试 PostgreSQL DSN 拼装
func TestBuildDSN(t *testing.T) {
	dsn := database.BuildDSN(config.DatabaseConfig{
		Host: "db.internal", Port: 5433, User: "svc", Password: "pw",
		DBName: "employee", SSLMode: "require",
	})
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "port=5433")
	assert.Contains(t, dsn, "user=svc")
	assert.Contains(t, dsn, "dbname=employee")
	assert.Contains(t, dsn, "sslmode=require")
}

// TestCheckHealth 测试健康检查
func TestCheckHealth(t *testing.T) {
	assert.False(t, database.CheckHealth(nil))

	db := openTestDB(t)
	assert.True(t, database.CheckHealth(db))
}
