package repository

import (
	"github.com/mautops/employee-gin/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository 账户仓储接口
type AccountRepository interface {
	// WithTx 返回绑定到指定事务句柄的仓储
	WithTx(tx *gorm.DB) AccountRepository
	Create(account *model.Account) error
	Save(account *model.Account) error
	FindByID(id uint) (*model.Account, error)
	// FindByIDForUpdate 以行级锁读取账户,必须在事务内调用
	FindByIDForUpdate(id uint) (*model.Account, error)
	FindByEmail(email string) (*model.Account, error)
	ExistsByEmail(email string) (bool, error)
	FindPending() ([]*model.Account, error)
	Delete(id uint) error
}

// accountRepository 账户仓储实现
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository 创建账户仓储
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// WithTx 返回绑定到事务的仓储
func (r *accountRepository) WithTx(tx *gorm.DB) AccountRepository {
	return &accountRepository{db: tx}
}

// Create 新建账户
func (r *accountRepository) Create(account *model.Account) error {
	return r.db.Create(account).Error
}

// Save 保存账户
func (r *accountRepository) Save(account *model.Account) error {
	return r.db.Save(account).Error
}

// FindByID 根据 ID 查找账户
func (r *accountRepository) FindByID(id uint) (*model.Account, error) {
	var account model.Account
	if err := r.db.Where("id = ?", id).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByIDForUpdate 以 FOR UPDATE 锁读取账户
// 审批事务锁住账户行,串行化同一账户上的并发审批
func (r *accountRepository) FindByIDForUpdate(id uint) (*model.Account, error) {
	var account model.Account
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByEmail 根据邮箱查找账户(邮箱已规范化为小写)
func (r *accountRepository) FindByEmail(email string) (*model.Account, error) {
	var account model.Account
	err := r.db.Where("email = ?", model.NormalizeEmail(email)).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// ExistsByEmail 判断邮箱是否已被占用
func (r *accountRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Account{}).
		Where("email = ?", model.NormalizeEmail(email)).
		Count(&count).Error
	return count > 0, err
}

// FindPending 查找待审批的员工账户,按申请时间升序
func (r *accountRepository) FindPending() ([]*model.Account, error) {
	var accounts []*model.Account
	err := r.db.Where("role = ? AND is_approved = ?", model.RoleEmployee, false).
		Order("requested_at ASC").
		Find(&accounts).Error
	return accounts, err
}

// Delete 硬删除账户
func (r *accountRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Account{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
