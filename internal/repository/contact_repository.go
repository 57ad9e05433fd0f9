package repository

import (
	"github.com/mautops/employee-gin/internal/model"
	"gorm.io/gorm"
)

// ContactRepository 联系留言仓储接口
type ContactRepository interface {
	Create(message *model.ContactMessage) error
	FindAll() ([]*model.ContactMessage, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository 创建联系留言仓储
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create 保存留言
func (r *contactRepository) Create(message *model.ContactMessage) error {
	return r.db.Create(message).Error
}

// FindAll 查找所有留言,新留言在前
func (r *contactRepository) FindAll() ([]*model.ContactMessage, error) {
	var messages []*model.ContactMessage
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}
