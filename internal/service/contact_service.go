package service

import (
	"fmt"
	"time"

	"github.com/mautops/employee-gin/internal/model"
	"github.com/mautops/employee-gin/internal/repository"
	"github.com/mautops/employee-gin/internal/utils"
)

// ContactService 联系留言服务
type ContactService interface {
	Submit(req *ContactRequest) (*model.ContactMessage, error)
	List() ([]*model.ContactMessage, error)
}

// ContactRequest 留言提交请求
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type contactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService 创建联系留言服务
func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

// Submit 保存一条留言
func (s *contactService) Submit(req *ContactRequest) (*model.ContactMessage, error) {
	if err := utils.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	subject, err := utils.TrimAndValidate(req.Subject, 200)
	if err != nil {
		return nil, err
	}

	message := &model.ContactMessage{
		Name:      req.Name,
		Email:     model.NormalizeEmail(req.Email),
		Subject:   subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	if err := s.contactRepo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}
	return message, nil
}

// List 列出所有留言
func (s *contactService) List() ([]*model.ContactMessage, error) {
	return s.contactRepo.FindAll()
}
