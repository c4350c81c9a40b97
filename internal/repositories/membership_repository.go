package repositories

import (
	"errors"

	"gorm.io/gorm"

	"skilllink_backend/internal/models"
)

var ErrMembershipNotFound = errors.New("membership not found")

type MembershipRepository interface {
	CreateMembership(db *gorm.DB, membership *models.Membership) error
	FindMembershipByWorker(db *gorm.DB, workerID string) (*models.Membership, error)
	UpdateMembershipPlan(db *gorm.DB, workerID, plan string) error
	FindMemberships(db *gorm.DB, limit, offset int) ([]models.Membership, int64, error)
}

type MembershipRepositoryImpl struct{}

func NewMembershipRepository() MembershipRepository {
	return &MembershipRepositoryImpl{}
}

func (r *MembershipRepositoryImpl) CreateMembership(db *gorm.DB, membership *models.Membership) error {
	return db.Create(membership).Error
}

func (r *MembershipRepositoryImpl) FindMembershipByWorker(db *gorm.DB, workerID string) (*models.Membership, error) {
	var membership models.Membership
	err := db.Where("trabajador_id = ?", workerID).First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}
	return &membership, nil
}

func (r *MembershipRepositoryImpl) UpdateMembershipPlan(db *gorm.DB, workerID, plan string) error {
	result := db.Model(&models.Membership{}).
		Where("trabajador_id = ?", workerID).
		Updates(map[string]interface{}{
			"plan":   plan,
			"estado": models.MembershipStateActive,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMembershipNotFound
	}
	return nil
}

func (r *MembershipRepositoryImpl) FindMemberships(db *gorm.DB, limit, offset int) ([]models.Membership, int64, error) {
	var total int64
	if err := db.Model(&models.Membership{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var memberships []models.Membership
	err := db.Preload("Worker").Preload("Worker.User").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&memberships).Error
	return memberships, total, err
}
