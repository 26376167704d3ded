package repositories

import (
	"context"

	"coffee-commerce/app/models"

	"gorm.io/gorm"
)

type MemberRepositoryImpl interface {
	Create(ctx context.Context, tx *gorm.DB, member *models.Member) error
	FindByID(ctx context.Context, id uint) (*models.Member, error)
	FindByEmail(ctx context.Context, email string) (*models.Member, error)
	FindAll(ctx context.Context) ([]models.Member, error)
	Update(ctx context.Context, tx *gorm.DB, member *models.Member) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepositoryImpl {
	return &memberRepository{db}
}

func (r *memberRepository) Create(ctx context.Context, tx *gorm.DB, member *models.Member) error {
	return tx.WithContext(ctx).Create(member).Error
}

func (r *memberRepository) FindByID(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByEmail(ctx context.Context, email string) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).First(&member, "email = ?", email).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindAll(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	if err := r.db.WithContext(ctx).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) Update(ctx context.Context, tx *gorm.DB, member *models.Member) error {
	return tx.WithContext(ctx).Save(member).Error
}

func (r *memberRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.Member{}, "id = ?", id).Error
}
