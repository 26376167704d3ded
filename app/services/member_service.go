package services

import (
	"context"
	"fmt"

	"coffee-commerce/app/models"
	"coffee-commerce/app/models/dto"
	"coffee-commerce/app/repositories"

	"gorm.io/gorm"
)

type MemberService struct {
	db         *gorm.DB
	memberRepo repositories.MemberRepositoryImpl
}

func NewMemberService(db *gorm.DB, memberRepo repositories.MemberRepositoryImpl) *MemberService {
	return &MemberService{db: db, memberRepo: memberRepo}
}

func (s *MemberService) CreateMember(ctx context.Context, req dto.MemberRequest) (*dto.MemberResponse, error) {
	existing, err := s.memberRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	member := &models.Member{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if err := s.memberRepo.Create(ctx, tx, member); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return toMemberResponse(member), nil
}

func (s *MemberService) GetMember(ctx context.Context, id uint) (*dto.MemberResponse, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return toMemberResponse(member), nil
}

func (s *MemberService) GetAllMembers(ctx context.Context) ([]dto.MemberResponse, error) {
	members, err := s.memberRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, *toMemberResponse(&members[i]))
	}
	return responses, nil
}

func (s *MemberService) UpdateMember(ctx context.Context, id uint, req dto.MemberRequest) (*dto.MemberResponse, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	// Only a changed email can collide with another member.
	if req.Email != member.Email {
		existing, err := s.memberRepo.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if existing != nil {
			return nil, ErrDuplicateEmail
		}
	}

	member.Email = req.Email
	if req.Password != "" {
		member.Password = req.Password
	}
	member.Name = req.Name
	member.Phone = req.Phone
	member.Address = req.Address

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if err := s.memberRepo.Update(ctx, tx, member); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return toMemberResponse(member), nil
}

func (s *MemberService) DeleteMember(ctx context.Context, id uint) error {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrMemberNotFound
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if err := s.memberRepo.Delete(ctx, tx, id); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete member: %w", err)
	}

	return tx.Commit().Error
}

func toMemberResponse(member *models.Member) *dto.MemberResponse {
	return &dto.MemberResponse{
		MemberID:  member.ID,
		Email:     member.Email,
		Name:      member.Name,
		Phone:     member.Phone,
		Address:   member.Address,
		CreatedAt: member.CreatedAt,
		UpdatedAt: member.UpdatedAt,
	}
}
