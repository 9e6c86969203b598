package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/splearn/internal/shared/database"
	"github.com/changhyeonkim/splearn/internal/shared/logger"
	"gorm.io/gorm"
)

type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
	passwordEncoder  PasswordEncoder
}

func NewMemberService(db *gorm.DB, memberRepository *MemberRepository, passwordEncoder PasswordEncoder) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
		passwordEncoder:  passwordEncoder,
	}
}

// Register creates a PENDING member and stores it. It returns the new member ID.
func (s *MemberService) Register(ctx context.Context, info CreateInfo) (uint32, error) {
	log := logger.FromContext(ctx)

	var memberID uint32
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		exists, err := s.memberRepository.IsExist(ctx, tx, info.Email)
		if err != nil {
			log.Error("Failed to check member existence", "error", err)
			return fmt.Errorf("check member existence: %w", err)
		}
		if exists {
			log.Warn("Member already exists", "email", logger.MaskEmail(info.Email))
			return fmt.Errorf("error %w", ErrMemberAlreadyExists)
		}

		member, err := Create(info, s.passwordEncoder)
		if err != nil {
			log.Warn("Failed to create member", "email", logger.MaskEmail(info.Email), "error", err)
			return err
		}

		memberID, err = s.memberRepository.Create(ctx, tx, member)
		if errors.Is(err, ErrMemberAlreadyExists) {
			log.Warn("Member already exists", "email", logger.MaskEmail(info.Email))
			return err
		}
		if err != nil {
			log.Error("Failed to save member", "error", err)
			return fmt.Errorf("save member: %w", err)
		}

		log.Info("Member created successfully", "member", member, "member_id", memberID)
		return nil
	})

	if err != nil {
		return 0, err
	}

	return memberID, nil
}

// Authenticate checks email and password. Unknown emails and wrong
// passwords both return ErrPasswordMismatch.
func (s *MemberService) Authenticate(ctx context.Context, email, password string) (uint32, *Member, error) {
	log := logger.FromContext(ctx)

	row, err := s.memberRepository.FindByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("인증 실패 - member email not found", "email", logger.MaskEmail(email))
			return 0, nil, fmt.Errorf("error %w", ErrPasswordMismatch)
		}
		return 0, nil, fmt.Errorf("회원 조회 실패: %w", err)
	}

	member, err := fromRow(row)
	if err != nil {
		log.Error("저장된 회원 정보가 올바르지 않습니다", "member_id", row.ID, "error", err)
		return 0, nil, fmt.Errorf("restore member id=%d: %v", row.ID, err)
	}

	if !member.VerifyPassword(password, s.passwordEncoder) {
		log.Warn("인증 실패 - invalid password", "email", logger.MaskEmail(email))
		return 0, nil, fmt.Errorf("error %w", ErrPasswordMismatch)
	}

	return row.ID, member, nil
}

func (s *MemberService) GetProfile(ctx context.Context, memberID uint32) (*GetProfileResponse, error) {
	var response *GetProfileResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.load(ctx, tx, memberID)
		if err != nil {
			return err
		}

		response = newProfileResponse(memberID, member)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

// Activate moves the member from PENDING to ACTIVE.
func (s *MemberService) Activate(ctx context.Context, memberID uint32) (*GetProfileResponse, error) {
	return s.transition(ctx, memberID, "activate", (*Member).Activate)
}

// Deactivate moves the member from ACTIVE to DEACTIVATED.
func (s *MemberService) Deactivate(ctx context.Context, memberID uint32) (*GetProfileResponse, error) {
	return s.transition(ctx, memberID, "deactivate", (*Member).Deactivate)
}

// transition loads, mutates and stores the member in one transaction so
// each request is the only writer of its Member.
func (s *MemberService) transition(ctx context.Context, memberID uint32, action string, apply func(*Member) error) (*GetProfileResponse, error) {
	log := logger.FromContext(ctx)
	var response *GetProfileResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.load(ctx, tx, memberID)
		if err != nil {
			return err
		}

		if err := apply(member); err != nil {
			log.Warn("회원 상태 변경 실패", "action", action, "member_id", memberID, "error", err)
			return err
		}

		if err := s.memberRepository.UpdateStatus(ctx, tx, memberID, member); err != nil {
			return fmt.Errorf("회원 상태 저장 실패 memberID=%d: %w", memberID, err)
		}

		log.Info("회원 상태 변경", "action", action, "member_id", memberID, "status", member.Status().String())
		response = newProfileResponse(memberID, member)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

func (s *MemberService) load(ctx context.Context, tx *gorm.DB, memberID uint32) (*Member, error) {
	row, err := s.memberRepository.FindByID(ctx, tx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("회원을 찾을 수 없습니다 memberID=%d %w", memberID, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}

	member, err := fromRow(row)
	if err != nil {
		return nil, fmt.Errorf("restore member id=%d: %v", memberID, err)
	}
	return member, nil
}
