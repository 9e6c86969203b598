package member

import (
	"context"
	"fmt"

	"github.com/changhyeonkim/splearn/internal/model"
	"github.com/changhyeonkim/splearn/internal/shared/database"
	"gorm.io/gorm"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

func (m *MemberRepository) IsExist(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("email = ?", email).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Create inserts member and returns the generated row ID.
// A unique email violation returns ErrMemberAlreadyExists.
func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *Member) (uint32, error) {
	row := toRow(member)
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return 0, fmt.Errorf("error %w", ErrMemberAlreadyExists)
		}
		return 0, err
	}
	return row.ID, nil
}

func (m *MemberRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("email = ?", email).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("id = ?", ID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// UpdateStatus writes member's current status to the row with the given ID.
// Members change their own status, so the row's ID is also recorded as updated_by.
func (m *MemberRepository) UpdateStatus(ctx context.Context, db *gorm.DB, ID uint32, member *Member) error {
	result := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", ID).
		Updates(map[string]any{
			"status":     member.Status().String(),
			"updated_by": ID,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func toRow(member *Member) *model.Member {
	s := member.Snapshot()
	return &model.Member{
		Email:        s.Email,
		Nickname:     s.Nickname,
		PasswordHash: s.PasswordHash,
		Status:       s.Status.String(),
	}
}

// fromRow restores the domain Member stored in row.
func fromRow(row *model.Member) (*Member, error) {
	return Restore(Snapshot{
		Email:        row.Email,
		Nickname:     row.Nickname,
		PasswordHash: row.PasswordHash,
		Status:       Status(row.Status),
	})
}
