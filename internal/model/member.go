package model

// Member is the member table row.
// Oracle IDENTITY column is used for ID generation
type Member struct {
	// Primary key - Oracle IDENTITY (auto-increment)
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Email        string `gorm:"column:email;type:VARCHAR2(255);not null;uniqueIndex:idx_member_email"` // 이메일 (unique)
	Nickname     string `gorm:"column:nickname;type:VARCHAR2(100);not null"`                           // 닉네임
	PasswordHash string `gorm:"column:password_hash;type:VARCHAR2(60);not null"`                       // bcrypt 해시
	Status       string `gorm:"column:status;type:VARCHAR2(20);not null;index:idx_member_status"`      // PENDING, ACTIVE, DEACTIVATED

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}
