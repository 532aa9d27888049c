package domain

// User Model
type User struct {
	ID       uint      `gorm:"primaryKey" json:"id"`                                   // Primary key
	Name     string    `gorm:"not null" json:"name"`                                   // Display name
	Email    string    `gorm:"size:191;uniqueIndex;not null" json:"email"`             // Unique email
	Accounts []Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // One-to-many relationship with Account
}

// Account Model
type Account struct {
	ID     uint   `gorm:"primaryKey" json:"id"`                                   // Primary key
	UserID uint   `gorm:"index;not null" json:"user_id"`                          // Foreign key to User
	Cards  []Card `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // One-to-many relationship with Card
}
