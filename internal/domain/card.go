package domain

// CardNumberLength is the fixed length of a card number
const CardNumberLength = 16

// Card Model
type Card struct {
	ID           uint          `gorm:"primaryKey" json:"id"`                            // Primary key
	AccountID    uint          `gorm:"index;not null" json:"account_id"`                // Foreign key to Account
	CardNumber   string        `gorm:"size:16;uniqueIndex;not null" json:"card_number"` // Unique 16-digit card number
	Balance      int64         `gorm:"not null;default:0" json:"balance"`               // Balance in base currency units
	Transactions []Transaction `gorm:"foreignKey:CardID" json:"-"`                      // Outgoing transactions
}
