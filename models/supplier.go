package models

type Supplier struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID uint      `gorm:"not null" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"size:100" json:"email"`
	Phone      string    `gorm:"size:50" json:"phone"`
}
