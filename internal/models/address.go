package models

type Address struct {
	BaseModel

	ContactID    uint   `gorm:"not null;index"`
	AddressLine1 string `gorm:"size:255;not null"`
	AddressLine2 string `gorm:"size:255"`
	City         string `gorm:"size:100;not null"`
	State        string `gorm:"size:100;not null"`
	Pincode      string `gorm:"size:20;not null"`
	Country      string `gorm:"size:100;not null;default:'India'"`

	// Relationships
	Contact Contact `gorm:"foreignKey:ContactID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
