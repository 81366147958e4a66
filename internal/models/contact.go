package models

type Contact struct {
	BaseModel

	UserID        uint   `gorm:"not null;uniqueIndex:idx_user_contact_number"`
	ContactNumber string `gorm:"size:20;not null;uniqueIndex:idx_user_contact_number"`
	ContactEmail  string `gorm:"size:255"`
	Note          string `gorm:"type:text"`

	// Relationships
	User      User      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Addresses []Address `gorm:"foreignKey:ContactID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tasks     []Task    `gorm:"foreignKey:ContactID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
