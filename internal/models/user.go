package models

type User struct {
	BaseModel

	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`
	// FullName is always FirstName + " " + LastName, recomputed by the
	// handlers on every create and update.
	FullName     string `gorm:"size:200;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"` // stored lowercase
	Phone        string `gorm:"type:char(10);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`

	// Relationships
	Contacts []Contact `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tasks    []Task    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
