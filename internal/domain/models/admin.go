package models

// Admin is the only principal allowed to mutate tours and assets.
type Admin struct {
	BaseModel
	Email    string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:varchar(100);not null" json:"-"` // bcrypt hash, never serialized
	Name     string `gorm:"type:varchar(100)" json:"name"`
}

// AdminIdentity is what an authorized request knows about its caller.
type AdminIdentity struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Identity strips the password hash.
func (a *Admin) Identity() *AdminIdentity {
	return &AdminIdentity{ID: a.ID, Email: a.Email, Name: a.Name}
}
