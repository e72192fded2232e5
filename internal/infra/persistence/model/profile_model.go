package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProfileCustomField is the storage shape of one custom field entry inside
// the jsonb column.
type ProfileCustomField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProfileModel mirrors the 'profiles' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). OwnerID is the opaque identity-provider user ID; the
// composite (owner_id, created_at DESC) index backs the owner listing and
// the type index backs per-type queries.
type ProfileModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID string    `gorm:"type:varchar(128);not null;index:idx_profiles_owner_created,priority:1"`

	Name     string `gorm:"type:varchar(100);not null"`
	Age      string `gorm:"type:varchar(20);not null"`
	Gender   string `gorm:"type:varchar(20)"`
	Type     string `gorm:"type:varchar(20);index"`
	PhotoURL string `gorm:"type:text;not null"`

	Address string `gorm:"type:text"`
	City    string `gorm:"type:varchar(100)"`
	State   string `gorm:"type:varchar(100)"`
	Pincode string `gorm:"type:varchar(20)"`
	Phone   string `gorm:"type:varchar(30)"`
	Email   string `gorm:"type:varchar(255)"`

	BloodGroup   string `gorm:"type:varchar(5)"`
	Condition    string `gorm:"type:text"`
	Medications  string `gorm:"type:text"`
	Allergies    string `gorm:"type:text"`
	Disabilities string `gorm:"type:text"`
	SpecialNeeds string `gorm:"type:text"`
	Medical      string `gorm:"type:text"`

	EmergencyName     string `gorm:"type:varchar(100)"`
	EmergencyRelation string `gorm:"type:varchar(50)"`
	EmergencyPhone    string `gorm:"type:varchar(30);not null"`
	EmergencyPhone2   string `gorm:"type:varchar(30)"`

	Language           string `gorm:"type:varchar(50)"`
	CommunicationNeeds string `gorm:"type:text"`
	Message            string `gorm:"type:text"`

	Species  string `gorm:"type:varchar(50)"`
	Breed    string `gorm:"type:varchar(100)"`
	ChipID   string `gorm:"type:varchar(100)"`
	VetName  string `gorm:"type:varchar(100)"`
	VetPhone string `gorm:"type:varchar(30)"`

	CustomFields datatypes.JSONSlice[ProfileCustomField] `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"index:idx_profiles_owner_created,priority:2,sort:desc"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
