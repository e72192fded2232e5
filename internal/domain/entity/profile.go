// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"encoding/json"
	"time"

	"careconnect/internal/errors"

	"github.com/google/uuid"
)

// ProfileType classifies who (or what) a profile describes. The empty string
// means "unset" and is accepted everywhere an enum value is optional.
type ProfileType string

// Enumerated profile types.
const (
	ProfileTypeSenior       ProfileType = "Senior"
	ProfileTypeChild        ProfileType = "Child"
	ProfileTypeSpecialNeeds ProfileType = "Special Needs"
	ProfileTypePet          ProfileType = "Pet"
	ProfileTypeSelf         ProfileType = "Self"
	ProfileTypeFamilyMember ProfileType = "Family Member"
	ProfileTypeFriend       ProfileType = "Friend"
	ProfileTypeColleague    ProfileType = "Colleague"
	ProfileTypeCaregiver    ProfileType = "Caregiver"
	ProfileTypeGuardian     ProfileType = "Guardian"
	ProfileTypeParent       ProfileType = "Parent"
	ProfileTypeOther        ProfileType = "Other"
	ProfileTypeUnset        ProfileType = ""
)

// Valid reports whether t is one of the enumerated profile types.
func (t ProfileType) Valid() bool {
	switch t {
	case ProfileTypeSenior, ProfileTypeChild, ProfileTypeSpecialNeeds,
		ProfileTypePet, ProfileTypeSelf, ProfileTypeFamilyMember,
		ProfileTypeFriend, ProfileTypeColleague, ProfileTypeCaregiver,
		ProfileTypeGuardian, ProfileTypeParent, ProfileTypeOther,
		ProfileTypeUnset:
		return true
	}

	return false
}

// Gender is an optional enumerated attribute.
type Gender string

// Enumerated genders.
const (
	GenderMale     Gender = "Male"
	GenderFemale   Gender = "Female"
	GenderOther    Gender = "Other"
	GenderNoAnswer Gender = "Prefer not to say"
	GenderUnset    Gender = ""
)

// Valid reports whether g is one of the enumerated genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderNoAnswer, GenderUnset:
		return true
	}

	return false
}

// BloodGroup is an optional enumerated medical attribute.
type BloodGroup string

// Enumerated blood groups.
const (
	BloodGroupAPos  BloodGroup = "A+"
	BloodGroupANeg  BloodGroup = "A-"
	BloodGroupBPos  BloodGroup = "B+"
	BloodGroupBNeg  BloodGroup = "B-"
	BloodGroupABPos BloodGroup = "AB+"
	BloodGroupABNeg BloodGroup = "AB-"
	BloodGroupOPos  BloodGroup = "O+"
	BloodGroupONeg  BloodGroup = "O-"
	BloodGroupUnset BloodGroup = ""
)

// Valid reports whether b is one of the enumerated blood groups.
func (b BloodGroup) Valid() bool {
	switch b {
	case BloodGroupAPos, BloodGroupANeg, BloodGroupBPos, BloodGroupBNeg,
		BloodGroupABPos, BloodGroupABNeg, BloodGroupOPos, BloodGroupONeg,
		BloodGroupUnset:
		return true
	}

	return false
}

// CustomField is a single user-defined label/value extension on a profile.
// Both sides are required whenever the entry is present.
type CustomField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ErrMalformedCustomFields is returned by ParseCustomFields when the
// serialized payload is not a JSON array of complete label/value pairs.
var ErrMalformedCustomFields = errors.New("malformed custom fields")

// ParseCustomFields decodes the JSON-serialized customFields payload carried
// in multipart form data. An empty payload is treated as "no custom fields".
func ParseCustomFields(raw string) ([]CustomField, error) {
	if raw == "" {
		return []CustomField{}, nil
	}

	var fields []CustomField
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, errors.Wrap(ErrMalformedCustomFields, err.Error())
	}

	for i, field := range fields {
		if field.Label == "" || field.Value == "" {
			return nil, errors.Wrapf(ErrMalformedCustomFields, "entry %d is missing a label or value", i)
		}
	}

	return fields, nil
}

// Profile is the central entity: a shareable digital identity card for a
// senior, child, pet or other dependent. The record is owned by the account
// that created it; only the owner may mutate it, while anyone holding the ID
// may read it (the ID doubles as the sharing token, e.g. inside a QR code).
type Profile struct {
	ID      uuid.UUID `json:"id"`
	OwnerID string    `json:"ownerId"` // opaque identifier issued by the identity provider

	// Basic information.
	Name     string      `json:"name"`
	Age      string      `json:"age"` // free text, never validated as a number
	Gender   Gender      `json:"gender"`
	Type     ProfileType `json:"type"`
	PhotoURL string      `json:"photoUrl"`

	// Contact information.
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`

	// Medical information.
	BloodGroup   BloodGroup `json:"bloodGroup"`
	Condition    string     `json:"condition"`
	Medications  string     `json:"medications"`
	Allergies    string     `json:"allergies"`
	Disabilities string     `json:"disabilities"`
	SpecialNeeds string     `json:"specialNeeds"`
	Medical      string     `json:"medical"`

	// Emergency contact.
	EmergencyName     string `json:"emergencyName"`
	EmergencyRelation string `json:"emergencyRelation"`
	EmergencyPhone    string `json:"emergencyPhone"`
	EmergencyPhone2   string `json:"emergencyPhone2"`

	// Additional information.
	Language           string `json:"language"`
	CommunicationNeeds string `json:"communicationNeeds"`
	Message            string `json:"message"`

	// Pet-specific fields, meaningful when Type == ProfileTypePet.
	Species  string `json:"species"`
	Breed    string `json:"breed"`
	ChipID   string `json:"chipId"`
	VetName  string `json:"vetName"`
	VetPhone string `json:"vetPhone"`

	CustomFields []CustomField `json:"customFields"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
