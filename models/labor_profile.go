package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LaborProfile is the worker-only extension of a User. One per user with
// role "labor", created during onboarding and mutated only by its owner.
type LaborProfile struct {
	gorm.Model
	UserID           uint           `json:"user_id" gorm:"uniqueIndex;not null"`
	User             User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Phone            string         `json:"phone"`
	City             string         `json:"city"`
	Skills           datatypes.JSON `json:"skills"` // JSON array of skill strings
	HourlyRate       float64        `json:"hourly_rate"`
	ExperienceYears  uint           `json:"experience_years"`
	Bio              string         `json:"bio"`
	IDProofURL       string         `json:"id_proof_url"`
	IDProofPublicID  string         `json:"-"` // storage handle, needed to replace the upload
	ProfileCompleted bool           `json:"profile_completed" gorm:"default:false"`
}
