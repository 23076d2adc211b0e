package models

import (
	"time"
)

const (
	RoleLabor  = "labor"
	RoleClient = "client"
)

type User struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name"`
	FullName     string        `json:"full_name"`
	Email        string        `json:"email" gorm:"unique"`
	Password     string        `json:"password,omitempty"`
	Role         string        `json:"role"` // "labor" or "client", fixed at signup
	Address      string        `json:"address"`
	IsVerified   bool          `json:"is_verified"`
	LaborProfile *LaborProfile `json:"labor_profile,omitempty" gorm:"foreignKey:UserID"`
	ClientJobs   []Job         `json:"client_jobs,omitempty" gorm:"foreignKey:ClientID"`
	AssignedJobs []Job         `json:"assigned_jobs,omitempty" gorm:"foreignKey:LaborID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
