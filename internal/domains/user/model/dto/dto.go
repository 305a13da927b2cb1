package dto

import (
	"arabina/internal/domains/user/model"
)

type UserResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	TenantID *string `json:"tenant_id,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Active   bool    `json:"active"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.TenantID = model.TenantID
	r.FullName = model.FullName
	r.Active = model.Active
}
