package models

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type AddPointsRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Points int    `json:"points"`
	Reason string `json:"reason"`
}

type AdminCreateUserRequest struct {
	Name   string `json:"name" validate:"required,max=255"`
	Points int    `json:"points" validate:"min=0"`
}

type AddPointsResponse struct {
	Success bool  `json:"success"`
	User    *User `json:"user"`
}
