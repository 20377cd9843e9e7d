package dto

import "time"

type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=128"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=128"`
	Country   *string `json:"country,omitempty" validate:"omitempty,max=128"`
	Title     *string `json:"title,omitempty" validate:"omitempty,max=256"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=26"`
	Age       *int    `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Country   string    `json:"country"`
	Title     string    `json:"title"`
	Phone     string    `json:"phone"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}
