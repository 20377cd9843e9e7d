package dto

// ---------------- Requests ----------------

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=128"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"required,max=128"`
	LastName  string `json:"last_name" validate:"required,max=128"`
	Country   string `json:"country" validate:"omitempty,max=128"`
	Title     string `json:"title" validate:"omitempty,max=256"`
	Phone     string `json:"phone" validate:"omitempty,max=26"`
	Age       int    `json:"age" validate:"omitempty,gte=0,lte=150"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// ---------------- Responses ----------------

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
