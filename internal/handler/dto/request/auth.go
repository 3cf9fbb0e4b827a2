package request

import (
	"huellitas/internal/domain/user"
)

type RegisterRequest struct {
	Nombre   string `json:"nombre" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Telefono string `json:"telefono"`
}

func (r *RegisterRequest) ToDomain() (user.Name, user.Email, user.Password, error) {
	name, err := user.NewName(r.Nombre)
	if err != nil {
		return user.Name{}, user.Email{}, user.Password{}, err
	}
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Name{}, user.Email{}, user.Password{}, err
	}
	password, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Name{}, user.Email{}, user.Password{}, err
	}
	return name, email, password, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
