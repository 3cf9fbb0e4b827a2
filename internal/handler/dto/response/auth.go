package response

import "huellitas/internal/usecase/queries"

type AuthResponse struct {
	Message string                      `json:"message"`
	Token   string                      `json:"token"`
	User    *queries.AuthorizedUserView `json:"user"`
}
