package response

import (
	"locadora-api/internal/usecase/queries"
)

type ClientResponse struct {
	ID    string `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email,omitempty"`
	Phone string `json:"telefone,omitempty"`
}

func FromClientView(view *queries.ClientView) *ClientResponse {
	return &ClientResponse{
		ID:    view.ID,
		Name:  view.Name,
		Email: view.Email,
		Phone: view.Phone,
	}
}
