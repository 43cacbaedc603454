package request

type RegisterClientRequest struct {
	Name  string `json:"nome" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"telefone"`
}

// UpdateClientRequest carries only the fields to merge; absent fields stay
// untouched.
type UpdateClientRequest struct {
	Name  *string `json:"nome,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"telefone,omitempty"`
}
