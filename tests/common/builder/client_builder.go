//go:build unit || e2e

package builder

import (
	domclient "locadora-api/internal/domain/client"
	reqdto "locadora-api/internal/handler/dto/request"
	"locadora-api/internal/usecase/queries"
)

type ClientBuilder struct {
	ID    string
	Name  string
	Email string
	Phone string
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		ID:    "00001756400000000000",
		Name:  "Maria Silva",
		Email: "maria@example.com",
		Phone: "+55 11 99999-0000",
	}
}

func (b *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(b)
	return b
}

func (b *ClientBuilder) WithID(id string) *ClientBuilder {
	b.ID = id
	return b
}

func (b *ClientBuilder) WithName(name string) *ClientBuilder {
	b.Name = name
	return b
}

func (b *ClientBuilder) BuildDomain() (*domclient.Client, error) {
	return domclient.New(b.ID, b.Name, b.Email, b.Phone)
}

func (b *ClientBuilder) BuildRegisterRequestDTO() reqdto.RegisterClientRequest {
	return reqdto.RegisterClientRequest{
		Name:  b.Name,
		Email: b.Email,
		Phone: b.Phone,
	}
}

func (b *ClientBuilder) BuildView() *queries.ClientView {
	return &queries.ClientView{
		ID:    b.ID,
		Name:  b.Name,
		Email: b.Email,
		Phone: b.Phone,
	}
}
