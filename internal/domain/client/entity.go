package client

import (
	"errors"
	"strings"
)

var ErrEmptyName = errors.New("client name cannot be empty")

// Client ids are timestamp-derived tokens assigned at registration.
type Client struct {
	ID    string
	Name  string
	Email string
	Phone string
}

func New(id, name, email, phone string) (*Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	return &Client{
		ID:    id,
		Name:  name,
		Email: email,
		Phone: phone,
	}, nil
}
