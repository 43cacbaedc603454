package rental

type Status string

const (
	StatusActive    Status = "ativa"
	StatusCancelled Status = "cancelada"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCancelled:
		return true
	default:
		return false
	}
}
