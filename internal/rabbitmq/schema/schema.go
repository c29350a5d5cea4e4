package schema

import (
	"encoding/json"
)

type ConfirmationEmail struct {
	Role              string
	Email             string
	FullName          string
	VerificationToken string
}

func (m *ConfirmationEmail) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *ConfirmationEmail) Unmarshal(data []byte) error {
	return json.Unmarshal(data, m)
}
