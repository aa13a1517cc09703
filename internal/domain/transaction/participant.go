package transaction

import (
	"errors"
	"strings"
)

var (
	ErrEmptyFullName = errors.New("participant full name cannot be empty")
	ErrInvalidEmail  = errors.New("participant email is invalid")
	ErrEmptyPhone    = errors.New("participant phone cannot be empty")
)

// Participant is the contact data collected by the registration form. It is
// passed through unmodified to both backend phases.
type Participant struct {
	fullName string
	email    string
	phone    string
	note     string
}

func NewParticipant(fullName, email, phone, note string) (Participant, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if fullName == "" {
		return Participant{}, ErrEmptyFullName
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return Participant{}, ErrInvalidEmail
	}
	if phone == "" {
		return Participant{}, ErrEmptyPhone
	}

	return Participant{
		fullName: fullName,
		email:    email,
		phone:    phone,
		note:     strings.TrimSpace(note),
	}, nil
}

func (p Participant) FullName() string { return p.fullName }
func (p Participant) Email() string    { return p.email }
func (p Participant) Phone() string    { return p.phone }
func (p Participant) Note() string     { return p.note }
