package account

import (
	"context"
	"fmt"
	c "just2kleen/internal/core/domain/common"
	"sync"
	"time"

	"github.com/google/uuid"
)

type FakeRepository struct {
	Accounts    []Account
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Accounts: make([]Account, 0, 10)}
}

func (r *FakeRepository) Add(a Account) Account {
	r.lock.Lock()
	defer r.lock.Unlock()
	if a.ID == (ID{}) {
		a.ID = ID(uuid.New())
	}
	r.Accounts = append(r.Accounts, a)
	return a
}

func (r *FakeRepository) ListUnverified(ctx context.Context, role Role) ([]Account, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list unverified accounts for role %s", role)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	accounts := make([]Account, 0)
	for _, a := range r.Accounts {
		if a.Role == role && !a.IsVerified {
			accounts = append(accounts, a)
		}
	}
	return accounts, nil
}

func (r *FakeRepository) SetVerificationToken(
	ctx context.Context,
	role Role,
	email c.Email,
	token VerificationToken,
) error {
	if r.ReturnError {
		return fmt.Errorf("could not set verification token for %s", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Accounts {
		if a.Role == role && a.Email == email {
			r.Accounts[ix].VerificationToken = c.NewOptional(token, true)
			return nil
		}
	}
	return ErrAccountDoesNotExist
}

func (r *FakeRepository) GetByVerificationToken(ctx context.Context, token VerificationToken) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not get account by verification token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Accounts {
		if a.VerificationToken.IsPresent && a.VerificationToken.Value == token {
			return a, nil
		}
	}
	return a, ErrInvalidVerificationToken
}

func (r *FakeRepository) VerifyByToken(ctx context.Context, token VerificationToken) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not verify account by token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Accounts {
		if !a.IsVerified && a.VerificationToken.IsPresent && a.VerificationToken.Value == token {
			r.Accounts[ix].IsVerified = true
			r.Accounts[ix].VerificationToken = c.NewOptional(VerificationToken(""), false)
			return r.Accounts[ix], nil
		}
	}
	return a, ErrInvalidVerificationToken
}

func (r *FakeRepository) GetByEmail(ctx context.Context, role Role, email c.Email) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not get account by email %s", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Accounts {
		if a.Role == role && a.Email == email {
			return a, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeRepository) SetResetToken(ctx context.Context, input SetResetTokenInput) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not set reset token for %s", input.Email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Accounts {
		if a.Role == input.Role && a.Email == input.Email {
			r.Accounts[ix].ResetToken = c.NewOptional(input.ResetToken, true)
			r.Accounts[ix].TokenExpiry = c.NewOptional(input.TokenExpiry, true)
			return r.Accounts[ix], nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeRepository) GetByResetToken(ctx context.Context, role Role, token ResetToken) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not get account by reset token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Accounts {
		if a.Role == role && a.ResetToken.IsPresent && a.ResetToken.Value == token {
			return a, nil
		}
	}
	return a, ErrInvalidResetToken
}

func (r *FakeRepository) SetPassword(ctx context.Context, role Role, id ID, password PasswordHash) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password for account %s", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Accounts {
		if a.Role == role && a.ID == id {
			r.Accounts[ix].PasswordHash = c.NewOptional(password, true)
			r.Accounts[ix].ResetToken = c.NewOptional(ResetToken(""), false)
			r.Accounts[ix].TokenExpiry = c.NewOptional(time.Time{}, false)
			return nil
		}
	}
	return ErrAccountDoesNotExist
}

func (r *FakeRepository) GetByID(id ID) (Account, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

type FakeVerificationTokenGenerator struct {
	Token VerificationToken
}

func NewFakeVerificationTokenGenerator(token string) *FakeVerificationTokenGenerator {
	return &FakeVerificationTokenGenerator{Token: VerificationToken(token)}
}

func (g *FakeVerificationTokenGenerator) GenerateVerificationToken() VerificationToken {
	return g.Token
}

type FakeResetTokenGenerator struct {
	Token ResetToken
}

func NewFakeResetTokenGenerator(token string) *FakeResetTokenGenerator {
	return &FakeResetTokenGenerator{Token: ResetToken(token)}
}

func (g *FakeResetTokenGenerator) GenerateResetToken() ResetToken {
	return g.Token
}

type FakeConfirmationEmailSender struct {
	Sent        []Account
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeConfirmationEmailSender() *FakeConfirmationEmailSender {
	return &FakeConfirmationEmailSender{}
}

func (s *FakeConfirmationEmailSender) SendConfirmationEmail(ctx context.Context, a Account) error {
	if s.ReturnError {
		return fmt.Errorf("could not send confirmation email to %s", a.Email)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, a)
	return nil
}

func (s *FakeConfirmationEmailSender) SentCount() int {
	return len(s.Sent)
}

type FakeConfirmationEmailScheduler struct {
	Scheduled   []Account
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeConfirmationEmailScheduler() *FakeConfirmationEmailScheduler {
	return &FakeConfirmationEmailScheduler{}
}

func (s *FakeConfirmationEmailScheduler) ScheduleConfirmationEmail(ctx context.Context, a Account) error {
	if s.ReturnError {
		return fmt.Errorf("could not schedule confirmation email for %s", a.Email)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Scheduled = append(s.Scheduled, a)
	return nil
}

type FakePasswordResetEmailSender struct {
	Sent        []Account
	SentTokens  []ResetToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetEmailSender() *FakePasswordResetEmailSender {
	return &FakePasswordResetEmailSender{}
}

func (s *FakePasswordResetEmailSender) SendPasswordResetEmail(ctx context.Context, a Account, token ResetToken) error {
	if s.ReturnError {
		return fmt.Errorf("could not send password reset email to %s", a.Email)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, a)
	s.SentTokens = append(s.SentTokens, token)
	return nil
}

func (s *FakePasswordResetEmailSender) SentCount() int {
	return len(s.Sent)
}

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	return PasswordHash(fmt.Sprintf("hashed::%s", string(password))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}
