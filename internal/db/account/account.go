package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"just2kleen/internal/core/domain/account"
	c "just2kleen/internal/core/domain/common"
	"just2kleen/internal/db/sqlcgen"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

// PgxAccountRepository reads and updates the two Supabase profile tables.
// Every method dispatches on the account role, since cleaners and clients
// live in separate tables with identical shapes.
type PgxAccountRepository struct {
	queries *sqlcgen.Queries
}

func NewPgxRepository(db sqlcgen.DBTX) *PgxAccountRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxAccountRepository{queries: sqlcgen.New(db)}
}

func (r *PgxAccountRepository) ListUnverified(
	ctx context.Context,
	role account.Role,
) ([]account.Account, error) {
	switch role {
	case account.RoleCleaner:
		rows, err := r.queries.ListUnverifiedCleaners(ctx)
		if err != nil {
			return nil, err
		}
		accounts := make([]account.Account, 0, len(rows))
		for _, row := range rows {
			accounts = append(accounts, decodeCleaner(row))
		}
		return accounts, nil
	case account.RoleClient:
		rows, err := r.queries.ListUnverifiedClients(ctx)
		if err != nil {
			return nil, err
		}
		accounts := make([]account.Account, 0, len(rows))
		for _, row := range rows {
			accounts = append(accounts, decodeClient(row))
		}
		return accounts, nil
	}
	return nil, fmt.Errorf("unknown account role: %s", role)
}

func (r *PgxAccountRepository) SetVerificationToken(
	ctx context.Context,
	role account.Role,
	email c.Email,
	token account.VerificationToken,
) error {
	switch role {
	case account.RoleCleaner:
		return r.queries.SetCleanerVerificationToken(ctx, sqlcgen.SetCleanerVerificationTokenParams{
			VerificationToken: sql.NullString{String: string(token), Valid: true},
			Email:             string(email),
		})
	case account.RoleClient:
		return r.queries.SetClientVerificationToken(ctx, sqlcgen.SetClientVerificationTokenParams{
			VerificationToken: sql.NullString{String: string(token), Valid: true},
			Email:             string(email),
		})
	}
	return fmt.Errorf("unknown account role: %s", role)
}

func (r *PgxAccountRepository) GetByVerificationToken(
	ctx context.Context,
	token account.VerificationToken,
) (a account.Account, err error) {
	encodedToken := sql.NullString{String: string(token), Valid: true}

	cleaner, err := r.queries.GetCleanerByVerificationToken(ctx, encodedToken)
	if err == nil {
		return decodeCleaner(cleaner), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return a, err
	}

	client, err := r.queries.GetClientByVerificationToken(ctx, encodedToken)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrInvalidVerificationToken
	}
	if err != nil {
		return a, err
	}
	return decodeClient(client), nil
}

func (r *PgxAccountRepository) VerifyByToken(
	ctx context.Context,
	token account.VerificationToken,
) (a account.Account, err error) {
	encodedToken := sql.NullString{String: string(token), Valid: true}

	cleaner, err := r.queries.VerifyCleanerByToken(ctx, encodedToken)
	if err == nil {
		return decodeCleaner(cleaner), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return a, err
	}

	client, err := r.queries.VerifyClientByToken(ctx, encodedToken)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrInvalidVerificationToken
	}
	if err != nil {
		return a, err
	}
	return decodeClient(client), nil
}

func (r *PgxAccountRepository) GetByEmail(
	ctx context.Context,
	role account.Role,
	email c.Email,
) (a account.Account, err error) {
	switch role {
	case account.RoleCleaner:
		cleaner, err := r.queries.GetCleanerByEmail(ctx, string(email))
		if errors.Is(err, pgx.ErrNoRows) {
			return a, account.ErrAccountDoesNotExist
		}
		if err != nil {
			return a, err
		}
		return decodeCleaner(cleaner), nil
	case account.RoleClient:
		client, err := r.queries.GetClientByEmail(ctx, string(email))
		if errors.Is(err, pgx.ErrNoRows) {
			return a, account.ErrAccountDoesNotExist
		}
		if err != nil {
			return a, err
		}
		return decodeClient(client), nil
	}
	return a, fmt.Errorf("unknown account role: %s", role)
}

func (r *PgxAccountRepository) SetResetToken(
	ctx context.Context,
	input account.SetResetTokenInput,
) (a account.Account, err error) {
	encodedToken := sql.NullString{String: string(input.ResetToken), Valid: true}
	encodedExpiry := pgtype.Timestamptz{Time: input.TokenExpiry, Status: pgtype.Present}

	switch input.Role {
	case account.RoleCleaner:
		cleaner, err := r.queries.SetCleanerResetToken(ctx, sqlcgen.SetCleanerResetTokenParams{
			ResetToken:  encodedToken,
			TokenExpiry: encodedExpiry,
			Email:       string(input.Email),
		})
		if errors.Is(err, pgx.ErrNoRows) {
			return a, account.ErrAccountDoesNotExist
		}
		if err != nil {
			return a, err
		}
		return decodeCleaner(cleaner), nil
	case account.RoleClient:
		client, err := r.queries.SetClientResetToken(ctx, sqlcgen.SetClientResetTokenParams{
			ResetToken:  encodedToken,
			TokenExpiry: encodedExpiry,
			Email:       string(input.Email),
		})
		if errors.Is(err, pgx.ErrNoRows) {
			return a, account.ErrAccountDoesNotExist
		}
		if err != nil {
			return a, err
		}
		return decodeClient(client), nil
	}
	return a, fmt.Errorf("unknown account role: %s", input.Role)
}

func (r *PgxAccountRepository) GetByResetToken(
	ctx context.Context,
	role account.Role,
	token account.ResetToken,
) (a account.Account, err error) {
	encodedToken := sql.NullString{String: string(token), Valid: true}

	switch role {
	case account.RoleCleaner:
		cleaner, err := r.queries.GetCleanerByResetToken(ctx, encodedToken)
		if errors.Is(err, pgx.ErrNoRows) {
			return a, account.ErrInvalidResetToken
		}
		if err != nil {
			return a, err
		}
		return decodeCleaner(cleaner), nil
	case account.RoleClient:
		client, err := r.queries.GetClientByResetToken(ctx, encodedToken)
		if errors.Is(err, pgx.ErrNoRows) {
			return a, account.ErrInvalidResetToken
		}
		if err != nil {
			return a, err
		}
		return decodeClient(client), nil
	}
	return a, fmt.Errorf("unknown account role: %s", role)
}

func (r *PgxAccountRepository) SetPassword(
	ctx context.Context,
	role account.Role,
	id account.ID,
	password account.PasswordHash,
) error {
	encodedPassword := sql.NullString{String: string(password), Valid: true}

	switch role {
	case account.RoleCleaner:
		return r.queries.SetCleanerPassword(ctx, sqlcgen.SetCleanerPasswordParams{
			Password: encodedPassword,
			ID:       uuid.UUID(id),
		})
	case account.RoleClient:
		return r.queries.SetClientPassword(ctx, sqlcgen.SetClientPasswordParams{
			Password: encodedPassword,
			ID:       uuid.UUID(id),
		})
	}
	return fmt.Errorf("unknown account role: %s", role)
}

func decodeCleaner(row sqlcgen.CleanersMainProfile) account.Account {
	return account.Account{
		ID:         account.ID(row.ID),
		Role:       account.RoleCleaner,
		Email:      c.NewEmail(row.Email),
		FullName:   row.FullName,
		IsVerified: row.IsVerified,
		VerificationToken: c.NewOptional(
			account.VerificationToken(row.VerificationToken.String),
			row.VerificationToken.Valid,
		),
		PasswordHash: c.NewOptional(account.PasswordHash(row.Password.String), row.Password.Valid),
		ResetToken:   c.NewOptional(account.ResetToken(row.ResetToken.String), row.ResetToken.Valid),
		TokenExpiry:  c.NewOptional(row.TokenExpiry.Time, row.TokenExpiry.Status == pgtype.Present),
	}
}

func decodeClient(row sqlcgen.ClientsMainProfile) account.Account {
	return account.Account{
		ID:         account.ID(row.ID),
		Role:       account.RoleClient,
		Email:      c.NewEmail(row.Email),
		FullName:   row.FullName,
		IsVerified: row.IsVerified,
		VerificationToken: c.NewOptional(
			account.VerificationToken(row.VerificationToken.String),
			row.VerificationToken.Valid,
		),
		PasswordHash: c.NewOptional(account.PasswordHash(row.Password.String), row.Password.Valid),
		ResetToken:   c.NewOptional(account.ResetToken(row.ResetToken.String), row.ResetToken.Valid),
		TokenExpiry:  c.NewOptional(row.TokenExpiry.Time, row.TokenExpiry.Status == pgtype.Present),
	}
}
