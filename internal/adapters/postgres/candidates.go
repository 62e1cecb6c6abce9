package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"ats/internal/domain"
)

// ContactInfo returns empty details for candidates with no row yet.
func (db *DB) ContactInfo(ctx context.Context, candidateID string) (domain.ContactInfo, error) {
	var info domain.ContactInfo
	err := db.Pool.QueryRow(ctx, `SELECT email, phone FROM candidates WHERE id = $1`, candidateID).Scan(&info.Email, &info.Phone)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ContactInfo{}, nil
	}
	if err != nil {
		return domain.ContactInfo{}, fmt.Errorf("select candidate contact: %w", err)
	}
	return info, nil
}

func (db *DB) UpdateContactInfo(ctx context.Context, candidateID string, info domain.ContactInfo) (domain.ContactInfo, error) {
	var merged domain.ContactInfo
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO candidates (id, email, phone)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET email = COALESCE(NULLIF(EXCLUDED.email, ''), candidates.email),
		    phone = COALESCE(NULLIF(EXCLUDED.phone, ''), candidates.phone)
		RETURNING email, phone
	`, candidateID, strings.TrimSpace(info.Email), strings.TrimSpace(info.Phone)).Scan(&merged.Email, &merged.Phone)
	if err != nil {
		return domain.ContactInfo{}, fmt.Errorf("upsert candidate contact: %w", err)
	}
	return merged, nil
}
