package memory

import (
	"context"

	"ats/internal/domain"
)

type contactRecord struct {
	email string
	phone string
}

// PutCandidate seeds contact details for a candidate.
func (s *Store) PutCandidate(candidateID string, info domain.ContactInfo) {
	s.candidatesMu.Lock()
	defer s.candidatesMu.Unlock()
	s.candidates[candidateID] = contactRecord{email: info.Email, phone: info.Phone}
}

// ContactInfo returns empty details for unknown candidates; the resolver
// treats that as missing data rather than an error.
func (s *Store) ContactInfo(ctx context.Context, candidateID string) (domain.ContactInfo, error) {
	s.candidatesMu.RLock()
	defer s.candidatesMu.RUnlock()
	rec := s.candidates[candidateID]
	return domain.ContactInfo{Email: rec.email, Phone: rec.phone}, nil
}

func (s *Store) UpdateContactInfo(ctx context.Context, candidateID string, info domain.ContactInfo) (domain.ContactInfo, error) {
	s.candidatesMu.Lock()
	defer s.candidatesMu.Unlock()
	rec := s.candidates[candidateID]
	merged := domain.ContactInfo{Email: rec.email, Phone: rec.phone}.Merge(info)
	s.candidates[candidateID] = contactRecord{email: merged.Email, phone: merged.Phone}
	return merged, nil
}
