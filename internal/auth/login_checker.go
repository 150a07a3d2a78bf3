package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrNotLoggedIn = errors.New("not logged in")

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// PatientID resolves a session token to the owning patient.
// Returns ErrNotLoggedIn for unknown, expired or non-patient sessions.
func (lc *LoginChecker) PatientID(ctx context.Context, token string) (int, error) {
	subject, err := lc.subject(ctx, token)
	if err != nil {
		return 0, err
	}

	if !strings.HasPrefix(subject, patientSubjectPrefix) {
		return 0, ErrNotLoggedIn
	}

	patientID, err := strconv.Atoi(strings.TrimPrefix(subject, patientSubjectPrefix))
	if err != nil {
		return 0, fmt.Errorf("malformed patient session subject: %w", err)
	}

	return patientID, nil
}

// IsDoctor reports whether the token belongs to a live doctor session.
func (lc *LoginChecker) IsDoctor(ctx context.Context, token string) (bool, error) {
	subject, err := lc.subject(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotLoggedIn) {
			return false, nil
		}
		return false, err
	}
	return subject == doctorSubject, nil
}

func (lc *LoginChecker) subject(ctx context.Context, token string) (string, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := lc.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotLoggedIn
		}
		return "", err
	}

	subject, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		return "", err
	}

	if time.Since(createdAt) > lc.ttl {
		return "", ErrNotLoggedIn
	}

	return subject, nil
}
