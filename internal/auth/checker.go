package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

type Checker interface {
	PatientID(ctx context.Context, token string) (int, error)
	IsDoctor(ctx context.Context, token string) (bool, error)
}
