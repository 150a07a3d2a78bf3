package auth

import "context"

// LoginTestChecker is used in unit and development testing.
type LoginTestChecker struct {
	PatientsByToken map[string]int
	DoctorTokens    map[string]bool
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		PatientsByToken: make(map[string]int),
		DoctorTokens:    make(map[string]bool),
	}
}

func (tc *LoginTestChecker) PatientID(_ context.Context, token string) (int, error) {
	patientID, ok := tc.PatientsByToken[token]
	if !ok {
		return 0, ErrNotLoggedIn
	}
	return patientID, nil
}

func (tc *LoginTestChecker) IsDoctor(_ context.Context, token string) (bool, error) {
	return tc.DoctorTokens[token], nil
}
