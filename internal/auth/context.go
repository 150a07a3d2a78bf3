package auth

import "context"

type contextKey int

const patientIDKey contextKey = iota

// SetPatientID attaches the authenticated patient to the request context.
// The core never reads ambient/global session state, only this context value.
func SetPatientID(ctx context.Context, patientID int) context.Context {
	return context.WithValue(ctx, patientIDKey, patientID)
}

// PatientIDFromContext returns the authenticated patient id, if any.
func PatientIDFromContext(ctx context.Context) (int, bool) {
	patientID, ok := ctx.Value(patientIDKey).(int)
	return patientID, ok
}
