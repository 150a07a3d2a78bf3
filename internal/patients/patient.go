package patients

import "time"

// Patient is a person under a doctor's rehabilitation program. The password
// is an opaque credential handed out by the doctor, never serialized.
type Patient struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Info      string    `json:"info"`
	CreatedAt time.Time `json:"-"`
}
