package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedRegistrationTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{RegistrationPending, RegistrationContacted, true},
		{RegistrationContacted, RegistrationEnrolled, true},
		{RegistrationContacted, RegistrationDeclined, true},

		// No skipping ahead.
		{RegistrationPending, RegistrationEnrolled, false},
		{RegistrationPending, RegistrationDeclined, false},

		// No moving backwards out of a terminal state.
		{RegistrationEnrolled, RegistrationContacted, false},
		{RegistrationDeclined, RegistrationPending, false},
		{RegistrationEnrolled, RegistrationDeclined, false},

		{RegistrationContacted, RegistrationPending, false},
		{"GARBAGE", RegistrationContacted, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, AllowedRegistrationTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}
