package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveFeatureName(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"login.csv", "Login"},
		{"user_login.csv", "User Login"},
		{"user-login.json", "User Login"},
		{"payment-processing-decision-table.md", "Payment Processing"},
		{"tables/refund_flow.markdown", "Refund Flow"},
		{"a.csv", "A"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveFeatureName(tc.path))
		})
	}
}
