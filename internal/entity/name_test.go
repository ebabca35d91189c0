package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitName(t *testing.T) {
	cases := []struct {
		name  string
		first string
		last  string
	}{
		{"Jane Doe", "Jane", "Doe"},
		{"Cher", "Cher", ""},
		{"", "", ""},
		{"   ", "", ""},
		{"Mary Ann Smith", "Mary", "Ann Smith"},
		{"  Mary   Ann\tSmith ", "Mary", "Ann Smith"},
	}

	for _, tc := range cases {
		first, last := SplitName(tc.name)
		assert.Equal(t, tc.first, first, "first name of %q", tc.name)
		assert.Equal(t, tc.last, last, "last name of %q", tc.name)
	}
}
