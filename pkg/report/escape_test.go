package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLink(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain.org`, `plain.org`},
		{`notes [draft].org`, `notes \[draft\].org`},
		{`a|b`, `a\|b`},
		{`back\slash`, `back\\slash`},
		{`all [of] them|at\once`, `all \[of\] them\|at\\once`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeLink(tt.in))
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		`plain`,
		`[start`,
		`end]`,
		`pipe|pipe`,
		`trailing\`,
		`\[mixed\] | nested [[deep]]`,
	}
	for _, in := range inputs {
		assert.Equal(t, in, UnescapeLink(EscapeLink(in)), "input %q", in)
	}
}
