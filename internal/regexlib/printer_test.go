package regexlib

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/", "∅"},
		{"/ *", "ε"},
		{"a", "a"},
		{"a b +", "a|b"},
		{"a b .", "ab"},
		{"a b + c .", "(a|b)c"},
		{"a b c . +", "a|bc"},
		{"a b . *", "(ab)*"},
		{"a * *", "(a*)*"},
		{"a b + * c .", "(a|b)*c"},
		{"/ * a +", "ε|a"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Infix(MustParse(tt.in)))
		})
	}
}

func TestPostfix(t *testing.T) {
	assert.Equal(t, "a b + * c .", Postfix(MustParse("a b+* c.")))
	assert.Equal(t, "/ *", Postfix(Epsilon()))
}

func TestExprString(t *testing.T) {
	e := MustParse("a b + *")
	assert.Equal(t, "*+ab", e.String())
	assert.Equal(t, 4, e.Size())
	assert.Equal(t, 3, e.Depth())
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, MustParse("a / * .")))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph G {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `n0 [label="·"];`)
	assert.Contains(t, out, `n1 [label="a"];`)
	assert.Contains(t, out, `n2 [label="ε"];`)
	assert.Contains(t, out, "n0 -> n1;")
	assert.Contains(t, out, "n0 -> n2;")
	// ε is drawn as a leaf
	assert.NotContains(t, out, "n3")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteDOTError(t *testing.T) {
	err := WriteDOT(failingWriter{}, MustParse("a"))
	assert.EqualError(t, err, "disk full")
}
