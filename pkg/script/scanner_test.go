package script_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMatchingClose(t *testing.T) {
	tests := []struct {
		name string
		text string
		open int
		want int
	}{
		{"empty block", "{}", 0, 1},
		{"nested", "{ { } { { } } }", 0, 14},
		{"brace in string", `{ Name("}"); }`, 0, 13},
		{"escaped quote in string", `{ Name("a\"}"); }`, 0, 16},
		{"brace in line comment", "{ // }\n}", 0, 7},
		{"comment marker inside string", "{ Url(\"http://x\"); }", 0, 19},
		{"brace in block comment", "{ /* } */ }", 0, 10},
		{"inner block", "A { B { } }", 6, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := script.FindMatchingClose(tt.text, tt.open)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindMatchingCloseErrors(t *testing.T) {
	t.Run("unbalanced", func(t *testing.T) {
		_, err := script.FindMatchingClose("{ { }", 0)
		assert.True(t, errors.IsErrorCode(err, errors.ErrStructuralCorruption))
	})

	t.Run("closing brace only inside string", func(t *testing.T) {
		_, err := script.FindMatchingClose(`{ Name("}");`, 0)
		assert.True(t, errors.IsErrorCode(err, errors.ErrStructuralCorruption))
	})

	t.Run("not an opening brace", func(t *testing.T) {
		_, err := script.FindMatchingClose("abc", 1)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

// TestFindMatchingCloseWithNoise builds blocks of known shape, injects
// strings and comments full of stray braces, and checks the scanner still
// finds the true outer close.
func TestFindMatchingCloseWithNoise(t *testing.T) {
	noise := []string{
		`Name("{");`,
		`Name("}}}");`,
		`Path("a\"{\"b");`,
		"// stray } brace\n",
		"// {{ more\n",
		`Url("//not a comment {");`,
		"/* { */",
		"Value(1.5);\n",
	}
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		depth := 1 + rng.Intn(5)
		var b strings.Builder
		for d := 0; d < depth; d++ {
			fmt.Fprintf(&b, "Block(\"b%d\")\n{\n", d)
			b.WriteString(noise[rng.Intn(len(noise))])
			b.WriteString("\n")
		}
		for d := 0; d < depth; d++ {
			b.WriteString(noise[rng.Intn(len(noise))])
			b.WriteString("\n")
			b.WriteString("}")
			if d < depth-1 {
				b.WriteString("\n")
			}
		}
		text := b.String()
		wantClose := len(text) - 1
		text += "\nTrailer(\"}\");\n}"

		open := strings.Index(text, "{")
		got, err := script.FindMatchingClose(text, open)
		require.NoError(t, err, "trial %d:\n%s", trial, text)
		assert.Equal(t, wantClose, got, "trial %d:\n%s", trial, text)
	}
}

func TestBraceDelta(t *testing.T) {
	assert.Equal(t, 1, script.BraceDelta("Pool(\"x\") {"))
	assert.Equal(t, 0, script.BraceDelta(`Name("{"); // }`))
	assert.Equal(t, -1, script.BraceDelta("}"))
	assert.Equal(t, 0, script.BraceDelta("{ }"))
}

func TestTokenizeRoundTrip(t *testing.T) {
	text := "Tag(\"volatile\")\r\n{\r\n    MeleeDamageMultiplier(\"Easy\", 0, 1.5); // x\r\n    /* c */ Name(\"a\\\"b\");\n}"
	var b strings.Builder
	for _, tok := range script.Tokenize(text) {
		b.WriteString(tok.Text(text))
	}
	assert.Equal(t, text, b.String())
}

func TestTokenizeKinds(t *testing.T) {
	text := `Foo("x", 1.5); // c`
	var kinds []script.Kind
	for _, tok := range script.Tokenize(text) {
		if !tok.Trivia() {
			kinds = append(kinds, tok.Kind)
		}
	}
	assert.Equal(t, []script.Kind{
		script.Ident, script.Punct, script.String, script.Punct,
		script.Number, script.Punct, script.Punct,
	}, kinds)
}
