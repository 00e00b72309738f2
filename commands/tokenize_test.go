package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	cases := map[string]struct {
		line     string
		expected Command
	}{
		"empty":            {"", nil},
		"only-delimiters":  {" \t\r\n\a  \t", nil},
		"single":           {"ls", Command{"ls"}},
		"interior-spaces":  {"cd   /tmp", Command{"cd", "/tmp"}},
		"leading-trailing": {"  cd /tmp  \n", Command{"cd", "/tmp"}},
		"mixed-delimiters": {"echo\ta\rb\nc\ad", Command{"echo", "a", "b", "c", "d"}},
		"quotes-kept":      {`echo "a b"`, Command{"echo", `"a`, `b"`}},
		"no-expansion":     {"echo $HOME ~", Command{"echo", "$HOME", "~"}},
		"unicode":          {"echo héllo  wörld", Command{"echo", "héllo", "wörld"}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			actual := Tokenize(tc.line)

			if tc.expected == nil {
				assert.Empty(t, actual)
				assert.True(t, actual.Empty())
				return
			}
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestTokenizeLongLine(t *testing.T) {
	var words []string
	for i := 0; i < 5000; i++ {
		words = append(words, strings.Repeat("x", i%7+1))
	}

	actual := Tokenize(strings.Join(words, " \t "))
	assert.Equal(t, Command(words), actual)
}

func TestCommand(t *testing.T) {
	cmd := Command{"bg", "sleep", "10"}

	assert.Equal(t, "bg", cmd.Name())
	assert.Equal(t, []string{"sleep", "10"}, cmd.Args())
	assert.Equal(t, "bg sleep 10", cmd.String())

	arg, ok := cmd.Arg(2)
	assert.True(t, ok)
	assert.Equal(t, "10", arg)

	// Past the end is the terminator.
	_, ok = cmd.Arg(3)
	assert.False(t, ok)
	_, ok = cmd.Arg(-1)
	assert.False(t, ok)

	var empty Command
	assert.Equal(t, "", empty.Name())
	assert.Nil(t, empty.Args())
	_, ok = empty.Arg(0)
	assert.False(t, ok)
}
