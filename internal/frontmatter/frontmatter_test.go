package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		fm    string
		body  string
		hadFM bool
	}{
		{"no frontmatter", "# Title\n\nHello\n", "", "# Title\n\nHello\n", false},
		{"yaml block", "---\nkey: value\n---\n# Title\n", "key: value\n", "# Title\n", true},
		{"crlf", "---\r\nkey: value\r\n---\r\n# Title\r\n", "key: value\r\n", "# Title\r\n", true},
		{"empty block", "---\n---\n# Title\n", "", "# Title\n", true},
		{"dashes later in body", "# Title\n---\nmore\n", "", "# Title\n---\nmore\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, had, err := Split([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.hadFM, had)
			assert.Equal(t, tt.fm, string(fm))
			assert.Equal(t, tt.body, string(body))
		})
	}
}

func TestSplitMissingClosingDelimiter(t *testing.T) {
	_, _, had, err := Split([]byte("---\nkey: value\n# Title\n"))
	require.ErrorIs(t, err, ErrMissingClosingDelimiter)
	assert.False(t, had)
}

func TestStrip(t *testing.T) {
	body, err := Strip([]byte("---\ntitle: x\n---\nbody\n"))
	require.NoError(t, err)
	assert.Equal(t, "body\n", string(body))
}

func TestParse(t *testing.T) {
	fields, err := Parse([]byte("title: Docs\ntags: [a, b]\n"))
	require.NoError(t, err)
	assert.Equal(t, "Docs", fields["title"])
	assert.Len(t, fields["tags"], 2)

	fields, err = Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, fields)

	_, err = Parse([]byte("title: [unterminated\n"))
	require.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint([]byte("---\ntitle: Docs\nauthor: me\n---\nbody\n"))
	require.NoError(t, err)
	require.NotEmpty(t, a)

	reordered, err := Fingerprint([]byte("---\nauthor: me\ntitle: Docs\nlastmod: 2024-01-01\n---\nbody\n"))
	require.NoError(t, err)
	assert.Equal(t, a, reordered)

	changed, err := Fingerprint([]byte("---\ntitle: Docs\nauthor: me\n---\nother body\n"))
	require.NoError(t, err)
	assert.NotEqual(t, a, changed)

	plain, err := Fingerprint([]byte("body\n"))
	require.NoError(t, err)
	assert.NotEqual(t, a, plain)

	_, err = Fingerprint([]byte("---\nopen\n"))
	require.Error(t, err)
}
