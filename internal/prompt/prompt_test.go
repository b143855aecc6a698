package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obops/obadmin/internal/testutil"
)

func TestWithDefault(t *testing.T) {
	in := &testutil.ScriptReader{Lines: []string{"", "custom", "  spaced  "}}

	got, err := WithDefault(in, "Host", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", got, "empty input takes the default")

	got, err = WithDefault(in, "Host", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "custom", got)

	got, err = WithDefault(in, "Host", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "spaced", got, "input is trimmed")

	assert.Equal(t, "Host [127.0.0.1]: ", in.Prompts[0])
}

func TestWithDefaultPropagatesError(t *testing.T) {
	in := &testutil.ScriptReader{} // exhausted: io.EOF
	_, err := WithDefault(in, "Host", "x")
	assert.Error(t, err)
}
