package output

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	tw := Table(&buf)
	fmt.Fprintln(tw, "text/html\t1")
	fmt.Fprintln(tw, "*/*\t0.8")
	require.NoError(t, tw.Flush())
	assert.Equal(t, "text/html  1\n*/*        0.8\n", buf.String())
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	Warn(&buf, "%d ignored", 2)
	assert.Equal(t, "Warning: 2 ignored\n", buf.String())
}
