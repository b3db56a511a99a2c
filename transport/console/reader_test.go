package console

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDisconnected = errors.New("disconnected")

func TestReader_ReadLine(t *testing.T) {
	t.Run("Returns lines in order and then EOF", func(t *testing.T) {
		// Given: input with two lines, the last one without a newline
		reader := NewReader(strings.NewReader("2 2\r\n1 3"))

		// When: reading every line
		first, err := reader.ReadLine()
		require.NoError(t, err)

		second, err := reader.ReadLine()
		require.NoError(t, err)

		_, err = reader.ReadLine()

		// Then: both lines come back without line endings and the input ends with io.EOF
		assert.Equal(t, "2 2", first)
		assert.Equal(t, "1 3", second)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Empty input is EOF", func(t *testing.T) {
		_, err := NewReader(strings.NewReader("")).ReadLine()

		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Lines longer than the buffer are read whole", func(t *testing.T) {
		// Given: a 70000 byte line followed by a move
		long := strings.Repeat("x", 70000)
		reader := NewReader(strings.NewReader(long + "\n1 1\n"))

		// When: reading both lines
		first, err := reader.ReadLine()
		require.NoError(t, err)

		second, err := reader.ReadLine()
		require.NoError(t, err)

		// Then: the long line comes back intact and reading resumes after it
		assert.Len(t, first, 70000)
		assert.Equal(t, "1 1", second)
	})

	t.Run("Read failures are wrapped", func(t *testing.T) {
		// Given: a reader that fails
		reader := NewReader(iotest.ErrReader(errDisconnected))

		// When: reading a line
		_, err := reader.ReadLine()

		// Then: the underlying error is returned, not EOF
		require.ErrorIs(t, err, errDisconnected)
		assert.NotErrorIs(t, err, io.EOF)
	})
}
