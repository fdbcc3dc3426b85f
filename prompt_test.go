package openbankctl_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arhyth/openbankctl"
)

func TestPrompterReadLine(t *testing.T) {
	t.Run("strips the line terminator", func(tt *testing.T) {
		as := assert.New(tt)
		out := &bytes.Buffer{}
		p := openbankctl.NewPrompter(strings.NewReader("hello\r\nworld"), out)

		line, err := p.ReadLine("> ")
		as.NoError(err)
		as.Equal("hello", line)

		line, err = p.ReadLine("> ")
		as.NoError(err)
		as.Equal("world", line)
		as.Equal("> > ", out.String())
	})

	t.Run("returns ErrInputClosed at end of input", func(tt *testing.T) {
		as := assert.New(tt)
		p := openbankctl.NewPrompter(strings.NewReader(""), &bytes.Buffer{})

		_, err := p.ReadLine("> ")
		as.ErrorIs(err, openbankctl.ErrInputClosed)
	})

	t.Run("wraps read failures as ErrInputClosed", func(tt *testing.T) {
		as := assert.New(tt)
		p := openbankctl.NewPrompter(iotest.ErrReader(errors.New("tty gone")), &bytes.Buffer{})

		_, err := p.ReadLine("> ")
		as.ErrorIs(err, openbankctl.ErrInputClosed)
		as.Contains(err.Error(), "tty gone")
	})
}

func TestPrompterReadNumber(t *testing.T) {
	t.Run("re-prompts until the input parses", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		out := &bytes.Buffer{}
		p := openbankctl.NewPrompter(strings.NewReader("ten\n\n1,5\n  12.5  \n"), out)

		num, err := p.ReadNumber("Amount: ")
		reqrd.NoError(err)
		as.True(mustDecimal(tt, "12.5").Equal(num))
		as.Equal(3, strings.Count(out.String(), "Invalid input. Please enter a number.\n"))
		as.Equal(4, strings.Count(out.String(), "Amount: "))
	})

	t.Run("accepts negative and exponent forms", func(tt *testing.T) {
		as := assert.New(tt)
		p := openbankctl.NewPrompter(strings.NewReader("-3\n1e3\n"), &bytes.Buffer{})

		num, err := p.ReadNumber("")
		as.NoError(err)
		as.Equal("-3", num.String())

		num, err = p.ReadNumber("")
		as.NoError(err)
		as.Equal("1000", num.String())
	})

	t.Run("rejects inf and nan", func(tt *testing.T) {
		as := assert.New(tt)
		out := &bytes.Buffer{}
		p := openbankctl.NewPrompter(strings.NewReader("inf\nNaN\n2\n"), out)

		num, err := p.ReadNumber("")
		as.NoError(err)
		as.Equal("2", num.String())
		as.Equal(2, strings.Count(out.String(), "Invalid input. Please enter a number."))
	})

	t.Run("rejects exponents beyond float range", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		out := &bytes.Buffer{}
		p := openbankctl.NewPrompter(strings.NewReader("1e50000000\n1e2000000000\n2e-309\n1e309\n1e308\n"), out)

		num, err := p.ReadNumber("")
		reqrd.NoError(err)
		as.Equal(int32(308), num.Exponent())
		as.Equal(4, strings.Count(out.String(), "Invalid input. Please enter a number."))
	})

	t.Run("returns ErrInputClosed when input ends before a number", func(tt *testing.T) {
		as := assert.New(tt)
		p := openbankctl.NewPrompter(strings.NewReader("abc\n"), &bytes.Buffer{})

		_, err := p.ReadNumber("")
		as.ErrorIs(err, openbankctl.ErrInputClosed)
	})
}

func TestPrompterReadChoice(t *testing.T) {
	t.Run("returns the zero-based index of the first valid choice", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		out := &bytes.Buffer{}
		p := openbankctl.NewPrompter(strings.NewReader("0\n4\nx\n-1\n2\n"), out)

		idx, err := p.ReadChoice([]string{"one", "two", "three"})
		reqrd.NoError(err)
		as.Equal(1, idx)
		as.True(strings.HasPrefix(out.String(), "  1. one\n  2. two\n  3. three\nEnter your choice: "))
		as.Equal(3, strings.Count(out.String(), "Invalid choice. Please select a valid option.\n"))
		as.Equal(1, strings.Count(out.String(), "Invalid input. Please enter a number.\n"))
	})

	t.Run("accepts a final line without a newline", func(tt *testing.T) {
		as := assert.New(tt)
		p := openbankctl.NewPrompter(strings.NewReader("3"), &bytes.Buffer{})

		idx, err := p.ReadChoice([]string{"a", "b", "c"})
		as.NoError(err)
		as.Equal(2, idx)
	})

	t.Run("returns ErrInputClosed when input ends", func(tt *testing.T) {
		as := assert.New(tt)
		p := openbankctl.NewPrompter(strings.NewReader("9\n"), &bytes.Buffer{})

		idx, err := p.ReadChoice([]string{"a"})
		as.ErrorIs(err, openbankctl.ErrInputClosed)
		as.Equal(-1, idx)
	})
}

func TestPrompterOutput(t *testing.T) {
	as := assert.New(t)
	out := &bytes.Buffer{}
	p := openbankctl.NewPrompter(strings.NewReader(""), out)

	p.Header("--- Title ---")
	p.Success("saved")
	p.Failure("Error: boom")
	as.Equal("\n--- Title ---\nsaved\nError: boom\n", out.String())
}
