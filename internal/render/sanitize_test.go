package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/obops/obadmin/internal/result"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		cell result.Cell
		want string
	}{
		{"null is empty", result.Null(), ""},
		{"plain text", result.Text("hello"), "hello"},
		{"integer", result.Int(42), "42"},
		{"newlines become spaces", result.Text("a\nb"), "a b"},
		{"carriage return and tab", result.Text("a\r\tb"), "a b"},
		{"whitespace runs collapse", result.Text("a   b\n\n  c"), "a b c"},
		{"leading and trailing trimmed", result.Text("  padded  "), "padded"},
		{"invalid utf8 replaced", result.Bytes([]byte{0xff, 'o', 'k', 0xfe}), "�ok�"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.cell))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{"a\nb", "  x\t y ", "plain", "multi   space"}
	for _, in := range inputs {
		once := Clean(result.Text(in))
		assert.Equal(t, once, Clean(result.Text(once)), "input %q", in)
	}
}

func TestCleanMax(t *testing.T) {
	long := strings.Repeat("abcde ", 20)

	t.Run("under limit unchanged", func(t *testing.T) {
		assert.Equal(t, "short", CleanMax(result.Text("short"), 10))
	})

	t.Run("zero means no limit", func(t *testing.T) {
		assert.Equal(t, Clean(result.Text(long)), CleanMax(result.Text(long), 0))
	})

	t.Run("truncation law", func(t *testing.T) {
		full := Clean(result.Text(long))
		for _, max := range []int{1, 5, 24, 40} {
			got := CleanMax(result.Text(long), max)
			assert.Equal(t, max, utf8.RuneCountInString(got), "max %d", max)
			assert.True(t, strings.HasSuffix(got, Ellipsis), "max %d", max)
			assert.Equal(t, string([]rune(full)[:max-1]), strings.TrimSuffix(got, Ellipsis), "max %d", max)
		}
	})

	t.Run("limit counts runes not bytes", func(t *testing.T) {
		got := CleanMax(result.Text("日本語テキスト"), 4)
		assert.Equal(t, 4, utf8.RuneCountInString(got))
		assert.Equal(t, "日本語"+Ellipsis, got)
	})
}
