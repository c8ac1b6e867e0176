// Package chatsvc - Test cắt preview của lastMessage.
package chatsvc

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncatePreview(t *testing.T) {
	// Chuỗi ngắn giữ nguyên
	assert.Equal(t, "xin chào", truncatePreview("xin chào", previewMaxRunes))

	// Cắt theo số rune, không phải số byte
	long := strings.Repeat("a", 119) + "chào"
	got := truncatePreview(long, previewMaxRunes)
	assert.Equal(t, previewMaxRunes, utf8.RuneCountInString(got))
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("a", 119)+"c", got)
}

func TestTruncatePreviewRuneBoundary(t *testing.T) {
	// Tin nhắn toàn ký tự có dấu: mỗi rune nhiều byte, cắt theo byte sẽ
	// để lại chuỗi UTF-8 hỏng ở cuối.
	long := strings.Repeat("ế", 200)
	got := truncatePreview(long, previewMaxRunes)
	assert.Equal(t, previewMaxRunes, utf8.RuneCountInString(got))
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("ế", previewMaxRunes), got)
}
