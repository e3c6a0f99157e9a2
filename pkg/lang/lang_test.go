package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		ext  string
		want Kind
	}{
		{".js", KindScript},
		{".tsx", KindScript},
		{".cjs", KindScript},
		{".py", KindPython},
		{".html", KindMarkup},
		{".htm", KindMarkup},
		{".css", KindStylesheet},
		{".scss", KindStylesheet},
		{".json", KindNone},
		{".md", KindNone},
		{"", KindNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.ext), "KindOf(%q)", tt.ext)
	}
}

func TestKindOfNormalizes(t *testing.T) {
	assert.Equal(t, KindScript, KindOf("JS"))
	assert.Equal(t, KindScript, KindOf("js"))
	assert.Equal(t, KindMarkup, KindOf(".HTML"))
}

func TestCommentStyle(t *testing.T) {
	s, ok := CommentStyle(".py")
	assert.True(t, ok)
	assert.Equal(t, "# ", s.Prefix)
	assert.Equal(t, "", s.Suffix)

	s, ok = CommentStyle(".html")
	assert.True(t, ok)
	assert.Equal(t, "<!-- ", s.Prefix)
	assert.Equal(t, " -->", s.Suffix)

	_, ok = CommentStyle(".exe")
	assert.False(t, ok)
}

func TestCommentable(t *testing.T) {
	assert.True(t, Commentable(".js"))
	assert.True(t, Commentable(".css"))
	assert.False(t, Commentable(".json"), "json has no comment syntax")
	assert.False(t, Commentable(".png"))
}

func TestKnownExtensions(t *testing.T) {
	exts := KnownExtensions()
	assert.Contains(t, exts, ".js")
	assert.Contains(t, exts, ".py")
	assert.Contains(t, exts, ".html")
	assert.NotContains(t, exts, ".json", "default allowlist mirrors the comment-style table")
	assert.IsIncreasing(t, exts)
}

func TestExt(t *testing.T) {
	assert.Equal(t, ".js", Ext("/proj/web/App.JS"))
	assert.Equal(t, "", Ext("/proj/Makefile"))
}
