package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedRegistry(t *testing.T) {
	r, err := parseRegistry(openersTOML)
	require.NoError(t, err)

	for _, goos := range []string{"darwin", "linux", "windows"} {
		assert.NotEmpty(t, r.Candidates(goos, KindPage), goos)
		assert.NotEmpty(t, r.Candidates(goos, KindImage), goos)
	}
	assert.Empty(t, r.Candidates("plan9", KindPage))
}

func TestRegistry_Args(t *testing.T) {
	r, err := parseRegistry(openersTOML)
	require.NoError(t, err)

	assert.Equal(t, []string{"url.dll,FileProtocolHandler", "https://x.test"}, r.Args("rundll32", "https://x.test"))
	assert.Equal(t, []string{"https://x.test"}, r.Args("xdg-open", "https://x.test"))
	assert.Equal(t, []string{"https://x.test"}, r.Args("unknown", "https://x.test"))
}

func TestRegistry_DetectKind(t *testing.T) {
	r, err := parseRegistry(openersTOML)
	require.NoError(t, err)

	tests := []struct {
		url  string
		want Kind
	}{
		{"https://upload.wikimedia.org/wikipedia/en/0/05/Up_%282009_film%29.jpg", KindImage},
		{"https://example.com/poster.PNG", KindImage},
		{"https://example.com/poster.webp?width=300", KindImage},
		{"https://upload.wikimedia.org/some/thumb", KindImage},
		{"https://en.wikipedia.org/wiki/Up_(2009_film)", KindPage},
		{"https://example.com/page.html#cast", KindPage},
		{"https://example.com/resource", KindPage},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, r.DetectKind(tt.url))
		})
	}
}

func TestRegistry_MergeUserFile(t *testing.T) {
	r, err := parseRegistry(openersTOML)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "openers.toml")
	user := `
[platforms.linux]
page = ["firefox"]

[openers.firefox]
description = "browser"
args = ["--new-tab"]
`
	require.NoError(t, os.WriteFile(path, []byte(user), 0o644))
	r.mergeFile(path)

	assert.Equal(t, []string{"firefox"}, r.Candidates("linux", KindPage))
	// Image list was not part of the override, so page candidates apply
	assert.Equal(t, []string{"firefox"}, r.Candidates("linux", KindImage))
	assert.Equal(t, []string{"--new-tab", "u"}, r.Args("firefox", "u"))
	assert.NotEmpty(t, r.Candidates("darwin", KindPage))
}

func TestRegistry_MergeIgnoresBrokenFile(t *testing.T) {
	r, err := parseRegistry(openersTOML)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "openers.toml")
	require.NoError(t, os.WriteFile(path, []byte("[platforms"), 0o644))
	r.mergeFile(path)
	r.mergeFile(filepath.Join(t.TempDir(), "missing.toml"))

	assert.Equal(t, []string{"open"}, r.Candidates("darwin", KindPage))
}

func TestParseRegistry_Invalid(t *testing.T) {
	_, err := parseRegistry([]byte("not = [valid"))
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "page", KindPage.String())
	assert.Equal(t, "image", KindImage.String())
}
