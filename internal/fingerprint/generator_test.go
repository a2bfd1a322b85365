package fingerprint

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/bundler/internal/asset"
	oerrors "github.com/opmodel/bundler/internal/errors"
	"github.com/opmodel/bundler/internal/testutil"
)

var querySafe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input   string
		want    Algorithm
		wantErr bool
	}{
		{"", SHA256, false},
		{"sha256", SHA256, false},
		{"SHA256", SHA256, false},
		{"xxhash", XXHash, false},
		{"xxh64", XXHash, false},
		{"md5", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, oerrors.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGeneratorFileVersion(t *testing.T) {
	ctx := context.Background()

	for _, algo := range []Algorithm{SHA256, XXHash} {
		t.Run(string(algo), func(t *testing.T) {
			fs := memFs(t, map[string]string{
				"/js/a.js":    "console.log('a');",
				"/js/copy.js": "console.log('a');",
				"/js/b.js":    "console.log('b');",
			})
			gen := NewGenerator(fs, algo)

			a, err := gen.FileVersion(ctx, "/js/a.js")
			require.NoError(t, err)
			assert.Regexp(t, querySafe, a.String())

			again, err := gen.FileVersion(ctx, "/js/a.js")
			require.NoError(t, err)
			assert.Equal(t, a, again, "same content should yield same token")

			copyTok, err := gen.FileVersion(ctx, "/js/copy.js")
			require.NoError(t, err)
			assert.Equal(t, a, copyTok, "token depends on content, not path")

			b, err := gen.FileVersion(ctx, "/js/b.js")
			require.NoError(t, err)
			assert.NotEqual(t, a, b)
		})
	}
}

func TestGeneratorTokenFormat(t *testing.T) {
	fs := memFs(t, map[string]string{"/a.js": "x"})

	sha, err := NewGenerator(fs, SHA256).FileVersion(context.Background(), "/a.js")
	require.NoError(t, err)
	assert.Len(t, sha.String(), 43, "unpadded base64url of 32 bytes")

	xx, err := NewGenerator(fs, XXHash).FileVersion(context.Background(), "/a.js")
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{16}$`, xx.String())
}

func TestGeneratorContentSensitivity(t *testing.T) {
	ctx := context.Background()
	fs := memFs(t, map[string]string{"/js/a.js": "var a = 1;"})
	gen := NewGenerator(fs, SHA256)

	before, err := gen.FileVersion(ctx, "/js/a.js")
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, "/js/a.js", []byte("var a = 2;"), 0o644))

	after, err := gen.FileVersion(ctx, "/js/a.js")
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}

func TestGeneratorPathForms(t *testing.T) {
	ctx := context.Background()
	fs := memFs(t, map[string]string{"/js/a.js": "a"})
	gen := NewGenerator(fs, SHA256)

	want, err := gen.FileVersion(ctx, "/js/a.js")
	require.NoError(t, err)

	for _, path := range []string{"js/a.js", "~/js/a.js", "/js/a.js?x=1"} {
		t.Run(path, func(t *testing.T) {
			got, err := gen.FileVersion(ctx, path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestGeneratorMissingFile(t *testing.T) {
	gen := NewGenerator(afero.NewMemMapFs(), SHA256)

	tok, err := gen.FileVersion(context.Background(), "/js/missing.js")
	require.Error(t, err)
	assert.Empty(t, tok)
	assert.True(t, errors.Is(err, oerrors.ErrSourceUnreadable))
}

func TestGeneratorCanceledContext(t *testing.T) {
	fs := memFs(t, map[string]string{"/js/a.js": "a"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator(fs, SHA256).FileVersion(ctx, "/js/a.js")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGeneratorAssetVersion(t *testing.T) {
	ctx := context.Background()
	fs := memFs(t, map[string]string{
		"/bundle.js": "a;b;",
		"/js/a.js":   "a;",
		"/js/b.js":   "b;",
	})
	gen := NewGenerator(fs, SHA256)
	a := asset.Asset{Route: "/bundle.js", SourceFiles: []string{"/js/a.js", "/js/b.js"}}

	tok, err := gen.AssetVersion(ctx, a)
	require.NoError(t, err)

	artifact, err := gen.FileVersion(ctx, "/bundle.js")
	require.NoError(t, err)
	assert.Equal(t, artifact, tok, "asset token fingerprints the combined artifact")

	_, err = gen.AssetVersion(ctx, asset.Asset{Route: "/missing.js"})
	assert.True(t, errors.Is(err, oerrors.ErrSourceUnreadable))
}

func TestWebRootFs(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, filepath.Join("js", "a.js"), "a")

	gen := NewGenerator(WebRootFs(dir), SHA256)
	tok, err := gen.FileVersion(context.Background(), "/js/a.js")
	require.NoError(t, err)
	assert.NotEmpty(t, tok)

	_, err = gen.FileVersion(context.Background(), "/../outside.js")
	assert.Error(t, err)
}
