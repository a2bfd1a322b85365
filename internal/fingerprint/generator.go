package fingerprint

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"hash"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"

	"github.com/opmodel/bundler/internal/asset"
	oerrors "github.com/opmodel/bundler/internal/errors"
)

// Token is an opaque, query-safe version string.
type Token string

// String returns the token text.
func (t Token) String() string {
	return string(t)
}

// Algorithm selects the digest used for tokens.
type Algorithm string

const (
	// SHA256 encodes the SHA-256 digest as unpadded base64url.
	SHA256 Algorithm = "sha256"

	// XXHash encodes the XXH64 digest as 16 hex characters.
	XXHash Algorithm = "xxhash"
)

// ParseAlgorithm parses an algorithm name. Empty selects SHA256.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "", string(SHA256):
		return SHA256, nil
	case string(XXHash), "xxh64":
		return XXHash, nil
	default:
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unknown hash algorithm %q", s), "", "hash",
			"Use sha256 or xxhash")
	}
}

// Generator computes tokens from file content.
type Generator struct {
	fs   afero.Fs
	algo Algorithm
}

// NewGenerator returns a Generator reading files from fs.
func NewGenerator(fs afero.Fs, algo Algorithm) *Generator {
	if algo == "" {
		algo = SHA256
	}
	return &Generator{fs: fs, algo: algo}
}

// WebRootFs returns a file system that resolves paths against root.
func WebRootFs(root string) afero.Fs {
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), root))
}

// Algorithm returns the generator's digest algorithm.
func (g *Generator) Algorithm() Algorithm {
	return g.algo
}

// FileVersion returns the token for the file at path. A query suffix on path
// is ignored.
func (g *Generator) FileVersion(ctx context.Context, path string) (Token, error) {
	return g.digest(ctx, path)
}

// AssetVersion returns the token for the combined artifact published at the
// asset's route.
func (g *Generator) AssetVersion(ctx context.Context, a asset.Asset) (Token, error) {
	return g.digest(ctx, a.Route)
}

func (g *Generator) digest(ctx context.Context, path string) (Token, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := contentPath(path)
	f, err := g.fs.Open(name)
	if err != nil {
		return "", oerrors.NewSourceError(path, err)
	}
	defer f.Close()

	h := g.newHash()
	if _, err := io.Copy(h, f); err != nil {
		return "", oerrors.NewSourceError(path, err)
	}

	return g.encode(h), nil
}

func (g *Generator) newHash() hash.Hash {
	if g.algo == XXHash {
		return xxhash.New()
	}
	return sha256.New()
}

func (g *Generator) encode(h hash.Hash) Token {
	if d, ok := h.(*xxhash.Digest); ok {
		return Token(fmt.Sprintf("%016x", d.Sum64()))
	}
	return Token(base64.RawURLEncoding.EncodeToString(h.Sum(nil)))
}

// contentPath maps a reference such as "~/js/a.js?x=1" to the rooted file
// path "/js/a.js".
func contentPath(ref string) string {
	if i := strings.IndexByte(ref, '?'); i >= 0 {
		ref = ref[:i]
	}
	ref = strings.TrimPrefix(ref, "~")
	return "/" + strings.TrimLeft(ref, "/")
}
