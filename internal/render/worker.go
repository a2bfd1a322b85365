package render

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// fileVersions hashes files concurrently and returns their tokens indexed
// like files. The first failure cancels the remaining work.
func (r *Renderer) fileVersions(ctx context.Context, files []string) ([]string, error) {
	tokens := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	if r.opts.Parallelism > 0 {
		g.SetLimit(r.opts.Parallelism)
	}

	for i, file := range files {
		g.Go(func() error {
			tok, err := r.versions.FileVersion(gctx, file)
			if err != nil {
				return err
			}
			tokens[i] = tok.String()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tokens, nil
}
