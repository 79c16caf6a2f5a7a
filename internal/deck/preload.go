package deck

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

const preloadConcurrency = 8

// Preload probes every chart image in d. Images that cannot be opened or
// decoded are logged and their chart is hidden; that never fails the deck.
// Only context cancellation is returned.
func Preload(ctx context.Context, d *Deck) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(preloadConcurrency)

	for i := range d.Slides {
		for j := range d.Slides[i].Charts {
			c := &d.Slides[i].Charts[j]
			if c.Image == "" {
				continue
			}
			path := c.Image
			if !filepath.IsAbs(path) {
				path = filepath.Join(d.Dir, path)
			}
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				w, h, err := probeImage(path)
				if err != nil {
					log.Printf("warn: failed to load image %s: %v", path, err)
					c.Hidden = true
					return nil
				}
				c.Width, c.Height = w, h
				return nil
			})
		}
	}
	return g.Wait()
}

func probeImage(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return 0, 0, fmt.Errorf("empty %s image", format)
	}
	return cfg.Width, cfg.Height, nil
}
