package configdata

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flytam/filenamify"
	getter "github.com/hashicorp/go-getter"
)

// Getter downloads remote config data locations
type Getter interface {
	// Get fetches the source files from src and downloads them to the
	// given folder. If the files already exist at the given location
	// Get does nothing unless ignoreCache is true when source will be
	// downloaded regardless of cache.
	//
	// Get returns the full path of the downloaded source, any url characters
	// in src are encoded so that the path is a valid folder name.
	Get(ctx context.Context, src, destFolder string, ignoreCache bool) (string, error)
}

type GoGetter struct {
	get func(ctx context.Context, src, dest, working string) error
}

func NewGoGetter() Getter {
	return &GoGetter{
		get: func(ctx context.Context, src, dest, working string) error {
			c := &getter.Client{
				Ctx:     ctx,
				Src:     src,
				Dst:     dest,
				Pwd:     working,
				Mode:    getter.ClientModeAny,
				Options: []getter.ClientOption{},
			}

			err := c.Get()
			if err != nil {
				return fmt.Errorf("unable to fetch files from %s: %w", src, err)
			}

			return nil
		},
	}
}

func (g *GoGetter) Get(ctx context.Context, src, dest string, ignoreCache bool) (string, error) {
	pwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	// ensure the output folder is correctly encoded
	output, err := filenamify.Filenamify(src, filenamify.Options{
		Replacement: "_",
	})
	if err != nil {
		return "", fmt.Errorf("unable to create cache folder name for %s: %w", src, err)
	}

	downloadPath := filepath.Join(dest, output)

	// reuse the cached download
	_, err = os.Stat(downloadPath)
	if err == nil && !ignoreCache {
		return downloadPath, nil
	}

	err = g.get(ctx, src, downloadPath, pwd)

	return downloadPath, err
}
