package fetch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"

	"go.scnd.dev/open/glyph/command/glyph/app"
	"go.scnd.dev/open/glyph/command/glyph/index"
	"go.scnd.dev/open/glyph/compat/common"
	"go.scnd.dev/open/glyph/util"
)

type Command struct{}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

// Run downloads every svg object under the configured bucket prefix into
// the source directory, flattening object keys to their base name.
func Run(app index.App, command *Command) error {
	cfg := app.Config()
	if cfg.Minio == nil {
		return fmt.Errorf("minio is not configured in glyph.yml")
	}

	ctx := context.Background()
	client := common.Minio(cfg)

	source := filepath.Join(*app.Directory(), *cfg.SourceDir)
	if err := os.MkdirAll(source, 0o755); err != nil {
		return fmt.Errorf("unable to create source directory %s: %w", source, err)
	}

	prefix := ""
	if cfg.Minio.Prefix != nil {
		prefix = *cfg.Minio.Prefix
	}

	count := 0
	for object := range client.ListObjects(ctx, *cfg.Minio.Bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return fmt.Errorf("unable to list icon bucket: %w", object.Err)
		}
		if !strings.EqualFold(path.Ext(object.Key), util.SvgExtension) {
			continue
		}

		target := filepath.Join(source, path.Base(object.Key))
		if err := client.FGetObject(ctx, *cfg.Minio.Bucket, object.Key, target, minio.GetObjectOptions{}); err != nil {
			return fmt.Errorf("unable to fetch %s: %w", object.Key, err)
		}

		if *app.Verbose() {
			log.Printf("fetched %s", object.Key)
		}
		count++
	}

	log.Printf("fetched %d icons into %s", count, source)
	return nil
}
