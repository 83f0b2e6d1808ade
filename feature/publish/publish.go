package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"botc-assets/core/asset"
	"botc-assets/core/fetch"
	"botc-assets/core/gate"
	"botc-assets/core/paths"
	"botc-assets/core/pipeline"
	"botc-assets/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// CategoryName identifies the publish category.
const CategoryName = "publish"

// Category uploads local assets missing from the bucket.
type Category struct {
	Client      storage.Client
	Bucket      string
	Prefix      string
	Layout      paths.Layout
	Concurrency int
	Progress    pipeline.Progress
	Logger      *zap.Logger
}

// Name implements pipeline.Category.
func (c *Category) Name() string {
	return CategoryName
}

// Run implements pipeline.Category.
func (c *Category) Run(ctx context.Context, t *pipeline.Tracker) (pipeline.Summary, error) {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	summary := pipeline.Summary{Category: CategoryName}

	t.Enter(pipeline.StateMerging)
	refs, err := LocalRefs(c.Layout, c.Prefix)
	if err != nil {
		return summary, err
	}
	if err := c.ensureBucket(ctx, logger); err != nil {
		return summary, err
	}

	t.Enter(pipeline.StateGatingCache)
	keys, err := c.listKeys(ctx)
	if err != nil {
		return summary, err
	}
	missing := gate.Missing(refs, gate.SetChecker{Keys: keys})
	summary.Skipped = len(refs) - len(missing)
	if len(missing) == 0 {
		logger.Info("Bucket is up to date", zap.String("bucket", c.Bucket), zap.Int("objects", summary.Skipped))
		summary.Outcome = pipeline.OutcomeNothingToDo
		t.Enter(pipeline.StateDone)
		return summary, nil
	}

	progress := c.Progress
	if progress == nil {
		progress = pipeline.NoProgress
	}

	t.Enter(pipeline.StateFetching)
	read := fetch.New(c.Concurrency, func(ctx context.Context, ref asset.Ref) ([]byte, error) {
		return os.ReadFile(ref.URL)
	}, logger)
	local := read.Run(ctx, missing, nil)

	t.Enter(pipeline.StateMaterializing)
	var readable []asset.Ref
	for _, ref := range missing {
		if res, ok := local[ref.ID]; ok && res.Err == nil {
			readable = append(readable, ref)
		}
	}
	add, done := progress(len(readable), CategoryName)
	upload := fetch.New(c.Concurrency, func(ctx context.Context, ref asset.Ref) ([]byte, error) {
		return nil, c.put(ctx, ref.Path, local[ref.ID].Data)
	}, logger)
	uploaded := upload.Run(ctx, readable, add)
	done()

	summary.Downloaded = uploaded.Succeeded()
	summary.Failed = local.Failed() + uploaded.Failed()
	summary.Outcome = pipeline.OutcomeDone
	t.Enter(pipeline.StateDone)
	return summary, nil
}

func (c *Category) ensureBucket(ctx context.Context, logger *zap.Logger) error {
	exists, err := c.Client.BucketExists(ctx, c.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := c.Client.MakeBucket(ctx, c.Bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", c.Bucket, err)
	}
	logger.Info("Created bucket", zap.String("bucket", c.Bucket))
	return nil
}

func (c *Category) listKeys(ctx context.Context) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	opts := minio.ListObjectsOptions{Prefix: c.Prefix, Recursive: true}
	for obj := range c.Client.ListObjects(ctx, c.Bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", c.Bucket, obj.Err)
		}
		keys[obj.Key] = struct{}{}
	}
	return keys, nil
}

func (c *Category) put(ctx context.Context, key string, data []byte) error {
	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := c.Client.PutObject(ctx, c.Bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

// LocalRefs lists the published files below the layout root. Each ref reads from
// the local file (URL) and targets its object key (ID and Path).
func LocalRefs(layout paths.Layout, prefix string) ([]asset.Ref, error) {
	var refs []asset.Ref
	for _, dir := range layout.Published() {
		err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return nil
				}
				return err
			}
			if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
				return nil
			}
			rel, err := filepath.Rel(layout.Root, p)
			if err != nil {
				return err
			}
			key := ObjectKey(prefix, rel)
			refs = append(refs, asset.Ref{ID: key, URL: p, Path: key})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", dir, err)
		}
	}
	return refs, nil
}

// ObjectKey joins prefix and a relative file path into an object key.
func ObjectKey(prefix, rel string) string {
	key := filepath.ToSlash(rel)
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}
