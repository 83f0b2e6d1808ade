package icons

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strings"

	"botc-assets/core/asset"
	"botc-assets/core/fetch"
	"botc-assets/core/materialize"
	"botc-assets/core/paths"
	"botc-assets/core/pipeline"

	"go.uber.org/zap"
)

// Options carries what every icon category needs.
type Options struct {
	Layout      paths.Layout
	HTTP        *http.Client
	Concurrency int
	IconSize    int
	Progress    pipeline.Progress
	Logger      *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// category assembles an asset category that downloads over HTTP and resizes to PNG.
// Ref ids become file names, so refs with unsafe ids are dropped before the gate.
func (o Options) category(label string, refs func(ctx context.Context) ([]asset.Ref, error)) *pipeline.AssetCategory {
	getter := fetch.HTTPGetter{Client: o.HTTP}
	logger := o.logger()
	return &pipeline.AssetCategory{
		Label: label,
		Refs: func(ctx context.Context) ([]asset.Ref, error) {
			all, err := refs(ctx)
			if err != nil {
				return nil, err
			}
			return SafeRefs(all, logger), nil
		},
		Fetcher:      fetch.New(o.Concurrency, getter.Get, logger),
		Materializer: materialize.New(materialize.ResizeIcon(o.IconSize), logger),
		Progress:     o.Progress,
		Logger:       logger,
	}
}

// SafeRefs drops the refs whose id cannot be used as a file name.
func SafeRefs(refs []asset.Ref, logger *zap.Logger) []asset.Ref {
	out := refs[:0]
	for _, r := range refs {
		if err := paths.CheckName(r.ID); err != nil {
			logger.Warn("Skipping asset with unsafe id", zap.String("url", r.URL), zap.Error(err))
			continue
		}
		out = append(out, r)
	}
	return out
}

// resolve returns ref as an absolute URL relative to base.
func resolve(base, ref string) string {
	u, err := url.Parse(ref)
	if err != nil || u.IsAbs() {
		return ref
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	return b.ResolveReference(u).String()
}

// pngName replaces the extension of the last path element of rawURL with .png.
func pngName(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	name := path.Base(p)
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	return strings.TrimSuffix(name, path.Ext(name)) + ".png"
}
