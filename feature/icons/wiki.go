package icons

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"botc-assets/core/asset"
	"botc-assets/core/fetch"
	"botc-assets/core/pipeline"

	"github.com/PuerkitoBio/goquery"
)

// WikiCategoryName identifies the wiki image category.
const WikiCategoryName = "wiki-icons"

var imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true}

// ParseWikiListing extracts the full-size image links of a wiki file listing page.
// Thumbnails are ignored and links are resolved against pageURL.
func ParseWikiListing(html []byte, pageURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse wiki listing: %w", err)
	}

	var links []string
	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		abs := resolve(pageURL, href)
		p := strings.ToLower(abs)
		if i := strings.IndexAny(p, "?#"); i >= 0 {
			p = p[:i]
		}
		if !strings.Contains(p, "/images/") || strings.Contains(p, "/images/thumb/") {
			return
		}
		if !imageExts[path.Ext(p)] || seen[abs] {
			return
		}
		seen[abs] = true
		links = append(links, abs)
	})
	return links, nil
}

// NewWikiCategory downloads every image of the wiki listing into img/.
func NewWikiCategory(o Options, listingURL string) *pipeline.AssetCategory {
	return o.category(WikiCategoryName, func(ctx context.Context) ([]asset.Ref, error) {
		html, err := fetch.Get(ctx, o.HTTP, listingURL)
		if err != nil {
			return nil, fmt.Errorf("fetch wiki listing: %w", err)
		}
		links, err := ParseWikiListing(html, listingURL)
		if err != nil {
			return nil, err
		}
		refs := make([]asset.Ref, 0, len(links))
		for _, link := range links {
			name := pngName(link)
			refs = append(refs, asset.Ref{ID: name, URL: link, Path: filepath.Join(o.Layout.ImgDir(), name)})
		}
		return refs, nil
	})
}
