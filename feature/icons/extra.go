package icons

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"botc-assets/core/asset"
	"botc-assets/core/pipeline"

	"github.com/google/go-github/v82/github"
)

// ExtraCategoryName identifies the extra icon category.
const ExtraCategoryName = "extra-icons"

// NewGitHubClient returns a GitHub API client, authenticated when token is set.
func NewGitHubClient(o Options, token string) *github.Client {
	client := github.NewClient(o.HTTP)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return client
}

// ListRepoIcons lists the image files in dir of the repository ownerRepo ("owner/name").
// Ref ids are the .png names the icons are stored under, so foo.jpg and foo.png share one id.
func ListRepoIcons(ctx context.Context, client *github.Client, ownerRepo, dir string) ([]asset.Ref, error) {
	owner, repo, ok := strings.Cut(ownerRepo, "/")
	if !ok || owner == "" || repo == "" {
		return nil, fmt.Errorf("invalid repository %q, want owner/name", ownerRepo)
	}

	_, contents, _, err := client.Repositories.GetContents(ctx, owner, repo, dir, nil)
	if err != nil {
		return nil, fmt.Errorf("list %s/%s: %w", ownerRepo, dir, err)
	}

	var refs []asset.Ref
	for _, c := range contents {
		if c.GetType() != "file" || c.GetDownloadURL() == "" {
			continue
		}
		name := c.GetName()
		if !imageExts[strings.ToLower(path.Ext(name))] {
			continue
		}
		refs = append(refs, asset.Ref{ID: pngName(name), URL: c.GetDownloadURL()})
	}
	return refs, nil
}

// NewExtraCategory downloads the icons stored in a GitHub repository directory.
func NewExtraCategory(o Options, client *github.Client, ownerRepo, dir string) *pipeline.AssetCategory {
	return o.category(ExtraCategoryName, func(ctx context.Context) ([]asset.Ref, error) {
		refs, err := ListRepoIcons(ctx, client, ownerRepo, dir)
		if err != nil {
			return nil, err
		}
		for i := range refs {
			refs[i].Path = filepath.Join(o.Layout.IconsDir(), refs[i].ID)
		}
		return refs, nil
	})
}
