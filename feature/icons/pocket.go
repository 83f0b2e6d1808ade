package icons

import (
	"context"
	"encoding/json"
	"fmt"

	"botc-assets/core/asset"
	"botc-assets/core/fetch"
	"botc-assets/core/pipeline"
	"botc-assets/core/utils"
)

// PocketGrimoireCategoryName identifies the pocket grimoire icon category.
const PocketGrimoireCategoryName = "pocket-grimoire-icons"

// ParseCharacterImages maps character ids to absolute image URLs.
// Characters without an image are left out; relative images resolve against listURL.
func ParseCharacterImages(data []byte, listURL string) ([]asset.Ref, error) {
	var chars []map[string]any
	if err := json.Unmarshal(data, &chars); err != nil {
		return nil, fmt.Errorf("decode characters: %w", err)
	}
	refs := make([]asset.Ref, 0, len(chars))
	for _, c := range chars {
		id := utils.ToString(c["id"])
		img := utils.FirstString(c["image"])
		if id == "" || img == "" {
			continue
		}
		refs = append(refs, asset.Ref{ID: id, URL: resolve(listURL, img)})
	}
	return refs, nil
}

// NewPocketGrimoireCategory downloads the icons named in the pocket grimoire character list.
func NewPocketGrimoireCategory(o Options, listURL string) *pipeline.AssetCategory {
	return o.category(PocketGrimoireCategoryName, func(ctx context.Context) ([]asset.Ref, error) {
		data, err := fetch.Get(ctx, o.HTTP, listURL)
		if err != nil {
			return nil, fmt.Errorf("fetch character list: %w", err)
		}
		refs, err := ParseCharacterImages(data, listURL)
		if err != nil {
			return nil, err
		}
		for i := range refs {
			refs[i].Path = o.Layout.IconFile(refs[i].ID)
		}
		return refs, nil
	})
}
