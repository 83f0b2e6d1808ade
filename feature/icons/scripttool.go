package icons

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"botc-assets/core/asset"
	"botc-assets/core/pipeline"
	"botc-assets/core/utils"
)

// ScriptToolCategoryName identifies the script tool icon category.
const ScriptToolCategoryName = "script-tool-icons"

// ReadRoleIDs returns the role ids listed in a roles.json file.
func ReadRoleIDs(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roles: %w", err)
	}
	var roles []map[string]any
	if err := json.Unmarshal(data, &roles); err != nil {
		return nil, fmt.Errorf("decode roles %s: %w", path, err)
	}
	ids := make([]string, 0, len(roles))
	for _, r := range roles {
		if id := utils.ToString(r["id"]); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// NewScriptToolCategory downloads an icon for every role in data/roles.json.
// It needs the character data to be present, so it runs after the json category.
func NewScriptToolCategory(o Options, baseURL string) *pipeline.AssetCategory {
	base := strings.TrimRight(baseURL, "/")
	return o.category(ScriptToolCategoryName, func(ctx context.Context) ([]asset.Ref, error) {
		ids, err := ReadRoleIDs(filepath.Join(o.Layout.DataDir(), "roles.json"))
		if err != nil {
			return nil, err
		}
		refs := make([]asset.Ref, 0, len(ids))
		for _, id := range ids {
			refs = append(refs, asset.Ref{
				ID:   id,
				URL:  base + "/src/assets/icons/" + id + ".png",
				Path: o.Layout.IconFile(id),
			})
		}
		return refs, nil
	})
}
