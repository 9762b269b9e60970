package stats

import (
	"fmt"
	"strings"

	"github.com/iitmspaces/assets_backend/nocobase"
)

type ActiveAssetCount struct {
	Building   string `json:"building"`
	BuildingId any    `json:"buildingId,omitempty"`
	Count      int    `json:"count"`
	Message    string `json:"message"`
}

// FindBuilding resolves a display name against the Buildings collection,
// case-insensitive, first match wins.
func FindBuilding(buildings []nocobase.Record, buildingName string) (nocobase.Record, bool) {
	for _, b := range buildings {
		name := buildingDisplayName(b)
		if name != "" && strings.EqualFold(name, buildingName) {
			return b, true
		}
	}
	return nil, false
}

// BuildingNotFound is the zero-count result reported when no building
// matches the requested name.
func BuildingNotFound(buildingName string) ActiveAssetCount {
	return ActiveAssetCount{
		Building: buildingName,
		Count:    0,
		Message:  fmt.Sprintf("Building not found: %s", buildingName),
	}
}

// CountActiveAssets counts assets that belong to the given building and are
// active per the broad truthy set. Building ids are compared string-coerced
// because the two collections disagree on the id type.
func CountActiveAssets(building nocobase.Record, assets []nocobase.Record, buildingName string) ActiveAssetCount {
	buildingId := coerceString(building["id"])
	count := 0
	for _, a := range assets {
		if a["Building_Id"] == nil {
			continue
		}
		if coerceString(a["Building_Id"]) != buildingId {
			continue
		}
		if IsActiveAsset(a["is_active"]) {
			count++
		}
	}

	return ActiveAssetCount{
		Building:   buildingName,
		BuildingId: building["id"],
		Count:      count,
		Message:    fmt.Sprintf("Active assets in %q: %d", buildingName, count),
	}
}
