package elevation

import (
	"github.com/dhconnelly/rtreego"

	"github.com/velomapa/gpxscale/schema"
)

// presetItem wraps a terrain preset for R-tree indexing.
type presetItem struct {
	preset schema.TerrainPreset
	rect   *rtreego.Rect
}

func (p *presetItem) Bounds() *rtreego.Rect {
	return p.rect
}

// presetIndex is built once over the fixed preset table.
var presetIndex = func() *rtreego.Rtree {
	tree := rtreego.NewTree(indexDims, indexMinChildren, indexMaxChildren)
	for _, preset := range schema.FlatTerrainPresets {
		pt := rtreego.Point{preset.Lat, preset.Lon}
		tree.Insert(&presetItem{preset: preset, rect: pt.ToRect(indexTolerance)})
	}
	return tree
}()

// NearestPreset returns the flat terrain preset closest to the given
// coordinate.
func NearestPreset(lat, lon float64) schema.TerrainPreset {
	results := presetIndex.NearestNeighbors(1, rtreego.Point{lat, lon})
	return results[0].(*presetItem).preset
}
