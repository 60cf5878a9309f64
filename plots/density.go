package plots

// Point-density thresholds. Series longer than these drop per-point markers
// but keep a hit radius so points stay hoverable.
const (
	LineLabelThreshold    = 30
	AppendDataThreshold   = 20
	DensePointHitRadius   = 5
	densePointMarkerWidth = 0
)

func applyPointDensity(ds *Dataset, length, threshold int) {
	if length <= threshold {
		return
	}
	ds.PointRadius = Float(densePointMarkerWidth)
	ds.PointHitRadius = Float(DensePointHitRadius)
}
