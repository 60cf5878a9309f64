package plots

// AddDataset appends ds to the chart and redraws it. Datasets with more than
// AppendDataThreshold values have their point markers suppressed first.
func (c *Chart) AddDataset(ds *Dataset) error {
	applyPointDensity(ds, len(ds.Data), AppendDataThreshold)
	c.Data.Datasets = append(c.Data.Datasets, ds)
	return c.Update()
}
