package mock

import "github.com/fwojciec/pricegrid"

var _ pricegrid.CatalogLoader = (*CatalogLoader)(nil)

// CatalogLoader is a mock implementation of pricegrid.CatalogLoader.
type CatalogLoader struct {
	LoadCatalogFn func(path string) (*pricegrid.Catalog, error)
}

func (l *CatalogLoader) LoadCatalog(path string) (*pricegrid.Catalog, error) {
	return l.LoadCatalogFn(path)
}
