package request

type CatalogFilterRequest struct {
	Term string `json:"term"`
}
