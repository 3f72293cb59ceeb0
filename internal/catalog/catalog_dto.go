package catalog

type ProductDetailResponse struct {
	Product Product  `json:"product"`
	Reviews []Review `json:"reviews"`
}
