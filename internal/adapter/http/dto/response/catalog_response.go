package response

import (
	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase"
)

type ProductResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Price            int64  `json:"price"`
	ImageURL         string `json:"image_url"`
	Stock            int    `json:"stock"`
	LowStock         bool   `json:"low_stock"`
	OutOfStock       bool   `json:"out_of_stock"`
	Installments     int    `json:"installments"`
	InstallmentPrice int64  `json:"installment_price"`
}

type CatalogResponse struct {
	Products []ProductResponse `json:"products"`
	Loading  bool              `json:"loading"`
	Error    string            `json:"error,omitempty"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Price:            p.Price,
		ImageURL:         p.ImageURL,
		Stock:            p.Stock,
		LowStock:         p.LowStock(),
		OutOfStock:       p.OutOfStock(),
		Installments:     entities.InstallmentCount,
		InstallmentPrice: p.InstallmentPrice(),
	}
}

func FromCatalogSnapshot(s usecase.CatalogSnapshot) CatalogResponse {
	products := make([]ProductResponse, 0, len(s.Products))
	for _, p := range s.Products {
		products = append(products, FromProduct(p))
	}
	return CatalogResponse{Products: products, Loading: s.Loading, Error: s.Error}
}
