package domain

import (
	"time"

	"github.com/google/uuid"
)

// Asset представляет физический актив со складским количеством
// (документ коллекции assets). Инвариант: Quantity никогда не отрицателен.
type Asset struct {
	ID          uuid.UUID `json:"id"`
	AssetName   string    `json:"assetName"`
	Category    *string   `json:"category,omitempty"`
	Quantity    int64     `json:"quantity"`
	Description *string   `json:"description,omitempty"`
	CompanyName *string   `json:"companyName,omitempty"`
	AddedAt     time.Time `json:"addedAt"`
}

// AssetUpdate содержит частичное обновление актива: применяются только
// заполненные (не nil) поля.
type AssetUpdate struct {
	AssetName   *string `json:"assetName,omitempty"`
	Category    *string `json:"category,omitempty"`
	Quantity    *int64  `json:"quantity,omitempty"`
	Description *string `json:"description,omitempty"`
	CompanyName *string `json:"companyName,omitempty"`
}

// Статусы наличия для фильтрации списка активов
const (
	StockStatusAvailable  = "available"
	StockStatusOutOfStock = "out-of-stock"
)

// Порядок сортировки списка активов по количеству
const (
	SortOrderLowToHigh = "low-to-high"
	SortOrderHighToLow = "high-to-low"
)

// AssetFilter описывает параметры выборки списка активов
type AssetFilter struct {
	Search      string // подстрока в assetName, без учета регистра
	StockStatus string // available | out-of-stock
	Category    string // точное совпадение категории
	SortOrder   string // low-to-high | high-to-low
}
