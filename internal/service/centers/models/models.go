package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// CenterResponse ответ с данными спортивного центра
type CenterResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Address  string `json:"address"`

	// Capacity вместимость одного часового слота
	Capacity int `json:"capacity"`

	// Rating агрегированный рейтинг по отзывам; 0 при отсутствии отзывов
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`

	CreatedAt time.Time `json:"createdAt"`
}

// CenterListResponse ответ со списком центров
type CenterListResponse struct {
	Centers []CenterResponse `json:"centers"`
}

// FromDomainCenter конвертирует domain модель в DTO
func FromDomainCenter(c *domain.Center) *CenterResponse {
	if c == nil {
		return nil
	}

	return &CenterResponse{
		ID:          c.ID,
		Name:        c.Name,
		Category:    c.Category,
		Address:     c.Address,
		Capacity:    c.EffectiveCapacity(),
		Rating:      c.Rating,
		ReviewCount: c.ReviewCount,
		CreatedAt:   c.CreatedAt,
	}
}

// FromDomainCenterList конвертирует список domain моделей в DTO
func FromDomainCenterList(centers []*domain.Center) *CenterListResponse {
	result := &CenterListResponse{
		Centers: make([]CenterResponse, 0, len(centers)),
	}

	for _, c := range centers {
		result.Centers = append(result.Centers, *FromDomainCenter(c))
	}

	return result
}
