package request

import "roomescape-api/internal/usecase"

type CreateThemeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Thumbnail   string `json:"thumbnail" binding:"required"`
}

func (r CreateThemeRequest) ToParams() usecase.CreateThemeParams {
	return usecase.CreateThemeParams{
		Name:         r.Name,
		Description:  r.Description,
		ThumbnailURL: r.Thumbnail,
	}
}
