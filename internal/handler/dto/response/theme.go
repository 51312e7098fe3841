package response

import "roomescape-api/internal/usecase/queries"

type ThemeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}

func FromThemeView(v *queries.ThemeView) *ThemeResponse {
	return &ThemeResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Thumbnail:   v.ThumbnailURL,
	}
}

func FromThemeViews(views []*queries.ThemeView) []*ThemeResponse {
	out := make([]*ThemeResponse, len(views))
	for i, v := range views {
		out[i] = FromThemeView(v)
	}
	return out
}
