package theme

import (
	"errors"
	"strings"
)

var (
	ErrBlankName         = errors.New("theme name must not be blank")
	ErrBlankDescription  = errors.New("theme description must not be blank")
	ErrBlankThumbnailURL = errors.New("theme thumbnail url must not be blank")
)

// Theme is an escape-room scenario. Names are not required to be unique.
type Theme struct {
	id           int64
	name         string
	description  string
	thumbnailURL string
}

func NewTheme(name, description, thumbnailURL string) (*Theme, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankName
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrBlankDescription
	}
	if strings.TrimSpace(thumbnailURL) == "" {
		return nil, ErrBlankThumbnailURL
	}
	return &Theme{
		name:         name,
		description:  description,
		thumbnailURL: thumbnailURL,
	}, nil
}

func ReconstructTheme(id int64, name, description, thumbnailURL string) *Theme {
	return &Theme{
		id:           id,
		name:         name,
		description:  description,
		thumbnailURL: thumbnailURL,
	}
}

func (t *Theme) ID() int64            { return t.id }
func (t *Theme) Name() string         { return t.name }
func (t *Theme) Description() string  { return t.description }
func (t *Theme) ThumbnailURL() string { return t.thumbnailURL }
