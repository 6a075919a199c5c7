package model

// -----------------------------------------------------------------------------
// Tag
// -----------------------------------------------------------------------------

type Tag struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name" validate:"required"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func (t *Tag) Validate() error {
	return validateStruct("tag", t)
}

// SubmitPayload returns the body shape accepted by the create endpoint.
func (t *Tag) SubmitPayload() any {
	return &struct {
		Name string `json:"name"`
	}{Name: t.Name}
}

// -----------------------------------------------------------------------------
// TagList
// -----------------------------------------------------------------------------

type TagList struct {
	Data       []Tag  `json:"data" validate:"required,dive"`
	NextCursor string `json:"nextCursor,omitempty"`
}

func (l *TagList) Validate() error {
	return validateStruct("tag list", l)
}
