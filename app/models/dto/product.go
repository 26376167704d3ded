package dto

type OptionRequest struct {
	OptionValue string `json:"optionValue" validate:"required"`
	ExtraPrice  int    `json:"extraPrice" validate:"gte=0"`
	Stock       int    `json:"stock" validate:"gte=0"`
}

// ProductRequest carries the scalar multipart fields plus the decoded options
// payload. A nil Options slice on update means "leave existing options alone".
type ProductRequest struct {
	ProductName string `validate:"required"`
	BasePrice   int    `validate:"gte=0"`
	Type        string
	Nationality string
	Options     []OptionRequest `validate:"omitempty,dive"`
}

type ImageResponse struct {
	ImageID   uint   `json:"imageId"`
	ImageURL  string `json:"imageUrl"`
	SortOrder int    `json:"sortOrder"`
}

type OptionResponse struct {
	OptionID    uint   `json:"optionId"`
	OptionValue string `json:"optionValue"`
	ExtraPrice  int    `json:"extraPrice"`
	Stock       int    `json:"stock"`
}

type ProductResponse struct {
	ProductID        uint             `json:"productId"`
	ProductName      string           `json:"productName"`
	BasePrice        int              `json:"basePrice"`
	BasePriceDisplay string           `json:"basePriceDisplay"`
	Type             string           `json:"type"`
	Continent        string           `json:"continent"`
	Nationality      string           `json:"nationality"`
	ThumbnailImg     string           `json:"thumbnailImg"`
	DetailImages     []ImageResponse  `json:"detailImages"`
	Options          []OptionResponse `json:"options"`
}
