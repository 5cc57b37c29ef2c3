package types

// Product types.
const (
	ProductTypeCatalog        = "catalog"
	ProductTypeArchivedCustom = "archivedCustom"
)

// Product sale statuses.
const (
	ProductStatusOnSale       = "在售"
	ProductStatusDiscontinued = "停产"
	ProductStatusCustomOnly   = "仅定制"
)

// DimensionSpecs holds physical dimensions.
type DimensionSpecs struct {
	LengthMm float64 `json:"lengthMm,omitempty"`
	WidthMm  float64 `json:"widthMm,omitempty"`
	HeightMm float64 `json:"heightMm,omitempty"`
	WeightG  float64 `json:"weightG,omitempty"`
}

// FieldOfView holds scan field-of-view angles in degrees.
type FieldOfView struct {
	HDeg float64 `json:"hDeg,omitempty"`
	VDeg float64 `json:"vDeg,omitempty"`
}

// ScanSpecs holds scanning characteristics.
type ScanSpecs struct {
	CodeTypes        []string     `json:"codeTypes,omitempty"`
	SensorModel      string       `json:"sensorModel,omitempty"`
	Resolution       string       `json:"resolution,omitempty"`
	FOV              *FieldOfView `json:"fov,omitempty"`
	DepthOfField     string       `json:"depthOfField,omitempty"`
	MinResolutionMil float64      `json:"minResolutionMil,omitempty"`
	FPS              int          `json:"fps,omitempty"`
	Illumination     string       `json:"illumination,omitempty"`
}

// CommsSpecs holds communication interfaces.
type CommsSpecs struct {
	Wired       []string `json:"wired,omitempty"`
	Wireless    []string `json:"wireless,omitempty"`
	ModuleModel string   `json:"moduleModel,omitempty"`
	SDK         string   `json:"sdk,omitempty"`
}

// EnvSpecs holds environmental ratings.
type EnvSpecs struct {
	IPRating       string  `json:"ipRating,omitempty"`
	DropRatingM    float64 `json:"dropRatingM,omitempty"`
	OperatingTempC string  `json:"operatingTempC,omitempty"`
}

// ProductSpecs is the nested optional spec sheet of a product.
type ProductSpecs struct {
	Dimensions *DimensionSpecs `json:"dimensions,omitempty"`
	Scan       *ScanSpecs      `json:"scan,omitempty"`
	Comms      *CommsSpecs     `json:"comms,omitempty"`
	Env        *EnvSpecs       `json:"env,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	Keywords   []string        `json:"keywords,omitempty"`
}

// Product is a catalog entry. Model is the unique business key used for
// CSV upserts. Archived-custom products keep a pointer back to the order
// and customer they were promoted from.
type Product struct {
	ID               string       `json:"id"`
	ProductType      string       `json:"productType"`
	Model            string       `json:"model"`
	Name             string       `json:"name"`
	Status           string       `json:"status,omitempty"`
	CreatedAt        int64        `json:"createdAt"`
	UpdatedAt        int64        `json:"updatedAt"`
	Specs            ProductSpecs `json:"specs"`
	BaseModelRefID   string       `json:"baseModelRefId,omitempty"`
	CustomSummary    string       `json:"customSummary,omitempty"`
	Version          string       `json:"version,omitempty"`
	SourceCustomerID string       `json:"sourceCustomerId,omitempty"`
	SourceOrderID    string       `json:"sourceOrderId,omitempty"`
}

// ProductPatch carries optional field updates for a product. Nil fields
// are left unchanged; Specs replaces the whole spec sheet when non-nil.
type ProductPatch struct {
	Model         *string
	Name          *string
	Status        *string
	Specs         *ProductSpecs
	CustomSummary *string
	Version       *string
}

// Apply writes the non-nil patch fields onto the product.
func (p ProductPatch) Apply(prod *Product) {
	if p.Model != nil {
		prod.Model = *p.Model
	}
	if p.Name != nil {
		prod.Name = *p.Name
	}
	if p.Status != nil {
		prod.Status = *p.Status
	}
	if p.Specs != nil {
		prod.Specs = *p.Specs
	}
	if p.CustomSummary != nil {
		prod.CustomSummary = *p.CustomSummary
	}
	if p.Version != nil {
		prod.Version = *p.Version
	}
}
