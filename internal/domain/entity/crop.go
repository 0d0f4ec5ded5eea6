package entity

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	domainerrors "farmlink/internal/domain/errors"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// CropCategory groups catalog entries into edible produce types.
type CropCategory string

const (
	// Plant-based
	CropCategoryCashCrop     CropCategory = "cash_crop"
	CropCategoryCereal       CropCategory = "cereal"
	CropCategoryFruit        CropCategory = "fruit"
	CropCategoryVegetable    CropCategory = "vegetable"
	CropCategoryTuber        CropCategory = "tuber"
	CropCategoryLegume       CropCategory = "legume"
	CropCategoryNut          CropCategory = "nut"
	CropCategorySpice        CropCategory = "spice"
	CropCategoryHerb         CropCategory = "herb"
	CropCategoryOilSeed      CropCategory = "oil_seed"
	CropCategoryAquaticPlant CropCategory = "aquatic_plant"

	// Animal-based
	CropCategoryLivestock   CropCategory = "livestock"
	CropCategoryPoultry     CropCategory = "poultry"
	CropCategoryRabbit      CropCategory = "rabbit"
	CropCategoryGuineaPig   CropCategory = "guinea_pig"
	CropCategoryDairy       CropCategory = "dairy"
	CropCategoryEggProducer CropCategory = "egg_producer"

	// Aquatic
	CropCategoryFish      CropCategory = "fish"
	CropCategoryShellfish CropCategory = "shellfish"
	CropCategoryMollusk   CropCategory = "mollusk"

	// Other
	CropCategoryGame         CropCategory = "game"
	CropCategoryEdibleInsect CropCategory = "edible_insect"
	CropCategoryEdibleFungus CropCategory = "edible_fungus"
	CropCategoryOther        CropCategory = "other"
)

var cropCategories = map[CropCategory]struct{}{
	CropCategoryCashCrop: {}, CropCategoryCereal: {}, CropCategoryFruit: {}, CropCategoryVegetable: {},
	CropCategoryTuber: {}, CropCategoryLegume: {}, CropCategoryNut: {}, CropCategorySpice: {},
	CropCategoryHerb: {}, CropCategoryOilSeed: {}, CropCategoryAquaticPlant: {},
	CropCategoryLivestock: {}, CropCategoryPoultry: {}, CropCategoryRabbit: {}, CropCategoryGuineaPig: {},
	CropCategoryDairy: {}, CropCategoryEggProducer: {},
	CropCategoryFish: {}, CropCategoryShellfish: {}, CropCategoryMollusk: {},
	CropCategoryGame: {}, CropCategoryEdibleInsect: {}, CropCategoryEdibleFungus: {}, CropCategoryOther: {},
}

// IsValid checks if the CropCategory belongs to the taxonomy.
func (c CropCategory) IsValid() bool {
	_, ok := cropCategories[c]

	return ok
}

// Crop is shared catalog data describing a produce type.
type Crop struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Category    CropCategory `json:"category"`
	Description string       `json:"description"`
	Slug        string       `json:"slug"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Validate checks the catalog entry before it is stored.
// A slug must already be in the form Slugify produces.
func (c *Crop) Validate() error {
	switch {
	case c.Name == "":
		return domainerrors.ErrValidationFailed.WithDetails("crop name is required")
	case !c.Category.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("unknown crop category: " + string(c.Category))
	case c.Slug == "":
		return domainerrors.ErrValidationFailed.WithDetails("crop name must contain letters or digits")
	case Slugify(c.Slug) != c.Slug:
		return domainerrors.ErrValidationFailed.WithDetails(
			"slug may only contain lower-case letters, digits, hyphens and underscores")
	}

	if err := checkLength("crop name", c.Name, MaxNameLength); err != nil {
		return err
	}

	return checkLength("slug", c.Slug, MaxSlugLength)
}

// NormalizeCropName trims the name and puts it in title case, so "maize" and "MAIZE" collide.
func NormalizeCropName(name string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(name))
}

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugSquash   = regexp.MustCompile(`[-\s]+`)
	slugTrimCuts = "-_"
)

// Slugify turns a display name into a URL-safe, lower-case slug ("Sweet Potato" -> "sweet-potato").
func Slugify(value string) string {
	decomposed := norm.NFKD.String(value)

	var ascii strings.Builder
	ascii.Grow(len(decomposed))
	for _, r := range decomposed {
		if r <= unicode.MaxASCII {
			ascii.WriteRune(r)
		}
	}

	slug := strings.ToLower(ascii.String())
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = slugSquash.ReplaceAllString(slug, "-")

	return strings.Trim(slug, slugTrimCuts)
}
