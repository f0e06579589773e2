package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/validation"
)

// ErrInvalidConfig is returned when an inventory document fails validation
var ErrInvalidConfig = errors.New("invalid inventory configuration")

// Config represents the JSON inventory document
type Config struct {
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`

	Items []Entry `json:"items" validate:"required,min=1,dive"`
}

// Entry represents a single item in the JSON.
// Quality is not range-checked: the domain clamps it.
type Entry struct {
	Name     string `json:"name" validate:"required,max=200"`
	Category string `json:"category" validate:"required,category"`
	Quality  int    `json:"quality"`
	SellIn   int    `json:"sell_in"`
}

// ToItem converts the entry into its domain variant
func (e Entry) ToItem() (domain.Item, error) {
	category, err := domain.ParseCategory(e.Category)
	if err != nil {
		return nil, err
	}
	return domain.NewItem(category, e.Name, e.Quality, e.SellIn)
}

// EntryFrom converts a domain item back into its file representation
func EntryFrom(item domain.Item) Entry {
	entry := Entry{Name: item.Name(), Category: string(item.Category())}
	switch it := item.(type) {
	case domain.Legendary:
		entry.Quality = it.Quality().Int()
	case domain.Ordinary:
		entry.Quality = it.Quality().Int()
		entry.SellIn = it.SellIn()
	}
	return entry
}

// Loader handles loading and validating inventory files
type Loader interface {
	Load(path string) (*Config, error)
	Parse(data []byte) (*Config, error)
	Validate(config *Config) error
	Items(config *Config) ([]domain.Item, error)
}

type inventoryLoader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &inventoryLoader{
		schemaValidator: validation.NewSchemaValidator(),
		validate:        NewValidator(),
	}
}

// Load reads and parses an inventory JSON file
func (l *inventoryLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, validation.InventorySchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	return l.Parse(data)
}

// Parse decodes an inventory document
func (l *inventoryLoader) Parse(data []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	return &config, nil
}

// Validate checks the inventory document for errors
func (l *inventoryLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	for i := range config.Items {
		if err := l.validate.Struct(config.Items[i]); err != nil {
			return fmt.Errorf(ErrFmtEntryInvalid, ErrInvalidConfig, i, describe(err))
		}
	}

	return nil
}

// Items converts a validated document into domain items, in file order
func (l *inventoryLoader) Items(config *Config) ([]domain.Item, error) {
	if err := l.Validate(config); err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(config.Items))
	for i, entry := range config.Items {
		item, err := entry.ToItem()
		if err != nil {
			return nil, fmt.Errorf(ErrFmtEntryInvalid, ErrInvalidConfig, i, err.Error())
		}
		items = append(items, item)
	}
	return items, nil
}

// LoadItems reads, validates and converts an inventory file in one step
func LoadItems(loader Loader, path string) ([]domain.Item, error) {
	config, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	return loader.Items(config)
}

// NewValidator returns a validator with the catalog's custom tags registered
func NewValidator() *validator.Validate {
	v := validator.New()
	RegisterValidations(v)
	return v
}

// RegisterValidations adds the catalog's custom tags to v
func RegisterValidations(v *validator.Validate) {
	_ = v.RegisterValidation(ValidationTagCategory, validateCategory)
}

func validateCategory(fl validator.FieldLevel) bool {
	_, err := domain.ParseCategory(fl.Field().String())
	return err == nil
}

func describe(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		problems = append(problems, fmt.Sprintf(ErrFmtFieldFailed, strings.ToLower(e.Field()), e.Tag()))
	}
	return strings.Join(problems, ", ")
}
