package palette

import (
	"fmt"
	"os"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/swatch/pkg/colorutil"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

// File is the on-disk palette document.
type File struct {
	Name    string                `yaml:"name" validate:"required,min=1,max=64"`
	Names   map[string]string     `yaml:"names,omitempty" validate:"omitempty,dive,keys,color_name,endkeys,required,color"`
	Schemes map[string]SchemeFile `yaml:"schemes,omitempty" validate:"omitempty,dive,keys,scheme_key,endkeys"`
}

// SchemeFile overrides one color scheme. An empty Shadowed is derived from
// Primary.
type SchemeFile struct {
	Primary  string `yaml:"primary" validate:"required,color"`
	Shadowed string `yaml:"shadowed,omitempty" validate:"omitempty,color"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex    = regexp.MustCompile(`line (\d+)`)
	colorNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

	builtinConverter = sync.OnceValue(func() *colorutil.Converter {
		return colorutil.New(Default())
	})
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := builtinConverter().FormatColor(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("color_name", func(fl validator.FieldLevel) bool {
			return colorNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("scheme_key", func(fl validator.FieldLevel) bool {
			_, ok := ParseSchemeKey(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// LoadFile reads, decodes and validates a palette file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, swatcherrors.NewParseError(path, 0, err)
	}
	return ParseFile(path, data)
}

// ParseFile decodes and validates palette YAML. path is only used in errors.
func ParseFile(path string, data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, swatcherrors.NewParseError(path, extractLine(err), err)
	}

	if err := validatorInstance().Struct(&f); err != nil {
		return nil, convertValidationError(err)
	}

	return &f, nil
}

// Merge returns a copy of p with the file's names and schemes layered on top.
// Every stored color is canonical "#" hex.
func (p Palette) Merge(f *File) (Palette, error) {
	out := p.clone()
	if f == nil {
		return out, nil
	}

	if f.Name != "" {
		out.Name = f.Name
	}

	if len(f.Names) > 0 && out.names == nil {
		out.names = make(map[string]string, len(f.Names))
	}
	conv := colorutil.New(p)
	for _, name := range sortedKeys(f.Names) {
		hex, err := conv.FormatColor(f.Names[name])
		if err != nil {
			return Palette{}, swatcherrors.NewValidationError("names."+name, "must be a valid color", err)
		}
		out.names[strings.ToLower(name)] = "#" + hex
	}

	for _, name := range sortedKeys(f.Schemes) {
		key, ok := ParseSchemeKey(name)
		if !ok {
			return Palette{}, swatcherrors.NewValidationError("schemes."+name, "unknown scheme", nil)
		}

		scheme, err := out.mergeScheme(f.Schemes[name])
		if err != nil {
			return Palette{}, swatcherrors.NewValidationError("schemes."+name, "must be a valid color", err)
		}
		out.schemes[key] = scheme
	}

	return out, nil
}

func (p Palette) mergeScheme(sf SchemeFile) (ColorScheme, error) {
	conv := colorutil.New(p)

	primary, err := conv.FormatColor(sf.Primary)
	if err != nil {
		return ColorScheme{}, err
	}

	scheme := ColorScheme{Primary: "#" + primary}
	if sf.Shadowed == "" {
		scheme.Shadowed = colorutil.SetAlpha(scheme.Primary, ShadowedAlpha)
		return scheme, nil
	}

	shadowed, err := conv.FormatColor(sf.Shadowed)
	if err != nil {
		return ColorScheme{}, err
	}
	scheme.Shadowed = "#" + shadowed
	return scheme, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		field := fieldPath(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		return swatcherrors.NewValidationError(field, msg, err)
	}
	return swatcherrors.NewValidationError("palette", err.Error(), err)
}

// fieldPath drops the root struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	_, rest, ok := strings.Cut(fe.Namespace(), ".")
	if !ok {
		return fe.Namespace()
	}
	return rest
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
