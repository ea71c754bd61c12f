package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/custodia-labs/hotwatch/internal/core/domain"
)

// Document is the serialised shape of a watch configuration, shared by every
// configuration source. Zero values mean "use the default".
type Document struct {
	Port    int              `toml:"port" yaml:"port" json:"port" validate:"min=1,max=65535"`
	Folders []FolderDocument `toml:"folders" yaml:"folders" json:"folders" validate:"required,min=1,dive"`
}

// FolderDocument is the serialised shape of one watched folder.
type FolderDocument struct {
	Path string `toml:"path" yaml:"path" json:"path" validate:"required"`
	// Interval is the polling hint in milliseconds.
	Interval  int      `toml:"interval" yaml:"interval" json:"interval" validate:"gte=0"`
	Patterns  []string `toml:"patterns" yaml:"patterns" json:"patterns" validate:"dive,required"`
	Recursive *bool    `toml:"recursive" yaml:"recursive" json:"recursive"`
}

var (
	vOnce sync.Once
	v     *validator.Validate
	trans ut.Translator
)

// validatorInstance returns the shared validator with english messages and
// serialised field names.
func validatorInstance() (*validator.Validate, ut.Translator) {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ = uni.GetTranslator("en")

		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			if tag == "" || tag == "-" {
				return fld.Name
			}
			return tag
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)
	})
	return v, trans
}

// WithDefaults returns a copy of d with defaults filled in.
func (d Document) WithDefaults() Document {
	out := Document{Port: d.Port, Folders: make([]FolderDocument, len(d.Folders))}
	if out.Port == 0 {
		out.Port = domain.DefaultPort
	}
	for i, f := range d.Folders {
		if f.Interval == 0 {
			f.Interval = int(domain.DefaultInterval / time.Millisecond)
		}
		if len(f.Patterns) == 0 {
			f.Patterns = domain.DefaultPatterns()
		}
		if f.Recursive == nil {
			recursive := true
			f.Recursive = &recursive
		}
		out.Folders[i] = f
	}
	return out
}

// Validate checks d as it stands, without applying defaults.
// Failures wrap domain.ErrInvalidInput.
func Validate(d Document) error {
	val, tr := validatorInstance()
	err := val.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Document.")
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, fe.Translate(tr)))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
}

// Build applies defaults, validates and converts d into a domain configuration.
func Build(d Document) (*domain.WatchConfiguration, error) {
	d = d.WithDefaults()
	if err := Validate(d); err != nil {
		return nil, err
	}

	folders := make([]domain.FolderWatch, len(d.Folders))
	for i, f := range d.Folders {
		folders[i] = domain.FolderWatch{
			Path:      f.Path,
			Interval:  time.Duration(f.Interval) * time.Millisecond,
			Patterns:  f.Patterns,
			Recursive: *f.Recursive,
		}
	}
	return domain.NewWatchConfiguration(d.Port, folders...), nil
}

// FromDomain converts a configuration back into its serialised shape.
func FromDomain(cfg *domain.WatchConfiguration) Document {
	folders := cfg.Folders()
	d := Document{Port: cfg.Port(), Folders: make([]FolderDocument, len(folders))}
	for i, f := range folders {
		recursive := f.Recursive
		d.Folders[i] = FolderDocument{
			Path:      f.Path,
			Interval:  int(f.Interval / time.Millisecond),
			Patterns:  f.Patterns,
			Recursive: &recursive,
		}
	}
	return d
}
