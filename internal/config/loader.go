package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"gear_duel/internal/gear"
)

const DuelFile = "duel.yaml"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("gearcategory", func(fl validator.FieldLevel) bool {
		_, err := gear.ParseCategory(fl.Field().String())
		return err == nil
	})
	return v
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadDuel reads and validates a duel file.
func LoadDuel(path string) (*DuelConfig, error) {
	var dc DuelConfig
	if err := loadYAML(path, &dc); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := validate.Struct(&dc); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return &dc, nil
}

// LoadDir loads DuelFile from dir. A missing file surfaces as os.ErrNotExist.
func LoadDir(dir string) (*DuelConfig, error) {
	return LoadDuel(filepath.Join(dir, DuelFile))
}
