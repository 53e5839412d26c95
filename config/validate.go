package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validate checks field constraints and the cross-field rules of the grid
// (endpoints inside the board and distinct, listed cells inside the board).
// Failures wrap ErrInvalidConfig and carry English messages.
func Validate(cfg *Config) error {
	validate := validator.New()
	validate.RegisterStructValidation(gridStructLevel, GridConfig{})

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(trans))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// gridStructLevel reports positions that fall outside the board.
func gridStructLevel(sl validator.StructLevel) {
	g := sl.Current().Interface().(GridConfig)
	inside := func(r, c int) bool { return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols }

	if !inside(g.StartRow, g.StartCol) {
		sl.ReportError(g.StartRow, "StartRow", "StartRow", "inside", "")
	}
	if !inside(g.EndRow, g.EndCol) {
		sl.ReportError(g.EndRow, "EndRow", "EndRow", "inside", "")
	}
	if g.StartRow == g.EndRow && g.StartCol == g.EndCol {
		sl.ReportError(g.EndCol, "EndCol", "EndCol", "distinct", "")
	}
	for i, w := range g.Walls {
		if !inside(w.Row, w.Col) {
			sl.ReportError(w, fmt.Sprintf("Walls[%d]", i), "Walls", "inside", "")
		}
	}
	for i, w := range g.Weights {
		if !inside(w.Row, w.Col) {
			sl.ReportError(w, fmt.Sprintf("Weights[%d]", i), "Weights", "inside", "")
		}
	}
}
