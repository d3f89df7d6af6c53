// Package webutil concentra a validação estrutural dos corpos de requisição.
package webutil

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// nos erros, reporta o nome do campo como ele aparece no JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ErroCampo descreve uma violação de schema em um campo específico. Um corpo
// inválido devolve a lista completa de violações, não só a primeira.
type ErroCampo struct {
	Campo    string `json:"campo"`
	Regra    string `json:"regra"`
	Mensagem string `json:"mensagem"`
}

func Validar(corpo any) []ErroCampo {
	err := validate.Struct(corpo)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ErroCampo{{Campo: "", Regra: "interno", Mensagem: "corpo da requisição inválido"}}
	}

	out := make([]ErroCampo, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ErroCampo{
			Campo:    fe.Field(),
			Regra:    fe.Tag(),
			Mensagem: mensagem(fe),
		})
	}
	return out
}

func mensagem(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "min":
		return "valor abaixo do mínimo"
	case "max":
		return "valor acima do máximo"
	default:
		return "valor inválido"
	}
}
