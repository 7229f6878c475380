package service

import (
	"strings"

	"github.com/barbershop/scheduler/internal/models"
)

// ===============================
// Service Type
// ===============================

type Type string

const (
	TypeHaircut Type = "HAIRCUT"
	TypeBeard   Type = "BEARD"
	TypeCombo   Type = "COMBO"
	TypeOther   Type = "OTHER"
)

// Preços padrão de tabela. OTHER não tem preço de tabela: serviços avulsos
// usam sempre o preço cadastrado.
var StandardPrices = map[Type]float64{
	TypeHaircut: 45.0,
	TypeBeard:   50.0,
	TypeCombo:   75.0,
	TypeOther:   0.0,
}

// DetectTypeFromName deriva o tipo a partir do nome do serviço.
// Determinístico: o mesmo nome produz sempre o mesmo tipo.
func DetectTypeFromName(name string) Type {
	lower := strings.ToLower(name)

	hasCorte := strings.Contains(lower, "corte")
	hasBarba := strings.Contains(lower, "barba")

	switch {
	case hasCorte && hasBarba:
		return TypeCombo
	case hasCorte:
		return TypeHaircut
	case hasBarba:
		return TypeBeard
	default:
		return TypeOther
	}
}

// TypeOf resolve o tipo efetivo de um serviço, derivando do nome quando o
// campo não foi preenchido (registros antigos).
func TypeOf(s *models.Service) Type {
	if s.Type != "" {
		return Type(s.Type)
	}
	return DetectTypeFromName(s.Name)
}
