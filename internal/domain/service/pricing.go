package service

import "github.com/barbershop/scheduler/internal/models"

// CalculateTotalPrice calcula o preço de cotação para um conjunto de
// serviços, aplicando o preço de combo quando corte e barba aparecem
// juntos (mesmo reservados como serviços individuais).
//
// Atenção: este é o preço de COTAÇÃO. O commit do agendamento congela o
// preço cadastrado de cada serviço, não o preço de tabela — os dois
// caminhos divergem de propósito.
func CalculateTotalPrice(services []models.Service) float64 {
	if len(services) == 0 {
		return 0
	}

	// Um COMBO explícito domina o conjunto inteiro.
	for i := range services {
		if TypeOf(&services[i]) == TypeCombo {
			return StandardPrices[TypeCombo]
		}
	}

	hasHaircut := false
	hasBeard := false

	for i := range services {
		switch TypeOf(&services[i]) {
		case TypeHaircut:
			hasHaircut = true
		case TypeBeard:
			hasBeard = true
		}
	}

	// Corte + barba individuais recebem o desconto de combo.
	if hasHaircut && hasBeard {
		return StandardPrices[TypeCombo]
	}

	total := 0.0

	if hasHaircut {
		total += StandardPrices[TypeHaircut]
	}

	if hasBeard {
		total += StandardPrices[TypeBeard]
	}

	// Só serviços avulsos: soma os preços cadastrados.
	if !hasHaircut && !hasBeard {
		for i := range services {
			total += services[i].Price
		}
	}

	return total
}
