// Package seed loads the sample catalog into an empty database. It is
// gated behind SEED_SAMPLE_DATA and safe to run repeatedly.
package seed

import "huellitas/internal/domain/service"

func SampleServices() []service.Service {
	return []service.Service{
		{
			ID:          1,
			Name:        "Baño Premium",
			Description: "Baño relajante con productos naturales y secado profesional",
			Price:       25000,
			Duration:    60,
			Icon:        "shower",
			Features: []string{
				"Shampoo natural",
				"Secado suave",
				"Perfume hipoalergénico",
				"Cepillado profesional",
			},
			Active: true,
		},
		{
			ID:          2,
			Name:        "Corte de Pelo",
			Description: "Corte de pelo profesional según raza y estilo preferido",
			Price:       30000,
			Duration:    90,
			Icon:        "cut",
			Features: []string{
				"Estilo personalizado",
				"Técnicas profesionales",
				"Acabado perfecto",
				"Limpieza facial",
			},
			Active: true,
		},
		{
			ID:          3,
			Name:        "Limpieza de Oídos",
			Description: "Limpieza profunda y cuidados especializados para orejas",
			Price:       15000,
			Duration:    30,
			Icon:        "ear-deaf",
			Features: []string{
				"Limpieza profunda",
				"Productos especializados",
				"Revisión médica",
				"Prevención de infecciones",
			},
			Active: true,
		},
		{
			ID:          4,
			Name:        "Consulta Veterinaria",
			Description: "Consulta veterinaria y cuidados médicos especializados",
			Price:       35000,
			Duration:    45,
			Icon:        "stethoscope",
			Features: []string{
				"Consulta especializada",
				"Revisión completa",
				"Diagnóstico profesional",
				"Recomendaciones de cuidado",
			},
			Active: true,
		},
		{
			ID:          5,
			Name:        "Spa Completo",
			Description: "Experiencia completa de spa para tu mascota",
			Price:       50000,
			Duration:    120,
			Icon:        "spa",
			Features: []string{
				"Baño premium",
				"Corte de pelo",
				"Limpieza dental",
				"Masaje relajante",
				"Pedicure",
			},
			Active: true,
		},
		{
			ID:          6,
			Name:        "Guardería Diurna",
			Description: "Cuidado y entretenimiento para tu mascota durante el día",
			Price:       20000,
			Duration:    480,
			Icon:        "home",
			Features: []string{
				"Supervisión constante",
				"Área de juego",
				"Alimentación incluida",
				"Paseos programados",
			},
			Active: true,
		},
	}
}
