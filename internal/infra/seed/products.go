package seed

import "huellitas/internal/domain/product"

func price(v int64) *int64 { return &v }

func SampleProducts() []product.Product {
	return []product.Product{
		{
			ID:            1,
			Name:          "Alimento Premium para Cachorros",
			Category:      "alimentos",
			Species:       "perro",
			Age:           "cachorro",
			Brand:         "royal-canin",
			Size:          "pequeno",
			Ingredients:   "natural",
			Description:   "Alimento balanceado para cachorros de razas pequeñas",
			Price:         45000,
			OriginalPrice: price(50000),
			Image:         "alimento-perro-cachorro",
			Stock:         15,
			Rating:        4.8,
			Reviews:       124,
			Features:      []string{"Proteína de alta calidad", "DHA para desarrollo cerebral", "Antioxidantes naturales"},
			Badge:         product.BadgeNew,
			Active:        true,
		},
		{
			ID:          2,
			Name:        "Alimento para Perros Adultos",
			Category:    "alimentos",
			Species:     "perro",
			Age:         "adulto",
			Brand:       "hills",
			Size:        "mediano",
			Ingredients: "grain-free",
			Description: "Nutrición completa para perros adultos de razas medianas",
			Price:       52000,
			Image:       "alimento-perro-adulto",
			Stock:       8,
			Rating:      4.6,
			Reviews:     89,
			Features:    []string{"Sin granos", "Piel y pelaje saludable", "Digestión sensible"},
			Active:      true,
		},
		{
			ID:            3,
			Name:          "Alimento Senior para Perros",
			Category:      "alimentos",
			Species:       "perro",
			Age:           "senior",
			Brand:         "purina",
			Size:          "grande",
			Ingredients:   "natural",
			Description:   "Fórmula especial para perros senior de razas grandes",
			Price:         58000,
			OriginalPrice: price(65000),
			Image:         "alimento-perro-senior",
			Stock:         5,
			Rating:        4.7,
			Reviews:       67,
			Features:      []string{"Articulaciones saludables", "Función cognitiva", "Peso controlado"},
			Badge:         product.BadgeSale,
			Active:        true,
		},
		{
			ID:          4,
			Name:        "Alimento para Gatitos",
			Category:    "alimentos",
			Species:     "gato",
			Age:         "cachorro",
			Brand:       "royal-canin",
			Size:        "pequeno",
			Ingredients: "hypoallergenic",
			Description: "Nutrición especializada para gatitos en crecimiento",
			Price:       38000,
			Image:       "alimento-gato-cachorro",
			Stock:       12,
			Rating:      4.9,
			Reviews:     156,
			Features:    []string{"Sistema inmune fuerte", "Ojos saludables", "Crecimiento óptimo"},
			Badge:       product.BadgeHot,
			Active:      true,
		},
		{
			ID:            5,
			Name:          "Alimento para Gatos Adultos",
			Category:      "alimentos",
			Species:       "gato",
			Age:           "adulto",
			Brand:         "hills",
			Size:          "mediano",
			Ingredients:   "grain-free",
			Description:   "Alimento balanceado para gatos adultos indoor",
			Price:         42000,
			OriginalPrice: price(48000),
			Image:         "alimento-gato-adulto",
			Stock:         10,
			Rating:        4.5,
			Reviews:       92,
			Features:      []string{"Control de bolas de pelo", "Salud urinaria", "Peso ideal"},
			Badge:         product.BadgeSale,
			Active:        true,
		},
		{
			ID:          6,
			Name:        "Pelota Interactiva para Perros",
			Category:    "juguetes",
			Species:     "perro",
			Age:         "all",
			Brand:       "nutre",
			Size:        "mediano",
			Ingredients: "all",
			Description: "Pelota durable con sonido para horas de diversión",
			Price:       25000,
			Image:       "juguete-pelota",
			Stock:       20,
			Rating:      4.4,
			Reviews:     78,
			Features:    []string{"Material resistente", "Sonido atractivo", "Fácil de limpiar"},
			Active:      true,
		},
		{
			ID:            7,
			Name:          "Rascador para Gatos",
			Category:      "juguetes",
			Species:       "gato",
			Age:           "all",
			Brand:         "eukanuba",
			Size:          "pequeno",
			Ingredients:   "all",
			Description:   "Rascador de sisal con plataforma de descanso",
			Price:         35000,
			OriginalPrice: price(42000),
			Image:         "juguete-rascador",
			Stock:         8,
			Rating:        4.7,
			Reviews:       45,
			Features:      []string{"Sisal natural", "Estructura estable", "Múltiples niveles"},
			Badge:         product.BadgeSale,
			Active:        true,
		},
		{
			ID:          8,
			Name:        "Juguete Dental para Perros",
			Category:    "juguetes",
			Species:     "perro",
			Age:         "adulto",
			Brand:       "purina",
			Size:        "all",
			Ingredients: "natural",
			Description: "Juguete que ayuda a la limpieza dental de tu perro",
			Price:       18000,
			Image:       "juguete-dental",
			Stock:       15,
			Rating:      4.6,
			Reviews:     63,
			Features:    []string{"Limpieza dental", "Encías saludables", "Material seguro"},
			Badge:       product.BadgeNew,
			Active:      true,
		},
		{
			ID:            9,
			Name:          "Cama Ortopédica para Perros",
			Category:      "accesorios",
			Species:       "perro",
			Age:           "senior",
			Brand:         "royal-canin",
			Size:          "grande",
			Ingredients:   "all",
			Description:   "Cama con memory foam para perros con problemas articulares",
			Price:         120000,
			OriginalPrice: price(150000),
			Image:         "accesorio-cama",
			Stock:         5,
			Rating:        4.9,
			Reviews:       34,
			Features:      []string{"Memory foam", "Fácil de lavar", "Base antideslizante"},
			Badge:         product.BadgeSale,
			Active:        true,
		},
		{
			ID:          10,
			Name:        "Transportadora para Gatos",
			Category:    "accesorios",
			Species:     "gato",
			Age:         "all",
			Brand:       "hills",
			Size:        "mediano",
			Ingredients: "all",
			Description: "Transportadora segura y cómoda para viajes",
			Price:       75000,
			Image:       "accesorio-transportadora",
			Stock:       7,
			Rating:      4.3,
			Reviews:     28,
			Features:    []string{"Ventilación superior", "Fácil de limpiar", "Segura"},
			Active:      true,
		},
		{
			ID:            11,
			Name:          "Antiparasitario para Perros",
			Category:      "medicamentos",
			Species:       "perro",
			Age:           "adulto",
			Brand:         "purina",
			Size:          "mediano",
			Ingredients:   "all",
			Description:   "Tabletas para control de parásitos internos y externos",
			Price:         35000,
			OriginalPrice: price(42000),
			Image:         "medicamento-antiparasitario",
			Stock:         12,
			Rating:        4.8,
			Reviews:       156,
			Features:      []string{"Protección completa", "Fácil administración", "Efectivo"},
			Badge:         product.BadgeSale,
			Active:        true,
		},
		{
			ID:          12,
			Name:        "Vitaminas para Gatos",
			Category:    "medicamentos",
			Species:     "gato",
			Age:         "all",
			Brand:       "nutre",
			Size:        "all",
			Ingredients: "natural",
			Description: "Suplemento vitamínico para gatos de todas las edades",
			Price:       28000,
			Image:       "medicamento-vitaminas",
			Stock:       18,
			Rating:      4.5,
			Reviews:     89,
			Features:    []string{"Multivitamínico", "Sabor atractivo", "Fácil de administrar"},
			Badge:       product.BadgeNew,
			Active:      true,
		},
		{
			ID:            13,
			Name:          "Shampoo Hipoalergénico",
			Category:      "cuidado",
			Species:       "all",
			Age:           "all",
			Brand:         "eukanuba",
			Size:          "all",
			Ingredients:   "hypoallergenic",
			Description:   "Shampoo suave para mascotas con piel sensible",
			Price:         22000,
			OriginalPrice: price(28000),
			Image:         "cuidado-shampoo",
			Stock:         25,
			Rating:        4.7,
			Reviews:       134,
			Features:      []string{"pH balanceado", "Sin fragancias", "Hipoalergénico"},
			Badge:         product.BadgeSale,
			Active:        true,
		},
		{
			ID:          14,
			Name:        "Cepillo para Pelaje Largo",
			Category:    "cuidado",
			Species:     "all",
			Age:         "all",
			Brand:       "royal-canin",
			Size:        "all",
			Ingredients: "all",
			Description: "Cepillo profesional para mascotas de pelaje largo",
			Price:       15000,
			Image:       "cuidado-cepillo",
			Stock:       30,
			Rating:      4.4,
			Reviews:     67,
			Features:    []string{"Púas redondeadas", "Ergonómico", "Fácil limpieza"},
			Active:      true,
		},
	}
}
