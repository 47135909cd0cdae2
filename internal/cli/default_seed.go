package cli

// DefaultSeed is the starter catalog the site launched with.
func DefaultSeed() SeedFile {
	return SeedFile{
		Categories: []SeedCategory{
			{Slug: "uniformes", Name: "Uniformes Industriales", Description: "Pantalones, camisas y mamelucos para trabajo pesado"},
			{Slug: "calzado", Name: "Calzado de Seguridad", Description: "Botas y zapatos con protección certificada"},
			{Slug: "epp", Name: "Elementos de Protección", Description: "Cascos, guantes, protectores y más"},
		},
		Products: []SeedProduct{
			{
				ID:   1,
				Name: "Pantalón Cargo Reforzado",
				Images: []string{
					"/images/products/pantalon_clasico_marino_frente.jpg",
					"/images/products/pantalon_3_colores.jpg",
					"/images/products/pantalon_beige.jpg",
				},
				Description:         "Con bolsillos de carga y rodilleras reforzadas",
				DetailedDescription: "Pantalón de trabajo confeccionado en tela grafa de alta resistencia. Incluye 6 bolsillos estratégicamente ubicados, rodilleras reforzadas con doble costura y pretina elástica para mayor comodidad durante toda la jornada laboral.",
				Features:            []string{"Tela Grafa 100% algodón", "6 bolsillos funcionales", "Rodilleras reforzadas", "Costuras triple pespunte"},
				Category:            "uniformes",
			},
			{
				ID:   2,
				Name: "Camisa Grafa Manga Larga",
				Images: []string{
					"/images/products/pantalon_beige.jpg",
					"/images/products/camisa_frente_marino.jpg",
					"/images/products/camisas_3_colores.jpg",
				},
				Description:         "Tela resistente con protección UV",
				DetailedDescription: "Camisa de trabajo ideal para uso industrial. Confeccionada en grafa premium con protección UV integrada. Diseño ergonómico que facilita el movimiento y ventilación en zonas estratégicas.",
				Features:            []string{"Protección UV 50+", "Respirabilidad óptima", "Bolsillo frontal reforzado", "Ajuste ergonómico"},
				Category:            "uniformes",
			},
			{
				ID:   5,
				Name: "Bota con Puntera de Acero",
				Images: []string{
					"/images/products/botin_de_seguridad_fondo.jpg",
					"/images/products/botin_suela.jpg",
					"/images/products/botin_seguridad_cerca.jpg",
				},
				Description:         "Certificada para trabajo pesado",
				DetailedDescription: "Bota de seguridad industrial con puntera de acero que soporta impactos de hasta 200 joules. Suela antideslizante y resistente a hidrocarburos. Interior acolchado para máximo confort.",
				Features:            []string{"Puntera de acero 200J", "Suela PU bidensidad", "Plantilla anatómica", "Certificación IRAM 3610"},
				Category:            "calzado",
			},
			{
				ID:   9,
				Name: "Casco Industrial con Barbuquejo",
				Images: []string{
					"/images/products/Elementosdeseguridad.jpg",
					"/images/products/casco-1-side.jpg",
					"/images/products/casco-1-inside.jpg",
				},
				Description:         "Certificación IRAM",
				DetailedDescription: "Casco de seguridad de última generación con sistema de absorción de impactos. Arnés de 6 puntos ajustable y barbuquejo de 4 puntos. Ranuras para accesorios (protector facial, auditivo).",
				Features:            []string{"Certificación IRAM 3620", "Arnés 6 puntos", "Dieléctrico clase E", "Compatible con accesorios"},
				Category:            "epp",
			},
		},
	}
}
