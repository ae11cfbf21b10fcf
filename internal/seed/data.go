package seed

import "github.com/jdmejias/perfumes-app/pkg/enums"

type brandSeed struct {
	Name string
	Slug string
}

type categorySeed struct {
	Name string
	Slug string
	Type enums.CategoryType
}

// prices are in cents for the 5ml, 10ml and 100ml variants.
type prices struct {
	ML5     int
	ML10    int
	ML100   int
	Percent int64
}

type productSeed struct {
	Name        string
	Slug        string
	Description string
	Gender      enums.Gender
	TopNotes    string
	MiddleNotes string
	BaseNotes   string
	Brand       string
	Categories  []string
	Image       string
	Prices      prices
}

var brands = []brandSeed{
	{Name: "Armaf", Slug: "armaf"},
	{Name: "Afnan", Slug: "afnan"},
	{Name: "Al Haramain", Slug: "al-haramain"},
	{Name: "Maison Alhambra", Slug: "maison-alhambra"},
	{Name: "Lattafa", Slug: "lattafa"},
	{Name: "Fragrance World", Slug: "fragrance-world"},
}

var categories = []categorySeed{
	{Name: "Masculinos", Slug: "masculinos", Type: enums.CategoryTypeMen},
	{Name: "Femeninos", Slug: "femeninos", Type: enums.CategoryTypeWomen},
	{Name: "Decants", Slug: "decants", Type: enums.CategoryTypeDecants},
	{Name: "Ofertas", Slug: "ofertas", Type: enums.CategoryTypeOffers},
	{Name: "Nuevos", Slug: "nuevos", Type: enums.CategoryTypeNew},
}

var products = []productSeed{
	{
		Name: "Imperium", Slug: "imperium",
		Description: "Fragancia fresca y poderosa con notas cítricas y aromáticas que evocan autoridad y elegancia masculina.",
		Gender:      enums.GenderMen,
		TopNotes:    "Pomelo, Limón, Bergamota", MiddleNotes: "Romero, Cardamomo, Geranio",
		BaseNotes: "Ámbar, Almizcle, Madera de cedro",
		Brand:     "fragrance-world", Categories: []string{"masculinos", "decants"},
		Image:  "/products/imperium100ml3.3oz.jpeg",
		Prices: prices{ML5: 1800, ML10: 3200, ML100: 11000},
	},
	{
		Name: "Odyssey Aqua", Slug: "odyssey-aqua",
		Description: "Edición acuática del icónico Odyssey. Fresca, ligera y perfecta para el día a día.",
		Gender:      enums.GenderMen,
		TopNotes:    "Menta acuática, Lima, Pepino", MiddleNotes: "Violeta, Jengibre, Cardamomo",
		BaseNotes: "Madera blanca, Almizcle, Ámbar",
		Brand:     "armaf", Categories: []string{"masculinos", "decants", "nuevos"},
		Image:  "/products/oddyseyaqua.jpeg",
		Prices: prices{ML5: 1500, ML10: 2600, ML100: 140000},
	},
	{
		Name: "Odyssey Spectra", Slug: "odyssey-spectra",
		Description: "Rainbow Edition, una explosión de colores en una fragancia vibrante con energía única.",
		Gender:      enums.GenderMen,
		TopNotes:    "Piña, Mango, Naranja", MiddleNotes: "Rosa, Lavanda, Pachulí",
		BaseNotes: "Almizcle, Ámbar, Vainilla",
		Brand:     "armaf", Categories: []string{"masculinos", "decants"},
		Image:  "/products/oddyseyspectra.jpeg",
		Prices: prices{ML5: 1500, ML10: 2600, ML100: 9500},
	},
	{
		Name: "Odyssey Homme", Slug: "odyssey-homme",
		Description: "La versión original y más oscura del Odyssey. Intenso, elegante y muy persistente.",
		Gender:      enums.GenderMen,
		TopNotes:    "Bergamota, Pimienta negra, Cardamomo", MiddleNotes: "Lavanda, Vetiver, Iris",
		BaseNotes: "Oud, Sándalo, Almizcle, Cuero",
		Brand:     "armaf", Categories: []string{"masculinos", "decants"},
		Image:  "/products/oddyseyhomme.jpeg",
		Prices: prices{ML5: 1500, ML10: 2600, ML100: 9500},
	},
	{
		Name: "Afnan 9PM", Slug: "afnan-9pm",
		Description: "El perfume de la noche por excelencia. Dulce, cálido y magnéticamente sensual.",
		Gender:      enums.GenderMen,
		TopNotes:    "Manzana, Canela, Cardamomo", MiddleNotes: "Rosa, Lavanda, Jazmín",
		BaseNotes: "Vainilla, Ámbar, Almizcle, Tonka",
		Brand:     "afnan", Categories: []string{"masculinos", "decants", "nuevos"},
		Image:  "/products/9pm.jpg",
		Prices: prices{ML5: 2000, ML10: 3500, ML100: 12000, Percent: 10},
	},
	{
		Name: "Club de Nuit Iconic", Slug: "club-de-nuit-iconic",
		Description: "Versión icónica del clásico Club de Nuit. Suave, etéreo y de larga duración.",
		Gender:      enums.GenderMen,
		TopNotes:    "Piña, Grosella negra, Limón", MiddleNotes: "Rosa, Jazmín, Iris",
		BaseNotes: "Almizcle, Vainilla, Sándalo, Pachulí",
		Brand:     "armaf", Categories: []string{"masculinos", "decants"},
		Image:  "/products/clubnuiteIconic.jpg",
		Prices: prices{ML5: 2200, ML10: 3800, ML100: 13000},
	},
	{
		Name: "Sceptre Malachite", Slug: "sceptre-malachite",
		Description: "Fragancia verde y mineral de Maison Alhambra. Sofisticado y diferente.",
		Gender:      enums.GenderMen,
		TopNotes:    "Bergamota, Cardamomo, Pimienta verde", MiddleNotes: "Vetiver, Cedro, Haba tonka",
		BaseNotes: "Oud, Sándalo, Musgo de roble",
		Brand:     "maison-alhambra", Categories: []string{"masculinos", "decants"},
		Image:  "/products/spectre.jpeg",
		Prices: prices{ML5: 1800, ML10: 3200, ML100: 10500},
	},
	{
		Name: "Amber Oud Aqua Dubai", Slug: "amber-oud-aqua-dubai",
		Description: "La edición acuática del legendario Amber Oud. Fresco y oriental con toque de oud.",
		Gender:      enums.GenderMen,
		TopNotes:    "Naranja, Piña, Mandarina", MiddleNotes: "Oud, Rosa, Azafrán",
		BaseNotes: "Ámbar, Sándalo, Almizcle blanco",
		Brand:     "al-haramain", Categories: []string{"masculinos", "decants", "nuevos"},
		Image:  "/products/aquadubai.jpg",
		Prices: prices{ML5: 2200, ML10: 3800, ML100: 14000},
	},
	{
		Name: "Lattafa Yara Moi", Slug: "yara-moi",
		Description: "Dulce y sofisticada. Notas florales y gourmand que envuelven con elegancia femenina.",
		Gender:      enums.GenderWomen,
		TopNotes:    "Pera, Bergamota, Fresia", MiddleNotes: "Rosa, Jazmín, Iris",
		BaseNotes: "Vainilla, Almizcle, Sándalo, Ámbar",
		Brand:     "lattafa", Categories: []string{"femeninos", "decants"},
		Image:  "/products/yaralataffamoi.jpeg",
		Prices: prices{ML5: 1400, ML10: 2300, ML100: 8500},
	},
	{
		Name: "Lattafa Yara Tous", Slug: "yara-tous",
		Description: "Cálida y floral. Una fragancia dorada que deja un rastro irresistible.",
		Gender:      enums.GenderWomen,
		TopNotes:    "Naranja, Limón, Bergamota", MiddleNotes: "Jazmín, Ylang-ylang, Heliotropo",
		BaseNotes: "Vainilla, Ámbar, Almizcle",
		Brand:     "lattafa", Categories: []string{"femeninos", "decants", "nuevos"},
		Image:  "/products/yaralataffatous.jpeg",
		Prices: prices{ML5: 1400, ML10: 2300, ML100: 8500, Percent: 10},
	},
}
