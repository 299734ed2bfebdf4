package entities

// LowStockThreshold is the highest stock level still flagged as "last units".
const LowStockThreshold = 5

// InstallmentCount is the number of installments advertised on the catalog.
const InstallmentCount = 3

// Product is a purchasable catalog item.
//
// Prices are whole COP pesos. Stock never goes below zero.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Stock       int    `json:"stock"`
}

func (p Product) OutOfStock() bool {
	return p.Stock <= 0
}

func (p Product) LowStock() bool {
	return p.Stock > 0 && p.Stock <= LowStockThreshold
}

// InstallmentPrice is the rounded amount of each advertised installment.
func (p Product) InstallmentPrice() int64 {
	return (p.Price + InstallmentCount/2) / InstallmentCount
}

// DefaultProducts returns the bundled catalog in display order.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:          "PROD-001",
			Name:        "Cámara Mirrorless Sony",
			Description: "Cámara profesional 24MP con lente intercambiable y video 4K.",
			Price:       3200000,
			ImageURL:    "https://images.unsplash.com/photo-1642396948521-77c0bf2cd92d?w=400&auto=format&fit=crop&q=40&fm=webp",
			Stock:       5,
		},
		{
			ID:          "PROD-002",
			Name:        "Audífonos Noise Cancelling",
			Description: "Audífonos inalámbricos con cancelación activa de ruido y 30h de batería.",
			Price:       850000,
			ImageURL:    "https://images.unsplash.com/photo-1612478120679-5b7412e15f84?w=400&auto=format&fit=crop&q=40&fm=webp",
			Stock:       12,
		},
		{
			ID:          "PROD-003",
			Name:        "Smartwatch Pro",
			Description: "Reloj inteligente con GPS, monitor cardíaco y resistencia al agua.",
			Price:       1200000,
			ImageURL:    "https://images.unsplash.com/photo-1669480380743-f76990b9bc44?w=400&auto=format&fit=crop&q=40&fm=webp",
			Stock:       8,
		},
		{
			ID:          "PROD-004",
			Name:        "Teclado Mecánico RGB",
			Description: "Teclado gaming mecánico con switches Cherry MX e iluminación RGB.",
			Price:       450000,
			ImageURL:    "https://images.unsplash.com/photo-1669884210251-8c0acfb4206b?w=400&auto=format&fit=crop&q=40&fm=webp",
			Stock:       20,
		},
		{
			ID:          "PROD-005",
			Name:        "Monitor 4K 27\"",
			Description: "Monitor IPS 4K con 144Hz, HDR400 y tiempo de respuesta de 1ms.",
			Price:       2100000,
			ImageURL:    "https://images.unsplash.com/photo-1675151638911-b32b354c4e4a?w=400&auto=format&fit=crop&q=40&fm=webp",
			Stock:       3,
		},
		{
			ID:          "PROD-006",
			Name:        "Silla Gamer Ergonómica",
			Description: "Silla con soporte lumbar ajustable, reposabrazos 4D y reclinable 180°.",
			Price:       980000,
			ImageURL:    "https://images.unsplash.com/photo-1770194993269-2521ad916c23?w=400&auto=format&fit=crop&q=40&fm=webp",
			Stock:       7,
		},
		{
			ID:          "PROD-007",
			Name:        "Drone con Cámara HD",
			Description: "Drone con cámara 1080p, estabilizador de 3 ejes y 25 min de vuelo.",
			Price:       1750000,
			ImageURL:    "https://plus.unsplash.com/premium_photo-1714618849685-89cad85746b1?w=400&auto=format&fit=crop&q=40&fm=webp",
			Stock:       4,
		},
		{
			ID:          "PROD-008",
			Name:        "Tablet Pro 11\"",
			Description: "Tablet con chip M2, pantalla Liquid Retina y compatible con stylus.",
			Price:       4500000,
			ImageURL:    "https://images.unsplash.com/photo-1628866971124-5d506bf12915?w=400&auto=format&fit=crop&q=40&fm=webp",
			Stock:       0,
		},
		{
			ID:          "PROD-009",
			Name:        "Micrófono Condensador",
			Description: "Micrófono de estudio cardioide con soporte antivibraciones y filtro pop.",
			Price:       320000,
			ImageURL:    "https://images.unsplash.com/photo-1652071148620-99be24e731a8?w=400&auto=format&fit=crop&q=40&fm=webp",
			Stock:       15,
		},
		{
			ID:          "PROD-010",
			Name:        "Mousepad XL Gaming",
			Description: "Mousepad extra grande 90x40cm con base antideslizante y bordes cosidos.",
			Price:       85000,
			ImageURL:    "https://images.unsplash.com/photo-1671068514669-8134a08ca1a2?w=400&auto=format&fit=crop&q=40&fm=webp",
			Stock:       30,
		},
	}
}
