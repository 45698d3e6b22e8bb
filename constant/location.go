package constant

import "sort"

// DefaultProvince is the province preselected on a fresh checkout draft.
const DefaultProvince = "Metro Manila"

// ProvinceMunicipalities is the static shipping coverage map. The checkout
// only accepts a municipality listed under its selected province.
var ProvinceMunicipalities = map[string][]string{
	"Metro Manila": {
		"Caloocan", "Las Piñas", "Makati", "Malabon", "Mandaluyong", "Manila",
		"Marikina", "Muntinlupa", "Navotas", "Parañaque", "Pasay", "Pasig",
		"Pateros", "Quezon City", "San Juan", "Taguig", "Valenzuela",
	},
	"Cebu": {
		"Cebu City", "Carcar", "Danao", "Lapu-Lapu", "Mandaue", "Naga", "Talisay", "Toledo",
	},
	"Davao del Sur": {
		"Davao City", "Digos", "Bansalan", "Hagonoy", "Malalag", "Matanao", "Padada", "Santa Cruz",
	},
	"Laguna": {
		"Biñan", "Cabuyao", "Calamba", "San Pablo", "San Pedro", "Santa Rosa",
	},
	"Cavite": {
		"Bacoor", "Dasmariñas", "General Trias", "Imus", "Tagaytay", "Trece Martires",
	},
	"Bulacan": {
		"Malolos", "Meycauayan", "San Jose del Monte", "Baliuag", "Marilao", "Santa Maria",
	},
	"Pampanga": {
		"Angeles", "Mabalacat", "San Fernando", "Apalit", "Guagua", "Lubao", "Mexico",
	},
	"Rizal": {
		"Antipolo", "Cainta", "Taytay", "Binangonan", "Rodriguez", "San Mateo",
	},
	"Batangas": {
		"Batangas City", "Lipa", "Santo Tomas", "Tanauan", "Bauan", "Nasugbu",
	},
	"Iloilo": {
		"Iloilo City", "Passi", "Oton", "Pavia", "Santa Barbara",
	},
}

// Provinces returns the province names with a defined municipality list,
// sorted for a stable selector order.
func Provinces() []string {
	names := make([]string, 0, len(ProvinceMunicipalities))
	for name := range ProvinceMunicipalities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Municipalities returns the municipality list for a province, nil when the
// province is unknown.
func Municipalities(province string) []string {
	return ProvinceMunicipalities[province]
}

// DefaultMunicipality returns the first municipality of a province, or empty
// when the province has none.
func DefaultMunicipality(province string) string {
	list := ProvinceMunicipalities[province]
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

// ValidMunicipality reports whether the municipality belongs to the province.
func ValidMunicipality(province, municipality string) bool {
	for _, m := range ProvinceMunicipalities[province] {
		if m == municipality {
			return true
		}
	}
	return false
}
