// Package country holds the immutable reference set of monitored sovereign
// states. The registry is fixed at startup and never mutated.
package country

// Country identifies one monitored sovereign state
type Country struct {
	Code   string `json:"code"` // ISO 3166-1 alpha-2
	ISO3   string `json:"iso3"` // ISO 3166-1 alpha-3 (World Bank keying)
	Name   string `json:"name"`
	Flag   string `json:"flag"`
	Region string `json:"region"`
}

// All lists every monitored country. Order matters: the text-analytics fan-out
// monitors a prefix of this slice, so the highest-priority states come first.
var All = []Country{
	{"VE", "VEN", "Venezuela", "🇻🇪", "LAC"},
	{"LB", "LBN", "Lebanon", "🇱🇧", "MENA"},
	{"AR", "ARG", "Argentina", "🇦🇷", "LAC"},
	{"ZW", "ZWE", "Zimbabwe", "🇿🇼", "SSA"},
	{"TR", "TUR", "Turkey", "🇹🇷", "MENA"},
	{"SD", "SDN", "Sudan", "🇸🇩", "SSA"},
	{"SY", "SYR", "Syria", "🇸🇾", "MENA"},
	{"PK", "PAK", "Pakistan", "🇵🇰", "SA"},
	{"ET", "ETH", "Ethiopia", "🇪🇹", "SSA"},
	{"NG", "NGA", "Nigeria", "🇳🇬", "SSA"},
	{"IR", "IRN", "Iran", "🇮🇷", "MENA"},
	{"EG", "EGY", "Egypt", "🇪🇬", "MENA"},
	{"GH", "GHA", "Ghana", "🇬🇭", "SSA"},
	{"KE", "KEN", "Kenya", "🇰🇪", "SSA"},
	{"RU", "RUS", "Russia", "🇷🇺", "ECA"},
	{"BD", "BGD", "Bangladesh", "🇧🇩", "SA"},
	{"TN", "TUN", "Tunisia", "🇹🇳", "MENA"},
	{"ZA", "ZAF", "South Africa", "🇿🇦", "SSA"},
	{"CO", "COL", "Colombia", "🇨🇴", "LAC"},
	{"BR", "BRA", "Brazil", "🇧🇷", "LAC"},
	{"PH", "PHL", "Philippines", "🇵🇭", "EAP"},
	{"MX", "MEX", "Mexico", "🇲🇽", "LAC"},
	{"CN", "CHN", "China", "🇨🇳", "EAP"},
	{"IN", "IND", "India", "🇮🇳", "SA"},
	{"ID", "IDN", "Indonesia", "🇮🇩", "EAP"},
	{"CL", "CHL", "Chile", "🇨🇱", "LAC"},
	{"JP", "JPN", "Japan", "🇯🇵", "EAP"},
	{"FR", "FRA", "France", "🇫🇷", "ECA"},
	{"TH", "THA", "Thailand", "🇹🇭", "EAP"},
	{"GB", "GBR", "UK", "🇬🇧", "ECA"},
	{"US", "USA", "United States", "🇺🇸", "NAM"},
	{"DE", "DEU", "Germany", "🇩🇪", "ECA"},
	{"MY", "MYS", "Malaysia", "🇲🇾", "EAP"},
	{"VN", "VNM", "Vietnam", "🇻🇳", "EAP"},
	{"CA", "CAN", "Canada", "🇨🇦", "NAM"},
	{"PL", "POL", "Poland", "🇵🇱", "ECA"},
	{"SA", "SAU", "Saudi Arabia", "🇸🇦", "MENA"},
	{"AU", "AUS", "Australia", "🇦🇺", "EAP"},
	{"KR", "KOR", "South Korea", "🇰🇷", "EAP"},
	{"AE", "ARE", "UAE", "🇦🇪", "MENA"},
	{"UA", "UKR", "Ukraine", "🇺🇦", "ECA"},
	{"IQ", "IRQ", "Iraq", "🇮🇶", "MENA"},
	{"YE", "YEM", "Yemen", "🇾🇪", "MENA"},
	{"AF", "AFG", "Afghanistan", "🇦🇫", "SA"},
	{"MM", "MMR", "Myanmar", "🇲🇲", "EAP"},
	{"LK", "LKA", "Sri Lanka", "🇱🇰", "SA"},
	{"HT", "HTI", "Haiti", "🇭🇹", "LAC"},
	{"CD", "COD", "DR Congo", "🇨🇩", "SSA"},
	{"SO", "SOM", "Somalia", "🇸🇴", "SSA"},
	{"LY", "LBY", "Libya", "🇱🇾", "MENA"},
	{"MZ", "MOZ", "Mozambique", "🇲🇿", "SSA"},
	{"CM", "CMR", "Cameroon", "🇨🇲", "SSA"},
	{"PE", "PER", "Peru", "🇵🇪", "LAC"},
	{"EC", "ECU", "Ecuador", "🇪🇨", "LAC"},
	{"BO", "BOL", "Bolivia", "🇧🇴", "LAC"},
	{"JO", "JOR", "Jordan", "🇯🇴", "MENA"},
	{"MA", "MAR", "Morocco", "🇲🇦", "MENA"},
	{"DZ", "DZA", "Algeria", "🇩🇿", "MENA"},
	{"NP", "NPL", "Nepal", "🇳🇵", "SA"},
	{"KH", "KHM", "Cambodia", "🇰🇭", "EAP"},
	{"TZ", "TZA", "Tanzania", "🇹🇿", "SSA"},
	{"UG", "UGA", "Uganda", "🇺🇬", "SSA"},
	{"AO", "AGO", "Angola", "🇦🇴", "SSA"},
	{"ZM", "ZMB", "Zambia", "🇿🇲", "SSA"},
	{"SN", "SEN", "Senegal", "🇸🇳", "SSA"},
	{"CI", "CIV", "Ivory Coast", "🇨🇮", "SSA"},
	{"HN", "HND", "Honduras", "🇭🇳", "LAC"},
	{"GT", "GTM", "Guatemala", "🇬🇹", "LAC"},
	{"CU", "CUB", "Cuba", "🇨🇺", "LAC"},
	{"KP", "PRK", "North Korea", "🇰🇵", "EAP"},
	{"QA", "QAT", "Qatar", "🇶🇦", "MENA"},
	{"HU", "HUN", "Hungary", "🇭🇺", "ECA"},
	{"RO", "ROU", "Romania", "🇷🇴", "ECA"},
	{"CZ", "CZE", "Czechia", "🇨🇿", "ECA"},
	{"GR", "GRC", "Greece", "🇬🇷", "ECA"},
	{"PT", "PRT", "Portugal", "🇵🇹", "ECA"},
	{"IT", "ITA", "Italy", "🇮🇹", "ECA"},
	{"ES", "ESP", "Spain", "🇪🇸", "ECA"},
	{"SE", "SWE", "Sweden", "🇸🇪", "ECA"},
	{"NO", "NOR", "Norway", "🇳🇴", "ECA"},
}

var (
	byCode = make(map[string]Country, len(All))
	byISO3 = make(map[string]Country, len(All))
)

func init() {
	for _, c := range All {
		byCode[c.Code] = c
		byISO3[c.ISO3] = c
	}
}

// Get returns the country for an ISO2 code
func Get(code string) (Country, bool) {
	c, ok := byCode[code]
	return c, ok
}

// GetByISO3 returns the country for an ISO3 code
func GetByISO3(iso3 string) (Country, bool) {
	c, ok := byISO3[iso3]
	return c, ok
}

// NormalizeISO3 maps an upstream country identifier to ISO3. Some tabular
// responses key countries by ISO2; anything unknown passes through unchanged.
func NormalizeISO3(id string) string {
	if c, ok := byCode[id]; ok {
		return c.ISO3
	}
	return id
}

// ISO3Codes returns every monitored ISO3 code in registry order
func ISO3Codes() []string {
	codes := make([]string, 0, len(All))
	for _, c := range All {
		codes = append(codes, c.ISO3)
	}
	return codes
}

// Monitored returns the first n countries in registry order, used to bound
// text-analytics API fan-out per cycle.
func Monitored(n int) []Country {
	if n <= 0 || n >= len(All) {
		return All
	}
	return All[:n]
}
