package domain

import "strings"

// RegistryEntry - строка официального реестра почтовых индексов (CTT).
// Институциональные метаданные кода, без геометрии.
type RegistryEntry struct {
	Code     string `json:"code"`
	Locality string `json:"locality,omitempty"`
	Name     string `json:"name,omitempty"`
	Address  string `json:"address,omitempty"`
	Contact  string `json:"contact,omitempty"`
	Concelho string `json:"concelho,omitempty"`
	Distrito string `json:"distrito,omitempty"`
}

// PostalCodeRecord - артефакт для полного кода CP4-CP3.
// points никогда не пуст: коды без адресов не материализуются.
type PostalCodeRecord struct {
	Code         string         `json:"code"`
	Registry     *RegistryEntry `json:"registry,omitempty"`
	Points       []AddressPoint `json:"points"`
	Center       Point          `json:"center"`
	CenterOfMass Point          `json:"center_of_mass"`
	Boundary     Ring           `json:"boundary,omitempty"`
}

// PostalCodePrefixRecord - сводный артефакт для префикса CP4:
// объединение точек всех CP4-CP3 кодов плюс список суффиксов.
type PostalCodePrefixRecord struct {
	CP4          string         `json:"cp4"`
	Registry     *RegistryEntry `json:"registry,omitempty"`
	Suffixes     []string       `json:"suffixes"`
	Points       []AddressPoint `json:"points"`
	Center       Point          `json:"center"`
	CenterOfMass Point          `json:"center_of_mass"`
	Boundary     Ring           `json:"boundary,omitempty"`
}

// ParsePostalCode нормализует ввод пользователя: "1950-449", "1950449" и
// "1950" дают один и тот же результат. cp3 пуст для префиксной формы.
func ParsePostalCode(raw string) (cp4, cp3 string, ok bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), "-", "")
	if len(s) != 4 && len(s) != 7 {
		return "", "", false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", "", false
		}
	}
	if len(s) == 4 {
		return s, "", true
	}
	return s[:4], s[4:], true
}
