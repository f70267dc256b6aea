package domain

// PostalRegistry - загруженный официальный реестр: записи по полным кодам
// CP4-CP3 и сводные записи по префиксам CP4. Только чтение после загрузки.
type PostalRegistry struct {
	byCode map[string]*RegistryEntry
	byCP4  map[string]*RegistryEntry
}

func NewPostalRegistry(full []*RegistryEntry, prefixes []*RegistryEntry) *PostalRegistry {
	r := &PostalRegistry{
		byCode: make(map[string]*RegistryEntry, len(full)),
		byCP4:  make(map[string]*RegistryEntry, len(prefixes)),
	}
	for _, e := range full {
		r.byCode[e.Code] = e
	}
	for _, e := range prefixes {
		r.byCP4[e.Code] = e
	}
	return r
}

// ByCode возвращает запись для полного кода "XXXX-XXX", nil если её нет
func (r *PostalRegistry) ByCode(code string) *RegistryEntry {
	return r.byCode[code]
}

// ByCP4 возвращает сводную запись префикса, nil если её нет
func (r *PostalRegistry) ByCP4(cp4 string) *RegistryEntry {
	return r.byCP4[cp4]
}

func (r *PostalRegistry) Len() int {
	return len(r.byCode) + len(r.byCP4)
}
