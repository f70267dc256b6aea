package domain

import "strings"

// RegionSet - все загруженные административные единицы, сгруппированные по
// уровням. Строится один раз при старте процесса и далее только читается,
// поэтому безопасен для конкурентного доступа без блокировок.
type RegionSet struct {
	Freguesias []*AdministrativeRegion
	Concelhos  []*AdministrativeRegion
	Distritos  []*AdministrativeRegion

	concelhoByName map[string]*AdministrativeRegion
	distritoByName map[string]*AdministrativeRegion
}

// NewRegionSet группирует регионы по уровням и строит индексы по именам.
// Порядок внутри уровня сохраняет порядок загрузки: он используется как
// детерминированный tie-break резолвера.
func NewRegionSet(regions []*AdministrativeRegion) *RegionSet {
	s := &RegionSet{
		concelhoByName: make(map[string]*AdministrativeRegion),
		distritoByName: make(map[string]*AdministrativeRegion),
	}
	for _, r := range regions {
		switch r.Level {
		case LevelFreguesia:
			s.Freguesias = append(s.Freguesias, r)
		case LevelConcelho:
			s.Concelhos = append(s.Concelhos, r)
			s.concelhoByName[normalizeName(r.Name)] = r
		case LevelDistrito:
			s.Distritos = append(s.Distritos, r)
			s.distritoByName[normalizeName(r.Name)] = r
		}
	}
	return s
}

// ConcelhoByName возвращает concelho по точному имени (без учёта регистра)
func (s *RegionSet) ConcelhoByName(name string) *AdministrativeRegion {
	return s.concelhoByName[normalizeName(name)]
}

// DistritoByName возвращает distrito по точному имени (без учёта регистра)
func (s *RegionSet) DistritoByName(name string) *AdministrativeRegion {
	return s.distritoByName[normalizeName(name)]
}

// FilterByName возвращает регионы уровня, имя которых содержит подстроку
// query (без учёта регистра). Точное совпадение имеет приоритет и
// возвращается единственным результатом.
func (s *RegionSet) FilterByName(level RegionLevel, query string) []*AdministrativeRegion {
	var pool []*AdministrativeRegion
	switch level {
	case LevelFreguesia:
		pool = s.Freguesias
	case LevelConcelho:
		pool = s.Concelhos
	case LevelDistrito:
		pool = s.Distritos
	}

	q := normalizeName(query)
	var matches []*AdministrativeRegion
	for _, r := range pool {
		name := normalizeName(r.Name)
		if name == q {
			return []*AdministrativeRegion{r}
		}
		if strings.Contains(name, q) {
			matches = append(matches, r)
		}
	}
	return matches
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
