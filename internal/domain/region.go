package domain

// Ring - замкнутое кольцо полигона: первая и последняя вершина совпадают,
// минимум 4 вершины (3 различных точки).
type Ring []Point

// Closed reports whether the ring has enough vertices and first == last.
func (r Ring) Closed() bool {
	if len(r) < 4 {
		return false
	}
	return r[0] == r[len(r)-1]
}

// Bounds возвращает bbox кольца. Кольцо не должно быть пустым.
func (r Ring) Bounds() BoundingBox {
	b := NewBoundingBox(r[0].Lat, r[0].Lon)
	for _, p := range r[1:] {
		b = b.Extend(p.Lat, p.Lon)
	}
	return b
}

// PolygonPart - одна часть мультиполигона: внешнее кольцо плюс
// кольца-дырки (анклавы).
type PolygonPart struct {
	Outer Ring   `json:"outer"`
	Holes []Ring `json:"holes,omitempty"`
}

// RegionLevel - уровень административной иерархии
type RegionLevel string

const (
	LevelFreguesia RegionLevel = "freguesia"
	LevelConcelho  RegionLevel = "concelho"
	LevelDistrito  RegionLevel = "distrito"
)

// AdministrativeRegion - административная единица с границей.
// Freguesia - лист иерархии; concelho и distrito хранят собственные
// границы, не пересчитанные из детей. Границы загружаются один раз
// при старте и далее только читаются.
type AdministrativeRegion struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Level    RegionLevel    `json:"level"`
	Distrito string         `json:"distrito,omitempty"`
	Concelho string         `json:"concelho,omitempty"`
	Boundary []PolygonPart  `json:"boundary"`
	Registry *RegistryEntry `json:"registry,omitempty"`

	bounds    BoundingBox
	hasBounds bool
}

// Bounds возвращает (и лениво кеширует до первой публикации) bbox всех
// частей границы. Вызывается только на этапе построения индекса, до
// конкурентного доступа.
func (r *AdministrativeRegion) Bounds() BoundingBox {
	if r.hasBounds {
		return r.bounds
	}
	b := r.Boundary[0].Outer.Bounds()
	for _, part := range r.Boundary[1:] {
		ob := part.Outer.Bounds()
		b = b.Extend(ob.MinLat, ob.MinLon)
		b = b.Extend(ob.MaxLat, ob.MaxLon)
	}
	r.bounds = b
	r.hasBounds = true
	return b
}

// RegionHierarchy - ответ резолвера: тройка freguesia/concelho/distrito
type RegionHierarchy struct {
	Freguesia *AdministrativeRegion `json:"freguesia"`
	Concelho  *AdministrativeRegion `json:"concelho,omitempty"`
	Distrito  *AdministrativeRegion `json:"distrito,omitempty"`
}
