package domain

// AddressPoint - одна запись из выгрузки адресов (raw address feed).
// Неизменяема после загрузки.
type AddressPoint struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Street      string  `json:"street"`
	HouseNumber string  `json:"house_number,omitempty"`
	CP4         string  `json:"cp4"`
	CP3         string  `json:"cp3"`
}

// Code возвращает полный почтовый индекс в форме "XXXX-XXX"
func (a AddressPoint) Code() string {
	return a.CP4 + "-" + a.CP3
}
