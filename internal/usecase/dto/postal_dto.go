package dto

import "github.com/geoapi-pt/internal/domain"

// PostalResponse - ответ на /cp: артефакт полного кода либо сводный
// артефакт префикса, в зависимости от формы запроса.
type PostalResponse struct {
	Code   string                         `json:"code"`
	Record *domain.PostalCodeRecord       `json:"record,omitempty"`
	Prefix *domain.PostalCodePrefixRecord `json:"prefix,omitempty"`
}
