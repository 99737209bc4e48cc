package httputil

import (
	"net/url"
	"reflect"
)

// SetFields returns the names of all fields of the filter struct whose
// "form" parameter is set in the query string of the URL.
//
// It is used to tell zero values apart from parameters that were not sent.
func SetFields(url *url.URL, filter any) []string {
	var setFields []string

	query := url.Query()
	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		param := val.Type().Field(i).Tag.Get("form")
		if param != "" && query.Has(param) {
			setFields = append(setFields, val.Type().Field(i).Name)
		}
	}

	return setFields
}
