package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

func structValue(v any, bindErr error) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: target must be a non-nil pointer", bindErr)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: target must be a pointer to struct", bindErr)
	}
	return rv, nil
}

// taggedFields lists the parameter names a struct asks for under tagName.
func taggedFields(v any, tagName string, bindErr error) ([]string, error) {
	rv, err := structValue(v, bindErr)
	if err != nil {
		return nil, err
	}
	rt := rv.Type()
	names := make([]string, 0, rt.NumField())
	for i := range rt.NumField() {
		if !rt.Field(i).IsExported() {
			continue
		}
		if name, skip := parseFieldTag(rt.Field(i), tagName); !skip {
			names = append(names, name)
		}
	}
	return names, nil
}

func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	rv, err := structValue(v, bindErr)
	if err != nil {
		return err
	}
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		fieldType := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		paramName, skip := parseFieldTag(fieldType, tagName)
		if skip {
			continue
		}
		fieldValues, ok := values[paramName]
		if !ok || len(fieldValues) == 0 {
			continue
		}

		if err := setFieldValue(field, fieldType.Type, fieldValues); err != nil {
			return fmt.Errorf("%w: field %s: %w", bindErr, fieldType.Name, err)
		}
	}
	return nil
}

func parseFieldTag(field reflect.StructField, tagName string) (paramName string, skip bool) {
	tag := field.Tag.Get(tagName)
	switch tag {
	case "":
		return strings.ToLower(field.Name), false
	case "-":
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	return name, false
}

func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	switch fieldType.Kind() {
	case reflect.Pointer:
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), values)
	case reflect.Slice:
		return setSliceValue(field, fieldType, values)
	}

	if len(values) == 0 {
		return nil
	}
	value := values[0]

	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			switch strings.ToLower(value) {
			case "on", "yes":
				b = true
			case "off", "no":
				b = false
			default:
				return fmt.Errorf("invalid bool value %q", value)
			}
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported type %s", fieldType.Kind())
	}
	return nil
}

func setSliceValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	var all []string
	for _, v := range values {
		all = append(all, strings.Split(v, ",")...)
	}

	slice := reflect.MakeSlice(fieldType, len(all), len(all))
	for i, value := range all {
		if err := setFieldValue(slice.Index(i), fieldType.Elem(), []string{strings.TrimSpace(value)}); err != nil {
			return err
		}
	}
	field.Set(slice)
	return nil
}
