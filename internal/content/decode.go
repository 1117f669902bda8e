package content

import (
	"fmt"
	"reflect"
	"strings"
)

// DecodeInto populates target (a pointer to a struct) from the props bag.
// Fields are matched by their `cms` tag; untagged or unexported fields are
// skipped, as are keys absent from the bag. A present key whose JSON shape
// cannot be assigned to the Go field is an error.
func DecodeInto(p Props, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("decode target must be a pointer to a struct, got %T", target)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := strings.Split(field.Tag.Get("cms"), ",")[0]
		if tag == "" || tag == "-" {
			continue
		}
		raw, ok := p[tag]
		if !ok || raw == nil {
			continue
		}
		if err := assign(rv.Field(i), raw); err != nil {
			return fmt.Errorf("field %q: %w", tag, err)
		}
	}
	return nil
}

// assign converts a generic JSON value into the given struct field.
func assign(dst reflect.Value, raw any) error {
	switch dst.Kind() {
	case reflect.String:
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", raw)
		}
		dst.SetString(s)
	case reflect.Bool:
		b, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", raw)
		}
		dst.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch v := raw.(type) {
		case float64:
			dst.SetInt(int64(v))
		case int64:
			dst.SetInt(v)
		case int:
			dst.SetInt(int64(v))
		default:
			return fmt.Errorf("expected number, got %T", raw)
		}
	case reflect.Float32, reflect.Float64:
		f, ok := raw.(float64)
		if !ok {
			return fmt.Errorf("expected number, got %T", raw)
		}
		dst.SetFloat(f)
	case reflect.Slice:
		list, ok := raw.([]any)
		if !ok {
			return fmt.Errorf("expected list, got %T", raw)
		}
		out := reflect.MakeSlice(dst.Type(), len(list), len(list))
		for i, item := range list {
			if err := assign(out.Index(i), item); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
		dst.Set(out)
	case reflect.Map:
		m, ok := raw.(map[string]any)
		if !ok {
			return fmt.Errorf("expected object, got %T", raw)
		}
		if dst.Type() == reflect.TypeOf(Props(nil)) {
			dst.Set(reflect.ValueOf(Props(m)))
			return nil
		}
		if dst.Type() == reflect.TypeOf(map[string]any(nil)) {
			dst.Set(reflect.ValueOf(m))
			return nil
		}
		return fmt.Errorf("unsupported map type %s", dst.Type())
	case reflect.Interface:
		dst.Set(reflect.ValueOf(raw))
	case reflect.Struct:
		m, ok := raw.(map[string]any)
		if !ok {
			return fmt.Errorf("expected object, got %T", raw)
		}
		return DecodeInto(Props(m), dst.Addr().Interface())
	default:
		return fmt.Errorf("unsupported field kind %s", dst.Kind())
	}
	return nil
}
