package settings

import (
	"log"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"

	"cptui.GO/hooks"
)

// Record and registration keys.
const (
	KeyShowInGraphQL = "show_in_graphql"
	KeySingleName    = "graphql_single_name"
	KeyPluralName    = "graphql_plural_name"
)

// Attributes are the GraphQL settings stored on a record. Nil names are absent.
type Attributes struct {
	ShowInGraphQL bool    `mapstructure:"show_in_graphql" json:"show_in_graphql"`
	SingleName    *string `mapstructure:"graphql_single_name" json:"graphql_single_name"`
	PluralName    *string `mapstructure:"graphql_plural_name" json:"graphql_plural_name"`
}

// Truthy reports whether v counts as set: non-zero numbers, true, and
// non-empty strings other than "0" and "false".
// Stricter than a plain bool cast of the stored value, which would count
// "false" and " 0" as true.
func Truthy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case *bool:
		return x != nil && *x
	case string:
		s := strings.TrimSpace(x)
		return s != "" && s != "0" && !strings.EqualFold(s, "false")
	case *string:
		return x != nil && Truthy(*x)
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	}
	return true
}

func truthyHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.Bool {
			return data, nil
		}
		return Truthy(data), nil
	}
}

func stringOrEmptyHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.String {
			return data, nil
		}
		switch f.Kind() {
		case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
			return "", nil
		}
		return data, nil
	}
}

var recordDecodeHook = mapstructure.ComposeDecodeHookFunc(
	truthyHook(),
	stringOrEmptyHook(),
)

// FromRecord reads the attributes off a stored record. Missing or
// malformed keys decode to their defaults.
func FromRecord(rec hooks.Record) Attributes {
	var a Attributes
	if len(rec) == 0 {
		return a
	}
	in := map[string]interface{}{
		KeyShowInGraphQL: rec[KeyShowInGraphQL],
		KeySingleName:    rec[KeySingleName],
		KeyPluralName:    rec[KeyPluralName],
	}
	cfg := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       recordDecodeHook,
		Result:           &a,
		TagName:          "mapstructure",
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return Attributes{}
	}
	// Fields that fail to decode keep their zero value.
	if err := dec.Decode(in); err != nil {
		log.Printf("settings: decode record attributes: %v", err)
	}
	return a.normalized()
}

// Name returns s as an attribute name, absent when empty.
func Name(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (a Attributes) normalized() Attributes {
	if a.SingleName != nil && *a.SingleName == "" {
		a.SingleName = nil
	}
	if a.PluralName != nil && *a.PluralName == "" {
		a.PluralName = nil
	}
	return a
}

// ApplyTo writes the attributes onto rec, leaving other keys untouched.
// Absent names remove the key.
func (a Attributes) ApplyTo(rec hooks.Record) hooks.Record {
	if rec == nil {
		rec = hooks.Record{}
	}
	a = a.normalized()
	rec[KeyShowInGraphQL] = a.ShowInGraphQL
	setName(rec, KeySingleName, a.SingleName)
	setName(rec, KeyPluralName, a.PluralName)
	return rec
}

func setName(rec hooks.Record, key string, v *string) {
	if v == nil {
		delete(rec, key)
		return
	}
	rec[key] = *v
}

// SingleNameOr returns the single name or def when absent.
func (a Attributes) SingleNameOr(def string) string {
	if a.SingleName != nil {
		return *a.SingleName
	}
	return def
}

// PluralNameOr returns the plural name or def when absent.
func (a Attributes) PluralNameOr(def string) string {
	if a.PluralName != nil {
		return *a.PluralName
	}
	return def
}
