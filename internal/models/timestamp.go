package models

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"gorm.io/gorm/schema"
)

// LocalTimeSerializer хранит time.Time строкой YYYY-MM-DD HH:MM:SS в поясе самого значения.
// При чтении строка разбирается как локальное время, поэтому значение на стене часов не меняется.
type LocalTimeSerializer struct{}

func init() {
	schema.RegisterSerializer("localtime", LocalTimeSerializer{})
}

func (LocalTimeSerializer) Value(_ context.Context, _ *schema.Field, _ reflect.Value, fieldValue interface{}) (interface{}, error) {
	switch v := fieldValue.(type) {
	case time.Time:
		return v.Format(TimestampLayout), nil
	case *time.Time:
		if v == nil {
			return nil, nil
		}
		return v.Format(TimestampLayout), nil
	default:
		return nil, fmt.Errorf("localtime: unsupported type %T", fieldValue)
	}
}

func (LocalTimeSerializer) Scan(ctx context.Context, field *schema.Field, dst reflect.Value, dbValue interface{}) error {
	var t time.Time
	switch v := dbValue.(type) {
	case nil:
	case time.Time:
		t = v
	case string:
		parsed, err := ParseTimestamp(v)
		if err != nil {
			return err
		}
		t = parsed
	case []byte:
		parsed, err := ParseTimestamp(string(v))
		if err != nil {
			return err
		}
		t = parsed
	default:
		return fmt.Errorf("localtime: cannot scan %T", dbValue)
	}

	field.ReflectValueOf(ctx, dst).Set(reflect.ValueOf(t))
	return nil
}

// ParseTimestamp разбирает YYYY-MM-DD HH:MM:SS; хвост с долями секунды и смещением отбрасывается
func ParseTimestamp(s string) (time.Time, error) {
	if len(s) > len(TimestampLayout) {
		s = s[:len(TimestampLayout)]
	}
	t, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("некорректное время %q, ожидается YYYY-MM-DD HH:MM:SS", s)
	}
	return t, nil
}
