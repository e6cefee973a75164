package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateTimeLayout = "2006-01-02T15:04:05"

// DateTime 日期时间字段，JSON 兼容不带时区的 ISO 格式
type DateTime time.Time

func (d DateTime) Time() time.Time {
	return time.Time(d)
}

func (d DateTime) String() string {
	return time.Time(d).Format(dateTimeLayout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = DateTime{}
		return nil
	}
	for _, layout := range []string{dateTimeLayout, time.RFC3339, dateLayout} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			*d = DateTime(t)
			return nil
		}
	}
	return fmt.Errorf("invalid datetime %q", s)
}

// Value 实现 driver.Valuer，落库为不带时区的文本避免时区偏移
func (d DateTime) Value() (driver.Value, error) {
	return time.Time(d).Format("2006-01-02 15:04:05"), nil
}

// Scan 实现 sql.Scanner
func (d *DateTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = DateTime{}
		return nil
	case time.Time:
		*d = DateTime(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into DateTime", value)
	}
}

func (d *DateTime) scanString(s string) error {
	for _, layout := range []string{"2006-01-02 15:04:05", dateTimeLayout, time.RFC3339, dateLayout} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			*d = DateTime(t)
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as DateTime", s)
}

// GormDataType 数据库列类型
func (DateTime) GormDataType() string {
	return "datetime"
}
