package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateLayout 日期序列化格式（仅日期，无时间部分）
const DateLayout = "2006-01-02"

// Date 日历日期值对象
// JSON 和 CSV 中表示为 "YYYY-MM-DD"，数据库中存储为 DATE 列
type Date struct {
	time.Time
}

// ParseDate 解析 "YYYY-MM-DD" 格式的日期
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected format %s", value, DateLayout)
	}
	return Date{Time: t}, nil
}

// String 格式化为 "YYYY-MM-DD"
func (d Date) String() string {
	return d.Format(DateLayout)
}

// After 判断是否晚于另一个日期
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// MarshalJSON 序列化为 "YYYY-MM-DD" 字符串
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON 从 "YYYY-MM-DD" 字符串反序列化
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid date literal: %s", data)
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value 实现 driver.Valuer，写入数据库 DATE 列
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan 实现 sql.Scanner，从数据库 DATE 列读取
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}
