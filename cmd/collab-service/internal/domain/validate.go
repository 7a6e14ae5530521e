package domain

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// salesIncreasePattern 销量增长百分比格式，例如 "15%"
// 只接受整数百分比，不接受小数、符号或缺少 % 的值
var salesIncreasePattern = regexp.MustCompile(`^\d+%$`)

// checkLength 校验去除首尾空白后的字段长度（按字符计数）
func checkLength(field, value string, min, max int) *ValidationError {
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		return NewValidationError(field, fmt.Sprintf("length must be between %d and %d characters", min, max))
	}
	return nil
}

// checkSalesIncrease 校验百分比字符串格式
func checkSalesIncrease(field, value string) *ValidationError {
	if !salesIncreasePattern.MatchString(value) {
		return NewValidationError(field, `must be an integer percentage like "15%"`)
	}
	return nil
}

// checkDate 校验并解析日期字段
func checkDate(field, value string) (Date, *ValidationError) {
	d, err := ParseDate(value)
	if err != nil {
		return Date{}, NewValidationError(field, "must be a valid date in format "+DateLayout)
	}
	return d, nil
}
