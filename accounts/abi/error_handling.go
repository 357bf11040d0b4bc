// Copyright 2025 The go-irc Authors
// This file is part of the go-irc library.
//
// The go-irc library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-irc library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-irc library. If not, see <http://www.gnu.org/licenses/>.

// 版权所有 2025 The go-irc Authors
// 此文件是 go-irc 库的一部分。
//
// go-irc 库是免费软件：您可以根据自由软件基金会发布的 GNU 宽通用公共许可证的条款重新分发和/或修改它，
// 可以是许可证的第 3 版，也可以是（由您选择）任何更高版本。
//
// go-irc 库的发布是希望它能有用，但没有任何保证；甚至没有对适销性或特定用途适用性的默示保证。
// 有关更多详细信息，请参阅 GNU 宽通用公共许可证。
//
// 您应该已经随 go-irc 库收到一份 GNU 宽通用公共许可证的副本。如果没有，请参阅 <http://www.gnu.org/licenses/>。

package abi

import (
	"errors"
	"fmt"
)

// The error taxonomy of the codec. Every failure returned by this package wraps
// exactly one of these, so callers can classify it with errors.Is.
// 编解码器的错误分类。本包返回的每个错误都恰好包装其中一个，调用者可以用 errors.Is 进行判断。
var (
	// ErrTypeSyntax is returned for a malformed or unsupported type string.
	// ErrTypeSyntax 表示类型字符串格式错误或不受支持。
	ErrTypeSyntax = errors.New("abi: invalid type")

	// ErrArity is returned when the number of values does not match the number of
	// declared types, or a fixed array receives the wrong element count.
	// ErrArity 表示值的数量与声明的类型数量不符，或固定长度数组的元素个数不对。
	ErrArity = errors.New("abi: argument count mismatch")

	// ErrRange is returned when an address or fixed bytes value has the wrong length.
	// Integer overflow is never reported, it is masked to the declared width.
	// ErrRange 表示地址或定长字节值长度不正确。整数溢出不会报错，而是按声明宽度截断。
	ErrRange = errors.New("abi: value out of range")

	// ErrLayout is returned when an offset or length points past the end of the data.
	// ErrLayout 表示偏移量或长度超出了数据末尾。
	ErrLayout = errors.New("abi: malformed encoding")

	// ErrUnknownSelector is returned when no method or event matches a selector or topic.
	// ErrUnknownSelector 表示没有方法或事件匹配给定的选择器或主题。
	ErrUnknownSelector = errors.New("abi: unknown selector")

	// ErrInvalidHex is returned for malformed or unprefixed hex input.
	// ErrInvalidHex 表示十六进制输入格式错误或缺少 0x 前缀。
	ErrInvalidHex = errors.New("abi: invalid hex")

	// ErrInvalidValue is returned when a Go value cannot be used for an ABI type at all.
	// ErrInvalidValue 表示某个 Go 值根本无法用于该 ABI 类型。
	ErrInvalidValue = errors.New("abi: invalid value")
)

// typeErr returns a formatted type casting error.
// typeErr 返回一个格式化的类型转换错误。
func typeErr(expected, got interface{}) error {
	return fmt.Errorf("%w: cannot use %v as type %v as argument", ErrInvalidValue, got, expected)
}

// syntaxErr reports a type string the parser rejected.
func syntaxErr(typ string, reason string) error {
	return fmt.Errorf("%w %q: %s", ErrTypeSyntax, typ, reason)
}

func layoutErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrLayout, fmt.Sprintf(format, args...))
}

func arityErr(what string, got, want int) error {
	return fmt.Errorf("%w: %s got %d for %d", ErrArity, what, got, want)
}

func rangeErr(t Type, got int) error {
	return fmt.Errorf("%w: %d bytes do not fit %v", ErrRange, got, t)
}
