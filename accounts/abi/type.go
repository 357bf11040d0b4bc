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
	"fmt"
	"regexp"
	"strconv"
)

// Type enumerator
// 类型枚举器
const (
	IntTy        byte = iota // 有符号整型
	UintTy                   // 无符号整型
	BoolTy                   // 布尔型
	StringTy                 // 字符串
	SliceTy                  // 动态长度数组 T[]
	ArrayTy                  // 固定长度数组 T[N]
	AddressTy                // 地址类型
	FixedBytesTy             // 固定长度字节数组
	BytesTy                  // 动态长度字节数组
)

// wordSize is the unit of alignment of the encoding.
// wordSize 是编码的对齐单位。
const wordSize = 32

// maxArrayLength bounds fixed array lengths so head sizes cannot overflow.
const maxArrayLength = 1 << 24

// Type is the parsed form of an ABI type string. It is a closed tagged variant:
// T selects the shape and the remaining fields are interpreted per shape.
//
//   - IntTy, UintTy: Size is the width in bits (8..256)
//   - FixedBytesTy:  Size is the width in bytes (1..32)
//   - AddressTy:     Size is always 20
//   - ArrayTy:       Size is the element count, Elem the element type
//   - SliceTy:       Elem is the element type
//
// A Type is immutable once returned by NewType and safe for concurrent use.
// Type 是 ABI 类型字符串解析后的形式。它是一个封闭的带标签变体：T 选择形状，其余字段按形状解释。
// NewType 返回后 Type 不可变，可安全地并发使用。
type Type struct {
	Elem *Type // 元素类型（仅用于数组）
	Size int   // 宽度或长度，含义见上
	T    byte  // 类型标签，使用上面的枚举器

	stringKind string // 规范的类型字符串，用于派生签名
}

var (
	// typeRegex splits a type string into its base and an optional array suffix.
	// typeRegex 将类型字符串拆分为基础类型和可选的数组后缀。
	typeRegex = regexp.MustCompile(`^(?:(u?int|bytes)([0-9]*)|(address|bool|string))((?:\[[0-9]*\])*)$`)

	// suffixRegex grabs each array suffix.
	// suffixRegex 获取每个数组后缀。
	suffixRegex = regexp.MustCompile(`\[([0-9]*)\]`)
)

// NewType parses a type string such as uint256, bytes32, address[] or uint8[5].
// At most one array suffix is accepted and its element must be a static type.
// NewType 解析类型字符串，例如 uint256、bytes32、address[] 或 uint8[5]。
// 最多只接受一个数组后缀，且其元素必须是静态类型。
func NewType(t string) (Type, error) {
	matches := typeRegex.FindStringSubmatch(t)
	if matches == nil {
		return Type{}, syntaxErr(t, "unknown base type or malformed suffix")
	}
	elem, err := newBaseType(t, matches[1], matches[2], matches[3])
	if err != nil {
		return Type{}, err
	}
	suffixes := suffixRegex.FindAllStringSubmatch(matches[4], -1)
	switch len(suffixes) {
	case 0:
		return elem, nil
	case 1:
	default:
		return Type{}, syntaxErr(t, "multi-dimensional arrays are not supported")
	}
	if elem.IsDynamic() {
		return Type{}, syntaxErr(t, "arrays of dynamic elements are not supported")
	}
	if suffixes[0][1] == "" {
		return Type{T: SliceTy, Elem: &elem, stringKind: elem.stringKind + "[]"}, nil
	}
	size, err := strconv.Atoi(suffixes[0][1])
	if err != nil || size == 0 || size > maxArrayLength {
		return Type{}, syntaxErr(t, "invalid array length")
	}
	return Type{T: ArrayTy, Elem: &elem, Size: size, stringKind: fmt.Sprintf("%s[%d]", elem.stringKind, size)}, nil
}

// newBaseType builds the element type from the regex groups of typeRegex.
func newBaseType(t, sized, width, plain string) (Type, error) {
	switch plain {
	case "address":
		return Type{T: AddressTy, Size: 20, stringKind: plain}, nil
	case "bool":
		return Type{T: BoolTy, stringKind: plain}, nil
	case "string":
		return Type{T: StringTy, stringKind: plain}, nil
	}
	var varSize int
	if width != "" {
		var err error
		if varSize, err = strconv.Atoi(width); err != nil {
			return Type{}, syntaxErr(t, "invalid width")
		}
	}
	switch sized {
	case "int", "uint":
		if width == "" {
			varSize = 256
		}
		if varSize == 0 || varSize > 256 || varSize%8 != 0 {
			return Type{}, syntaxErr(t, "integer width must be a multiple of 8 in 8..256")
		}
		typ := Type{T: UintTy, Size: varSize, stringKind: fmt.Sprintf("%s%d", sized, varSize)}
		if sized == "int" {
			typ.T = IntTy
		}
		return typ, nil
	case "bytes":
		if width == "" {
			return Type{T: BytesTy, stringKind: "bytes"}, nil
		}
		if varSize == 0 || varSize > 32 {
			return Type{}, syntaxErr(t, "fixed bytes width must be in 1..32")
		}
		return Type{T: FixedBytesTy, Size: varSize, stringKind: fmt.Sprintf("bytes%d", varSize)}, nil
	}
	return Type{}, syntaxErr(t, "unknown base type")
}

// MustNewType is like NewType but panics on error. Meant for package level
// declarations of well-known types.
func MustNewType(t string) Type {
	typ, err := NewType(t)
	if err != nil {
		panic(err)
	}
	return typ
}

// String implements Stringer and returns the canonical type string.
// String 实现了 Stringer 接口，返回规范的类型字符串。
func (t Type) String() string {
	return t.stringKind
}

// Signed reports whether the type is a signed integer.
func (t Type) Signed() bool {
	return t.T == IntTy
}

// IsDynamic reports whether values of this type live in the tail of an encoding.
// The following types are dynamic: bytes, string and T[] for any T. A fixed
// array is dynamic only if its element is, which the parser never admits.
// IsDynamic 报告该类型的值是否位于编码的尾部。
// 以下类型是动态的：bytes、string 以及任意 T 的 T[]。
func (t Type) IsDynamic() bool {
	switch t.T {
	case StringTy, BytesTy, SliceTy:
		return true
	case ArrayTy:
		return t.Elem.IsDynamic()
	}
	return false
}

// headSize returns the number of bytes the type occupies in the head of an
// encoding: the full inline size for static types, one offset word otherwise.
// headSize 返回该类型在编码头部占用的字节数：静态类型为完整的内联大小，动态类型为一个偏移量字。
func (t Type) headSize() int {
	if t.T == ArrayTy && !t.IsDynamic() {
		return t.Size * t.Elem.headSize()
	}
	return wordSize
}
