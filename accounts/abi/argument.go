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
	"encoding/json"
	"fmt"
	"strings"
)

// Argument holds the name of the argument and the corresponding type.
// Types are used when packing and testing arguments.
// Argument 结构体保存了参数的名称和对应的类型。
// 类型在打包和测试参数时使用。
type Argument struct {
	Name    string // 参数名称
	Type    Type   // 参数类型
	Indexed bool   // indexed 仅用于事件，表示该参数是否被索引
}

// Arguments is an ordered parameter schema. Its types are parsed once when the
// schema is built and never change afterwards.
// Arguments 是有序的参数模式。其类型在构建时解析一次，之后不再改变。
type Arguments []Argument

// ArgumentMarshaling is the JSON form of an argument. Only name, type and
// indexed are consumed.
// ArgumentMarshaling 用于辅助 Argument 的 JSON 解组，只读取 name、type 和 indexed。
type ArgumentMarshaling struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Indexed bool   `json:"indexed,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler interface.
// UnmarshalJSON 实现了 json.Unmarshaler 接口。
func (argument *Argument) UnmarshalJSON(data []byte) error {
	var arg ArgumentMarshaling
	if err := json.Unmarshal(data, &arg); err != nil {
		return fmt.Errorf("argument json err: %v", err)
	}
	typ, err := NewType(arg.Type)
	if err != nil {
		return err
	}
	argument.Type = typ
	argument.Name = arg.Name
	argument.Indexed = arg.Indexed
	return nil
}

// MarshalJSON writes the argument back in its JSON interface form.
func (argument Argument) MarshalJSON() ([]byte, error) {
	return json.Marshal(ArgumentMarshaling{Name: argument.Name, Type: argument.Type.String(), Indexed: argument.Indexed})
}

// NewArguments builds a schema from parallel name and type lists. names may be
// nil, in which case the arguments are addressable by position only.
// NewArguments 根据并列的名称和类型列表构建参数模式。names 可以为 nil，此时参数只能按位置访问。
func NewArguments(names []string, types []string) (Arguments, error) {
	if names != nil && len(names) != len(types) {
		return nil, arityErr("names", len(names), len(types))
	}
	args := make(Arguments, len(types))
	for i, t := range types {
		typ, err := NewType(t)
		if err != nil {
			return nil, err
		}
		args[i].Type = typ
		if names != nil {
			args[i].Name = names[i]
		}
	}
	return args, nil
}

// NonIndexed returns the arguments with indexed arguments filtered out.
// NonIndexed 返回过滤掉索引参数后的参数列表。
func (arguments Arguments) NonIndexed() Arguments {
	var ret []Argument
	for _, arg := range arguments {
		if !arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// Types returns the canonical type strings in order.
// Types 按顺序返回规范的类型字符串。
func (arguments Arguments) Types() []string {
	types := make([]string, len(arguments))
	for i, arg := range arguments {
		types[i] = arg.Type.String()
	}
	return types
}

// headSize is the size of the head region of an encoding of these arguments.
func (arguments Arguments) headSize() int {
	size := 0
	for _, arg := range arguments {
		size += arg.Type.headSize()
	}
	return size
}

// Pack performs the operation Go format -> Hexdata.
// Static values are written inline in the head. Dynamic values leave an offset
// word in the head pointing at their payload in the tail; offsets are absolute
// from the start of the encoding.
// Pack 执行 Go 类型 -> 十六进制数据的操作。
// 静态值直接写入头部。动态值在头部留下一个偏移量字，指向其在尾部的数据；偏移量从编码起始处计算。
func (arguments Arguments) Pack(args ...interface{}) ([]byte, error) {
	if len(args) != len(arguments) {
		return nil, arityErr("argument count", len(args), len(arguments))
	}
	// variableInput 是追加在打包输出末尾的输出，用于动态类型的输入。
	var variableInput []byte

	// inputOffset 是头部的总大小，也是尾部的起始位置。
	inputOffset := arguments.headSize()
	ret := make([]byte, 0, inputOffset)
	for i, a := range args {
		input := arguments[i]
		packed, err := input.Type.pack(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, input.Type, err)
		}
		if input.Type.IsDynamic() {
			ret = append(ret, packUint(uint64(inputOffset+len(variableInput)))...)
			variableInput = append(variableInput, packed...)
		} else {
			ret = append(ret, packed...)
		}
	}
	return append(ret, variableInput...), nil
}

// PackValues performs the operation Go format -> Hexdata.
// It is the semantic opposite of UnpackValues.
// PackValues 执行 Go 类型 -> 十六进制数据的操作，是 UnpackValues 的语义逆操作。
func (arguments Arguments) PackValues(args []interface{}) ([]byte, error) {
	return arguments.Pack(args...)
}

// Unpack performs the operation hexdata -> Go format on the non-indexed
// arguments, keeping names and declaration order.
// Unpack 对非索引参数执行 十六进制数据 -> Go 类型 的操作，保留名称和声明顺序。
func (arguments Arguments) Unpack(data []byte) (Values, error) {
	args := arguments.NonIndexed()
	if len(data) == 0 {
		if len(args) != 0 {
			return nil, layoutErr("attempting to unmarshal an empty string while arguments are expected")
		}
		return Values{}, nil
	}
	ret := make(Values, 0, len(args))
	cursor := 0
	for i, arg := range args {
		var (
			value interface{}
			err   error
		)
		if arg.Type.IsDynamic() {
			var pos int
			if pos, err = readOffset(data, cursor); err == nil {
				value, _, err = arg.Type.unpack(data, pos)
			}
		} else {
			value, _, err = arg.Type.unpack(data, cursor)
		}
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, arg.Type, err)
		}
		ret = append(ret, Value{Name: arg.Name, Type: arg.Type.String(), Value: value})
		cursor += arg.Type.headSize()
	}
	return ret, nil
}

// UnpackValues is like Unpack but returns the bare values.
// UnpackValues 与 Unpack 类似，但只返回值本身。
func (arguments Arguments) UnpackValues(data []byte) ([]interface{}, error) {
	values, err := arguments.Unpack(data)
	if err != nil {
		return nil, err
	}
	return values.Interfaces(), nil
}

// UnpackIntoMap performs the operation hexdata -> mapping of argument name to argument value.
// UnpackIntoMap 将 ABI 编码的数据解码到一个 map 中，键为参数名，值为参数值。
func (arguments Arguments) UnpackIntoMap(v map[string]interface{}, data []byte) error {
	if v == nil {
		return fmt.Errorf("%w: cannot unpack into a nil map", ErrInvalidValue)
	}
	values, err := arguments.Unpack(data)
	if err != nil {
		return err
	}
	for _, value := range values {
		if value.Name != "" {
			v[value.Name] = value.Value
		}
	}
	return nil
}

// EncodeParams encodes values against a list of type strings.
// EncodeParams 按类型字符串列表对值进行编码。
func EncodeParams(types []string, values []interface{}) ([]byte, error) {
	if len(types) != len(values) {
		return nil, arityErr("argument count", len(values), len(types))
	}
	args, err := NewArguments(nil, types)
	if err != nil {
		return nil, err
	}
	return args.Pack(values...)
}

// DecodeParams decodes data against a list of type strings. Results are
// addressable by position only.
// DecodeParams 按类型字符串列表解码数据，结果只能按位置访问。
func DecodeParams(types []string, data []byte) (Values, error) {
	return DecodeNamedParams(nil, types, data)
}

// DecodeNamedParams decodes data against parallel name and type lists.
// DecodeNamedParams 按并列的名称和类型列表解码数据。
func DecodeNamedParams(names []string, types []string, data []byte) (Values, error) {
	args, err := NewArguments(names, types)
	if err != nil {
		return nil, err
	}
	return args.Unpack(data)
}

// signature returns the canonical name(type1,type2,...) form.
func signature(name string, args Arguments) string {
	return fmt.Sprintf("%v(%v)", name, strings.Join(args.Types(), ","))
}

// describe returns the human readable declaration list, e.g. "address indexed from, uint256 value".
func describe(args Arguments) string {
	names := make([]string, len(args))
	for i, arg := range args {
		switch {
		case arg.Indexed:
			names[i] = fmt.Sprintf("%v indexed %v", arg.Type, arg.Name)
		case arg.Name == "":
			names[i] = arg.Type.String()
		default:
			names[i] = fmt.Sprintf("%v %v", arg.Type, arg.Name)
		}
	}
	return strings.Join(names, ", ")
}
