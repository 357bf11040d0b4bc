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

// Value is one decoded parameter.
// Value 是一个解码后的参数。
type Value struct {
	Name  string      `json:"name,omitempty"`
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// Values is an ordered list of decoded parameters, addressable by position and,
// where the schema named them, by name.
// Values 是解码后参数的有序列表，可以按位置访问；如果模式中有名称，也可以按名称访问。
type Values []Value

// Index returns the value at position i.
func (vs Values) Index(i int) interface{} {
	return vs[i].Value
}

// Get returns the value of the first parameter called name.
// Get 返回第一个名为 name 的参数的值。
func (vs Values) Get(name string) (interface{}, bool) {
	for _, v := range vs {
		if v.Name != "" && v.Name == name {
			return v.Value, true
		}
	}
	return nil, false
}

// Map returns the named parameters keyed by name. Unnamed ones are left out.
func (vs Values) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(vs))
	for _, v := range vs {
		if v.Name != "" {
			m[v.Name] = v.Value
		}
	}
	return m
}

// Interfaces returns the bare values in order.
func (vs Values) Interfaces() []interface{} {
	out := make([]interface{}, len(vs))
	for i, v := range vs {
		out[i] = v.Value
	}
	return out
}
