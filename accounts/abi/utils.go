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
	"strings"
)

// ResolveNameConflict returns the next available name for a given thing.
// Overloaded functions and events share their raw name, the first keeps it and
// later ones get a number suffix. e.g. if the abi contains methods "send" and
// "send0", ResolveNameConflict would return "send1" for input "send".
// ResolveNameConflict 为给定事物返回下一个可用的名称。
// 重载的函数和事件共享原始名称，第一个保留原名，后续的添加数字后缀。
// 例如，如果 abi 包含方法 "send" 和 "send0"，则对于输入 "send" 将返回 "send1"。
//
// rawName: 原始名称
// used: 一个函数，用于检查某个名称是否已被使用
// return: 返回一个不冲突的名称
func ResolveNameConflict(rawName string, used func(string) bool) string {
	name := rawName
	ok := used(name)
	for idx := 0; ok; idx++ {
		// 格式化新名称，例如 send0, send1, ...
		name = fmt.Sprintf("%s%d", rawName, idx)
		ok = used(name)
	}
	return name
}

// ToCamelCase converts an under-score string to a camel-case string.
// ToCamelCase 将下划线风格的字符串转换为驼峰风格。
func ToCamelCase(input string) string {
	parts := strings.Split(input, "_")
	for i, s := range parts {
		if len(s) > 0 {
			parts[i] = strings.ToUpper(s[:1]) + s[1:]
		}
	}
	return strings.Join(parts, "")
}
